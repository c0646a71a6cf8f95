package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"edge-driver/cmd"
	"edge-driver/internal/agent"
	"edge-driver/internal/api"
	"edge-driver/internal/config"
	"edge-driver/internal/database"
	"edge-driver/internal/imageproc"
	"edge-driver/internal/metrics"
	"edge-driver/internal/pipeline"
	"edge-driver/internal/s3"
	"edge-driver/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	log.Println("Starting edge driver...")

	cmd.LoadEnvFile()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	ctx := context.Background()

	db, err := database.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	var blobs api.BlobStore
	if cfg.LocalStorageDir != "" {
		blobs, err = storage.NewLocalStore(cfg.LocalStorageDir)
	} else {
		blobs, err = s3.NewS3Client(ctx, cfg.S3Config())
	}
	if err != nil {
		log.Fatalf("Failed to create blob store: %v", err)
	}

	classNames, err := imageproc.ClassNames(cfg.ClassNamesFile)
	if err != nil {
		log.Fatalf("Failed to load class names: %v", err)
	}

	dialCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	session, err := agent.Dial(dialCtx, cfg.AgentSocket, cfg.AgentMaxMessageBytes)
	cancel()
	if err != nil {
		log.Fatalf("Failed to connect to edge agent at %s: %v", cfg.AgentSocket, err)
	}
	defer session.Close()

	m := metrics.New(session.Registry().Len)
	pipe := pipeline.New(session, cfg.PipelineOptions(), m)

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	service := api.NewDriverService(session, pipe, blobs, db, m, api.ServiceOptions{
		ModelRoot:    cfg.ModelRoot,
		ClassNames:   classNames,
		BatchWorkers: cfg.BatchWorkers,
	})
	service.AddRoutes(r)

	server := &http.Server{
		Addr:    ":" + cfg.APIPort,
		Handler: r,
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		slog.Info("shutting down server")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Server forced to shutdown: %v", err)
		}
	}()

	slog.Info("edge driver listening", "port", cfg.APIPort, "agent_socket", cfg.AgentSocket, "models", session.Registry().Names())
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %s: %v", cfg.APIPort, err)
	}

	// Let in-flight capture uploads finish before the agent connection closes.
	pipe.Wait()
	slog.Info("server stopped")
}
