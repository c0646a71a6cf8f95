package api

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"edge-driver/internal/agent"
	"edge-driver/internal/database"
	"edge-driver/internal/imageproc"
	"edge-driver/internal/metrics"
	"edge-driver/internal/pipeline"
	"edge-driver/internal/s3"
	"edge-driver/internal/tensor"
	"edge-driver/internal/utils"
	"edge-driver/pkg/api"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

const (
	defaultPredictionLimit = 100
	maxPredictionLimit     = 1000
	maxBatchSize           = 64
)

// BlobStore holds source images and annotated results.
type BlobStore interface {
	Download(ctx context.Context, bucket, key string) ([]byte, error)
	Upload(ctx context.Context, bucket, key string, data []byte, contentType string) (string, error)
}

type ServiceOptions struct {
	// ModelRoot is the directory holding {device}/{model}/{version} artifacts.
	ModelRoot    string
	ClassNames   []string
	BatchWorkers int
}

type DriverService struct {
	session  *agent.Session
	pipeline *pipeline.Pipeline
	blobs    BlobStore
	db       *gorm.DB
	metrics  *metrics.Metrics
	opts     ServiceOptions
}

func NewDriverService(session *agent.Session, pipe *pipeline.Pipeline, blobs BlobStore, db *gorm.DB, m *metrics.Metrics, opts ServiceOptions) *DriverService {
	if opts.BatchWorkers < 1 {
		opts.BatchWorkers = 1
	}
	return &DriverService{session: session, pipeline: pipe, blobs: blobs, db: db, metrics: m, opts: opts}
}

func (s *DriverService) AddRoutes(r chi.Router) {
	r.Get("/", RestHandler(s.Health))
	r.Post("/", RestHandler(s.Health))
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics.Handler())
	}

	r.Get("/models", RestHandler(s.ListModels))
	r.Get("/models/history", RestHandler(s.ModelHistory))
	r.Route("/model", func(r chi.Router) {
		r.Post("/load", RestHandler(s.LoadModel))
		r.Post("/unload", RestHandler(s.UnloadModel))
		r.Post("/predict", RestHandler(s.Predict))
		r.Post("/predict/batch", RestHandler(s.PredictBatch))
	})
	r.Route("/predictions", func(r chi.Router) {
		r.Get("/", RestHandler(s.ListPredictions))
		r.Get("/{prediction_id}", RestHandler(s.GetPrediction))
	})
}

func (s *DriverService) Health(r *http.Request) (any, error) {
	return api.HealthResponse{Status: "ok", LoadedModels: s.session.Registry().Names()}, nil
}

func (s *DriverService) ListModels(r *http.Request) (any, error) {
	models, err := s.session.ListModels(r.Context())
	if err != nil {
		slog.Error("error listing models", "error", err)
		return nil, CodedErrorf(http.StatusBadGateway, "unable to list models from agent")
	}
	return api.ModelsResponse{Models: convertModels(models)}, nil
}

// ModelHistory lists every model the driver has loaded, including ones
// since unloaded.
func (s *DriverService) ModelHistory(r *http.Request) (any, error) {
	records, err := database.ListModelRecords(r.Context(), s.db)
	if err != nil {
		slog.Error("error listing model records", "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "unable to list model history")
	}
	return api.ModelHistoryResponse{Models: convertModelRecords(records)}, nil
}

func (s *DriverService) LoadModel(r *http.Request) (any, error) {
	req, err := ParseRequest[api.LoadModelRequest](r)
	if err != nil {
		return nil, err
	}

	if err := validatePathComponent("device_name", req.DeviceName); err != nil {
		return nil, err
	}
	if err := validatePathComponent("model_name", req.ModelName); err != nil {
		return nil, err
	}
	if err := validatePathComponent("version", req.Version); err != nil {
		return nil, err
	}

	ctx := r.Context()
	path := filepath.Join(s.opts.ModelRoot, req.DeviceName, req.ModelName, req.Version)

	models, err := s.session.LoadModel(ctx, req.ModelName, path)
	s.metrics.ModelMutation("load", err)
	if err != nil {
		if errors.Is(err, agent.ErrLoad) {
			return nil, CodedError(http.StatusUnprocessableEntity, err)
		}
		return nil, CodedError(http.StatusInternalServerError, err)
	}

	if model, ok := models[req.ModelName]; ok {
		if err := database.RecordModelLoaded(ctx, s.db, modelRecord(model, req.DeviceName, req.Version)); err != nil {
			slog.Warn("model loaded but not recorded", "model", req.ModelName, "error", err)
		}
	}

	slog.Info("model loaded", "model", req.ModelName, "path", path)
	return api.ModelsResponse{Models: convertModels(models)}, nil
}

func (s *DriverService) UnloadModel(r *http.Request) (any, error) {
	req, err := ParseRequest[api.UnloadModelRequest](r)
	if err != nil {
		return nil, err
	}
	if req.ModelName == "" {
		return nil, CodedErrorf(http.StatusUnprocessableEntity, "missing required field: model_name")
	}

	ctx := r.Context()

	models, err := s.session.UnloadModel(ctx, req.ModelName)
	s.metrics.ModelMutation("unload", err)
	if err != nil {
		if errors.Is(err, agent.ErrUnload) {
			return nil, CodedError(http.StatusUnprocessableEntity, err)
		}
		return nil, CodedError(http.StatusInternalServerError, err)
	}

	if err := database.RecordModelUnloaded(ctx, s.db, req.ModelName); err != nil {
		slog.Warn("model unloaded but not recorded", "model", req.ModelName, "error", err)
	}

	slog.Info("model unloaded", "model", req.ModelName)
	return api.ModelsResponse{Models: convertModels(models)}, nil
}

func (s *DriverService) Predict(r *http.Request) (any, error) {
	req, err := ParseRequest[api.PredictRequest](r)
	if err != nil {
		return nil, err
	}
	if req.ModelName == "" || req.S3Bucket == "" || req.S3Key == "" {
		return nil, CodedErrorf(http.StatusUnprocessableEntity, "missing required fields: model_name, s3_bucket, s3_key")
	}

	return s.predict(r.Context(), req.ModelName, req.S3Bucket, req.S3Key)
}

func (s *DriverService) PredictBatch(r *http.Request) (any, error) {
	req, err := ParseRequest[api.BatchPredictRequest](r)
	if err != nil {
		return nil, err
	}
	if req.ModelName == "" || req.S3Bucket == "" || len(req.S3Keys) == 0 {
		return nil, CodedErrorf(http.StatusUnprocessableEntity, "missing required fields: model_name, s3_bucket, s3_keys")
	}
	if len(req.S3Keys) > maxBatchSize {
		return nil, CodedErrorf(http.StatusUnprocessableEntity, "batch of %d images exceeds the limit of %d", len(req.S3Keys), maxBatchSize)
	}
	if _, ok := s.session.Model(req.ModelName); !ok {
		return nil, CodedError(http.StatusNotFound, pipeline.ErrPredictionUnavailable)
	}

	ctx := r.Context()
	results := utils.RunInPool(req.S3Keys, s.opts.BatchWorkers, func(key string) (*api.PredictResponse, error) {
		return s.predict(ctx, req.ModelName, req.S3Bucket, key)
	})

	res := api.BatchPredictResponse{Results: make([]api.BatchPredictResult, 0, len(results))}
	for _, result := range results {
		item := api.BatchPredictResult{S3Key: req.S3Keys[result.Index]}
		if result.Error != nil {
			item.Error = result.Error.Error()
		} else {
			item.Prediction = result.Value
		}
		res.Results = append(res.Results, item)
	}
	return res, nil
}

// predict runs one image from the blob store through the pipeline, uploads the
// annotated image next to it and records the outcome.
func (s *DriverService) predict(ctx context.Context, modelName, bucket, key string) (*api.PredictResponse, error) {
	start := time.Now()

	data, err := s.blobs.Download(ctx, bucket, key)
	if err != nil {
		if errors.Is(err, s3.ErrObjectNotFound) {
			return nil, CodedError(http.StatusNotFound, err)
		}
		return nil, CodedError(http.StatusBadGateway, err)
	}

	result, err := s.pipeline.Predict(ctx, modelName, data)
	if err != nil {
		switch {
		case errors.Is(err, pipeline.ErrPredictionUnavailable):
			return nil, CodedError(http.StatusNotFound, err)
		case errors.Is(err, imageproc.ErrInvalidImage):
			return nil, CodedError(http.StatusBadRequest, err)
		}
		s.recordFailure(ctx, modelName, bucket, key, err, time.Since(start))
		if errors.Is(err, tensor.ErrShapeMismatch) || errors.Is(err, tensor.ErrUnsupportedType) {
			return nil, CodedError(http.StatusUnprocessableEntity, err)
		}
		return nil, CodedError(http.StatusBadGateway, err)
	}

	detections := convertDetections(result.Detections, s.opts.ClassNames)

	annotated, err := imageproc.EncodeJPEG(imageproc.Annotate(result.Frame.Original, result.Detections, s.opts.ClassNames))
	if err != nil {
		return nil, CodedError(http.StatusInternalServerError, err)
	}
	annotatedKey := s3.AnnotatedKey(key)
	uri, err := s.blobs.Upload(ctx, bucket, annotatedKey, annotated, "image/jpeg")
	if err != nil {
		return nil, CodedError(http.StatusBadGateway, err)
	}

	latency := time.Since(start)
	record := &database.Prediction{
		ModelName:    modelName,
		Status:       database.PredictionSucceeded,
		SourceBucket: bucket,
		SourceKey:    key,
		AnnotatedKey: sql.NullString{String: annotatedKey, Valid: true},
		LatencyMs:    latency.Milliseconds(),
		Detections:   detectionRecords(detections),
	}
	if err := database.SavePrediction(ctx, s.db, record); err != nil {
		return nil, CodedErrorf(http.StatusInternalServerError, "error recording prediction")
	}

	slog.Info("prediction complete", "prediction_id", record.Id, "model", modelName, "source", key, "detections", len(detections), "latency", latency)

	return &api.PredictResponse{
		PredictionId:   record.Id,
		ModelName:      modelName,
		Detections:     detections,
		AnnotatedImage: uri,
		LatencyMs:      record.LatencyMs,
	}, nil
}

func (s *DriverService) recordFailure(ctx context.Context, modelName, bucket, key string, cause error, latency time.Duration) {
	record := &database.Prediction{
		ModelName:    modelName,
		Status:       database.PredictionFailed,
		SourceBucket: bucket,
		SourceKey:    key,
		Error:        sql.NullString{String: cause.Error(), Valid: true},
		LatencyMs:    latency.Milliseconds(),
	}
	if err := database.SavePrediction(ctx, s.db, record); err != nil {
		slog.Warn("failed prediction not recorded", "model", modelName, "source", key, "error", err)
	}
}

func (s *DriverService) ListPredictions(r *http.Request) (any, error) {
	params, err := ParseRequestQueryParams[api.ListPredictionsParams](r)
	if err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultPredictionLimit
	}
	limit = min(limit, maxPredictionLimit)

	predictions, err := database.ListPredictions(r.Context(), s.db, params.ModelName, limit)
	if err != nil {
		slog.Error("error listing predictions", "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "error retrieving predictions")
	}
	return convertPredictions(predictions), nil
}

func (s *DriverService) GetPrediction(r *http.Request) (any, error) {
	predictionId, err := URLParamUUID(r, "prediction_id")
	if err != nil {
		return nil, err
	}

	prediction, err := database.GetPrediction(r.Context(), s.db, predictionId)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, CodedErrorf(http.StatusNotFound, "prediction not found")
		}
		slog.Error("error getting prediction", "prediction_id", predictionId, "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "error retrieving prediction record")
	}
	return convertPrediction(*prediction), nil
}
