package config

import (
	"fmt"
	"log"

	"edge-driver/internal/detection"
	"edge-driver/internal/pipeline"
	"edge-driver/internal/s3"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	AgentSocket          string `env:"AGENT_SOCKET" envDefault:"/home/agent/sock/edge_agent"`
	AgentMaxMessageBytes int    `env:"AGENT_MAX_MESSAGE_BYTES" envDefault:"80000000"`
	ModelRoot            string `env:"MODEL_ROOT" envDefault:"/home/agent/models"`

	SharedMemoryKey     int     `env:"SHM_KEY" envDefault:"41"`
	UseSharedMemory     bool    `env:"USE_SHARED_MEMORY" envDefault:"true"`
	ConfidenceThreshold float32 `env:"CONFIDENCE_THRESHOLD" envDefault:"0.4"`
	IoUThreshold        float32 `env:"IOU_THRESHOLD" envDefault:"0.6"`
	BestClassOnly       bool    `env:"BEST_CLASS_ONLY" envDefault:"false"`
	NormalizedBoxes     bool    `env:"NORMALIZED_BOXES" envDefault:"true"`
	CaptureData         bool    `env:"CAPTURE_DATA" envDefault:"true"`
	ClassNamesFile      string  `env:"CLASS_NAMES_FILE"`

	DatabaseURL       string `env:"DATABASE_URL" envDefault:"sqlite://edge-driver.db"`
	S3EndpointURL     string `env:"S3_ENDPOINT_URL"`
	S3AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	S3SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	S3Region          string `env:"AWS_REGION" envDefault:"us-east-1"`
	// LocalStorageDir, when set, serves images from disk instead of S3.
	LocalStorageDir string `env:"LOCAL_STORAGE_DIR"`

	APIPort      string `env:"API_PORT" envDefault:"5001"`
	BatchWorkers int    `env:"WORKERS" envDefault:"2"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if cfg.ConfidenceThreshold < 0 || cfg.ConfidenceThreshold > 1 {
		return nil, fmt.Errorf("CONFIDENCE_THRESHOLD must be in [0, 1], got %v", cfg.ConfidenceThreshold)
	}
	if cfg.IoUThreshold < 0 || cfg.IoUThreshold > 1 {
		return nil, fmt.Errorf("IOU_THRESHOLD must be in [0, 1], got %v", cfg.IoUThreshold)
	}
	if cfg.AgentMaxMessageBytes <= 0 {
		return nil, fmt.Errorf("AGENT_MAX_MESSAGE_BYTES must be positive, got %d", cfg.AgentMaxMessageBytes)
	}

	if cfg.S3EndpointURL != "" && (cfg.S3AccessKeyID == "" || cfg.S3SecretAccessKey == "") {
		log.Println("Warning: S3_ENDPOINT_URL is set, but AWS_ACCESS_KEY_ID or AWS_SECRET_ACCESS_KEY are missing.")
	}

	return &cfg, nil
}

func (c *Config) PipelineOptions() pipeline.Options {
	opts := pipeline.DefaultOptions()
	opts.SegmentKey = c.SharedMemoryKey
	opts.UseSharedMemory = c.UseSharedMemory
	opts.NormalizedBoxes = c.NormalizedBoxes
	opts.CaptureData = c.CaptureData
	opts.Detection = detection.Options{
		ConfidenceThreshold: c.ConfidenceThreshold,
		IoUThreshold:        c.IoUThreshold,
		BestClassOnly:       c.BestClassOnly,
	}
	return opts
}

func (c *Config) S3Config() *s3.Config {
	return &s3.Config{
		S3EndpointURL:     c.S3EndpointURL,
		S3AccessKeyID:     c.S3AccessKeyID,
		S3SecretAccessKey: c.S3SecretAccessKey,
		S3Region:          c.S3Region,
	}
}
