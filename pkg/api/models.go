package api

import (
	"time"

	"github.com/google/uuid"
)

type Tensor struct {
	Name     string `json:"name"`
	DataType string `json:"data_type"`
	Shape    []int  `json:"shape"`
}

type Model struct {
	Name    string   `json:"name"`
	URL     string   `json:"url"`
	Inputs  []Tensor `json:"inputs"`
	Outputs []Tensor `json:"outputs"`
}

type ModelsResponse struct {
	Models []Model `json:"models"`
}

// ModelRecord is the driver's last known state for a model it has loaded.
type ModelRecord struct {
	Name       string     `json:"name"`
	Path       string     `json:"path"`
	Device     string     `json:"device"`
	Version    string     `json:"version"`
	Status     string     `json:"status"`
	Inputs     []Tensor   `json:"inputs"`
	Outputs    []Tensor   `json:"outputs"`
	LoadedAt   *time.Time `json:"loaded_at,omitempty"`
	UnloadedAt *time.Time `json:"unloaded_at,omitempty"`
}

type ModelHistoryResponse struct {
	Models []ModelRecord `json:"models"`
}

type LoadModelRequest struct {
	DeviceName string `json:"device_name"`
	ModelName  string `json:"model_name"`
	Version    string `json:"version"`
}

type UnloadModelRequest struct {
	ModelName string `json:"model_name"`
}

type PredictRequest struct {
	ModelName string `json:"model_name"`
	S3Bucket  string `json:"s3_bucket"`
	S3Key     string `json:"s3_key"`
}

type BatchPredictRequest struct {
	ModelName string   `json:"model_name"`
	S3Bucket  string   `json:"s3_bucket"`
	S3Keys    []string `json:"s3_keys"`
}

// Box is x1, y1, x2, y2 in pixels of the source image.
type Detection struct {
	ClassId    int        `json:"class_id"`
	ClassName  string     `json:"class_name"`
	Confidence float32    `json:"confidence"`
	Box        [4]float32 `json:"box"`
}

type PredictResponse struct {
	PredictionId   uuid.UUID   `json:"prediction_id"`
	ModelName      string      `json:"model_name"`
	Detections     []Detection `json:"detections"`
	AnnotatedImage string      `json:"annotated_image"`
	LatencyMs      int64       `json:"latency_ms"`
}

type BatchPredictResult struct {
	S3Key      string           `json:"s3_key"`
	Prediction *PredictResponse `json:"prediction,omitempty"`
	Error      string           `json:"error,omitempty"`
}

type BatchPredictResponse struct {
	Results []BatchPredictResult `json:"results"`
}

type ListPredictionsParams struct {
	ModelName string `schema:"model_name"`
	Limit     int    `schema:"limit"`
}

type Prediction struct {
	Id           uuid.UUID `json:"id"`
	ModelName    string    `json:"model_name"`
	Status       string    `json:"status"`
	SourceBucket string    `json:"source_bucket"`
	SourceKey    string    `json:"source_key"`
	AnnotatedKey string    `json:"annotated_key,omitempty"`
	Error        string    `json:"error,omitempty"`
	LatencyMs    int64     `json:"latency_ms"`
	CreationTime time.Time `json:"creation_time"`

	Detections []Detection `json:"detections,omitempty"`
}

type HealthResponse struct {
	Status       string   `json:"status"`
	LoadedModels []string `json:"loaded_models"`
}
