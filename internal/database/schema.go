package database

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ModelLoaded   string = "LOADED"
	ModelUnloaded string = "UNLOADED"
)

// ModelRecord tracks the last known state of a model in the agent.
type ModelRecord struct {
	Name    string `gorm:"primaryKey"`
	Path    string
	Device  string
	Version string
	Status  string `gorm:"size:20;not null"`

	Inputs  datatypes.JSONSlice[TensorSignature]
	Outputs datatypes.JSONSlice[TensorSignature]

	LoadedAt   sql.NullTime
	UnloadedAt sql.NullTime
}

type TensorSignature struct {
	Name     string `json:"name"`
	DataType string `json:"data_type"`
	Shape    []int  `json:"shape"`
}

const (
	PredictionSucceeded string = "SUCCEEDED"
	PredictionFailed    string = "FAILED"
)

type Prediction struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ModelName string    `gorm:"index;not null"`
	Status    string    `gorm:"size:20;not null"`

	SourceBucket string
	SourceKey    string
	AnnotatedKey sql.NullString

	Error        sql.NullString
	LatencyMs    int64 `gorm:"default:0"`
	CreationTime time.Time

	Detections []PredictionDetection `gorm:"foreignKey:PredictionId;constraint:OnDelete:CASCADE"`
}

type PredictionDetection struct {
	PredictionId uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position     int       `gorm:"primaryKey;autoIncrement:false"`

	ClassId    int
	ClassName  string
	Confidence float32
	X1         float32
	Y1         float32
	X2         float32
	Y2         float32
}
