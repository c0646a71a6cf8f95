package migration_1

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Adds per-detection rows and prediction latency.

type Prediction struct {
	LatencyMs int64 `gorm:"default:0"`
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

func Migration(db *gorm.DB) error {
	if err := db.Migrator().AddColumn(&Prediction{}, "LatencyMs"); err != nil {
		return fmt.Errorf("error adding latency_ms column: %w", err)
	}

	if err := db.Model(&Prediction{}).
		Where("latency_ms IS NULL").
		Update("latency_ms", 0).Error; err != nil {
		return fmt.Errorf("error setting default value for latency_ms: %w", err)
	}

	if err := db.Migrator().CreateTable(&PredictionDetection{}); err != nil {
		return fmt.Errorf("error creating prediction_detections table: %w", err)
	}

	return nil
}

func Rollback(db *gorm.DB) error {
	if err := db.Migrator().DropTable(&PredictionDetection{}); err != nil {
		return fmt.Errorf("error dropping prediction_detections table: %w", err)
	}

	if err := db.Migrator().DropColumn(&Prediction{}, "LatencyMs"); err != nil {
		return fmt.Errorf("error dropping latency_ms column: %w", err)
	}

	return nil
}
