package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFound = errors.New("record not found")

func RecordModelLoaded(ctx context.Context, db *gorm.DB, record ModelRecord) error {
	record.Status = ModelLoaded
	record.LoadedAt = sql.NullTime{Time: time.Now().UTC(), Valid: true}
	record.UnloadedAt = sql.NullTime{}

	err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		UpdateAll: true,
	}).Create(&record).Error
	if err != nil {
		slog.Error("error recording model load", "model", record.Name, "error", err)
		return fmt.Errorf("error recording model load: %w", err)
	}
	return nil
}

func RecordModelUnloaded(ctx context.Context, db *gorm.DB, name string) error {
	updates := map[string]any{
		"status":      ModelUnloaded,
		"unloaded_at": time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Model(&ModelRecord{Name: name}).Updates(updates).Error; err != nil {
		slog.Error("error recording model unload", "model", name, "error", err)
		return fmt.Errorf("error recording model unload: %w", err)
	}
	return nil
}

func ListModelRecords(ctx context.Context, db *gorm.DB) ([]ModelRecord, error) {
	var records []ModelRecord
	if err := db.WithContext(ctx).Order("name").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("error listing model records: %w", err)
	}
	return records, nil
}

// SavePrediction stores a prediction and its detections in one transaction.
func SavePrediction(ctx context.Context, db *gorm.DB, prediction *Prediction) error {
	if prediction.Id == uuid.Nil {
		prediction.Id = uuid.New()
	}
	if prediction.CreationTime.IsZero() {
		prediction.CreationTime = time.Now().UTC()
	}
	for i := range prediction.Detections {
		prediction.Detections[i].PredictionId = prediction.Id
		prediction.Detections[i].Position = i
	}

	if err := db.WithContext(ctx).Create(prediction).Error; err != nil {
		slog.Error("error saving prediction", "prediction_id", prediction.Id, "model", prediction.ModelName, "error", err)
		return fmt.Errorf("error saving prediction: %w", err)
	}
	return nil
}

func GetPrediction(ctx context.Context, db *gorm.DB, id uuid.UUID) (*Prediction, error) {
	var prediction Prediction
	err := db.WithContext(ctx).
		Preload("Detections", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&prediction, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: prediction %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("error retrieving prediction %s: %w", id, err)
	}
	return &prediction, nil
}

// ListPredictions returns the most recent predictions first. An empty
// modelName matches every model.
func ListPredictions(ctx context.Context, db *gorm.DB, modelName string, limit int) ([]Prediction, error) {
	query := db.WithContext(ctx).Order("creation_time DESC")
	if modelName != "" {
		query = query.Where("model_name = ?", modelName)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var predictions []Prediction
	if err := query.Find(&predictions).Error; err != nil {
		return nil, fmt.Errorf("error listing predictions: %w", err)
	}
	return predictions, nil
}
