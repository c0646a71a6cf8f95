package database_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"edge-driver/internal/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "db", "driver.db"))
	require.NoError(t, err)
	return db
}

func TestModelRecordLifecycle(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	record := database.ModelRecord{
		Name:    "yolov4",
		Path:    "/models/cam/yolov4/1",
		Device:  "cam",
		Version: "1",
		Inputs:  []database.TensorSignature{{Name: "input", DataType: "float32", Shape: []int{1, 3, 608, 608}}},
	}
	require.NoError(t, database.RecordModelLoaded(ctx, db, record))

	records, err := database.ListModelRecords(ctx, db)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, database.ModelLoaded, records[0].Status)
	assert.True(t, records[0].LoadedAt.Valid)
	assert.Equal(t, []int{1, 3, 608, 608}, records[0].Inputs[0].Shape)

	require.NoError(t, database.RecordModelUnloaded(ctx, db, "yolov4"))
	records, err = database.ListModelRecords(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, database.ModelUnloaded, records[0].Status)
	assert.True(t, records[0].UnloadedAt.Valid)

	// Loading again overwrites the record.
	record.Version = "2"
	require.NoError(t, database.RecordModelLoaded(ctx, db, record))
	records, err = database.ListModelRecords(ctx, db)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2", records[0].Version)
	assert.Equal(t, database.ModelLoaded, records[0].Status)
	assert.False(t, records[0].UnloadedAt.Valid)
}

func TestSaveAndGetPrediction(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	prediction := &database.Prediction{
		ModelName:    "yolov4",
		Status:       database.PredictionSucceeded,
		SourceBucket: "images",
		SourceKey:    "cam/frame.jpg",
		LatencyMs:    42,
		Detections: []database.PredictionDetection{
			{ClassId: 16, ClassName: "dog", Confidence: 0.9, X1: 1, Y1: 2, X2: 30, Y2: 40},
			{ClassId: 0, ClassName: "person", Confidence: 0.7, X1: 5, Y1: 5, X2: 9, Y2: 9},
		},
	}
	require.NoError(t, database.SavePrediction(ctx, db, prediction))
	assert.NotEqual(t, uuid.Nil, prediction.Id)

	got, err := database.GetPrediction(ctx, db, prediction.Id)
	require.NoError(t, err)
	assert.Equal(t, "yolov4", got.ModelName)
	assert.Equal(t, int64(42), got.LatencyMs)
	require.Len(t, got.Detections, 2)
	assert.Equal(t, "dog", got.Detections[0].ClassName)
	assert.Equal(t, 1, got.Detections[1].Position)

	_, err = database.GetPrediction(ctx, db, uuid.New())
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestListPredictions(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	base := time.Now().UTC()
	for i, model := range []string{"a", "b", "a", "a"} {
		require.NoError(t, database.SavePrediction(ctx, db, &database.Prediction{
			ModelName:    model,
			Status:       database.PredictionSucceeded,
			CreationTime: base.Add(time.Duration(i) * time.Second),
		}))
	}

	all, err := database.ListPredictions(ctx, db, "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	onlyA, err := database.ListPredictions(ctx, db, "a", 2)
	require.NoError(t, err)
	require.Len(t, onlyA, 2)
	assert.True(t, onlyA[0].CreationTime.After(onlyA[1].CreationTime))
	for _, p := range onlyA {
		assert.Equal(t, "a", p.ModelName)
	}
}
