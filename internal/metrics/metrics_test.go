package metrics_test

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"edge-driver/internal/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerExposesCollectors(t *testing.T) {
	m := metrics.New(func() int { return 2 })

	m.ObservePrediction("yolo", metrics.OutcomeSuccess, 30*time.Millisecond, 3)
	m.ObservePrediction("yolo", metrics.OutcomeError, time.Millisecond, 0)
	m.SegmentAcquired()
	m.SegmentReleased()
	m.CaptureFailed()
	m.ModelMutation("load", nil)
	m.ModelMutation("unload", errors.New("rejected"))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	text := string(body)

	assert.Contains(t, text, `edge_driver_predictions_total{model="yolo",outcome="success"} 1`)
	assert.Contains(t, text, `edge_driver_predictions_total{model="yolo",outcome="error"} 1`)
	assert.Contains(t, text, "edge_driver_detections_total 3")
	assert.Contains(t, text, "edge_driver_shm_acquires_total 1")
	assert.Contains(t, text, "edge_driver_shm_releases_total 1")
	assert.Contains(t, text, "edge_driver_capture_failures_total 1")
	assert.Contains(t, text, `edge_driver_model_mutations_total{op="unload",result="error"} 1`)
	assert.Contains(t, text, "edge_driver_loaded_models 2")
}

func TestNilMetricsIsNoOp(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.ObservePrediction("yolo", metrics.OutcomeSuccess, time.Second, 1)
		m.SegmentAcquired()
		m.SegmentReleased()
		m.CaptureFailed()
		m.ModelMutation("load", nil)
	})
}
