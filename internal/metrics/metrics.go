package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prediction outcomes.
const (
	OutcomeSuccess     = "success"
	OutcomeUnavailable = "unavailable"
	OutcomeError       = "error"
)

// Metrics holds the driver's Prometheus collectors. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	predictions       *prometheus.CounterVec
	predictionLatency *prometheus.HistogramVec
	detections        prometheus.Counter
	segmentAcquires   prometheus.Counter
	segmentReleases   prometheus.Counter
	captureFailures   prometheus.Counter
	modelMutations    *prometheus.CounterVec
}

// New creates the collectors. loadedModels is sampled on every scrape.
func New(loadedModels func() int) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "edge_driver_predictions_total",
			Help: "Predictions by model and outcome",
		}, []string{"model", "outcome"}),
		predictionLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "edge_driver_prediction_seconds",
			Help:    "End to end prediction latency",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
		}, []string{"model"}),
		detections: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "edge_driver_detections_total",
			Help: "Detections returned after post-processing",
		}),
		segmentAcquires: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "edge_driver_shm_acquires_total",
			Help: "Shared memory segments acquired for input hand-off",
		}),
		segmentReleases: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "edge_driver_shm_releases_total",
			Help: "Shared memory segments released",
		}),
		captureFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "edge_driver_capture_failures_total",
			Help: "Capture data calls that failed",
		}),
		modelMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "edge_driver_model_mutations_total",
			Help: "Model load and unload requests by result",
		}, []string{"op", "result"}),
	}

	m.registry.MustRegister(
		m.predictions,
		m.predictionLatency,
		m.detections,
		m.segmentAcquires,
		m.segmentReleases,
		m.captureFailures,
		m.modelMutations,
	)

	if loadedModels != nil {
		m.registry.MustRegister(prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "edge_driver_loaded_models",
				Help: "Models currently loaded in the agent",
			},
			func() float64 { return float64(loadedModels()) },
		))
	}

	return m
}

func (m *Metrics) ObservePrediction(model, outcome string, elapsed time.Duration, detections int) {
	if m == nil {
		return
	}
	m.predictions.WithLabelValues(model, outcome).Inc()
	m.predictionLatency.WithLabelValues(model).Observe(elapsed.Seconds())
	m.detections.Add(float64(detections))
}

func (m *Metrics) SegmentAcquired() {
	if m == nil {
		return
	}
	m.segmentAcquires.Inc()
}

func (m *Metrics) SegmentReleased() {
	if m == nil {
		return
	}
	m.segmentReleases.Inc()
}

func (m *Metrics) CaptureFailed() {
	if m == nil {
		return
	}
	m.captureFailures.Inc()
}

func (m *Metrics) ModelMutation(op string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.modelMutations.WithLabelValues(op, result).Inc()
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
