package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"edge-driver/internal/agent"
	"edge-driver/internal/detection"
	"edge-driver/internal/imageproc"
	"edge-driver/internal/metrics"
	"edge-driver/internal/shm"
	"edge-driver/internal/tensor"
	"edge-driver/internal/utils"
)

var ErrPredictionUnavailable = errors.New("prediction unavailable: model is not loaded")

// Agent is the part of agent.Session the pipeline drives.
type Agent interface {
	Model(name string) (agent.ModelDescriptor, bool)
	Predict(ctx context.Context, name string, input *tensor.Tensor) ([]*tensor.Tensor, error)
	CaptureData(ctx context.Context, name string, inputs, outputs []*tensor.Tensor) error
}

type Options struct {
	SegmentKey      int
	UseSharedMemory bool
	Detection       detection.Options
	// NormalizedBoxes marks model boxes as fractions of the input frame.
	NormalizedBoxes bool
	CaptureData     bool
	CaptureTimeout  time.Duration
}

func DefaultOptions() Options {
	return Options{
		SegmentKey:      41,
		UseSharedMemory: true,
		Detection:       detection.DefaultOptions(),
		NormalizedBoxes: true,
		CaptureData:     true,
		CaptureTimeout:  10 * time.Second,
	}
}

type Result struct {
	Model string
	// Detections are in the pixel frame of the submitted image.
	Detections []detection.Detection
	// ModelDetections are in the pixel frame of the model input.
	ModelDetections []detection.Detection
	Frame           *imageproc.Frame
	Elapsed         time.Duration
}

type Pipeline struct {
	agent   Agent
	opts    Options
	locks   *utils.MutexMap[int]
	metrics *metrics.Metrics
	capture sync.WaitGroup
}

func New(a Agent, opts Options, m *metrics.Metrics) *Pipeline {
	return &Pipeline{
		agent:   a,
		opts:    opts,
		locks:   utils.NewMutexMap[int](64),
		metrics: m,
	}
}

// Predict runs the model on an encoded image and returns its detections.
func (p *Pipeline) Predict(ctx context.Context, modelName string, image []byte) (*Result, error) {
	start := time.Now()

	result, err := p.predict(ctx, modelName, image)

	outcome, count := metrics.OutcomeSuccess, 0
	switch {
	case errors.Is(err, ErrPredictionUnavailable):
		outcome = metrics.OutcomeUnavailable
	case err != nil:
		outcome = metrics.OutcomeError
	default:
		count = len(result.Detections)
		result.Elapsed = time.Since(start)
	}
	p.metrics.ObservePrediction(modelName, outcome, time.Since(start), count)

	return result, err
}

func (p *Pipeline) predict(ctx context.Context, modelName string, image []byte) (*Result, error) {
	model, ok := p.agent.Model(modelName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPredictionUnavailable, modelName)
	}
	if len(model.Inputs) == 0 {
		return nil, fmt.Errorf("model %q declares no inputs", modelName)
	}
	inputMeta := model.Inputs[0]

	frame, err := imageproc.Prepare(image, inputMeta.Shape)
	if err != nil {
		return nil, fmt.Errorf("error preparing image for model %q: %w", modelName, err)
	}

	input, err := tensor.Encode(inputMeta.Name, frame.Pixels, inputMeta.Shape...)
	if err != nil {
		return nil, err
	}

	batches, err := p.Run(ctx, modelName, input)
	if err != nil {
		return nil, err
	}

	modelDetections := batches[0]
	if p.opts.NormalizedBoxes {
		modelDetections = detection.ScaleBoxes(modelDetections, frame.Letterbox.DstWidth, frame.Letterbox.DstHeight)
	}

	detections := make([]detection.Detection, len(modelDetections))
	for i, d := range modelDetections {
		d.Box = frame.Letterbox.Unmap(d.Box)
		detections[i] = d
	}

	if p.opts.CaptureData {
		p.captureAsync(modelName, input, modelDetections)
	}

	return &Result{
		Model:           modelName,
		Detections:      detections,
		ModelDetections: modelDetections,
		Frame:           frame,
	}, nil
}

// Run sends an encoded input to the model and post-processes the first two
// outputs as boxes and scores. With shared memory enabled the input segment is
// released before Run returns, whatever the outcome.
func (p *Pipeline) Run(ctx context.Context, modelName string, input *tensor.Tensor) ([][]detection.Detection, error) {
	if _, ok := p.agent.Model(modelName); !ok {
		return nil, fmt.Errorf("%w: %q", ErrPredictionUnavailable, modelName)
	}

	var (
		outputs []*tensor.Tensor
		err     error
	)
	if p.opts.UseSharedMemory {
		outputs, err = p.predictShared(ctx, modelName, input)
	} else {
		outputs, err = p.agent.Predict(ctx, modelName, input)
	}
	if err != nil {
		return nil, err
	}

	if len(outputs) < 2 {
		return nil, fmt.Errorf("model %q returned %d outputs, expected boxes and scores", modelName, len(outputs))
	}

	batches, err := detection.PostProcessTensors(outputs[0], outputs[1], p.opts.Detection)
	if err != nil {
		return nil, fmt.Errorf("error post-processing outputs of model %q: %w", modelName, err)
	}
	if len(batches) == 0 {
		batches = [][]detection.Detection{{}}
	}
	return batches, nil
}

func (p *Pipeline) predictShared(ctx context.Context, modelName string, input *tensor.Tensor) ([]*tensor.Tensor, error) {
	payload, ok := input.Inline()
	if !ok {
		return nil, fmt.Errorf("input tensor %q must be inline to be copied into shared memory", input.Name)
	}

	key := p.opts.SegmentKey
	if err := p.locks.Lock(key); err != nil {
		return nil, fmt.Errorf("error locking shared memory key %d: %w", key, err)
	}
	defer func() {
		if err := p.locks.Unlock(key); err != nil {
			slog.Error("error unlocking shared memory key", "key", key, "error", err)
		}
	}()

	seg, err := shm.Acquire(key, len(payload))
	if err != nil {
		return nil, err
	}
	p.metrics.SegmentAcquired()
	defer func() {
		shm.Release(seg)
		p.metrics.SegmentReleased()
	}()

	if err := shm.Write(seg, payload); err != nil {
		return nil, err
	}

	ref, err := tensor.NewSharedTensor(input.Metadata, uint64(seg.ID()), 0)
	if err != nil {
		return nil, err
	}

	// The agent has finished reading the segment once Predict returns.
	return p.agent.Predict(ctx, modelName, ref)
}

func (p *Pipeline) captureAsync(modelName string, input *tensor.Tensor, detections []detection.Detection) {
	output, err := detectionsTensor(detections)
	if err != nil {
		slog.Error("error encoding detections for capture", "model", modelName, "error", err)
		p.metrics.CaptureFailed()
		return
	}

	p.capture.Add(1)
	go func() {
		defer p.capture.Done()

		ctx, cancel := context.WithTimeout(context.Background(), p.opts.CaptureTimeout)
		defer cancel()

		if err := p.agent.CaptureData(ctx, modelName, []*tensor.Tensor{input}, []*tensor.Tensor{output}); err != nil {
			p.metrics.CaptureFailed()
		}
	}()
}

// detectionsTensor packs detections as rows of x1,y1,x2,y2,confidence,class.
func detectionsTensor(detections []detection.Detection) (*tensor.Tensor, error) {
	values := make([]float32, 0, 6*len(detections))
	for _, d := range detections {
		values = append(values, d.Box[0], d.Box[1], d.Box[2], d.Box[3], d.Confidence, float32(d.ClassID))
	}
	return tensor.Encode("detections", values, len(detections), 6)
}

// Wait blocks until in-flight capture calls finish.
func (p *Pipeline) Wait() {
	p.capture.Wait()
}
