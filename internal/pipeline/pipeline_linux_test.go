//go:build linux

package pipeline_test

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"edge-driver/internal/agent/agentpb"
	"edge-driver/internal/agent/agenttest"
	"edge-driver/internal/metrics"
	"edge-driver/internal/pipeline"
	"edge-driver/internal/shm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeKey(t *testing.T) int {
	for range 100 {
		key := 0x5f000000 + rand.Intn(1<<20)
		if !shm.Exists(key) {
			return key
		}
	}
	t.Fatal("no free shared memory key")
	return 0
}

func sharedOptions(t *testing.T) pipeline.Options {
	opts := inlineOptions()
	opts.UseSharedMemory = true
	opts.SegmentKey = freeKey(t)
	return opts
}

func TestRunSharedMemoryYieldsTwoDetections(t *testing.T) {
	fake := agenttest.New()
	fake.Preload(yoloModel())
	fake.Predictor = yoloOutputs

	opts := sharedOptions(t)
	p := pipeline.New(startAgent(t, fake), opts, nil)

	batches, err := p.Run(context.Background(), "yolov4", inputTensor(t))
	require.NoError(t, err)
	require.Len(t, batches[0], 2)

	inputs := fake.RecordedInputs()
	require.Len(t, inputs, 1)
	require.NotNil(t, inputs[0].Handle)
	assert.Equal(t, uint64(3*side*side*4), inputs[0].Handle.Size)
	assert.Len(t, inputs[0].Data, 3*side*side*4)
	assert.Equal(t, []int32{1, 3, side, side}, inputs[0].Metadata.Shape)

	assert.False(t, shm.Exists(opts.SegmentKey))
}

func TestSegmentReleasedWhenAgentFails(t *testing.T) {
	fake := agenttest.New()
	fake.Preload(yoloModel())

	var seen bool
	opts := sharedOptions(t)
	fake.Predictor = func(*agentpb.Model, [][]byte) ([]*agentpb.Tensor, error) {
		seen = shm.Exists(opts.SegmentKey)
		return nil, errors.New("inference failed")
	}

	m := metrics.New(nil)
	p := pipeline.New(startAgent(t, fake), opts, m)

	_, err := p.Run(context.Background(), "yolov4", inputTensor(t))
	assert.Error(t, err)
	assert.True(t, seen, "segment should exist while the agent reads it")
	assert.False(t, shm.Exists(opts.SegmentKey))
}

func TestSegmentNotTouchedWhenModelUnavailable(t *testing.T) {
	fake := agenttest.New()
	opts := sharedOptions(t)
	p := pipeline.New(startAgent(t, fake), opts, nil)

	_, err := p.Run(context.Background(), "yolov4", inputTensor(t))
	assert.ErrorIs(t, err, pipeline.ErrPredictionUnavailable)
	assert.False(t, shm.Exists(opts.SegmentKey))
}

func TestConcurrentSharedPredictionsAreSerialized(t *testing.T) {
	fake := agenttest.New()
	fake.Preload(yoloModel())

	var inFlight, maxInFlight atomic.Int32
	fake.Predictor = func(m *agentpb.Model, in [][]byte) ([]*agentpb.Tensor, error) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			seen := maxInFlight.Load()
			if n <= seen || maxInFlight.CompareAndSwap(seen, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		return yoloOutputs(m, in)
	}

	opts := sharedOptions(t)
	p := pipeline.New(startAgent(t, fake), opts, nil)

	input := inputTensor(t)
	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = p.Run(context.Background(), "yolov4", input)
		}()
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.Len(t, fake.RecordedInputs(), 4)
	assert.Equal(t, int32(1), maxInFlight.Load())
	assert.False(t, shm.Exists(opts.SegmentKey))
}
