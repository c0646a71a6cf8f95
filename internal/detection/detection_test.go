package detection_test

import (
	"math/rand"
	"testing"

	"edge-driver/internal/detection"
	"edge-driver/internal/tensor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIoU(t *testing.T) {
	tests := []struct {
		name string
		a, b [4]float32
		want float32
	}{
		{"identical", [4]float32{0, 0, 10, 10}, [4]float32{0, 0, 10, 10}, 1},
		{"disjoint", [4]float32{0, 0, 10, 10}, [4]float32{20, 20, 30, 30}, 0},
		{"touching", [4]float32{0, 0, 10, 10}, [4]float32{10, 0, 20, 10}, 0},
		{"half overlap", [4]float32{0, 0, 10, 10}, [4]float32{5, 0, 15, 10}, 50.0 / 150.0},
		{"zero area inside", [4]float32{5, 5, 5, 5}, [4]float32{0, 0, 10, 10}, 0},
		{"two zero area", [4]float32{5, 5, 5, 5}, [4]float32{5, 5, 5, 5}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, detection.IoU(tc.a, tc.b), 1e-6)
			assert.InDelta(t, tc.want, detection.IoU(tc.b, tc.a), 1e-6)
		})
	}
}

func TestEmptyInput(t *testing.T) {
	out, err := detection.PostProcess(nil, []int{0, 4}, nil, []int{0, 3}, detection.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Empty(t, out[0])

	out, err = detection.PostProcess(nil, []int{2, 0, 4}, nil, []int{2, 0, 80}, detection.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Empty(t, out[0])
	assert.Empty(t, out[1])
}

func TestAllBelowThreshold(t *testing.T) {
	boxes := []float32{0, 0, 1, 1, 2, 2, 3, 3}
	scores := []float32{0.1, 0.39, 0.2, 0.3}

	out, err := detection.PostProcess(boxes, []int{2, 4}, scores, []int{2, 2}, detection.DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, out[0])
}

func TestThresholdIsInclusive(t *testing.T) {
	boxes := []float32{0, 0, 1, 1}
	scores := []float32{0.4}

	out, err := detection.PostProcess(boxes, []int{1, 4}, scores, []int{1, 1}, detection.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, out[0], 1)
	assert.Equal(t, float32(0.4), out[0][0].Confidence)
}

func TestPerClassSuppression(t *testing.T) {
	// Box 1 overlaps box 0 almost entirely; box 2 is far away.
	boxes := []float32{
		0, 0, 10, 10,
		0, 0, 10, 9,
		50, 50, 60, 60,
	}
	scores := []float32{
		0.9, 0.0,
		0.8, 0.7,
		0.0, 0.5,
	}

	out, err := detection.PostProcess(boxes, []int{3, 4}, scores, []int{3, 2}, detection.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, out[0], 3)

	// Class 0: box 1 suppressed by box 0.
	assert.Equal(t, 0, out[0][0].ClassID)
	assert.Equal(t, [4]float32{0, 0, 10, 10}, out[0][0].Box)

	// Class 1: overlapping box 1 survives because suppression is per class.
	assert.Equal(t, 1, out[0][1].ClassID)
	assert.Equal(t, float32(0.7), out[0][1].Confidence)
	assert.Equal(t, 1, out[0][2].ClassID)
	assert.Equal(t, float32(0.5), out[0][2].Confidence)
}

func TestBestClassOnly(t *testing.T) {
	boxes := []float32{0, 0, 10, 10}
	scores := []float32{0.5, 0.9, 0.6}

	opts := detection.DefaultOptions()
	out, err := detection.PostProcess(boxes, []int{1, 4}, scores, []int{1, 3}, opts)
	require.NoError(t, err)
	assert.Len(t, out[0], 3)

	opts.BestClassOnly = true
	out, err = detection.PostProcess(boxes, []int{1, 4}, scores, []int{1, 3}, opts)
	require.NoError(t, err)
	require.Len(t, out[0], 1)
	assert.Equal(t, 1, out[0][0].ClassID)
	assert.Equal(t, float32(0.9), out[0][0].Confidence)
}

func TestTiesKeepOriginalOrder(t *testing.T) {
	boxes := []float32{
		0, 0, 10, 10,
		1, 1, 10, 10,
	}
	scores := []float32{0.7, 0.7}

	out, err := detection.PostProcess(boxes, []int{2, 4}, scores, []int{2, 1}, detection.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, out[0], 1)
	assert.Equal(t, [4]float32{0, 0, 10, 10}, out[0][0].Box)
}

func TestZeroAreaBoxesAreKept(t *testing.T) {
	boxes := []float32{
		5, 5, 5, 5,
		0, 0, 10, 10,
	}
	scores := []float32{0.9, 0.8}

	out, err := detection.PostProcess(boxes, []int{2, 4}, scores, []int{2, 1}, detection.DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, out[0], 2)
}

func TestBatchedLayouts(t *testing.T) {
	boxes := []float32{
		0, 0, 1, 1,
		0, 0, 1, 1,
	}
	scores := []float32{0.9, 0.3}

	for _, shape := range [][]int{{2, 1, 4}, {2, 1, 1, 4}} {
		out, err := detection.PostProcess(boxes, shape, scores, []int{2, 1, 1}, detection.DefaultOptions())
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Len(t, out[0], 1)
		assert.Empty(t, out[1])
	}
}

func TestShapeErrors(t *testing.T) {
	opts := detection.DefaultOptions()

	_, err := detection.PostProcess(make([]float32, 12), []int{3, 4}, make([]float32, 2), []int{2, 1}, opts)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = detection.PostProcess(make([]float32, 12), []int{3, 3}, make([]float32, 3), []int{3, 1}, opts)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = detection.PostProcess(make([]float32, 8), []int{3, 4}, make([]float32, 3), []int{3, 1}, opts)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = detection.PostProcess(make([]float32, 12), []int{3, 4}, make([]float32, 3), []int{3}, opts)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestNMSInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	opts := detection.Options{ConfidenceThreshold: 0.3, IoUThreshold: 0.5}

	const n, classes = 60, 3
	boxes := make([]float32, 0, n*4)
	for range n {
		x, y := rng.Float32()*80, rng.Float32()*80
		boxes = append(boxes, x, y, x+5+rng.Float32()*20, y+5+rng.Float32()*20)
	}
	scores := make([]float32, n*classes)
	for i := range scores {
		scores[i] = rng.Float32()
	}

	out, err := detection.PostProcess(boxes, []int{n, 4}, scores, []int{n, classes}, opts)
	require.NoError(t, err)
	kept := out[0]

	for i := range kept {
		for j := i + 1; j < len(kept); j++ {
			if kept[i].ClassID == kept[j].ClassID {
				assert.LessOrEqual(t, detection.IoU(kept[i].Box, kept[j].Box), opts.IoUThreshold)
			}
		}
	}

	isKept := func(box [4]float32, class int) bool {
		for _, d := range kept {
			if d.ClassID == class && d.Box == box {
				return true
			}
		}
		return false
	}

	for i := range n {
		box := [4]float32{boxes[4*i], boxes[4*i+1], boxes[4*i+2], boxes[4*i+3]}
		for c := range classes {
			score := scores[i*classes+c]
			if score < opts.ConfidenceThreshold || isKept(box, c) {
				continue
			}
			suppressed := false
			for _, d := range kept {
				if d.ClassID == c && d.Confidence >= score && detection.IoU(d.Box, box) > opts.IoUThreshold {
					suppressed = true
				}
			}
			assert.True(t, suppressed, "box %d class %d was dropped without a suppressor", i, c)
		}
	}

	for i := 1; i < len(kept); i++ {
		if kept[i].ClassID == kept[i-1].ClassID {
			assert.GreaterOrEqual(t, kept[i-1].Confidence, kept[i].Confidence)
		} else {
			assert.Less(t, kept[i-1].ClassID, kept[i].ClassID)
		}
	}
}

func TestYoloOutputTensors(t *testing.T) {
	// Ten boxes, three above 0.6; boxes 0 and 1 overlap with IoU 0.8.
	boxValues := make([]float32, 10*4)
	scoreValues := make([]float32, 10)
	copy(boxValues[0:4], []float32{0.1, 0.1, 0.5, 0.5})
	copy(boxValues[4:8], []float32{0.1, 0.1, 0.5, 0.42})
	copy(boxValues[8:12], []float32{0.6, 0.6, 0.9, 0.9})
	scoreValues[0] = 0.95
	scoreValues[1] = 0.85
	scoreValues[2] = 0.7
	scoreValues[3] = 0.2

	boxes, err := tensor.Encode("boxes", boxValues, 1, 10, 4)
	require.NoError(t, err)
	scores, err := tensor.Encode("confs", scoreValues, 1, 10, 1)
	require.NoError(t, err)

	require.InDelta(t, 0.8, detection.IoU(
		[4]float32{0.1, 0.1, 0.5, 0.5}, [4]float32{0.1, 0.1, 0.5, 0.42}), 1e-5)

	out, err := detection.PostProcessTensors(boxes, scores, detection.Options{ConfidenceThreshold: 0.6, IoUThreshold: 0.6})
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Len(t, out[0], 2)
	assert.Equal(t, float32(0.95), out[0][0].Confidence)
	assert.Equal(t, float32(0.7), out[0][1].Confidence)

	scaled := detection.ScaleBoxes(out[0], 608, 608)
	assert.InDelta(t, 0.1*608, scaled[0].Box[0], 1e-3)
	assert.InDelta(t, 0.9*608, scaled[1].Box[3], 1e-3)
	assert.InDelta(t, 0.4*608, scaled[0].Width(), 1e-3)
}
