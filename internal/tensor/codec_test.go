package tensor_test

import (
	"edge-driver/internal/tensor"
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	shapes := [][]int{{1}, {4}, {2, 3}, {1, 3, 4, 5}}

	for _, shape := range shapes {
		n := tensor.NumElements(shape)
		data := make([]float32, n)
		for i := range data {
			data[i] = float32(i)*0.5 - 3.25
		}

		encoded, err := tensor.Encode("input", data, shape...)
		require.NoError(t, err)

		payload, ok := encoded.Inline()
		require.True(t, ok)
		assert.Len(t, payload, n*4)
		assert.Equal(t, dtypes.Float32, encoded.ElementType)

		decoded, err := tensor.Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, data, decoded)
		assert.Equal(t, shape, encoded.Shape)
	}
}

func TestEncodeCopiesShape(t *testing.T) {
	shape := []int{2, 2}
	encoded, err := tensor.Encode("x", []float32{1, 2, 3, 4}, shape...)
	require.NoError(t, err)

	shape[0] = 7
	assert.Equal(t, []int{2, 2}, encoded.Shape)
}

func TestEncodeRejectsNonFloat32(t *testing.T) {
	_, err := tensor.Encode("x", []float64{1, 2}, 2)
	assert.ErrorIs(t, err, tensor.ErrUnsupportedType)

	_, err = tensor.Encode("x", []int32{1, 2}, 2)
	assert.ErrorIs(t, err, tensor.ErrUnsupportedType)

	_, err = tensor.Encode("x", []uint8{1, 2}, 2)
	assert.ErrorIs(t, err, tensor.ErrUnsupportedType)
}

func TestEncodeRejectsWrongElementCount(t *testing.T) {
	_, err := tensor.Encode("x", []float32{1, 2, 3}, 2, 2)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestDecodeShapeMismatch(t *testing.T) {
	meta := tensor.Metadata{Name: "boxes", ElementType: dtypes.Float32, Shape: []int{1, 10, 4}}

	for _, size := range []int{0, 4, 159, 161, 320} {
		_, err := tensor.DecodeBytes(meta, make([]byte, size))
		assert.ErrorIs(t, err, tensor.ErrShapeMismatch, "payload of %d bytes", size)
	}

	values, err := tensor.DecodeBytes(meta, make([]byte, 160))
	require.NoError(t, err)
	assert.Len(t, values, 40)
}

func TestDecodeRejectsNonFloat32Metadata(t *testing.T) {
	meta := tensor.Metadata{Name: "ids", ElementType: dtypes.Int32, Shape: []int{2}}
	_, err := tensor.DecodeBytes(meta, make([]byte, 8))
	assert.ErrorIs(t, err, tensor.ErrUnsupportedType)
}

func TestDecodeSharedPayload(t *testing.T) {
	meta := tensor.Metadata{Name: "input", ElementType: dtypes.Float32, Shape: []int{1, 3, 8, 8}}
	shared, err := tensor.NewSharedTensor(meta, 42, 0)
	require.NoError(t, err)

	ref, ok := shared.Payload.(tensor.SharedMemoryRef)
	require.True(t, ok)
	assert.Equal(t, uint64(42), ref.SegmentID)
	assert.Equal(t, uint64(3*8*8*4), ref.Size)

	_, err = tensor.Decode(shared)
	assert.ErrorIs(t, err, tensor.ErrNotInline)
}

func TestEmptyDimension(t *testing.T) {
	empty, err := tensor.Encode("boxes", []float32{}, 1, 0, 4)
	require.NoError(t, err)

	values, err := tensor.Decode(empty)
	require.NoError(t, err)
	assert.Empty(t, values)

	_, err = tensor.ByteLength(tensor.Metadata{ElementType: dtypes.Float32, Shape: []int{2, -1}})
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}
