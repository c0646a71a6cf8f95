package tensor

import (
	"encoding/binary"
	"fmt"
	"math"
	"slices"

	"github.com/gomlx/gopjrt/dtypes"
)

// Encode copies data verbatim (host byte order) into an inline tensor. Only
// float32 data is accepted.
func Encode[T dtypes.Supported](name string, data []T, shape ...int) (*Tensor, error) {
	dtype := dtypes.FromGenericsType[T]()
	if dtype != dtypes.Float32 {
		return nil, fmt.Errorf("%w: tensor %q has element type %s, only %s is supported", ErrUnsupportedType, name, dtype, dtypes.Float32)
	}

	meta := Metadata{Name: name, ElementType: dtype, Shape: slices.Clone(shape)}
	if n := NumElements(meta.Shape); n != len(data) {
		return nil, fmt.Errorf("%w: shape %v holds %d elements, got %d", ErrShapeMismatch, meta.Shape, n, len(data))
	}

	// T is float32 here.
	values := any(data).([]float32)
	buf := make([]byte, len(values)*4)
	for i, v := range values {
		binary.NativeEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}

	return &Tensor{Metadata: meta, Payload: InlineBytes(buf)}, nil
}

// Decode returns the float32 values held inline by t.
func Decode(t *Tensor) ([]float32, error) {
	data, ok := t.Inline()
	if !ok {
		return nil, fmt.Errorf("%w: tensor %q is held in shared memory", ErrNotInline, t.Name)
	}
	return DecodeBytes(t.Metadata, data)
}

func DecodeBytes(meta Metadata, data []byte) ([]float32, error) {
	if meta.ElementType != dtypes.Float32 {
		return nil, fmt.Errorf("%w: tensor %q has element type %s", ErrUnsupportedType, meta.Name, meta.ElementType)
	}

	expected, err := ByteLength(meta)
	if err != nil {
		return nil, err
	}
	if expected != len(data) {
		return nil, fmt.Errorf("%w: tensor %q with shape %v needs %d bytes, payload has %d", ErrShapeMismatch, meta.Name, meta.Shape, expected, len(data))
	}

	values := make([]float32, len(data)/4)
	for i := range values {
		values[i] = math.Float32frombits(binary.NativeEndian.Uint32(data[i*4:]))
	}
	return values, nil
}
