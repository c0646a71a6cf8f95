package tensor

import (
	"errors"
	"fmt"

	"github.com/gomlx/gopjrt/dtypes"
)

var (
	ErrUnsupportedType = errors.New("unsupported tensor element type")
	ErrShapeMismatch   = errors.New("tensor shape does not match payload")
	ErrNotInline       = errors.New("tensor payload is not inline")
)

// Metadata describes a tensor payload. Shape and ElementType together fix the
// byte length of the payload.
type Metadata struct {
	Name        string
	ElementType dtypes.DType
	Shape       []int
}

func (m Metadata) String() string {
	return fmt.Sprintf("%s(%s%v)", m.Name, m.ElementType, m.Shape)
}

// Payload is where a tensor's bytes live. It is implemented only by
// InlineBytes and SharedMemoryRef, so a tensor always has exactly one location.
type Payload interface {
	isPayload()
}

// InlineBytes carries the payload in the control-channel message itself.
type InlineBytes []byte

func (InlineBytes) isPayload() {}

// SharedMemoryRef points at a payload already written to a shared segment.
type SharedMemoryRef struct {
	SegmentID uint64
	Offset    uint64
	Size      uint64
}

func (SharedMemoryRef) isPayload() {}

type Tensor struct {
	Metadata
	Payload Payload
}

// NewSharedTensor builds a tensor whose payload is a reference into the
// segment identified by segmentID.
func NewSharedTensor(meta Metadata, segmentID uint64, offset uint64) (*Tensor, error) {
	size, err := ByteLength(meta)
	if err != nil {
		return nil, err
	}
	return &Tensor{
		Metadata: meta,
		Payload:  SharedMemoryRef{SegmentID: segmentID, Offset: offset, Size: uint64(size)},
	}, nil
}

// Inline returns the inline bytes of t, or false if the payload lives in shared
// memory.
func (t *Tensor) Inline() ([]byte, bool) {
	b, ok := t.Payload.(InlineBytes)
	return b, ok
}

func NumElements(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}

// ByteLength returns product(shape) x element size.
func ByteLength(meta Metadata) (int, error) {
	for _, d := range meta.Shape {
		if d < 0 {
			return 0, fmt.Errorf("%w: negative dimension in shape %v", ErrShapeMismatch, meta.Shape)
		}
	}
	size := int(meta.ElementType.Memory())
	if size == 0 {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedType, meta.ElementType)
	}
	return NumElements(meta.Shape) * size, nil
}
