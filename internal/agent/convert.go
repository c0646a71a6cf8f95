package agent

import (
	"fmt"

	"edge-driver/internal/agent/agentpb"
	"edge-driver/internal/tensor"

	"github.com/gomlx/gopjrt/dtypes"
)

var protoToDType = map[agentpb.DataType]dtypes.DType{
	agentpb.DataType_UINT8:   dtypes.Uint8,
	agentpb.DataType_INT16:   dtypes.Int16,
	agentpb.DataType_INT32:   dtypes.Int32,
	agentpb.DataType_INT64:   dtypes.Int64,
	agentpb.DataType_FLOAT16: dtypes.Float16,
	agentpb.DataType_FLOAT32: dtypes.Float32,
	agentpb.DataType_FLOAT64: dtypes.Float64,
}

func dtypeFromProto(d agentpb.DataType) dtypes.DType {
	if dtype, ok := protoToDType[d]; ok {
		return dtype
	}
	return dtypes.InvalidDType
}

func dtypeToProto(d dtypes.DType) (agentpb.DataType, error) {
	for p, dtype := range protoToDType {
		if dtype == d {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %s has no agent data type", tensor.ErrUnsupportedType, d)
}

func metadataFromProto(m *agentpb.TensorMetadata) tensor.Metadata {
	if m == nil {
		return tensor.Metadata{ElementType: dtypes.InvalidDType}
	}
	shape := make([]int, len(m.Shape))
	for i, d := range m.Shape {
		shape[i] = int(d)
	}
	return tensor.Metadata{Name: m.Name, ElementType: dtypeFromProto(m.DataType), Shape: shape}
}

func metadataToProto(m tensor.Metadata) (*agentpb.TensorMetadata, error) {
	dataType, err := dtypeToProto(m.ElementType)
	if err != nil {
		return nil, err
	}
	shape := make([]int32, len(m.Shape))
	for i, d := range m.Shape {
		shape[i] = int32(d)
	}
	return &agentpb.TensorMetadata{Name: m.Name, DataType: dataType, Shape: shape}, nil
}

func modelFromProto(m *agentpb.Model) ModelDescriptor {
	desc := ModelDescriptor{Name: m.Name, URL: m.Url}
	for _, in := range m.InputTensorMetadatas {
		desc.Inputs = append(desc.Inputs, metadataFromProto(in))
	}
	for _, out := range m.OutputTensorMetadatas {
		desc.Outputs = append(desc.Outputs, metadataFromProto(out))
	}
	return desc
}

func tensorToProto(t *tensor.Tensor) (*agentpb.Tensor, error) {
	meta, err := metadataToProto(t.Metadata)
	if err != nil {
		return nil, err
	}

	out := &agentpb.Tensor{TensorMetadata: meta}
	switch p := t.Payload.(type) {
	case tensor.InlineBytes:
		out.Data = &agentpb.Tensor_ByteData{ByteData: p}
	case tensor.SharedMemoryRef:
		out.Data = &agentpb.Tensor_SharedMemoryHandle{
			SharedMemoryHandle: &agentpb.SharedMemoryHandle{Size: p.Size, Offset: p.Offset, SegmentId: p.SegmentID},
		}
	default:
		return nil, fmt.Errorf("tensor %q has no payload", t.Name)
	}
	return out, nil
}

func tensorFromProto(t *agentpb.Tensor) *tensor.Tensor {
	out := &tensor.Tensor{Metadata: metadataFromProto(t.TensorMetadata)}
	if h := t.GetSharedMemoryHandle(); h != nil {
		out.Payload = tensor.SharedMemoryRef{SegmentID: h.SegmentId, Offset: h.Offset, Size: h.Size}
	} else {
		out.Payload = tensor.InlineBytes(t.GetByteData())
	}
	return out
}
