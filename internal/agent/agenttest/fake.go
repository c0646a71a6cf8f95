// Package agenttest runs an in-process edge agent over bufconn for tests.
package agenttest

import (
	"context"
	"net"
	"sync"
	"testing"

	"edge-driver/internal/agent/agentpb"
	"edge-driver/internal/shm"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// PredictFunc computes the agent's response for a request whose input
// tensors have already been resolved to bytes.
type PredictFunc func(model *agentpb.Model, inputs [][]byte) ([]*agentpb.Tensor, error)

// Input is the payload a predict call delivered, read back from shared
// memory when the request carried a handle.
type Input struct {
	Model    string
	Metadata *agentpb.TensorMetadata
	Data     []byte
	Handle   *agentpb.SharedMemoryHandle
}

type FakeAgent struct {
	agentpb.UnimplementedAgentServer

	mu sync.Mutex

	// Artifacts maps load paths to the model the agent would load from them.
	Artifacts map[string]*agentpb.Model
	loaded    map[string]*agentpb.Model

	Predictor   PredictFunc
	FailCapture bool
	FailList    bool

	Inputs   []Input
	Captures []*agentpb.CaptureDataRequest

	LoadCalls    int
	UnloadCalls  int
	ListCalls    int
	PredictCalls int
}

func New() *FakeAgent {
	return &FakeAgent{
		Artifacts: map[string]*agentpb.Model{},
		loaded:    map[string]*agentpb.Model{},
	}
}

// AddArtifact registers a model that can be loaded from path.
func (f *FakeAgent) AddArtifact(path string, model *agentpb.Model) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Artifacts[path] = model
}

// Preload marks a model as loaded before any client connects.
func (f *FakeAgent) Preload(model *agentpb.Model) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loaded[model.Name] = model
}

func (f *FakeAgent) RecordedInputs() []Input {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Input(nil), f.Inputs...)
}

func (f *FakeAgent) RecordedCaptures() []*agentpb.CaptureDataRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*agentpb.CaptureDataRequest(nil), f.Captures...)
}

func (f *FakeAgent) ListModels(ctx context.Context, _ *agentpb.ListModelsRequest) (*agentpb.ListModelsResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ListCalls++

	if f.FailList {
		return nil, status.Error(codes.Unavailable, "agent is unavailable")
	}

	resp := &agentpb.ListModelsResponse{}
	for _, m := range f.loaded {
		resp.Models = append(resp.Models, m)
	}
	return resp, nil
}

func (f *FakeAgent) LoadModel(ctx context.Context, req *agentpb.LoadModelRequest) (*agentpb.LoadModelResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LoadCalls++

	artifact, ok := f.Artifacts[req.Url]
	if !ok {
		return nil, status.Errorf(codes.NotFound, "no model artifact at %s", req.Url)
	}
	if _, ok := f.loaded[req.Name]; ok {
		return nil, status.Errorf(codes.AlreadyExists, "model %s is already loaded", req.Name)
	}

	model := &agentpb.Model{
		Url:                   req.Url,
		Name:                  req.Name,
		InputTensorMetadatas:  artifact.InputTensorMetadatas,
		OutputTensorMetadatas: artifact.OutputTensorMetadatas,
	}
	f.loaded[req.Name] = model
	return &agentpb.LoadModelResponse{Model: model}, nil
}

func (f *FakeAgent) UnLoadModel(ctx context.Context, req *agentpb.UnLoadModelRequest) (*agentpb.UnLoadModelResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UnloadCalls++

	if _, ok := f.loaded[req.Name]; !ok {
		return nil, status.Errorf(codes.NotFound, "model %s is not loaded", req.Name)
	}
	delete(f.loaded, req.Name)
	return &agentpb.UnLoadModelResponse{}, nil
}

func (f *FakeAgent) Predict(ctx context.Context, req *agentpb.PredictRequest) (*agentpb.PredictResponse, error) {
	f.mu.Lock()
	f.PredictCalls++
	model, ok := f.loaded[req.Name]
	predictor := f.Predictor
	f.mu.Unlock()

	if !ok {
		return nil, status.Errorf(codes.NotFound, "model %s is not loaded", req.Name)
	}

	inputs := make([][]byte, 0, len(req.Tensors))
	for _, t := range req.Tensors {
		in := Input{Model: req.Name, Metadata: t.TensorMetadata, Handle: t.GetSharedMemoryHandle()}
		if in.Handle != nil {
			data, err := shm.Read(int(in.Handle.SegmentId), int(in.Handle.Offset), int(in.Handle.Size))
			if err != nil {
				return nil, status.Errorf(codes.InvalidArgument, "reading shared memory segment %d: %v", in.Handle.SegmentId, err)
			}
			in.Data = data
		} else {
			in.Data = t.GetByteData()
		}
		inputs = append(inputs, in.Data)

		f.mu.Lock()
		f.Inputs = append(f.Inputs, in)
		f.mu.Unlock()
	}

	if predictor == nil {
		return &agentpb.PredictResponse{}, nil
	}
	outputs, err := predictor(model, inputs)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &agentpb.PredictResponse{Tensors: outputs}, nil
}

func (f *FakeAgent) CaptureData(ctx context.Context, req *agentpb.CaptureDataRequest) (*agentpb.CaptureDataResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.FailCapture {
		return nil, status.Error(codes.ResourceExhausted, "capture buffer is full")
	}
	f.Captures = append(f.Captures, req)
	return &agentpb.CaptureDataResponse{}, nil
}

// Start serves f on an in-memory listener and returns a client connection to
// it. Both are closed when the test ends.
func Start(t testing.TB, f *FakeAgent) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer(
		grpc.MaxRecvMsgSize(80_000_000),
		grpc.MaxSendMsgSize(80_000_000),
	)
	agentpb.RegisterAgentServer(server, f)

	go func() {
		_ = server.Serve(lis)
	}()

	conn, err := grpc.NewClient(
		"passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallSendMsgSize(80_000_000),
			grpc.MaxCallRecvMsgSize(80_000_000),
		),
	)
	if err != nil {
		t.Fatalf("error connecting to fake agent: %v", err)
	}

	t.Cleanup(func() {
		conn.Close()
		server.Stop()
	})

	return conn
}

// Float32Metadata builds tensor metadata for a float32 tensor.
func Float32Metadata(name string, shape ...int32) *agentpb.TensorMetadata {
	return &agentpb.TensorMetadata{Name: name, DataType: agentpb.DataType_FLOAT32, Shape: shape}
}
