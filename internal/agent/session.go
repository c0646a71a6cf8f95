package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"edge-driver/internal/agent/agentpb"
	"edge-driver/internal/tensor"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// DefaultMaxMessageBytes bounds control-channel messages so uncompressed image
// tensors can be sent inline.
const DefaultMaxMessageBytes = 80_000_000

var (
	ErrLoad          = errors.New("agent failed to load model")
	ErrUnload        = errors.New("agent failed to unload model")
	ErrModelNotFound = errors.New("model is not loaded")
)

// Session is a long-lived connection to the edge agent. Predict and capture
// calls may run concurrently; load and unload are serialized.
type Session struct {
	conn     *grpc.ClientConn
	client   agentpb.AgentClient
	registry *Registry
	mutate   sync.Mutex
}

// Dial connects to the agent listening on the Unix socket at socketPath and
// fetches the list of loaded models.
func Dial(ctx context.Context, socketPath string, maxMessageBytes int, opts ...grpc.DialOption) (*Session, error) {
	if maxMessageBytes <= 0 {
		maxMessageBytes = DefaultMaxMessageBytes
	}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallSendMsgSize(maxMessageBytes),
			grpc.MaxCallRecvMsgSize(maxMessageBytes),
		),
	}, opts...)

	conn, err := grpc.NewClient("unix://"+socketPath, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("error creating agent client for %s: %w", socketPath, err)
	}

	session, err := NewSession(ctx, conn)
	if err != nil {
		conn.Close()
		return nil, err
	}
	session.conn = conn

	slog.Info("connected to edge agent", "socket", socketPath, "loaded_models", session.registry.Names())
	return session, nil
}

// NewSession wraps an existing connection. The caller keeps ownership of cc.
func NewSession(ctx context.Context, cc grpc.ClientConnInterface) (*Session, error) {
	s := &Session{client: agentpb.NewAgentClient(cc)}
	s.registry = NewRegistry(s.fetchModels)

	if _, err := s.registry.Refresh(ctx); err != nil {
		return nil, fmt.Errorf("error listing agent models: %w", err)
	}
	return s, nil
}

func (s *Session) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *Session) Registry() *Registry {
	return s.registry
}

func (s *Session) fetchModels(ctx context.Context) ([]ModelDescriptor, error) {
	resp, err := s.client.ListModels(ctx, &agentpb.ListModelsRequest{})
	if err != nil {
		return nil, err
	}

	models := make([]ModelDescriptor, 0, len(resp.Models))
	for _, m := range resp.Models {
		models = append(models, modelFromProto(m))
	}
	return models, nil
}

// ListModels queries the agent and rebuilds the registry.
func (s *Session) ListModels(ctx context.Context) (map[string]ModelDescriptor, error) {
	models, err := s.registry.Refresh(ctx)
	if err != nil {
		slog.Error("error listing agent models", "error", err)
		return nil, fmt.Errorf("error listing agent models: %w", err)
	}
	return models, nil
}

func (s *Session) IsModelLoaded(name string) bool {
	return s.registry.Contains(name)
}

func (s *Session) Model(name string) (ModelDescriptor, bool) {
	return s.registry.Get(name)
}

// LoadModel loads the model artifact at path under name. Loading a model that
// is already loaded returns the current registry without calling the agent.
func (s *Session) LoadModel(ctx context.Context, name, path string) (map[string]ModelDescriptor, error) {
	s.mutate.Lock()
	defer s.mutate.Unlock()

	if s.IsModelLoaded(name) {
		slog.Info("model was already loaded", "model", name)
		return s.registry.Snapshot(), nil
	}

	if _, err := s.client.LoadModel(ctx, &agentpb.LoadModelRequest{Url: path, Name: name}); err != nil {
		slog.Error("agent rejected model load", "model", name, "path", path, "error", err)
		return nil, fmt.Errorf("%w: %q from %s: %w", ErrLoad, name, path, err)
	}

	models, err := s.registry.Refresh(ctx)
	if err != nil {
		slog.Error("error refreshing models after load", "model", name, "error", err)
		return nil, fmt.Errorf("%w: refreshing models after loading %q: %w", ErrLoad, name, err)
	}

	slog.Info("model loaded", "model", name, "path", path)
	return models, nil
}

// UnloadModel unloads name. Unloading a model that is not loaded returns the
// current registry without calling the agent.
func (s *Session) UnloadModel(ctx context.Context, name string) (map[string]ModelDescriptor, error) {
	s.mutate.Lock()
	defer s.mutate.Unlock()

	if !s.IsModelLoaded(name) {
		slog.Info("model was not loaded", "model", name)
		return s.registry.Snapshot(), nil
	}

	if _, err := s.client.UnLoadModel(ctx, &agentpb.UnLoadModelRequest{Name: name}); err != nil {
		slog.Error("agent rejected model unload", "model", name, "error", err)
		return nil, fmt.Errorf("%w: %q: %w", ErrUnload, name, err)
	}

	models, err := s.registry.Refresh(ctx)
	if err != nil {
		slog.Error("error refreshing models after unload", "model", name, "error", err)
		return nil, fmt.Errorf("%w: refreshing models after unloading %q: %w", ErrUnload, name, err)
	}

	slog.Info("model unloaded", "model", name)
	return models, nil
}

// Predict runs the model on a single input tensor and returns the output
// tensors in the order the agent produced them. The input is sent with the
// model's first declared input signature. A model missing from the registry
// yields ErrModelNotFound without contacting the agent.
func (s *Session) Predict(ctx context.Context, name string, input *tensor.Tensor) ([]*tensor.Tensor, error) {
	model, ok := s.registry.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrModelNotFound, name)
	}

	in := *input
	if len(model.Inputs) > 0 {
		in.Metadata = model.Inputs[0]
		if err := checkPayloadLength(&in); err != nil {
			return nil, err
		}
	}

	pbInput, err := tensorToProto(&in)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Predict(ctx, &agentpb.PredictRequest{Name: name, Tensors: []*agentpb.Tensor{pbInput}})
	if err != nil {
		slog.Error("agent predict call failed", "model", name, "error", err)
		return nil, fmt.Errorf("predict on model %q: %w", name, err)
	}

	outputs := make([]*tensor.Tensor, 0, len(resp.Tensors))
	for _, t := range resp.Tensors {
		outputs = append(outputs, tensorFromProto(t))
	}
	return outputs, nil
}

func checkPayloadLength(t *tensor.Tensor) error {
	expected, err := tensor.ByteLength(t.Metadata)
	if err != nil {
		return err
	}

	var actual int
	switch p := t.Payload.(type) {
	case tensor.InlineBytes:
		actual = len(p)
	case tensor.SharedMemoryRef:
		actual = int(p.Size)
	}
	if actual != expected {
		return fmt.Errorf("%w: model input %s needs %d bytes, payload has %d", tensor.ErrShapeMismatch, t.Metadata, expected, actual)
	}
	return nil
}

// CaptureData sends the tensors of one inference to the agent's capture
// pipeline under a fresh capture id.
func (s *Session) CaptureData(ctx context.Context, name string, inputs, outputs []*tensor.Tensor) error {
	captureId := uuid.New().String()

	req := &agentpb.CaptureDataRequest{
		ModelName:          name,
		CaptureId:          captureId,
		InferenceTimestamp: timestamppb.Now(),
	}

	for _, t := range inputs {
		pb, err := tensorToProto(t)
		if err != nil {
			slog.Error("error encoding capture input", "model", name, "capture_id", captureId, "error", err)
			return fmt.Errorf("error encoding capture input %s: %w", t.Metadata.Name, err)
		}
		req.InputTensors = append(req.InputTensors, pb)
	}
	for _, t := range outputs {
		pb, err := tensorToProto(t)
		if err != nil {
			slog.Error("error encoding capture output", "model", name, "capture_id", captureId, "error", err)
			return fmt.Errorf("error encoding capture output %s: %w", t.Metadata.Name, err)
		}
		req.OutputTensors = append(req.OutputTensors, pb)
	}

	if _, err := s.client.CaptureData(ctx, req); err != nil {
		slog.Error("error capturing inference data", "model", name, "capture_id", captureId, "error", err)
		return fmt.Errorf("error capturing data for model %s: %w", name, err)
	}
	slog.Debug("captured inference data", "model", name, "capture_id", captureId)
	return nil
}
