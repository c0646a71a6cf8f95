package agent

import (
	"context"
	"maps"
	"slices"
	"sync"

	"edge-driver/internal/tensor"
)

// ModelDescriptor is a model loaded in the agent and its declared tensor
// signatures.
type ModelDescriptor struct {
	Name    string
	URL     string
	Inputs  []tensor.Metadata
	Outputs []tensor.Metadata
}

// Registry caches the agent's loaded models. It is rebuilt as a whole by
// Refresh and is read-only between refreshes.
type Registry struct {
	mu     sync.RWMutex
	models map[string]ModelDescriptor
	list   func(ctx context.Context) ([]ModelDescriptor, error)
}

func NewRegistry(list func(ctx context.Context) ([]ModelDescriptor, error)) *Registry {
	return &Registry{models: map[string]ModelDescriptor{}, list: list}
}

// Refresh replaces the cached models with the agent's current list. On error
// the previous contents are kept.
func (r *Registry) Refresh(ctx context.Context) (map[string]ModelDescriptor, error) {
	models, err := r.list(ctx)
	if err != nil {
		return nil, err
	}

	next := make(map[string]ModelDescriptor, len(models))
	for _, m := range models {
		next[m.Name] = m
	}

	r.mu.Lock()
	r.models = next
	r.mu.Unlock()

	return maps.Clone(next), nil
}

func (r *Registry) Get(name string) (ModelDescriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.models[name]
	return m, ok
}

func (r *Registry) Contains(name string) bool {
	_, ok := r.Get(name)
	return ok
}

func (r *Registry) Snapshot() map[string]ModelDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Clone(r.models)
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.models))
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.models)
}
