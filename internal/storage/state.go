package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// State owns a single value of type T and keeps it in sync with a Backend:
// the previously saved value is read once at Load, and every Update writes
// the new value back before it becomes visible. All access is mutex-guarded,
// so a store built on State stays atomic under concurrent handlers.
type State[T any] struct {
	mu      sync.RWMutex
	backend Backend
	key     string
	value   T
}

// NewState creates a container holding initial. Call Load before serving
// requests to pick up previously persisted state.
func NewState[T any](backend Backend, key string, initial T) *State[T] {
	return &State[T]{backend: backend, key: key, value: initial}
}

// Load replaces the current value with the persisted one. A key that has
// never been written is not an error; the initial value stays.
func (s *State[T]) Load(ctx context.Context) error {
	data, err := s.backend.Get(ctx, s.key)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", s.key, err)
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("decode %s: %w", s.key, err)
	}
	s.mu.Lock()
	s.value = v
	s.mu.Unlock()
	return nil
}

// Update applies fn to the current value and persists the result. fn must
// return the complete new value. If the backend write fails the in-memory
// value is left unchanged.
func (s *State[T]) Update(ctx context.Context, fn func(T) T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := fn(s.value)
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.key, err)
	}
	if err := s.backend.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("save %s: %w", s.key, err)
	}
	s.value = next
	return nil
}

// View runs fn with read access to the current value. fn must not retain or
// mutate anything reachable from its argument.
func (s *State[T]) View(fn func(T)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.value)
}
