package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counters struct {
	Hits int `json:"hits"`
}

func TestStateLoadMissingKeepsInitial(t *testing.T) {
	s := NewState(NewMemory(), "test-state", counters{Hits: 7})
	require.NoError(t, s.Load(context.Background()))

	var got counters
	s.View(func(v counters) { got = v })
	assert.Equal(t, 7, got.Hits)
}

func TestStateUpdatePersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	backend := NewMemory()

	first := NewState(backend, "test-state", counters{})
	require.NoError(t, first.Update(ctx, func(v counters) counters {
		v.Hits = 3
		return v
	}))

	second := NewState(backend, "test-state", counters{})
	require.NoError(t, second.Load(ctx))

	var got counters
	second.View(func(v counters) { got = v })
	assert.Equal(t, 3, got.Hits)
}

func TestStateFileRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	backend, err := NewFile(dir)
	require.NoError(t, err)

	s := NewState(backend, "test-state", []int(nil))
	require.NoError(t, s.Update(ctx, func(v []int) []int { return append(v, 1, 2, 3) }))

	reopened, err := NewFile(dir)
	require.NoError(t, err)
	restored := NewState(reopened, "test-state", []int(nil))
	require.NoError(t, restored.Load(ctx))

	var got []int
	restored.View(func(v []int) { got = append(got, v...) })
	assert.Equal(t, []int{1, 2, 3}, got)
}

type brokenBackend struct{}

func (brokenBackend) Get(context.Context, string) ([]byte, error) { return nil, ErrNotFound }
func (brokenBackend) Set(context.Context, string, []byte) error {
	return errors.New("disk full")
}
func (brokenBackend) Delete(context.Context, string) error { return nil }

func TestStateUpdateFailureLeavesValueUnchanged(t *testing.T) {
	s := NewState[counters](brokenBackend{}, "test-state", counters{Hits: 1})
	err := s.Update(context.Background(), func(v counters) counters {
		v.Hits = 99
		return v
	})
	require.Error(t, err)

	var got counters
	s.View(func(v counters) { got = v })
	assert.Equal(t, 1, got.Hits)
}
