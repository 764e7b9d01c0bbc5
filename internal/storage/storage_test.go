package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBackend(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.Set(ctx, "k", []byte(`{"a":1}`)))
	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), got)

	require.NoError(t, m.Delete(ctx, "k"))
	_, err = m.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryBackendCopiesValues(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	buf := []byte("hello")
	require.NoError(t, m.Set(ctx, "k", buf))
	buf[0] = 'X'

	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)
}

func TestFileBackend(t *testing.T) {
	ctx := context.Background()
	f, err := NewFile(t.TempDir())
	require.NoError(t, err)

	_, err = f.Get(ctx, "cart-storage")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, f.Set(ctx, "cart-storage", []byte(`[]`)))
	got, err := f.Get(ctx, "cart-storage")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)

	require.NoError(t, f.Delete(ctx, "cart-storage"))
	require.NoError(t, f.Delete(ctx, "cart-storage")) // idempotent
	_, err = f.Get(ctx, "cart-storage")
	assert.ErrorIs(t, err, ErrNotFound)
}
