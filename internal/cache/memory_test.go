package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewMemoryStore()
	s.now = func() time.Time { return now }

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, s.Set(ctx, "dashboard:1", []byte("summary"), time.Minute))
	got, err := s.Get(ctx, "dashboard:1")
	require.NoError(t, err)
	assert.Equal(t, []byte("summary"), got)

	now = now.Add(time.Minute)
	_, err = s.Get(ctx, "dashboard:1")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, s.Set(ctx, "forever", []byte("x"), 0))
	require.NoError(t, s.Delete(ctx, "forever"))
	_, err = s.Get(ctx, "forever")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryStoreSweepsExpiredEntries(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewMemoryStore()
	s.now = func() time.Time { return now }

	require.NoError(t, s.Set(ctx, "dashboard:a", []byte("a"), time.Minute))
	require.NoError(t, s.Set(ctx, "dashboard:b", []byte("b"), time.Minute))
	require.NoError(t, s.Set(ctx, "forever", []byte("x"), 0))
	assert.Equal(t, 3, s.Len())

	// Expired but never read again.
	now = now.Add(2 * time.Minute)
	require.NoError(t, s.Set(ctx, "dashboard:c", []byte("c"), time.Minute))
	assert.Equal(t, 2, s.Len())

	got, err := s.Get(ctx, "forever")
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), got)

	t.Run("sweeps at most once per interval", func(t *testing.T) {
		now = now.Add(30 * time.Second)
		require.NoError(t, s.Set(ctx, "dashboard:d", []byte("d"), time.Second))
		now = now.Add(2 * time.Second)
		require.NoError(t, s.Set(ctx, "dashboard:e", []byte("e"), time.Minute))
		assert.Equal(t, 4, s.Len())
	})
}
