package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStateStoreRoundTrip(t *testing.T) {
	store := NewMemoryStateStore()
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.True(t, errors.Is(err, ErrStateNotFound))

	require.NoError(t, store.Set(ctx, "k", `["a","b"]`))
	raw, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, raw)

	// 整值覆盖
	require.NoError(t, store.Set(ctx, "k", `[]`))
	raw, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[]`, raw)
}

func TestMemoryStateStoreKeysIndependent(t *testing.T) {
	store := NewMemoryStateStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "a", "1"))
	require.NoError(t, store.Set(ctx, "b", "2"))

	got, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "1", got)
}
