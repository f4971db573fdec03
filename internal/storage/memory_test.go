package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKV_SetGetRemove(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	_, found, err := kv.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, kv.Set(ctx, "posts", []byte("[]")))
	got, found, err := kv.Get(ctx, "posts")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("[]"), got)

	// The stored value is detached from the caller's slice.
	payload := []byte("abc")
	require.NoError(t, kv.Set(ctx, "k", payload))
	payload[0] = 'z'
	got, _, err = kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)

	require.NoError(t, kv.Remove(ctx, "posts"))
	_, found, err = kv.Get(ctx, "posts")
	require.NoError(t, err)
	assert.False(t, found)
}
