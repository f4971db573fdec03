package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteKV_SetGetRemove(t *testing.T) {
	kv, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer kv.Close()

	ctx := context.Background()

	_, found, err := kv.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, kv.Set(ctx, "users", []byte(`{"v":1}`)))

	got, found, err := kv.Get(ctx, "users")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`{"v":1}`), got)

	// Overwrite on the same key.
	require.NoError(t, kv.Set(ctx, "users", []byte(`{"v":2}`)))
	got, _, err = kv.Get(ctx, "users")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"v":2}`), got)

	require.NoError(t, kv.Remove(ctx, "users"))
	_, found, err = kv.Get(ctx, "users")
	require.NoError(t, err)
	assert.False(t, found)

	// Removing an absent key is not an error.
	assert.NoError(t, kv.Remove(ctx, "users"))
}

func TestSQLiteKV_PersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ripple.db")

	kv, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set(context.Background(), "posts", []byte("[]")))
	require.NoError(t, kv.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, found, err := reopened.Get(context.Background(), "posts")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("[]"), got)
}
