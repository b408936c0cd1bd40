package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, ok, err := store.Load(ctx, "slot")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Save(ctx, "slot", []byte(`{"a":1}`)))

	data, ok, err := store.Load(ctx, "slot")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"a":1}`), data)

	require.NoError(t, store.Delete(ctx, "slot"))
	_, ok, err = store.Load(ctx, "slot")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStore_DeleteMissingIsNoError(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, store.Delete(context.Background(), "never-written"))
}

func TestFileStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "slots")
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save(context.Background(), "slot", []byte("x")))

	_, err = os.Stat(filepath.Join(dir, "slot.json"))
	assert.NoError(t, err)
}
