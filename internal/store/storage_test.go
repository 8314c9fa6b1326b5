package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorage_RoundTrip(t *testing.T) {
	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, storage.Save("cart", []byte(`[{"id":"x"}]`)))

	data, err := storage.Load("cart")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"x"}]`, string(data))

	// Overwrite replaces the previous payload.
	require.NoError(t, storage.Save("cart", []byte(`[]`)))
	data, err = storage.Load("cart")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
}

func TestFileStorage_LoadMissingKey(t *testing.T) {
	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	_, err = storage.Load("favorites")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStorage_Delete(t *testing.T) {
	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, storage.Save("token", []byte("abc")))
	require.NoError(t, storage.Delete("token"))

	_, err = storage.Load("token")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting a missing key is a no-op.
	require.NoError(t, storage.Delete("token"))
}

func TestFileStorage_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	_, err := NewFileStorage(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
