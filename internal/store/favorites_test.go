package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavorites_AddIsIdempotent(t *testing.T) {
	favorites := NewFavoritesStore(NewMemoryStorage())
	p := testProduct("p2", "Sweat", 89.5)

	require.NoError(t, favorites.Add(p))
	require.NoError(t, favorites.Add(p))

	assert.Len(t, favorites.Products(), 1)
}

func TestFavorites_ToggleScenario(t *testing.T) {
	favorites := NewFavoritesStore(NewMemoryStorage())
	p := testProduct("p2", "Sweat", 89.5)

	assert.False(t, favorites.IsFavorite(p.ID))

	require.NoError(t, favorites.Add(p))
	assert.True(t, favorites.IsFavorite(p.ID))

	require.NoError(t, favorites.Remove(p.ID))
	assert.False(t, favorites.IsFavorite(p.ID))
}

func TestFavorites_RemoveUnknownIsNoOp(t *testing.T) {
	favorites := NewFavoritesStore(NewMemoryStorage())
	require.NoError(t, favorites.Add(testProduct("p1", "T-shirt", 39.9)))

	require.NoError(t, favorites.Remove("unknown"))
	assert.Len(t, favorites.Products(), 1)
}

func TestFavorites_WriteThroughAndRehydration(t *testing.T) {
	storage := NewMemoryStorage()
	favorites := NewFavoritesStore(storage)
	require.NoError(t, favorites.Add(testProduct("p1", "T-shirt", 39.9)))
	require.NoError(t, favorites.Add(testProduct("p2", "Sweat", 89.5)))

	reloaded := NewFavoritesStore(storage)
	assert.True(t, reloaded.IsFavorite("p1"))
	assert.True(t, reloaded.IsFavorite("p2"))
	assert.Len(t, reloaded.Products(), 2)
}

func TestFavorites_CorruptPersistedStateResetsToEmpty(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.Save(KeyFavorites, []byte("42")))

	favorites := NewFavoritesStore(storage)
	assert.Empty(t, favorites.Products())
}
