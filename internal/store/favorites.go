package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"boutique-storefront/internal/models"
)

// FavoritesStore owns the set of favorited product snapshots, keyed by
// product id. Same write-through persistence pattern as the cart, under an
// independent storage key.
type FavoritesStore struct {
	storage   Storage
	favorites []models.Product
}

func NewFavoritesStore(storage Storage) *FavoritesStore {
	s := &FavoritesStore{storage: storage}
	s.rehydrate()
	return s
}

func (s *FavoritesStore) rehydrate() {
	data, err := s.storage.Load(KeyFavorites)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("favorites: failed to load persisted state: %v", err)
		}
		return
	}
	var favorites []models.Product
	if err := json.Unmarshal(data, &favorites); err != nil {
		log.Printf("favorites: resetting corrupt persisted state: %v", err)
		return
	}
	s.favorites = favorites
}

func (s *FavoritesStore) persist() error {
	data, err := json.Marshal(s.favorites)
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}
	if err := s.storage.Save(KeyFavorites, data); err != nil {
		return fmt.Errorf("failed to persist favorites: %w", err)
	}
	return nil
}

// Add inserts a product snapshot unless one with the same id is already
// present.
func (s *FavoritesStore) Add(product models.Product) error {
	if s.IsFavorite(product.ID) {
		return nil
	}
	s.favorites = append(s.favorites, product)
	return s.persist()
}

// Remove removes the product with the given id. Unknown ids are a no-op.
func (s *FavoritesStore) Remove(productID string) error {
	filtered := s.favorites[:0]
	for _, p := range s.favorites {
		if p.ID != productID {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) == len(s.favorites) {
		return nil
	}
	s.favorites = filtered
	return s.persist()
}

// IsFavorite reports whether a product id is in the favorites set.
func (s *FavoritesStore) IsFavorite(productID string) bool {
	for _, p := range s.favorites {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// Products returns a copy of the favorited snapshots in insertion order.
func (s *FavoritesStore) Products() []models.Product {
	favorites := make([]models.Product, len(s.favorites))
	copy(favorites, s.favorites)
	return favorites
}
