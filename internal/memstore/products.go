// Package memstore is the in-memory data layer behind the mock API server.
// It plays the role the real backend's database plays, scoped to a single
// process so the storefront can be developed and tested offline.
package memstore

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"boutique-storefront/internal/models"
)

var ErrNotFound = errors.New("not found")

// ProductStore holds the catalog.
type ProductStore struct {
	mu       sync.RWMutex
	products []models.Product
}

func NewProductStore() *ProductStore {
	return &ProductStore{}
}

// List returns the catalog, optionally restricted to one category.
func (s *ProductStore) List(category string) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var products []models.Product
	for _, p := range s.products {
		if category != "" && p.CategoryID != category {
			continue
		}
		products = append(products, p)
	}
	return products
}

// Best returns the featured products, newest first, at most limit of them.
func (s *ProductStore) Best(limit int) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var best []models.Product
	for _, p := range s.products {
		if p.IsFeatured {
			best = append(best, p)
		}
	}
	sort.SliceStable(best, func(i, j int) bool {
		return best[i].CreatedAt.After(best[j].CreatedAt)
	})
	if limit > 0 && limit < len(best) {
		best = best[:limit]
	}
	return best
}

func (s *ProductStore) Get(id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

func (s *ProductStore) Create(req *models.ProductRequest) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := models.Product{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		CategoryID:    req.CategoryID,
		Images:        append([]string(nil), req.Images...),
		Sizes:         append([]string(nil), req.Sizes...),
		Colors:        append([]string(nil), req.Colors...),
		StockQuantity: req.StockQuantity,
		IsFeatured:    req.IsFeatured,
		Rating:        5,
		CreatedAt:     time.Now().UTC(),
	}
	s.products = append(s.products, p)
	return p
}

func (s *ProductStore) Update(id string, req *models.ProductRequest) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.products {
		if p.ID == id {
			p.Name = req.Name
			p.Description = req.Description
			p.Price = req.Price
			p.CategoryID = req.CategoryID
			p.Images = append([]string(nil), req.Images...)
			p.Sizes = append([]string(nil), req.Sizes...)
			p.Colors = append([]string(nil), req.Colors...)
			p.StockQuantity = req.StockQuantity
			p.IsFeatured = req.IsFeatured
			s.products[i] = p
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

func (s *ProductStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// AdjustStock decrements the stock of a product by quantity. Stock never
// goes below zero; an order for more than is available is rejected.
func (s *ProductStore) AdjustStock(id string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.products {
		if p.ID == id {
			if p.StockQuantity < quantity {
				return errors.New("insufficient stock")
			}
			s.products[i].StockQuantity -= quantity
			return nil
		}
	}
	return ErrNotFound
}

func (s *ProductStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}
