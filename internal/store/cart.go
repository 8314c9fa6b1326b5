package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"boutique-storefront/internal/models"
)

var ErrInvalidQuantity = errors.New("quantity must be positive")

// Notifier receives user-visible messages emitted by the stores.
type Notifier func(message string)

// CartStore owns the ordered collection of cart line items. It is the single
// source of truth for the cart; every mutation is written through to the
// backing Storage before returning.
type CartStore struct {
	storage Storage
	notify  Notifier
	items   []models.CartItem
	now     func() time.Time
}

func NewCartStore(storage Storage, notify Notifier) *CartStore {
	s := &CartStore{
		storage: storage,
		notify:  notify,
		now:     time.Now,
	}
	s.rehydrate()
	return s
}

// rehydrate loads the persisted cart. A structurally incompatible payload
// resets the cart to empty rather than failing initialization.
func (s *CartStore) rehydrate() {
	data, err := s.storage.Load(KeyCart)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("cart: failed to load persisted state: %v", err)
		}
		return
	}
	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("cart: resetting corrupt persisted state: %v", err)
		return
	}
	s.items = items
}

func (s *CartStore) persist() error {
	data, err := json.Marshal(s.items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.storage.Save(KeyCart, data); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}

// newItemID derives a line item identifier from the product, the normalized
// size and color, and the creation time so that rapid repeated adds of
// distinct combinations never collide.
func (s *CartStore) newItemID(productID, size, color string) string {
	strip := func(v string) string {
		return strings.Join(strings.Fields(v), "")
	}
	return fmt.Sprintf("%s-%s-%s-%d", productID, strip(size), strip(color), s.now().UnixMilli())
}

// AddToCart adds a product/size/color combination to the cart. If a line
// item already exists for the same combination its quantity is increased
// instead of appending a duplicate entry.
func (s *CartStore) AddToCart(product models.Product, size, color string, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	for i, item := range s.items {
		if item.ProductID == product.ID && item.Size == size && item.Color == color {
			s.items[i].Quantity += quantity
			if err := s.persist(); err != nil {
				return err
			}
			s.emit(fmt.Sprintf("Quantité mise à jour pour %s", product.Name))
			return nil
		}
	}

	s.items = append(s.items, models.CartItem{
		ID:        s.newItemID(product.ID, size, color),
		ProductID: product.ID,
		Product:   product,
		Size:      size,
		Color:     color,
		Quantity:  quantity,
	})
	if err := s.persist(); err != nil {
		return err
	}
	s.emit(fmt.Sprintf("Produit ajouté au panier : %s", product.Name))
	return nil
}

// UpdateQuantity sets the quantity of a line item directly. A quantity of
// zero or less removes the item.
func (s *CartStore) UpdateQuantity(itemID string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveFromCart(itemID)
	}
	for i, item := range s.items {
		if item.ID == itemID {
			s.items[i].Quantity = quantity
			return s.persist()
		}
	}
	return nil
}

// RemoveFromCart removes a line item. Removing an unknown id is a no-op.
func (s *CartStore) RemoveFromCart(itemID string) error {
	filtered := s.items[:0]
	for _, item := range s.items {
		if item.ID != itemID {
			filtered = append(filtered, item)
		}
	}
	if len(filtered) == len(s.items) {
		return nil
	}
	s.items = filtered
	return s.persist()
}

// ClearCart empties the cart. Invoked after a successful order placement.
func (s *CartStore) ClearCart() error {
	s.items = nil
	return s.persist()
}

// Items returns a copy of the current line items in insertion order.
func (s *CartStore) Items() []models.CartItem {
	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// TotalItems returns the sum of quantities across all lines.
func (s *CartStore) TotalItems() int {
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice returns the sum of price times quantity across all lines.
func (s *CartStore) TotalPrice() float64 {
	total := 0.0
	for _, item := range s.items {
		total += item.LineTotal()
	}
	return total
}

func (s *CartStore) emit(message string) {
	if s.notify != nil {
		s.notify(message)
	}
}
