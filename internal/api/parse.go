package api

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"boutique-storefront/internal/models"
)

// The backend's product payloads are loosely shaped: ids arrive as "_id",
// colors are either bare strings or {name, code} objects, images carry
// relative URLs, and stock/featured may be missing. parse.go is the single
// place where those payloads are validated and coerced into typed records.

type wireImage struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

type wireColor struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// UnmarshalJSON accepts both the string and the object encoding.
func (c *wireColor) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &c.Name)
	}
	type plain wireColor
	return json.Unmarshal(data, (*plain)(c))
}

func (c wireColor) label() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Code
}

type wireProduct struct {
	ID          string      `json:"_id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	Category    string      `json:"category"`
	Colors      []wireColor `json:"colors"`
	Sizes       []string    `json:"sizes"`
	Images      []wireImage `json:"images"`
	Stock       *int        `json:"stock"`
	IsFeatured  bool        `json:"is_featured"`
	Rating      float64     `json:"rating"`
	CreatedAt   string      `json:"createdAt"`
}

// ParseProduct validates a backend payload and coerces it into a typed
// product. Image URLs are resolved against assetsBase.
func ParseProduct(w wireProduct, assetsBase string) (models.Product, error) {
	if w.ID == "" {
		return models.Product{}, fmt.Errorf("product has no id")
	}
	if w.Name == "" {
		return models.Product{}, fmt.Errorf("product %s has no name", w.ID)
	}
	if w.Price < 0 {
		return models.Product{}, fmt.Errorf("product %s has negative price %v", w.ID, w.Price)
	}

	p := models.Product{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		Price:       w.Price,
		CategoryID:  w.Category,
		IsFeatured:  w.IsFeatured,
		Rating:      w.Rating,
	}
	if p.Rating == 0 {
		p.Rating = 5
	}
	if w.Stock != nil {
		if *w.Stock < 0 {
			return models.Product{}, fmt.Errorf("product %s has negative stock %d", w.ID, *w.Stock)
		}
		p.StockQuantity = *w.Stock
	}

	p.Sizes = append([]string(nil), w.Sizes...)
	for _, c := range w.Colors {
		if label := c.label(); label != "" {
			p.Colors = append(p.Colors, label)
		}
	}
	for _, img := range w.Images {
		p.Images = append(p.Images, resolveAssetURL(img.URL, assetsBase))
	}

	if w.CreatedAt != "" {
		created, err := time.Parse(time.RFC3339, w.CreatedAt)
		if err != nil {
			return models.Product{}, fmt.Errorf("product %s has invalid createdAt %q: %w", w.ID, w.CreatedAt, err)
		}
		p.CreatedAt = created
	}

	return p, nil
}

func parseProducts(wires []wireProduct, assetsBase string) ([]models.Product, error) {
	products := make([]models.Product, 0, len(wires))
	for _, w := range wires {
		p, err := ParseProduct(w, assetsBase)
		if err != nil {
			return nil, fmt.Errorf("failed to parse product: %w", err)
		}
		products = append(products, p)
	}
	return products, nil
}

func resolveAssetURL(raw, assetsBase string) string {
	if raw == "" || strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	if !strings.HasPrefix(raw, "/") {
		raw = "/" + raw
	}
	return assetsBase + raw
}
