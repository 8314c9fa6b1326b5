package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"boutique-storefront/internal/models"
)

// Products fetches the catalog. params are passed through as query
// parameters (the backend supports server-side category filtering via
// ?category=...).
func (c *Client) Products(ctx context.Context, params map[string]string) ([]models.Product, error) {
	query := url.Values{}
	for k, v := range params {
		query.Set(k, v)
	}
	var wires []wireProduct
	if err := c.do(ctx, http.MethodGet, "/products", query, nil, &wires); err != nil {
		return nil, err
	}
	return parseProducts(wires, c.AssetsBase())
}

// Product fetches a single product by id.
func (c *Client) Product(ctx context.Context, id string) (models.Product, error) {
	var wire wireProduct
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, nil, &wire); err != nil {
		return models.Product{}, err
	}
	return ParseProduct(wire, c.AssetsBase())
}

// BestProducts fetches the best sellers, at most limit of them.
func (c *Client) BestProducts(ctx context.Context, limit int) ([]models.Product, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var wires []wireProduct
	if err := c.do(ctx, http.MethodGet, "/products/best", query, nil, &wires); err != nil {
		return nil, err
	}
	return parseProducts(wires, c.AssetsBase())
}

// CreateProduct creates a product (admin).
func (c *Client) CreateProduct(ctx context.Context, req models.ProductRequest) (models.Product, error) {
	var wire wireProduct
	if err := c.do(ctx, http.MethodPost, "/products", nil, req, &wire); err != nil {
		return models.Product{}, err
	}
	return ParseProduct(wire, c.AssetsBase())
}

// UpdateProduct updates a product (admin).
func (c *Client) UpdateProduct(ctx context.Context, id string, req models.ProductRequest) (models.Product, error) {
	var wire wireProduct
	if err := c.do(ctx, http.MethodPut, "/products/"+url.PathEscape(id), nil, req, &wire); err != nil {
		return models.Product{}, err
	}
	return ParseProduct(wire, c.AssetsBase())
}

// DeleteProduct deletes a product (admin).
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), nil, nil, nil)
}
