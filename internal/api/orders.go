package api

import (
	"context"
	"net/http"
	"net/url"

	"boutique-storefront/internal/models"
)

// CreateOrder places an order from the checkout form.
func (c *Client) CreateOrder(ctx context.Context, req models.OrderRequest) (models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPost, "/orders", nil, req, &order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// Orders lists all orders (admin).
func (c *Client) Orders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ApproveOrder confirms a pending order (admin).
func (c *Client) ApproveOrder(ctx context.Context, id string) (models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPost, "/orders/"+url.PathEscape(id)+"/approve", nil, nil, &order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// RejectOrder cancels a pending order (admin).
func (c *Client) RejectOrder(ctx context.Context, id string) (models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPost, "/orders/"+url.PathEscape(id)+"/reject", nil, nil, &order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// DeleteOrder deletes an order (admin).
func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/orders/"+url.PathEscape(id), nil, nil, nil)
}

// OrderPDF downloads the order receipt as a PDF document.
func (c *Client) OrderPDF(ctx context.Context, id string) ([]byte, error) {
	return c.doRaw(ctx, http.MethodGet, "/orders/"+url.PathEscape(id)+"/pdf")
}
