package models

import (
	"time"
)

// Order status constants
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusCancelled = "cancelled"
)

// Order represents a placed order
type Order struct {
	ID              string      `json:"id"`
	UserEmail       string      `json:"user_email"`
	UserFullName    string      `json:"user_full_name"`
	Items           []OrderItem `json:"items"`
	TotalAmount     float64     `json:"total_amount"`
	Status          string      `json:"status"`
	ShippingAddress string      `json:"shipping_address"`
	Phone           string      `json:"phone"`
	CreatedAt       time.Time   `json:"created_at"`
}

// OrderItem represents one line of an order
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// OrderRequest represents the request to place an order
type OrderRequest struct {
	UserEmail       string      `json:"user_email" binding:"required,email"`
	UserFullName    string      `json:"user_full_name" binding:"required"`
	Items           []OrderItem `json:"items" binding:"required,min=1"`
	ShippingAddress string      `json:"shipping_address" binding:"required"`
	Phone           string      `json:"phone" binding:"required"`
}

// AdminStats represents the dashboard counters
type AdminStats struct {
	OrdersCount   int     `json:"ordersCount"`
	ProductsCount int     `json:"productsCount"`
	TotalRevenue  float64 `json:"totalRevenue"`
}
