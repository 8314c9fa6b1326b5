package models

import (
	"time"
)

// Category represents a product category
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

// Product represents a catalog product as seen by the storefront
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	CategoryID    string    `json:"category_id"`
	Images        []string  `json:"images"`
	Sizes         []string  `json:"sizes"`
	Colors        []string  `json:"colors"`
	StockQuantity int       `json:"stock_quantity"`
	IsFeatured    bool      `json:"is_featured"`
	Rating        float64   `json:"rating"`
	CreatedAt     time.Time `json:"created_at"`
}

// ProductRequest represents the request to create or update a product
type ProductRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	CategoryID    string   `json:"category" binding:"required"`
	Images        []string `json:"images"`
	Sizes         []string `json:"sizes" binding:"required,min=1"`
	Colors        []string `json:"colors" binding:"required,min=1"`
	StockQuantity int      `json:"stock" binding:"min=0"`
	IsFeatured    bool     `json:"is_featured"`
}
