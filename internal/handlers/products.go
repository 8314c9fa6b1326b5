package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"boutique-storefront/internal/memstore"
	"boutique-storefront/internal/models"
)

type ProductHandler struct {
	products *memstore.ProductStore
}

func NewProductHandler(products *memstore.ProductStore) *ProductHandler {
	return &ProductHandler{products: products}
}

// productResponse renders a product in the backend wire shape the
// storefront client expects: "_id", "category", "stock", "createdAt".
type productResponse struct {
	ID          string         `json:"_id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       float64        `json:"price"`
	Category    string         `json:"category"`
	Colors      []string       `json:"colors"`
	Sizes       []string       `json:"sizes"`
	Images      []imagePayload `json:"images"`
	Stock       int            `json:"stock"`
	IsFeatured  bool           `json:"is_featured"`
	Rating      float64        `json:"rating"`
	CreatedAt   string         `json:"createdAt"`
}

type imagePayload struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

func toProductResponse(p models.Product) productResponse {
	resp := productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.CategoryID,
		Colors:      p.Colors,
		Sizes:       p.Sizes,
		Stock:       p.StockQuantity,
		IsFeatured:  p.IsFeatured,
		Rating:      p.Rating,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
	for _, url := range p.Images {
		resp.Images = append(resp.Images, imagePayload{URL: url})
	}
	return resp
}

func toProductResponses(products []models.Product) []productResponse {
	responses := make([]productResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, toProductResponse(p))
	}
	return responses
}

func (h *ProductHandler) GetProducts(c *gin.Context) {
	category := c.Query("category")
	c.JSON(http.StatusOK, toProductResponses(h.products.List(category)))
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.products.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, toProductResponse(product))
}

func (h *ProductHandler) GetBestProducts(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}
	c.JSON(http.StatusOK, toProductResponses(h.products.Best(limit)))
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product := h.products.Create(&req)
	c.JSON(http.StatusCreated, toProductResponse(product))
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product, err := h.products.Update(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, memstore.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	c.JSON(http.StatusOK, toProductResponse(product))
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.products.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
