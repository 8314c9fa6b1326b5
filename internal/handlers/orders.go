package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"boutique-storefront/internal/memstore"
	"boutique-storefront/internal/models"
)

type OrderHandler struct {
	orders   *memstore.OrderStore
	products *memstore.ProductStore
}

func NewOrderHandler(orders *memstore.OrderStore, products *memstore.ProductStore) *OrderHandler {
	return &OrderHandler{orders: orders, products: products}
}

// CreateOrder records a new pending order. Stock is not reserved here; it
// is checked and decremented when an admin approves the order.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req models.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for _, item := range req.Items {
		if item.Quantity <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid quantity for product %s", item.ProductID)})
			return
		}
		if _, err := h.products.Get(item.ProductID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unknown product %s", item.ProductID)})
			return
		}
	}

	order := h.orders.Create(&req)
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.orders.List())
}

// ApproveOrder confirms a pending order and decrements the stock of every
// ordered product. Insufficient stock rejects the approval and leaves the
// order pending.
func (h *OrderHandler) ApproveOrder(c *gin.Context) {
	order, err := h.orders.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.Status != models.OrderStatusPending {
		c.JSON(http.StatusConflict, gin.H{"error": "Order is not pending"})
		return
	}

	adjusted := make([]models.OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		if err := h.products.AdjustStock(item.ProductID, item.Quantity); err != nil {
			// Roll back the decrements already applied.
			for _, done := range adjusted {
				_ = h.products.AdjustStock(done.ProductID, -done.Quantity)
			}
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Insufficient stock for %s", item.Name)})
			return
		}
		adjusted = append(adjusted, item)
	}

	order, err = h.orders.SetStatus(order.ID, models.OrderStatusConfirmed)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) RejectOrder(c *gin.Context) {
	order, err := h.orders.SetStatus(c.Param("id"), models.OrderStatusCancelled)
	if err != nil {
		if errors.Is(err, memstore.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.orders.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}

// OrderPDF renders the order receipt as a PDF document.
func (h *OrderHandler) OrderPDF(c *gin.Context) {
	order, err := h.orders.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	pdf := renderOrderPDF(order)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=order-%s.pdf", order.ID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
