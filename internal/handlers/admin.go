package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"boutique-storefront/internal/memstore"
	"boutique-storefront/internal/models"
)

type AdminHandler struct {
	users    *memstore.UserStore
	orders   *memstore.OrderStore
	products *memstore.ProductStore
}

func NewAdminHandler(users *memstore.UserStore, orders *memstore.OrderStore, products *memstore.ProductStore) *AdminHandler {
	return &AdminHandler{users: users, orders: orders, products: products}
}

func (h *AdminHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.orders.Stats(h.products.Count()))
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.users.List())
}

func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req models.AdminUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleAdmin
	}
	if role != models.RoleAdmin && role != models.RoleSuperAdmin {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}

	password := req.Password
	if password == "" {
		password = "changeme"
	}

	user, err := h.users.Create(req.FullName, req.Email, password, role, false)
	if err != nil {
		if errors.Is(err, memstore.ErrEmailExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *AdminHandler) UpdateUser(c *gin.Context) {
	var req models.AdminUserUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Role != nil && *req.Role != models.RoleAdmin && *req.Role != models.RoleSuperAdmin {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}

	user, err := h.users.Update(c.Param("id"), &req)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AdminHandler) ApproveUser(c *gin.Context) {
	user, err := h.users.Approve(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.users.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
