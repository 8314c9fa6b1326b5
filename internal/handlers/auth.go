package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boutique-storefront/internal/auth"
	"boutique-storefront/internal/memstore"
	"boutique-storefront/internal/models"
)

type AuthHandler struct {
	users     *memstore.UserStore
	jwtSecret string
}

func NewAuthHandler(users *memstore.UserStore, jwtSecret string) *AuthHandler {
	return &AuthHandler{users: users, jwtSecret: jwtSecret}
}

// Login exchanges customer credentials for a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	h.login(c, false)
}

// AdminLogin exchanges back-office credentials for a bearer token. Only
// approved admin accounts may sign in here.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	h.login(c, true)
}

func (h *AuthHandler) login(c *gin.Context, adminOnly bool) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Authenticate(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Identifiants invalides"})
		return
	}

	if adminOnly {
		if user.Role != models.RoleAdmin && user.Role != models.RoleSuperAdmin {
			c.JSON(http.StatusForbidden, gin.H{"message": "Accès administrateur requis"})
			return
		}
		if !user.IsApproved {
			c.JSON(http.StatusForbidden, gin.H{"message": "Compte en attente d'approbation"})
			return
		}
	}

	token, err := auth.GenerateToken(user.ID, user.Email, user.Role, h.jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{User: user, Token: token})
}
