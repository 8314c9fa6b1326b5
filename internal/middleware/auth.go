package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"boutique-storefront/internal/auth"
	"boutique-storefront/internal/models"
)

// AuthMiddleware verifies the bearer token and stores the caller's identity
// on the request context.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Bearer token required"})
			return
		}

		claims, err := auth.ValidateToken(token, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_role", claims.Role)
		c.Next()
	}
}

// AdminMiddleware verifies the bearer token and additionally requires an
// admin or super admin role.
func AdminMiddleware(jwtSecret string) gin.HandlerFunc {
	authenticate := AuthMiddleware(jwtSecret)
	return func(c *gin.Context) {
		authenticate(c)
		if c.IsAborted() {
			return
		}

		role := c.GetString("user_role")
		if role != models.RoleAdmin && role != models.RoleSuperAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
