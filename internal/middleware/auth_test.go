package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boutique-storefront/internal/auth"
	"boutique-storefront/internal/models"
)

const testSecret = "middleware-test-secret"

func protectedRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", mw, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": c.GetString("user_role")})
	})
	return r
}

func request(t *testing.T, r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_HeaderFormats(t *testing.T) {
	token, err := auth.GenerateToken("u1", "a@b.tn", models.RoleCustomer, testSecret)
	require.NoError(t, err)
	r := protectedRouter(AuthMiddleware(testSecret))

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"no bearer prefix", token, http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, request(t, r, tt.header).Code)
		})
	}
}

func TestAuthMiddleware_RejectsWrongSecret(t *testing.T) {
	token, err := auth.GenerateToken("u1", "a@b.tn", models.RoleCustomer, "other-secret")
	require.NoError(t, err)

	r := protectedRouter(AuthMiddleware(testSecret))
	assert.Equal(t, http.StatusUnauthorized, request(t, r, "Bearer "+token).Code)
}

func TestAdminMiddleware_RoleGate(t *testing.T) {
	r := protectedRouter(AdminMiddleware(testSecret))

	tests := []struct {
		role   string
		status int
	}{
		{models.RoleCustomer, http.StatusForbidden},
		{models.RoleAdmin, http.StatusOK},
		{models.RoleSuperAdmin, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			token, err := auth.GenerateToken("u1", "a@b.tn", tt.role, testSecret)
			require.NoError(t, err)
			assert.Equal(t, tt.status, request(t, r, "Bearer "+token).Code)
		})
	}
}

func TestAdminMiddleware_NoToken(t *testing.T) {
	r := protectedRouter(AdminMiddleware(testSecret))
	assert.Equal(t, http.StatusUnauthorized, request(t, r, "").Code)
}
