package api

import (
	"context"
	"net/http"
	"net/url"

	"boutique-storefront/internal/models"
)

// Login exchanges customer credentials for a bearer token and profile.
func (c *Client) Login(ctx context.Context, email, password string) (models.AuthResponse, error) {
	return c.login(ctx, "/auth/login", email, password)
}

// AdminLogin exchanges back-office credentials for a bearer token and
// profile.
func (c *Client) AdminLogin(ctx context.Context, email, password string) (models.AuthResponse, error) {
	return c.login(ctx, "/admin/login", email, password)
}

func (c *Client) login(ctx context.Context, path, email, password string) (models.AuthResponse, error) {
	req := models.LoginRequest{Email: email, Password: password}
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, path, nil, req, &resp); err != nil {
		return models.AuthResponse{}, err
	}
	return resp, nil
}

// AdminStats fetches the dashboard counters.
func (c *Client) AdminStats(ctx context.Context) (models.AdminStats, error) {
	var stats models.AdminStats
	if err := c.do(ctx, http.MethodGet, "/admin/stats", nil, nil, &stats); err != nil {
		return models.AdminStats{}, err
	}
	return stats, nil
}

// AdminUsers lists the back-office users.
func (c *Client) AdminUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/admin/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateAdminUser creates a back-office user.
func (c *Client) CreateAdminUser(ctx context.Context, req models.AdminUserRequest) (models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPost, "/admin/users", nil, req, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// UpdateAdminUser applies a partial update to a back-office user.
func (c *Client) UpdateAdminUser(ctx context.Context, id string, req models.AdminUserUpdate) (models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPut, "/admin/users/"+url.PathEscape(id), nil, req, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// ApproveAdminUser approves a pending back-office user.
func (c *Client) ApproveAdminUser(ctx context.Context, id string) (models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPost, "/admin/users/"+url.PathEscape(id)+"/approve", nil, nil, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// DeleteAdminUser deletes a back-office user.
func (c *Client) DeleteAdminUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/users/"+url.PathEscape(id), nil, nil, nil)
}
