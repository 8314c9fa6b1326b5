package models

import (
	"time"
)

const (
	RoleCustomer   = "customer"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	IsApproved   bool      `json:"isApproved"`
	CreatedAt    time.Time `json:"created_at"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents the credential exchange result
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// AdminUserRequest represents the request to create an admin user
type AdminUserRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"omitempty,min=6"`
	Role     string `json:"role,omitempty"`
}

// AdminUserUpdate represents a partial admin user update
type AdminUserUpdate struct {
	FullName   *string `json:"full_name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Role       *string `json:"role,omitempty"`
	IsApproved *bool   `json:"isApproved,omitempty"`
}
