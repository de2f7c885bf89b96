package models

import "time"

// Roles understood by the backend
const (
	RoleAdmin    = "admin"
	RoleClient   = "client"
	RoleEndUser  = "enduser"
	RoleOperator = "operator"
)

// ValidRole reports whether role is one of the four known roles
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleClient, RoleEndUser, RoleOperator:
		return true
	}
	return false
}

type User struct {
	ID                 int       `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	PasswordHash       string    `json:"-"` // Never expose in JSON
	Role               string    `json:"role"` // admin, client, enduser or operator
	AssociatedClientID *int      `json:"associated_client"` // only meaningful for endusers
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// SignupRequest represents the request body for signup
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// CreateUserRequest represents the request body for creating a user
type CreateUserRequest struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	Password           string `json:"password"`
	Role               string `json:"role"`
	AssociatedClientID *int   `json:"associated_client"`
}

// UpdateUserRequest represents the request body for updating a user
type UpdateUserRequest struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	Password           string `json:"password,omitempty"` // Optional
	Role               string `json:"role"`
	AssociatedClientID *int   `json:"associated_client"`
}
