// Package models defines the client-side data model: users, contacts and
// the wire shapes of the ContactKeeper REST API.
package models

import "time"

// User is the authenticated account as returned by the auth endpoints.
// It is replaced wholesale on every successful authentication response,
// never partially patched.
type User struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	Username  string     `json:"username"`
	TenantID  int64      `json:"tenant_id"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login"`
}

// LoginResponse is the success body of /auth/login, /auth/register,
// /auth/refresh and /auth/me.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	User        *User  `json:"user"`
}

// LoginCredentials is the request body of /auth/login.
type LoginCredentials struct {
	Username string `json:"username" validate:"required,min=3,max=50,ck_username"`
	Password string `json:"password" validate:"required,min=8,max=50"`
}

// RegisterCredentials is the request body of /auth/register. TenantName is
// optional; the backend falls back to the default tenant when absent.
type RegisterCredentials struct {
	Email      string `json:"email" validate:"required,email,max=255"`
	Username   string `json:"username" validate:"required,min=3,max=50,ck_username"`
	Password   string `json:"password" validate:"required,min=8,max=50,ck_password"`
	TenantName string `json:"tenant_name,omitempty" validate:"omitempty,min=2,max=100"`
}

// PasswordReset is the request body of /auth/password-reset.
type PasswordReset struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

// PasswordUpdate is the request body of PUT /auth/password.
type PasswordUpdate struct {
	CurrentPassword string `json:"current_password" validate:"required,min=8,max=50"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=50,ck_password"`
}
