package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterRequest body para POST /api/auth/register (alta de admin).
type RegisterRequest struct {
	Username      string          `json:"username" validate:"required,min=3,max=64"`
	Password      string          `json:"password" validate:"required,min=4"`
	DefaultMarkup decimal.Decimal `json:"default_markup"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateEmployeeRequest body para POST /api/employees (solo admin).
type CreateEmployeeRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=4"`
}

// UpdateMarkupRequest body para PUT /api/me/markup.
type UpdateMarkupRequest struct {
	DefaultMarkup decimal.Decimal `json:"default_markup"`
}

// UserResponse usuario en respuestas (nunca incluye la contraseña).
type UserResponse struct {
	ID            string          `json:"id"`
	Username      string          `json:"username"`
	Role          string          `json:"role"`
	TenantID      string          `json:"tenant_id"`
	DefaultMarkup decimal.Decimal `json:"default_markup"`
	CreatedAt     time.Time       `json:"created_at"`
}
