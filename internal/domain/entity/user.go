package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Roles de usuario.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// User cuenta de la aplicación. Un admin es su propio tenant; un empleado
// pertenece al tenant de su admin (AdminID). Password se compara byte a byte.
type User struct {
	ID            string
	Username      string
	Password      string
	Role          string // admin | employee
	AdminID       *string
	DefaultMarkup decimal.Decimal // % aplicado a cost_price cuando retail_price no está definido
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TenantID devuelve el tenant al que pertenecen los datos del usuario:
// el propio ID para un admin, el ID del admin dueño para un empleado.
func (u *User) TenantID() string {
	if u.Role == RoleEmployee && u.AdminID != nil {
		return *u.AdminID
	}
	return u.ID
}
