package entity

import "time"

// Store metadatos de la tienda, uno a uno con el tenant dueño.
type Store struct {
	TenantID  string
	Name      string
	Address   string
	Phone     string
	Email     string
	UpdatedAt time.Time
}
