package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para usuarios.
// La unicidad de username la garantiza un constraint UNIQUE en la base;
// Create la traduce a domain.ErrDuplicate (no hay chequeo-previo-e-insert).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetByUsername búsqueda byte-exacta (case-sensitive).
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	ListEmployees(ctx context.Context, adminID string) ([]*entity.User, error)
	UpdateDefaultMarkup(ctx context.Context, userID string, markup decimal.Decimal) error
	Delete(ctx context.Context, id string) error
}

// StoreRepository puerto para los metadatos de tienda (uno a uno con el tenant).
type StoreRepository interface {
	Get(ctx context.Context, tenantID string) (*entity.Store, error)
	Upsert(ctx context.Context, store *entity.Store) error
}
