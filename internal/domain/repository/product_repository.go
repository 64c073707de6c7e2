package repository

import (
	"context"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Todas las operaciones exigen el tenant; nunca se consulta sin él.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	Get(ctx context.Context, tenantID string, productID int64) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) dentro de
	// la transacción en curso; serializa mutaciones concurrentes del mismo producto.
	GetForUpdate(ctx context.Context, tenantID string, productID int64) (*entity.Product, error)
	GetByNameAndCategory(ctx context.Context, tenantID, name string, categoryID int64) (*entity.Product, error)
	// NextProductID calcula max(product_id)+1 del tenant. Debe llamarse dentro
	// de la misma transacción que el insert para cerrar la carrera de asignación.
	NextProductID(ctx context.Context, tenantID string) (int64, error)
	Update(ctx context.Context, product *entity.Product) error
	UpdateQuantities(ctx context.Context, tenantID string, productID, stock, damaged int64) error
	ListByTenant(ctx context.Context, tenantID string, limit, offset int) ([]*entity.Product, error)
	Delete(ctx context.Context, tenantID string, productID int64) error
	CountByUnit(ctx context.Context, tenantID, unitName string) (int64, error)
}
