package repository

import (
	"context"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

// CategoryRepository puerto de persistencia para categorías (por tenant).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, tenantID string, id int64) (*entity.Category, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, tenantID string, id int64) error
}

// UnitRepository puerto de persistencia para unidades de medida (por tenant).
// El borrado está protegido en el caso de uso: falla mientras algún producto
// del tenant referencie la unidad.
type UnitRepository interface {
	Create(ctx context.Context, unit *entity.Unit) error
	GetByID(ctx context.Context, tenantID string, id int64) (*entity.Unit, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*entity.Unit, error)
	Delete(ctx context.Context, tenantID string, id int64) error
}
