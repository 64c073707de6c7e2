package usecase

import (
	"context"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// CatalogTxRunner ejecuta una función con repos de catálogo dentro de una
// transacción. Lo usa el borrado protegido de unidades: contar productos que
// referencian la unidad y borrarla tienen que ser atómicos.
type CatalogTxRunner interface {
	RunCatalog(ctx context.Context, fn func(
		unitRepo repository.UnitRepository,
		productRepo repository.ProductRepository,
	) error) error
}
