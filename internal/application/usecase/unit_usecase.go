package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// UnitUseCase CRUD de unidades de medida por tenant, con borrado protegido.
type UnitUseCase struct {
	repo     repository.UnitRepository
	txRunner CatalogTxRunner
}

// NewUnitUseCase construye el caso de uso.
func NewUnitUseCase(repo repository.UnitRepository, txRunner CatalogTxRunner) *UnitUseCase {
	return &UnitUseCase{repo: repo, txRunner: txRunner}
}

// Create crea una unidad de medida.
func (uc *UnitUseCase) Create(ctx context.Context, tenantID, name string) (*dto.UnitResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	u := &entity.Unit{TenantID: tenantID, Name: name, CreatedAt: time.Now()}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return &dto.UnitResponse{ID: u.ID, Name: u.Name}, nil
}

// List lista las unidades del tenant.
func (uc *UnitUseCase) List(ctx context.Context, tenantID string) ([]dto.UnitResponse, error) {
	list, err := uc.repo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UnitResponse, 0, len(list))
	for _, u := range list {
		out = append(out, dto.UnitResponse{ID: u.ID, Name: u.Name})
	}
	return out, nil
}

// Delete elimina una unidad. Falla con ErrConflict mientras algún producto
// del tenant la referencie; el conteo y el borrado corren en la misma
// transacción para que no se cuele una referencia entre ambos.
func (uc *UnitUseCase) Delete(ctx context.Context, tenantID string, id int64) error {
	return uc.txRunner.RunCatalog(ctx, func(
		unitRepo repository.UnitRepository,
		productRepo repository.ProductRepository,
	) error {
		u, err := unitRepo.GetByID(ctx, tenantID, id)
		if err != nil {
			return err
		}
		if u == nil {
			return domain.ErrNotFound
		}
		n, err := productRepo.CountByUnit(ctx, tenantID, u.Name)
		if err != nil {
			return err
		}
		if n > 0 {
			return domain.ErrConflict
		}
		return unitRepo.Delete(ctx, tenantID, id)
	})
}
