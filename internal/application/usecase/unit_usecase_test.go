package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/PuntoVenta-api/internal/application/usecase"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

const catalogoTenant = "11111111-1111-1111-1111-111111111111"

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de catálogo
// ──────────────────────────────────────────────────────────────────────────────

type fakeUnitRepo struct {
	seq   int64
	units map[int64]*entity.Unit
}

func newFakeUnitRepo() *fakeUnitRepo {
	return &fakeUnitRepo{units: map[int64]*entity.Unit{}}
}

func (r *fakeUnitRepo) Create(_ context.Context, u *entity.Unit) error {
	r.seq++
	u.ID = r.seq
	cp := *u
	r.units[u.ID] = &cp
	return nil
}

func (r *fakeUnitRepo) GetByID(_ context.Context, tenantID string, id int64) (*entity.Unit, error) {
	u, ok := r.units[id]
	if !ok || u.TenantID != tenantID {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUnitRepo) ListByTenant(_ context.Context, tenantID string) ([]*entity.Unit, error) {
	var out []*entity.Unit
	for _, u := range r.units {
		if u.TenantID == tenantID {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeUnitRepo) Delete(_ context.Context, tenantID string, id int64) error {
	u, ok := r.units[id]
	if !ok || u.TenantID != tenantID {
		return domain.ErrNotFound
	}
	delete(r.units, id)
	return nil
}

// fakeProductCounter implementa el puerto de productos; para el borrado
// protegido de unidades solo importa CountByUnit.
type fakeProductCounter struct {
	counts map[string]int64 // unidad -> productos que la referencian
}

func (r *fakeProductCounter) Create(context.Context, *entity.Product) error { return nil }
func (r *fakeProductCounter) Get(context.Context, string, int64) (*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductCounter) GetForUpdate(context.Context, string, int64) (*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductCounter) GetByNameAndCategory(context.Context, string, string, int64) (*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductCounter) NextProductID(context.Context, string) (int64, error) { return 1, nil }
func (r *fakeProductCounter) Update(context.Context, *entity.Product) error        { return nil }
func (r *fakeProductCounter) UpdateQuantities(context.Context, string, int64, int64, int64) error {
	return nil
}
func (r *fakeProductCounter) ListByTenant(context.Context, string, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductCounter) Delete(context.Context, string, int64) error { return nil }
func (r *fakeProductCounter) CountByUnit(_ context.Context, _ string, unitName string) (int64, error) {
	return r.counts[unitName], nil
}

type fakeCatalogRunner struct {
	units    repository.UnitRepository
	products repository.ProductRepository
}

func (r *fakeCatalogRunner) RunCatalog(ctx context.Context, fn func(
	unitRepo repository.UnitRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(r.units, r.products)
}

func buildUnitUseCase(counts map[string]int64) (*usecase.UnitUseCase, *fakeUnitRepo) {
	units := newFakeUnitRepo()
	products := &fakeProductCounter{counts: counts}
	uc := usecase.NewUnitUseCase(units, &fakeCatalogRunner{units: units, products: products})
	return uc, units
}

// ──────────────────────────────────────────────────────────────────────────────
// Borrado protegido de unidades
// ──────────────────────────────────────────────────────────────────────────────

func TestUnitUseCase_Delete_ConflictoMientrasHayProductos(t *testing.T) {
	ctx := context.Background()
	counts := map[string]int64{"caja": 2}
	uc, units := buildUnitUseCase(counts)

	u, err := uc.Create(ctx, catalogoTenant, "caja")
	require.NoError(t, err)

	err = uc.Delete(ctx, catalogoTenant, u.ID)
	assert.ErrorIs(t, err, domain.ErrConflict, "con productos referenciando la unidad el borrado falla")

	sigue, err := units.GetByID(ctx, catalogoTenant, u.ID)
	require.NoError(t, err)
	assert.NotNil(t, sigue, "la unidad sobrevive al borrado rechazado")

	// Al quedar en cero referencias el mismo borrado procede.
	counts["caja"] = 0
	require.NoError(t, uc.Delete(ctx, catalogoTenant, u.ID))

	borrada, err := units.GetByID(ctx, catalogoTenant, u.ID)
	require.NoError(t, err)
	assert.Nil(t, borrada, "sin referencias la unidad se elimina")
}

func TestUnitUseCase_Delete_Inexistente(t *testing.T) {
	uc, _ := buildUnitUseCase(map[string]int64{})
	err := uc.Delete(context.Background(), catalogoTenant, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUnitUseCase_Create_NombreVacio(t *testing.T) {
	uc, _ := buildUnitUseCase(map[string]int64{})
	_, err := uc.Create(context.Background(), catalogoTenant, "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
