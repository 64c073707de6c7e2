package usecase

import (
	"context"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// ProductUseCase lecturas de productos y de su historial de movimientos.
// Las mutaciones de stock no pasan por aquí: van al motor de movimientos.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	ledgerRepo  repository.LedgerRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, ledgerRepo repository.LedgerRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, ledgerRepo: ledgerRepo}
}

// GetByID obtiene un producto del tenant.
func (uc *ProductUseCase) GetByID(ctx context.Context, tenantID string, productID int64) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.Get(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return dto.ToProductResponse(p), nil
}

// List lista productos del tenant con paginación.
func (uc *ProductUseCase) List(ctx context.Context, tenantID string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.productRepo.ListByTenant(ctx, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *dto.ToProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// History devuelve el historial de movimientos de un producto, más reciente primero.
func (uc *ProductUseCase) History(ctx context.Context, tenantID string, productID int64, limit, offset int) ([]dto.LedgerEntryResponse, error) {
	p, err := uc.productRepo.Get(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	entries, err := uc.ledgerRepo.ListByProduct(ctx, tenantID, productID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toLedgerResponses(entries), nil
}

// Reconcile compara el stock actual con la suma de deltas del libro.
// Bajo el protocolo del motor siempre deben coincidir; la discrepancia
// indica una escritura que se saltó el protocolo.
func (uc *ProductUseCase) Reconcile(ctx context.Context, tenantID string, productID int64) (*dto.ReconcileResponse, error) {
	p, err := uc.productRepo.Get(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	sum, err := uc.ledgerRepo.SumDeltas(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}
	return &dto.ReconcileResponse{
		ProductID:  productID,
		Stock:      p.Stock,
		LedgerSum:  sum,
		Consistent: p.Stock == sum,
	}, nil
}

func toLedgerResponses(entries []*entity.LedgerEntry) []dto.LedgerEntryResponse {
	out := make([]dto.LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.ToLedgerEntryResponse(e))
	}
	return out
}
