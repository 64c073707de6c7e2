package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	domledger "github.com/jhoicas/PuntoVenta-api/internal/domain/ledger"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
	"github.com/jhoicas/PuntoVenta-api/pkg/validator"
)

// ManualProductInput datos del alta o edición manual de un producto.
// Stock es el valor ABSOLUTO deseado, no un delta.
type ManualProductInput struct {
	ProductID   *int64           `json:"product_id" validate:"omitempty,min=1"`
	Name        string           `json:"name" validate:"required,min=1,max=200"`
	CategoryID  int64            `json:"category_id" validate:"required,min=1"`
	Unit        string           `json:"unit" validate:"required"`
	CostPrice   decimal.Decimal  `json:"cost_price" validate:"-"`
	RetailPrice decimal.Decimal  `json:"retail_price" validate:"-"`
	Markup      *decimal.Decimal `json:"markup" validate:"-"`
	Stock       int64            `json:"stock" validate:"min=0"`
}

// ManualUpsert crea o edita un producto con valor de stock absoluto.
// Es la excepción documentada al protocolo de movimientos: se registra el
// delta NETO (nuevo - anterior) como STOCK-IN si es positivo, STOCK-REMOVAL
// si es negativo, y nada si el stock no cambió. El alta registra un
// STOCK-IN con el stock inicial.
func (uc *StockLedgerUseCase) ManualUpsert(ctx context.Context, tenantID string, in ManualProductInput) (*entity.Product, error) {
	if errs := validator.ValidateStruct(in); errs != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.CostPrice.IsNegative() || in.RetailPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	var out *entity.Product
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		ledgerRepo repository.LedgerRepository,
	) error {
		now := time.Now()
		note := "Manual edit"

		var existing *entity.Product
		var err error
		if in.ProductID != nil {
			existing, err = productRepo.GetForUpdate(ctx, tenantID, *in.ProductID)
			if err != nil {
				return err
			}
		}

		if existing == nil {
			productID := int64(0)
			if in.ProductID != nil {
				productID = *in.ProductID
			} else {
				productID, err = productRepo.NextProductID(ctx, tenantID)
				if err != nil {
					return err
				}
			}
			p := &entity.Product{
				TenantID:    tenantID,
				ProductID:   productID,
				Name:        in.Name,
				CategoryID:  in.CategoryID,
				Unit:        in.Unit,
				CostPrice:   in.CostPrice,
				RetailPrice: in.RetailPrice,
				Markup:      in.Markup,
				Stock:       in.Stock,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := productRepo.Create(ctx, p); err != nil {
				return err
			}
			out = p
			if in.Stock == 0 {
				return nil
			}
			return ledgerRepo.Append(ctx, &entity.LedgerEntry{
				TenantID:  tenantID,
				ProductID: productID,
				Delta:     in.Stock,
				Kind:      domledger.KindStockIn,
				Note:      &note,
			})
		}

		// Edición: el delta neto decide qué (y si) se registra.
		delta := in.Stock - existing.Stock

		existing.Name = in.Name
		existing.CategoryID = in.CategoryID
		existing.Unit = in.Unit
		existing.CostPrice = in.CostPrice
		existing.RetailPrice = in.RetailPrice
		existing.Markup = in.Markup
		existing.UpdatedAt = now
		if err := productRepo.Update(ctx, existing); err != nil {
			return err
		}
		if err := productRepo.UpdateQuantities(ctx, tenantID, existing.ProductID, in.Stock, existing.Damaged); err != nil {
			return err
		}
		existing.Stock = in.Stock
		out = existing

		if delta == 0 {
			return nil
		}
		kind := domledger.KindStockIn
		if delta < 0 {
			kind = domledger.KindRemoval
		}
		return ledgerRepo.Append(ctx, &entity.LedgerEntry{
			TenantID:  tenantID,
			ProductID: existing.ProductID,
			Delta:     delta,
			Kind:      kind,
			Note:      &note,
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
