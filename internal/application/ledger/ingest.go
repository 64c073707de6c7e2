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

// QRPayload es el JSON que trae un código QR de producto.
// id es opcional: si falta, la identidad se resuelve por (name, category_id)
// y si tampoco existe se asigna el siguiente id del tenant.
type QRPayload struct {
	ID         *int64          `json:"id" validate:"omitempty,min=1"`
	Name       string          `json:"name" validate:"required,min=1,max=200"`
	CategoryID int64           `json:"category_id" validate:"required,min=1"`
	CostPrice  decimal.Decimal `json:"cost_price"`
	Stock      int64           `json:"stock" validate:"min=0"`
	Unit       string          `json:"unit" validate:"required"`
}

// IngestQR registra la entrada de stock de un escaneo QR. La resolución de
// identidad (id explícito, búsqueda por nombre+categoría o asignación de
// id nuevo) corre dentro de la misma transacción que el alta y la entrada
// STOCK-IN; la PK (tenant_id, product_id) convierte en ErrDuplicate al
// perdedor de dos ingestas concurrentes que calculen el mismo id.
func (uc *StockLedgerUseCase) IngestQR(ctx context.Context, tenantID string, in QRPayload) (*entity.Product, error) {
	if errs := validator.ValidateStruct(in); errs != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.CostPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	var out *entity.Product
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		ledgerRepo repository.LedgerRepository,
	) error {
		var p *entity.Product
		var err error
		if in.ID != nil {
			p, err = productRepo.GetForUpdate(ctx, tenantID, *in.ID)
		} else {
			p, err = productRepo.GetByNameAndCategory(ctx, tenantID, in.Name, in.CategoryID)
		}
		if err != nil {
			return err
		}

		now := time.Now()
		note := "Added via QR code scan"

		if p == nil {
			productID := int64(0)
			if in.ID != nil {
				productID = *in.ID
			} else {
				productID, err = productRepo.NextProductID(ctx, tenantID)
				if err != nil {
					return err
				}
			}
			p = &entity.Product{
				TenantID:    tenantID,
				ProductID:   productID,
				Name:        in.Name,
				CategoryID:  in.CategoryID,
				Unit:        in.Unit,
				CostPrice:   in.CostPrice,
				RetailPrice: decimal.Zero,
				Stock:       in.Stock,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := productRepo.Create(ctx, p); err != nil {
				return err
			}
		} else {
			if err := productRepo.UpdateQuantities(ctx, tenantID, p.ProductID, p.Stock+in.Stock, p.Damaged); err != nil {
				return err
			}
			p.Stock += in.Stock
		}

		out = p
		return ledgerRepo.Append(ctx, &entity.LedgerEntry{
			TenantID:  tenantID,
			ProductID: p.ProductID,
			Delta:     in.Stock,
			Kind:      domledger.KindStockIn,
			Note:      &note,
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
