package ledger

import (
	"context"

	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	domledger "github.com/jhoicas/PuntoVenta-api/internal/domain/ledger"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// StockLedgerUseCase aplica movimientos de stock de forma transaccional:
// cada mutación de products.stock y su entrada append-only en stock_ledger
// se confirman juntas o no se confirman, con bloqueo de fila
// (SELECT FOR UPDATE) que serializa mutaciones concurrentes del mismo producto.
type StockLedgerUseCase struct {
	txRunner TxRunner
}

// NewStockLedgerUseCase construye el caso de uso.
func NewStockLedgerUseCase(txRunner TxRunner) *StockLedgerUseCase {
	return &StockLedgerUseCase{txRunner: txRunner}
}

// applyMovement es el esqueleto común de todos los movimientos:
// bloquear fila -> validar -> mutar cantidades -> registrar entrada -> commit.
// Cualquier fallo entre el lock y el registro revierte la transacción entera;
// nunca queda estado parcial visible.
func (uc *StockLedgerUseCase) applyMovement(
	ctx context.Context,
	tenantID string,
	productID, qty int64,
	reason string,
	mov domledger.Movement,
) error {
	if qty <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		ledgerRepo repository.LedgerRepository,
	) error {
		p, err := productRepo.GetForUpdate(ctx, tenantID, productID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		if mov.RequiresStock && qty > p.Stock {
			return domain.ErrInsufficientStock
		}
		if mov.RequiresDamaged && qty > p.Damaged {
			return domain.ErrInsufficientStock
		}
		newStock := p.Stock + mov.StockDelta(qty)
		newDamaged := p.Damaged + mov.DamagedDelta(qty)
		if err := productRepo.UpdateQuantities(ctx, tenantID, productID, newStock, newDamaged); err != nil {
			return err
		}
		return ledgerRepo.Append(ctx, &entity.LedgerEntry{
			TenantID:  tenantID,
			ProductID: productID,
			Delta:     mov.StockDelta(qty),
			Kind:      mov.Kind,
			Note:      mov.Note(reason),
		})
	})
}

// StockIn suma unidades al stock (entrada manual o por proveedor).
func (uc *StockLedgerUseCase) StockIn(ctx context.Context, tenantID string, productID, qty int64, sourceNote string) error {
	return uc.applyMovement(ctx, tenantID, productID, qty, sourceNote, domledger.StockIn)
}

// Sell descuenta unidades vendidas; falla con ErrInsufficientStock si no alcanzan.
func (uc *StockLedgerUseCase) Sell(ctx context.Context, tenantID string, productID, qty int64) error {
	return uc.applyMovement(ctx, tenantID, productID, qty, "", domledger.StockOut)
}

// RemoveStock retiro manual de unidades del stock vendible.
func (uc *StockLedgerUseCase) RemoveStock(ctx context.Context, tenantID string, productID, qty int64, reason string) error {
	return uc.applyMovement(ctx, tenantID, productID, qty, reason, domledger.Removal)
}

// Reject mueve unidades del stock vendible al inventario dañado
// (stock -qty, damaged +qty, una sola entrada REJECT).
func (uc *StockLedgerUseCase) Reject(ctx context.Context, tenantID string, productID, qty int64, reason string) error {
	return uc.applyMovement(ctx, tenantID, productID, qty, reason, domledger.Reject)
}

// CustomerReturn reingresa unidades devueltas por un cliente (siempre aditivo).
func (uc *StockLedgerUseCase) CustomerReturn(ctx context.Context, tenantID string, productID, qty int64, reason string) error {
	return uc.applyMovement(ctx, tenantID, productID, qty, reason, domledger.CustomerReturn)
}

// Refund devuelve unidades al proveedor (salida del stock vendible).
func (uc *StockLedgerUseCase) Refund(ctx context.Context, tenantID string, productID, qty int64, reason string) error {
	return uc.applyMovement(ctx, tenantID, productID, qty, reason, domledger.Refund)
}

// Dispose da de baja unidades del inventario dañado. No toca el stock
// vendible: la entrada DISPOSE lleva delta 0 y la baja queda en damaged.
func (uc *StockLedgerUseCase) Dispose(ctx context.Context, tenantID string, productID, qty int64, reason string) error {
	return uc.applyMovement(ctx, tenantID, productID, qty, reason, domledger.Dispose)
}

// DeleteProduct elimina el producto y todo su historial, dejando una única
// entrada DELETE con el negativo del stock al momento del borrado.
// Devuelve false (sin error) si el producto no existe para el tenant.
func (uc *StockLedgerUseCase) DeleteProduct(ctx context.Context, tenantID string, productID int64) (bool, error) {
	found := false
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		ledgerRepo repository.LedgerRepository,
	) error {
		p, err := productRepo.GetForUpdate(ctx, tenantID, productID)
		if err != nil {
			return err
		}
		if p == nil {
			return nil
		}
		found = true
		// Purga primero, registra después: la entrada DELETE es la única que sobrevive.
		if _, err := ledgerRepo.PurgeByProduct(ctx, tenantID, productID); err != nil {
			return err
		}
		if err := ledgerRepo.Append(ctx, &entity.LedgerEntry{
			TenantID:  tenantID,
			ProductID: productID,
			Delta:     -p.Stock,
			Kind:      domledger.KindDelete,
			Note:      domledger.Delete.Note(""),
		}); err != nil {
			return err
		}
		return productRepo.Delete(ctx, tenantID, productID)
	})
	if err != nil {
		return false, err
	}
	return found, nil
}
