package repository

import (
	"context"
	"time"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

// LedgerRepository define el puerto para el libro de movimientos de stock.
// Las entradas son append-only: nunca se actualizan; solo se purgan como
// efecto de eliminar el producto (la entrada DELETE se escribe después de la
// purga y por eso sobrevive).
type LedgerRepository interface {
	Append(ctx context.Context, entry *entity.LedgerEntry) error
	ListByProduct(ctx context.Context, tenantID string, productID int64, limit, offset int) ([]*entity.LedgerEntry, error)
	ListByTenant(ctx context.Context, tenantID string, from, to *time.Time, limit, offset int) ([]*entity.LedgerEntry, error)
	// SumDeltas suma los deltas firmados del producto; debe reconciliar con
	// products.stock desde el último reset (alta o edición manual absoluta).
	SumDeltas(ctx context.Context, tenantID string, productID int64) (int64, error)
	PurgeByProduct(ctx context.Context, tenantID string, productID int64) (int64, error)
}
