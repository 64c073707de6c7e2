package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

const ledgerColumns = `id, tenant_id, product_id, delta, kind, note, created_at`

// LedgerRepo implementación del libro de movimientos sobre PostgreSQL (usable con pool o tx).
// La tabla stock_ledger es append-mostly: INSERT por cada mutación de stock,
// DELETE solo en la purga asociada al borrado del producto.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// Append persiste una entrada del libro.
func (r *LedgerRepo) Append(ctx context.Context, e *entity.LedgerEntry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	query := `
		INSERT INTO stock_ledger (` + ledgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.TenantID, e.ProductID, e.Delta, e.Kind, e.Note, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append ledger entry: %w", err)
	}
	return nil
}

// ListByProduct lista el historial de un producto, más reciente primero.
func (r *LedgerRepo) ListByProduct(ctx context.Context, tenantID string, productID int64, limit, offset int) ([]*entity.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM stock_ledger WHERE tenant_id = $1 AND product_id = $2
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, tenantID, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ledger by product: %w", err)
	}
	defer rows.Close()
	var list []*entity.LedgerEntry
	for rows.Next() {
		var e entity.LedgerEntry
		if err := rows.Scan(&e.ID, &e.TenantID, &e.ProductID, &e.Delta, &e.Kind, &e.Note, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// ListByTenant lista movimientos del tenant en un rango de fechas (export de auditoría).
func (r *LedgerRepo) ListByTenant(ctx context.Context, tenantID string, from, to *time.Time, limit, offset int) ([]*entity.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM stock_ledger WHERE tenant_id = $1`
	args := []any{tenantID}
	pos := 2
	if from != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ledger by tenant: %w", err)
	}
	defer rows.Close()
	var list []*entity.LedgerEntry
	for rows.Next() {
		var e entity.LedgerEntry
		if err := rows.Scan(&e.ID, &e.TenantID, &e.ProductID, &e.Delta, &e.Kind, &e.Note, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// SumDeltas suma los deltas firmados de un producto.
func (r *LedgerRepo) SumDeltas(ctx context.Context, tenantID string, productID int64) (int64, error) {
	var sum int64
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(delta), 0) FROM stock_ledger WHERE tenant_id = $1 AND product_id = $2`,
		tenantID, productID,
	).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("sum ledger deltas: %w", err)
	}
	return sum, nil
}

// PurgeByProduct borra todo el historial del producto y devuelve cuántas
// entradas se eliminaron. La entrada DELETE se escribe después de la purga
// en la misma transacción, por eso es la única que sobrevive.
func (r *LedgerRepo) PurgeByProduct(ctx context.Context, tenantID string, productID int64) (int64, error) {
	cmd, err := r.q.Exec(ctx,
		`DELETE FROM stock_ledger WHERE tenant_id = $1 AND product_id = $2`,
		tenantID, productID,
	)
	if err != nil {
		return 0, fmt.Errorf("purge ledger entries: %w", err)
	}
	return cmd.RowsAffected(), nil
}
