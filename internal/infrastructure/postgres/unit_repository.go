package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

var _ repository.UnitRepository = (*UnitRepo)(nil)

// UnitRepo implementación de UnitRepository sobre PostgreSQL (usable con pool o tx).
type UnitRepo struct {
	q Querier
}

// NewUnitRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUnitRepository(q Querier) *UnitRepo {
	return &UnitRepo{q: q}
}

// Create persiste una unidad; el nombre es único por tenant.
func (r *UnitRepo) Create(ctx context.Context, u *entity.Unit) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO units (tenant_id, name, created_at) VALUES ($1, $2, $3) RETURNING id`,
		u.TenantID, u.Name, u.CreatedAt,
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert unit: %w", err)
	}
	return nil
}

// GetByID obtiene una unidad por tenant e id.
func (r *UnitRepo) GetByID(ctx context.Context, tenantID string, id int64) (*entity.Unit, error) {
	var u entity.Unit
	err := r.q.QueryRow(ctx,
		`SELECT id, tenant_id, name, created_at FROM units WHERE tenant_id = $1 AND id = $2`,
		tenantID, id,
	).Scan(&u.ID, &u.TenantID, &u.Name, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit: %w", err)
	}
	return &u, nil
}

// ListByTenant lista las unidades del tenant ordenadas por nombre.
func (r *UnitRepo) ListByTenant(ctx context.Context, tenantID string) ([]*entity.Unit, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, tenant_id, name, created_at FROM units WHERE tenant_id = $1 ORDER BY name`,
		tenantID,
	)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()
	var list []*entity.Unit
	for rows.Next() {
		var u entity.Unit
		if err := rows.Scan(&u.ID, &u.TenantID, &u.Name, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Delete elimina una unidad. La protección contra unidades referenciadas por
// productos vive en el caso de uso, dentro de la misma transacción.
func (r *UnitRepo) Delete(ctx context.Context, tenantID string, id int64) error {
	cmd, err := r.q.Exec(ctx,
		`DELETE FROM units WHERE tenant_id = $1 AND id = $2`,
		tenantID, id,
	)
	if err != nil {
		return fmt.Errorf("delete unit: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
