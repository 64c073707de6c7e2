package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación de StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	pool *pgxpool.Pool
}

// NewStoreRepository construye el adaptador.
func NewStoreRepository(pool *pgxpool.Pool) *StoreRepo {
	return &StoreRepo{pool: pool}
}

// Get obtiene los metadatos de tienda del tenant.
func (r *StoreRepo) Get(ctx context.Context, tenantID string) (*entity.Store, error) {
	var s entity.Store
	err := r.pool.QueryRow(ctx,
		`SELECT tenant_id, name, address, phone, email, updated_at FROM stores WHERE tenant_id = $1`,
		tenantID,
	).Scan(&s.TenantID, &s.Name, &s.Address, &s.Phone, &s.Email, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza los metadatos de tienda (uno a uno con el tenant).
func (r *StoreRepo) Upsert(ctx context.Context, s *entity.Store) error {
	query := `
		INSERT INTO stores (tenant_id, name, address, phone, email, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (tenant_id)
		DO UPDATE SET name = EXCLUDED.name, address = EXCLUDED.address,
		              phone = EXCLUDED.phone, email = EXCLUDED.email, updated_at = now()`
	_, err := r.pool.Exec(ctx, query, s.TenantID, s.Name, s.Address, s.Phone, s.Email)
	if err != nil {
		return fmt.Errorf("upsert store: %w", err)
	}
	return nil
}
