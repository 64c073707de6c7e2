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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `tenant_id, product_id, name, category_id, unit, cost_price, retail_price, markup, stock, damaged, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. La PK compuesta (tenant_id, product_id)
// convierte en ErrDuplicate al perdedor de dos altas concurrentes con el mismo id.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		p.TenantID, p.ProductID, p.Name, p.CategoryID, p.Unit,
		p.CostPrice, p.RetailPrice, p.Markup, p.Stock, p.Damaged,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// Get obtiene un producto por tenant e id.
func (r *ProductRepo) Get(ctx context.Context, tenantID string, productID int64) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE tenant_id = $1 AND product_id = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, tenantID, productID))
}

// GetForUpdate obtiene el producto y bloquea su fila (SELECT FOR UPDATE).
// Debe llamarse dentro de una transacción: el lock serializa las mutaciones
// concurrentes sobre el mismo producto hasta el Commit/Rollback.
func (r *ProductRepo) GetForUpdate(ctx context.Context, tenantID string, productID int64) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE tenant_id = $1 AND product_id = $2
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(ctx, query, tenantID, productID))
}

// GetByNameAndCategory busca un producto por nombre y categoría dentro del tenant
// (resolución de identidad en la ingestión por código QR).
func (r *ProductRepo) GetByNameAndCategory(ctx context.Context, tenantID, name string, categoryID int64) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE tenant_id = $1 AND name = $2 AND category_id = $3
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(ctx, query, tenantID, name, categoryID))
}

// NextProductID calcula el siguiente id disponible del tenant (max+1).
// Solo tiene sentido dentro de la transacción del alta.
func (r *ProductRepo) NextProductID(ctx context.Context, tenantID string) (int64, error) {
	var next int64
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(MAX(product_id), 0) + 1 FROM products WHERE tenant_id = $1`,
		tenantID,
	).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next product id: %w", err)
	}
	return next, nil
}

// Update actualiza los datos del producto. El stock no se toca aquí:
// pasa por UpdateQuantities bajo el protocolo del libro de movimientos.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products
		SET name = $3, category_id = $4, unit = $5, cost_price = $6, retail_price = $7, markup = $8, updated_at = $9
		WHERE tenant_id = $1 AND product_id = $2`
	cmd, err := r.q.Exec(ctx, query,
		p.TenantID, p.ProductID, p.Name, p.CategoryID, p.Unit,
		p.CostPrice, p.RetailPrice, p.Markup, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateQuantities escribe los valores absolutos de stock y dañados.
// El CHECK (stock >= 0) de la tabla es la última línea de defensa; la
// validación de stock insuficiente vive en el motor de movimientos.
func (r *ProductRepo) UpdateQuantities(ctx context.Context, tenantID string, productID, stock, damaged int64) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET stock = $3, damaged = $4, updated_at = now() WHERE tenant_id = $1 AND product_id = $2`,
		tenantID, productID, stock, damaged,
	)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInsufficientStock
		}
		return fmt.Errorf("update quantities: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByTenant lista productos del tenant con paginación.
func (r *ProductRepo) ListByTenant(ctx context.Context, tenantID string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE tenant_id = $1 ORDER BY product_id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.TenantID, &p.ProductID, &p.Name, &p.CategoryID, &p.Unit,
			&p.CostPrice, &p.RetailPrice, &p.Markup, &p.Stock, &p.Damaged,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina la fila del producto. La purga del libro y la entrada DELETE
// corren en la misma transacción (ver el motor de movimientos).
func (r *ProductRepo) Delete(ctx context.Context, tenantID string, productID int64) error {
	_, err := r.q.Exec(ctx,
		`DELETE FROM products WHERE tenant_id = $1 AND product_id = $2`,
		tenantID, productID,
	)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// CountByUnit cuenta productos del tenant que referencian la unidad por nombre.
func (r *ProductRepo) CountByUnit(ctx context.Context, tenantID, unitName string) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE tenant_id = $1 AND unit = $2`,
		tenantID, unitName,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count products by unit: %w", err)
	}
	return n, nil
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.TenantID, &p.ProductID, &p.Name, &p.CategoryID, &p.Unit,
		&p.CostPrice, &p.RetailPrice, &p.Markup, &p.Stock, &p.Damaged,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}
