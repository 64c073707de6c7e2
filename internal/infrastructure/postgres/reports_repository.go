package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

var _ repository.ReportsRepository = (*ReportsRepo)(nil)

// ReportsRepo consultas de solo lectura sobre productos y libro de movimientos.
// Siempre va contra el pool: nunca participa en transacciones.
type ReportsRepo struct {
	pool *pgxpool.Pool
}

// NewReportsRepository construye el adaptador de reportes.
func NewReportsRepository(pool *pgxpool.Pool) *ReportsRepo {
	return &ReportsRepo{pool: pool}
}

// effectivePrice: precio de venta con backfill. Donde retail_price es cero se
// deriva como cost_price * (1 + markup/100), con el markup del producto o, en
// su defecto, el default_markup del admin dueño, redondeado a 2 decimales.
// Misma regla que entity.Product.EffectivePrice.
const effectivePrice = `
	CASE WHEN p.retail_price > 0 THEN p.retail_price
	     ELSE ROUND(p.cost_price * (1 + COALESCE(p.markup, u.default_markup) / 100), 2)
	END`

// SalesSummary devuelve unidades vendidas, ingresos, costo y ganancia del
// período, sobre las entradas STOCK-OUT del libro (deltas negativos).
// COALESCE garantiza ceros en períodos sin ventas.
func (r *ReportsRepo) SalesSummary(ctx context.Context, tenantID string, from, to time.Time) (*repository.SalesSummary, error) {
	query := `
	SELECT
	    COALESCE(SUM(-l.delta), 0)                                AS units_sold,
	    COALESCE(SUM(-l.delta * (` + effectivePrice + `)), 0)     AS revenue,
	    COALESCE(SUM(-l.delta * p.cost_price), 0)                 AS cost
	FROM stock_ledger l
	JOIN products p ON p.tenant_id = l.tenant_id AND p.product_id = l.product_id
	JOIN users    u ON u.id = l.tenant_id
	WHERE l.tenant_id = $1
	  AND l.kind = 'STOCK-OUT'
	  AND l.created_at BETWEEN $2 AND $3`

	var s repository.SalesSummary
	err := r.pool.QueryRow(ctx, query, tenantID, from, to).
		Scan(&s.UnitsSold, &s.Revenue, &s.Cost)
	if err != nil {
		return nil, fmt.Errorf("reports.SalesSummary: %w", err)
	}
	s.Profit = s.Revenue.Sub(s.Cost)
	return &s, nil
}

// BestSellers devuelve los `limit` productos con más unidades vendidas en el período.
func (r *ReportsRepo) BestSellers(ctx context.Context, tenantID string, from, to time.Time, limit int) ([]repository.BestSeller, error) {
	query := `
	SELECT
	    p.product_id,
	    p.name,
	    SUM(-l.delta)                              AS units_sold,
	    SUM(-l.delta * (` + effectivePrice + `))   AS revenue
	FROM stock_ledger l
	JOIN products p ON p.tenant_id = l.tenant_id AND p.product_id = l.product_id
	JOIN users    u ON u.id = l.tenant_id
	WHERE l.tenant_id = $1
	  AND l.kind = 'STOCK-OUT'
	  AND l.created_at BETWEEN $2 AND $3
	GROUP BY p.product_id, p.name
	ORDER BY units_sold DESC
	LIMIT $4`

	rows, err := r.pool.Query(ctx, query, tenantID, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.BestSellers: %w", err)
	}
	defer rows.Close()

	results := []repository.BestSeller{}
	for rows.Next() {
		var b repository.BestSeller
		if err := rows.Scan(&b.ProductID, &b.Name, &b.UnitsSold, &b.Revenue); err != nil {
			return nil, fmt.Errorf("reports.BestSellers scan: %w", err)
		}
		results = append(results, b)
	}
	return results, rows.Err()
}

// StockAlerts clasifica los productos del tenant según su stock actual:
// out (agotado), low (bajo el umbral) u ok.
func (r *ReportsRepo) StockAlerts(ctx context.Context, tenantID string, lowThreshold int64) ([]repository.StockAlert, error) {
	query := `
	SELECT
	    product_id,
	    name,
	    stock,
	    CASE WHEN stock = 0 THEN 'out'
	         WHEN stock <= $2 THEN 'low'
	         ELSE 'ok'
	    END AS level
	FROM products
	WHERE tenant_id = $1
	ORDER BY stock ASC, name`

	rows, err := r.pool.Query(ctx, query, tenantID, lowThreshold)
	if err != nil {
		return nil, fmt.Errorf("reports.StockAlerts: %w", err)
	}
	defer rows.Close()

	results := []repository.StockAlert{}
	for rows.Next() {
		var a repository.StockAlert
		if err := rows.Scan(&a.ProductID, &a.Name, &a.Stock, &a.Level); err != nil {
			return nil, fmt.Errorf("reports.StockAlerts scan: %w", err)
		}
		results = append(results, a)
	}
	return results, rows.Err()
}
