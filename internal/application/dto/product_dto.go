package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ProductID   int64            `json:"product_id"`
	Name        string           `json:"name"`
	CategoryID  int64            `json:"category_id"`
	Unit        string           `json:"unit"`
	CostPrice   decimal.Decimal  `json:"cost_price"`
	RetailPrice decimal.Decimal  `json:"retail_price"`
	Markup      *decimal.Decimal `json:"markup,omitempty"`
	Stock       int64            `json:"stock"`
	Damaged     int64            `json:"damaged"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ToProductResponse mapea la entidad a su respuesta.
func ToProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ProductID:   p.ProductID,
		Name:        p.Name,
		CategoryID:  p.CategoryID,
		Unit:        p.Unit,
		CostPrice:   p.CostPrice,
		RetailPrice: p.RetailPrice,
		Markup:      p.Markup,
		Stock:       p.Stock,
		Damaged:     p.Damaged,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ReconcileResponse resultado de contrastar el stock con la suma del libro.
type ReconcileResponse struct {
	ProductID  int64 `json:"product_id"`
	Stock      int64 `json:"stock"`
	LedgerSum  int64 `json:"ledger_sum"`
	Consistent bool  `json:"consistent"`
}
