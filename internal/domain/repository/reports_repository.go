package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Niveles de alerta de stock.
const (
	StockLevelOut = "out" // agotado
	StockLevelLow = "low" // por debajo del umbral
	StockLevelOK  = "ok"
)

// SalesSummary totales de venta de un período (proyección de solo lectura).
type SalesSummary struct {
	UnitsSold int64
	Revenue   decimal.Decimal // a precio de venta (con backfill de markup)
	Cost      decimal.Decimal
	Profit    decimal.Decimal
}

// BestSeller producto con mayor volumen de venta en el período.
type BestSeller struct {
	ProductID int64
	Name      string
	UnitsSold int64
	Revenue   decimal.Decimal
}

// StockAlert clasificación de un producto según su stock actual.
type StockAlert struct {
	ProductID int64
	Name      string
	Stock     int64
	Level     string // out | low | ok
}

// ReportsRepository consultas agregadas de solo lectura sobre productos y
// libro de movimientos. Sin invariantes propios: no muta nada.
// Donde retail_price es cero, el precio se deriva como
// cost_price * (1 + markup/100), con el markup del producto o el
// default_markup del admin, redondeado a 2 decimales.
type ReportsRepository interface {
	SalesSummary(ctx context.Context, tenantID string, from, to time.Time) (*SalesSummary, error)
	BestSellers(ctx context.Context, tenantID string, from, to time.Time, limit int) ([]BestSeller, error)
	StockAlerts(ctx context.Context, tenantID string, lowThreshold int64) ([]StockAlert, error)
}
