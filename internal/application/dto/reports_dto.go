package dto

import "github.com/shopspring/decimal"

// ReportRangeRequest rango de fechas para reportes de ventas.
type ReportRangeRequest struct {
	StartDate string `query:"start_date"` // YYYY-MM-DD; por defecto primer día del mes actual
	EndDate   string `query:"end_date"`   // YYYY-MM-DD; por defecto hoy
}

// SalesSummaryResponse totales de venta del período.
// Donde el producto no tiene precio de venta, los ingresos se derivan del
// costo más el % de ganancia por defecto del usuario.
type SalesSummaryResponse struct {
	UnitsSold int64           `json:"units_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
	Cost      decimal.Decimal `json:"cost"`
	Profit    decimal.Decimal `json:"profit"`
}

// BestSellerResponse producto más vendido del período.
type BestSellerResponse struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	UnitsSold int64           `json:"units_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// StockAlertResponse clasificación de un producto por nivel de stock.
type StockAlertResponse struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Stock     int64  `json:"stock"`
	Level     string `json:"level"` // out | low | ok
}

// LabelsRequest body para POST /api/reports/labels (hoja de etiquetas QR).
// IDs vacío genera etiquetas para todos los productos del tenant.
type LabelsRequest struct {
	IDs []int64 `json:"ids,omitempty"`
}
