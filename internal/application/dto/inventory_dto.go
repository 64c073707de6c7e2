package dto

import (
	"time"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

// MovementRequest body común para los endpoints de movimientos de stock
// (entrada, venta, remoción, rechazo, devolución, reembolso, desecho).
type MovementRequest struct {
	Quantity int64  `json:"quantity" validate:"required,min=1"`
	Reason   string `json:"reason,omitempty"`
}

// LedgerEntryResponse entrada del libro de movimientos en respuestas.
type LedgerEntryResponse struct {
	ID        string    `json:"id"`
	ProductID int64     `json:"product_id"`
	Delta     int64     `json:"delta"`
	Kind      string    `json:"kind"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ToLedgerEntryResponse mapea la entidad a su respuesta.
func ToLedgerEntryResponse(e *entity.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:        e.ID,
		ProductID: e.ProductID,
		Delta:     e.Delta,
		Kind:      e.Kind,
		Note:      e.Note,
		CreatedAt: e.CreatedAt,
	}
}

// LedgerExportRequest parámetros para GET /api/ledger.
type LedgerExportRequest struct {
	StartDate string `query:"start_date"` // YYYY-MM-DD; opcional
	EndDate   string `query:"end_date"`   // YYYY-MM-DD; opcional
	PageRequest
}
