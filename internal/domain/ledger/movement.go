package ledger

import "strings"

// Tipos de movimiento del libro de stock.
const (
	KindStockIn        = "STOCK-IN"
	KindStockOut       = "STOCK-OUT"
	KindRemoval        = "STOCK-REMOVAL"
	KindReject         = "REJECT"
	KindCustomerReturn = "CUSTOMER-RETURN"
	KindRefund         = "REFUND"
	KindDispose        = "DISPOSE"
	KindDelete         = "DELETE"
)

// Movement describe la política de un tipo de movimiento (servicio de dominio).
// Todos los movimientos comparten el mismo esqueleto transaccional
// (bloquear fila -> validar -> mutar -> registrar); lo que varía entre ellos
// es exactamente lo que parametriza este valor.
type Movement struct {
	Kind            string
	StockSign       int    // +1 entrada, -1 salida, 0 no toca stock vendible
	DamagedSign     int    // +1 mueve a dañados (reject), -1 saca de dañados (dispose)
	RequiresStock   bool   // falla con ErrInsufficientStock si qty > stock actual
	RequiresDamaged bool   // falla con ErrInsufficientStock si qty > dañados actual
	NoteSuffix      string // se añade a la nota del usuario en la entrada del libro
}

// Políticas por tipo de movimiento.
var (
	StockIn        = Movement{Kind: KindStockIn, StockSign: +1}
	StockOut       = Movement{Kind: KindStockOut, StockSign: -1, RequiresStock: true}
	Removal        = Movement{Kind: KindRemoval, StockSign: -1, RequiresStock: true}
	Reject         = Movement{Kind: KindReject, StockSign: -1, DamagedSign: +1, RequiresStock: true, NoteSuffix: "[Moved to damaged inventory - NOT FOR SALE]"}
	CustomerReturn = Movement{Kind: KindCustomerReturn, StockSign: +1, NoteSuffix: "[Returned by customer]"}
	Refund         = Movement{Kind: KindRefund, StockSign: -1, RequiresStock: true, NoteSuffix: "[Refunded to supplier]"}
	Dispose        = Movement{Kind: KindDispose, DamagedSign: -1, RequiresDamaged: true, NoteSuffix: "[Disposed from damaged inventory]"}
	Delete         = Movement{Kind: KindDelete, StockSign: -1, NoteSuffix: "[Product deleted - stock written off]"}
)

// StockDelta devuelve el delta firmado que el movimiento aplica al stock vendible.
func (m Movement) StockDelta(qty int64) int64 {
	return int64(m.StockSign) * qty
}

// DamagedDelta devuelve el delta firmado que el movimiento aplica al inventario dañado.
func (m Movement) DamagedDelta(qty int64) int64 {
	return int64(m.DamagedSign) * qty
}

// Note compone la nota de la entrada del libro: la razón del usuario más el
// sufijo propio del movimiento. Devuelve nil si ambos están vacíos.
func (m Movement) Note(reason string) *string {
	parts := make([]string, 0, 2)
	if s := strings.TrimSpace(reason); s != "" {
		parts = append(parts, s)
	}
	if m.NoteSuffix != "" {
		parts = append(parts, m.NoteSuffix)
	}
	if len(parts) == 0 {
		return nil
	}
	note := strings.Join(parts, " ")
	return &note
}
