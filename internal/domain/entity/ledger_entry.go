package entity

import "time"

// LedgerEntry es el registro inmutable de un cambio de stock (append-only).
// Delta lleva el signo del movimiento: positivo para entradas, negativo para
// salidas, cero para movimientos que solo afectan el inventario dañado.
// Nunca se actualiza; solo se purga como efecto de eliminar el producto
// (excepto la entrada DELETE, que se conserva).
type LedgerEntry struct {
	ID        string
	TenantID  string
	ProductID int64
	Delta     int64
	Kind      string // ledger.Kind*
	Note      *string
	CreatedAt time.Time
}
