package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario de una tienda.
// La clave es compuesta: (TenantID, ProductID); el ProductID es un entero
// consecutivo por tenant (se asigna max+1 dentro de la transacción de alta).
// Stock y Damaged nunca son negativos; todo cambio de Stock escribe una
// entrada en el libro de movimientos dentro de la misma transacción.
type Product struct {
	TenantID    string
	ProductID   int64
	Name        string
	CategoryID  int64
	Unit        string          // nombre de la unidad de medida (referencia a units.name)
	CostPrice   decimal.Decimal
	RetailPrice decimal.Decimal  // cero => se deriva de CostPrice con el markup por defecto
	Markup      *decimal.Decimal // % de ganancia propio del producto (nil = usar el del usuario)
	Stock       int64
	Damaged     int64 // unidades rechazadas, fuera de venta
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EffectivePrice precio de venta efectivo: RetailPrice si es mayor a cero;
// si no, se deriva del costo con el markup del producto (o defaultMarkup si
// el producto no tiene uno propio), redondeado a 2 decimales.
func (p *Product) EffectivePrice(defaultMarkup decimal.Decimal) decimal.Decimal {
	if p.RetailPrice.GreaterThan(decimal.Zero) {
		return p.RetailPrice
	}
	markup := defaultMarkup
	if p.Markup != nil {
		markup = *p.Markup
	}
	factor := decimal.NewFromInt(1).Add(markup.Div(decimal.NewFromInt(100)))
	return p.CostPrice.Mul(factor).Round(2)
}
