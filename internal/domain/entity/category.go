package entity

import "time"

// Category categoría de productos, aislada por tenant.
type Category struct {
	ID        int64
	TenantID  string
	Name      string
	CreatedAt time.Time
}

// Unit unidad de medida (pieza, kilo, litro...), aislada por tenant.
// No se puede eliminar mientras algún producto la referencie por nombre.
type Unit struct {
	ID        int64
	TenantID  string
	Name      string
	CreatedAt time.Time
}
