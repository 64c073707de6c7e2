// Package pdf implementa las salidas en PDF del sistema usando Maroto v2:
// el reporte de ventas de un período y las hojas de etiquetas QR de producto.
//
// Layout del reporte de ventas (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda  │  Período del reporte        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Unidades / Ingresos / Costo / GANANCIA            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Producto | Unidades vendidas | Ingresos         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: datos de contacto de la tienda                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 92, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// SalesReportGenerator implementa usecase.SalesReportPDFGenerator usando Maroto v2.
type SalesReportGenerator struct{}

// NewSalesReportGenerator construye el generador.
func NewSalesReportGenerator() *SalesReportGenerator { return &SalesReportGenerator{} }

// GenerateSalesReport genera el PDF del reporte de ventas y devuelve sus bytes.
func (g *SalesReportGenerator) GenerateSalesReport(
	_ context.Context,
	store *entity.Store,
	summary *repository.SalesSummary,
	best []repository.BestSeller,
	from, to time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Ventas", true).
		WithAuthor(store.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(reportHeaderRow(store, from, to))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(bestSellersHeaderRow())
	for _, r := range bestSellerRows(best) {
		m.AddRows(r)
	}
	if len(best) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin ventas registradas en el período.", props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(storeFooterRow(store))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte de ventas: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// reportHeaderRow: nombre de la tienda (izq) y período (der).
func reportHeaderRow(store *entity.Store, from, to time.Time) core.Row {
	periodo := from.Format("02/01/2006") + " – " + to.Format("02/01/2006")
	return row.New(16).Add(
		col.New(7).Add(
			text.New(store.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de ventas", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PERÍODO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(periodo, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
		),
	)
}

// summaryRow: bloque de totales del período en cuatro columnas.
func summaryRow(s *repository.SalesSummary) core.Row {
	cell := func(label, value string, highlight bool) core.Col {
		valueColor := colorGray
		if highlight {
			valueColor = colorPrimary
		}
		return col.New(3).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center,
				Color: colorPrimary, Top: 2,
			}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center,
				Color: valueColor, Top: 8,
			}),
		)
	}
	return row.New(18).Add(
		cell("UNIDADES", fmt.Sprintf("%d", s.UnitsSold), false),
		cell("INGRESOS", "$"+formatMoney(s.Revenue.StringFixed(0)), false),
		cell("COSTO", "$"+formatMoney(s.Cost.StringFixed(0)), false),
		cell("GANANCIA", "$"+formatMoney(s.Profit.StringFixed(0)), true),
	)
}

// bestSellersHeaderRow: cabecera de la tabla de más vendidos.
func bestSellersHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Producto", 6, align.Left),
		h("Unidades", 2, align.Right),
		h("Ingresos", 3, align.Right),
	)
}

// bestSellerRows: una fila por producto, ordenados por unidades vendidas.
func bestSellerRows(best []repository.BestSeller) []core.Row {
	result := make([]core.Row, 0, len(best))
	for i, b := range best {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", i+1),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				b.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", b.UnitsSold),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"$"+formatMoney(b.Revenue.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// storeFooterRow: datos de contacto de la tienda.
func storeFooterRow(store *entity.Store) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Dirección: %s   |   Tel: %s   |   Email: %s",
			nonEmpty(store.Address, "—"),
			nonEmpty(store.Phone, "—"),
			nonEmpty(store.Email, "—"),
		), props.Text{Size: 8, Top: 2, Color: colorGray}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
