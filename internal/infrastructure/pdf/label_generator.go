package pdf

import (
	"context"
	"encoding/json"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

// labelsPerRow etiquetas por fila en la hoja A4.
const labelsPerRow = 3

// labelPayload es el JSON que se codifica en el QR de cada etiqueta.
// Es el mismo formato que acepta el endpoint de ingesta por escaneo;
// stock va en cero para que el escáner indique la cantidad al momento
// de registrar la entrada.
type labelPayload struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	CategoryID int64           `json:"category_id"`
	CostPrice  decimal.Decimal `json:"cost_price"`
	Stock      int64           `json:"stock"`
	Unit       string          `json:"unit"`
}

// LabelGenerator implementa usecase.LabelPDFGenerator usando Maroto v2.
type LabelGenerator struct{}

// NewLabelGenerator construye el generador.
func NewLabelGenerator() *LabelGenerator { return &LabelGenerator{} }

// GenerateLabels genera la hoja de etiquetas QR y devuelve sus bytes.
// defaultMarkup deriva el precio impreso cuando el producto no tiene
// retail_price (misma regla que los reportes de venta).
func (g *LabelGenerator) GenerateLabels(_ context.Context, products []*entity.Product, defaultMarkup decimal.Decimal) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Etiquetas QR de productos", true).
		Build()

	m := maroto.New(cfg)

	for i := 0; i < len(products); i += labelsPerRow {
		end := i + labelsPerRow
		if end > len(products) {
			end = len(products)
		}
		r, err := labelRow(products[i:end], defaultMarkup)
		if err != nil {
			return nil, err
		}
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar etiquetas: %w", err)
	}
	return doc.GetBytes(), nil
}

// labelRow: hasta labelsPerRow etiquetas (QR + nombre + id + precio) en una fila.
func labelRow(products []*entity.Product, defaultMarkup decimal.Decimal) (core.Row, error) {
	cols := make([]core.Col, 0, labelsPerRow)
	for _, p := range products {
		payload, err := json.Marshal(labelPayload{
			ID:         p.ProductID,
			Name:       p.Name,
			CategoryID: p.CategoryID,
			CostPrice:  p.CostPrice,
			Unit:       p.Unit,
		})
		if err != nil {
			return nil, fmt.Errorf("pdf: codificar etiqueta del producto %d: %w", p.ProductID, err)
		}
		cols = append(cols, col.New(4).Add(
			code.NewQr(string(payload), props.Rect{Percent: 75, Center: true}),
			text.New(p.Name, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 38,
			}),
			text.New(fmt.Sprintf("#%d  ·  %s", p.ProductID, p.Unit), props.Text{
				Size: 7, Align: align.Center, Color: colorGray, Top: 43,
			}),
			text.New("$"+formatMoney(p.EffectivePrice(defaultMarkup).StringFixed(0)), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Center, Top: 47,
			}),
		))
	}
	for len(cols) < labelsPerRow {
		cols = append(cols, col.New(4))
	}
	return row.New(54).Add(cols...), nil
}
