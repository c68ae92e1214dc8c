// Package pdf implementa la generación de la boleta de compra de farmacia.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Clínica  │  N° Boleta + Fecha                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre                                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Subtotal                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Total / Pagado / Vuelto                           │
//	│  FOOTER: QR de la compra + leyenda                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/SalcedoCAMP/ProyectoClinica/internal/application/purchases"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain/entity"
)

var _ purchases.ReceiptGenerator = (*MarotoReceiptGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 102, Blue: 102}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReceiptGenerator implementa purchases.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct {
	clinicName string
}

// NewMarotoReceiptGenerator construye el generador con el nombre de la clínica.
func NewMarotoReceiptGenerator(clinicName string) *MarotoReceiptGenerator {
	return &MarotoReceiptGenerator{clinicName: clinicName}
}

// GenerateReceiptPDF genera la boleta y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(_ context.Context, data purchases.ReceiptData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Boleta de Compra", true).
		WithAuthor(g.clinicName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(data.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(data))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar boleta: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la clínica (izq) y N° de boleta + fecha (der).
func (g *MarotoReceiptGenerator) headerRow(data purchases.ReceiptData) core.Row {
	fecha := data.Date.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.clinicName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Farmacia", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("BOLETA DE COMPRA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(shortID(data.PurchaseID), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clientRow: datos del cliente.
func clientRow(data purchases.ReceiptData) core.Row {
	name := data.UserName
	if name == "" {
		name = "—"
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de productos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 6, align.Left),
		h("P. Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tableItemRows: una fila por línea de la compra.
func tableItemRows(items []entity.PurchaseItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				it.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"S/. "+it.ProductPrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"S/. "+it.Subtotal().StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(data purchases.ReceiptData) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}

	return row.New(22).Add(
		col.New(6),
		col.New(3).Add(
			label("Total:", 2),
			label("Pagado:", 8),
			label("Vuelto:", 14),
		),
		col.New(3).Add(
			value("S/. "+data.Total.StringFixed(2), 2),
			value("S/. "+data.Paid.StringFixed(2), 8),
			value("S/. "+data.Change.StringFixed(2), 14),
		),
	)
}

// footerRow: QR con el ID de la compra + leyenda.
func footerRow(data purchases.ReceiptData) core.Row {
	return row.New(40).Add(
		col.New(4).Add(code.NewQr("PURCHASE_ID:"+data.PurchaseID, props.Rect{
			Percent: 90,
			Center:  true,
		})),
		col.New(8).Add(
			text.New("Escanea el código QR para identificar\nesta compra en farmacia.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("Gracias por su compra.", props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 22, Left: 3, Color: colorPrimary,
			}),
		),
	)
}

// shortID: prefijo legible del UUID de la compra para el encabezado.
func shortID(id string) string {
	if len(id) > 8 {
		return "N° " + id[:8]
	}
	return "N° " + id
}
