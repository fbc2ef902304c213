// Package pdf genera el comprobante imprimible de una recepción de mercancía.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Comprobante de Recepción  │  Orden + Fecha          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PROVEEDOR / RESTAURANTE / REMISIÓN                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Producto | Pedido | Recibido | Cond. | Cal. │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: recibido por + fecha de aceptación                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"
	"strings"

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

	appacceptance "github.com/tu-usuario/suministros-api/internal/application/acceptance"
	"github.com/tu-usuario/suministros-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 98, Blue: 70}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ appacceptance.ReceiptGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa acceptance.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceipt genera el PDF del comprobante y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceipt(rec *entity.AcceptanceRecord) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de Recepción", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(rec))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(rec))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(rec.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(rec))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y orden + fecha (der).
func headerRow(rec *entity.AcceptanceRecord) core.Row {
	fecha := rec.CreatedAt.Format("02/01/2006")
	return row.New(18).Add(
		col.New(7).Add(
			text.New("COMPROBANTE DE RECEPCIÓN", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Estado: "+strings.ToUpper(rec.Status), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ORDEN DE COMPRA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(rec.OrderID, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// partiesRow: proveedor, restaurante y remisión.
func partiesRow(rec *entity.AcceptanceRecord) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("ENTREGA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Proveedor: %s   |   Restaurante: %s   |   Remisión: %s",
				nonEmpty(rec.SupplierName, "—"),
				rec.RestaurantID,
				nonEmpty(rec.DeliveryNote, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas recibidas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Pedido", 2, align.Right),
		h("Recibido", 2, align.Right),
		h("Cond.", 1, align.Center),
		h("Cal.", 1, align.Center),
	)
}

// tableItemRows: una fila por línea de recepción.
func tableItemRows(items []entity.AcceptanceItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		rating := "—"
		if it.QualityRating > 0 {
			rating = strconv.Itoa(it.QualityRating) + "/5"
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(it.ItemCode, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(nonEmpty(it.Name, it.ItemCode), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(
				fmt.Sprintf("%.2f %s", it.OrderedQty, it.Unit),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%.2f %s", it.ReceivedQty, it.Unit),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(it.Condition, props.Text{Size: 7, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(rating, props.Text{Size: 8, Align: align.Center, Top: 1})),
		))
	}
	return result
}

// footerRow: quién recibió y cuándo se completó la aceptación.
func footerRow(rec *entity.AcceptanceRecord) core.Row {
	accepted := "pendiente"
	if rec.AcceptanceTime != nil {
		accepted = rec.AcceptanceTime.Format("02/01/2006 15:04")
	}
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Recibido por: %s   |   Aceptación: %s",
				nonEmpty(rec.AcceptedBy, "—"), accepted,
			), props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
