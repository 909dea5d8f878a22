// Package pdf genera el comprobante imprimible de una operación de inventario.
//
// Layout de la página A4:
//
//	┌──────────────────────────────────────────────┐
//	│  TÍTULO: "Operación <tipo>"      │  Fecha     │
//	│  ──────────────────────────────────────────── │
//	│  Productos: Nombre (Artículo), ...            │
//	│  Cantidad total: N                            │
//	└──────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

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

	"github.com/jhoicas/inventory-ops/internal/application/operation"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ operation.OperationDocumentGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa operation.OperationDocumentGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	author string
}

// NewMarotoPDFGenerator construye el generador. author se guarda en los metadatos del PDF.
func NewMarotoPDFGenerator(author string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{author: author}
}

// GenerateOperationPDF genera el comprobante y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateOperationPDF(ctx context.Context, s operation.OperationSummary) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	builder := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle(s.Title, true)
	if g.author != "" {
		builder = builder.WithAuthor(g.author, true)
	}

	m := maroto.New(builder.Build())
	m.AddRows(titleRow(s))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(labeledRow("Productos", s.ProductNames))
	m.AddRows(labeledRow("Cantidad total", strconv.Itoa(s.Quantity)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

func titleRow(s operation.OperationSummary) core.Row {
	return row.New(16).Add(
		col.New(8).Add(text.New(s.Title, props.Text{
			Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 2,
		})),
		col.New(4).Add(text.New("Fecha: "+s.Date, props.Text{
			Size: 10, Align: align.Right, Top: 5, Color: colorGray,
		})),
	)
}

// labeledRow: etiqueta en negrita a la izquierda y valor a la derecha. El valor puede ocupar
// varias líneas (lista de productos larga).
func labeledRow(label, value string) core.Row {
	return row.New(10).Add(
		col.New(3).Add(text.New(label+":", props.Text{Style: fontstyle.Bold, Top: 3})),
		col.New(9).Add(text.New(value, props.Text{Top: 3})),
	)
}
