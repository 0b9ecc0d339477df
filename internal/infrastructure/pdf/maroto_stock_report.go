// Package pdf renders the stock-on-hand report for the console's print/export
// action.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Temple name │ Report title + generation date        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Code | Item | Category | Unit | On Hand | Status     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SUMMARY: item count / low stock count / out of stock count  │
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

	"github.com/templeops/temple-stock-api/internal/application/report"
	"github.com/templeops/temple-stock-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 153, Green: 51, Blue: 0}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ report.StockReportPDFGenerator = (*MarotoStockReport)(nil)

// MarotoStockReport implements report.StockReportPDFGenerator with Maroto v2.
type MarotoStockReport struct{}

// NewMarotoStockReport builds the generator.
func NewMarotoStockReport() *MarotoStockReport { return &MarotoStockReport{} }

// GenerateStockReport renders the item registry snapshot and returns the PDF
// bytes.
func (g *MarotoStockReport) GenerateStockReport(
	_ context.Context,
	templeID string,
	items []*entity.StockItem,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Stock on Hand", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(templeID, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(items) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(summaryRow(items))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: temple id (left), report title and date (right).
func headerRow(templeID string, generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("Temple Operations", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Temple: "+nonEmpty(templeID, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("STOCK ON HAND REPORT", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Generated: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: column headings for the item table.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Code", 2, align.Left),
		h("Item", 4, align.Left),
		h("Category", 2, align.Left),
		h("Unit", 1, align.Center),
		h("On Hand", 1, align.Right),
		h("Status", 2, align.Right),
	)
}

// tableItemRows: one row per item.
func tableItemRows(items []*entity.StockItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(it.Code, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(it.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(it.Category, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(it.Unit, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(it.CurrentStock.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(it.Status, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// summaryRow: registry totals under the table.
func summaryRow(items []*entity.StockItem) core.Row {
	var low, out int
	for _, it := range items {
		switch it.Status {
		case entity.StatusLowStock:
			low++
		case entity.StatusOutOfStock:
			out++
		}
	}
	summary := fmt.Sprintf("%d items   |   %d low stock   |   %d out of stock", len(items), low, out)
	return row.New(10).Add(
		col.New(12).Add(text.New(summary, props.Text{
			Size: 9, Top: 3, Color: colorGray,
		})),
	)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
