package report

import (
	"context"
	"time"

	"github.com/templeops/temple-stock-api/internal/domain/entity"
)

// StockReportPDFGenerator renders the stock-on-hand report as a PDF.
type StockReportPDFGenerator interface {
	GenerateStockReport(ctx context.Context, templeID string, items []*entity.StockItem, generatedAt time.Time) ([]byte, error)
}
