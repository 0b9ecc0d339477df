package report

import (
	"context"
	"time"

	"github.com/templeops/temple-stock-api/internal/domain/entity"
	"github.com/templeops/temple-stock-api/internal/domain/repository"
)

// pdfPageSize is the repository batch size when collecting items for the
// report; the export itself has no item cap.
const pdfPageSize = 500

// StockPDFUseCase exports the stock-on-hand report as a printable PDF for
// the console's reports screen.
type StockPDFUseCase struct {
	itemRepo repository.ItemRepository
	pdfGen   StockReportPDFGenerator
}

// NewStockPDFUseCase builds the use case.
func NewStockPDFUseCase(itemRepo repository.ItemRepository, pdfGen StockReportPDFGenerator) *StockPDFUseCase {
	return &StockPDFUseCase{itemRepo: itemRepo, pdfGen: pdfGen}
}

// GenerateStockPDF renders the current item registry into a PDF, paging
// through the repository so large registries are not truncated.
func (uc *StockPDFUseCase) GenerateStockPDF(ctx context.Context, templeID string) ([]byte, error) {
	var items []*entity.StockItem
	for offset := 0; ; offset += pdfPageSize {
		page, err := uc.itemRepo.List(ctx, repository.ItemFilter{
			TempleID: templeID,
			Limit:    pdfPageSize,
			Offset:   offset,
		})
		if err != nil {
			return nil, err
		}
		items = append(items, page...)
		if len(page) < pdfPageSize {
			break
		}
	}
	return uc.pdfGen.GenerateStockReport(ctx, templeID, items, time.Now())
}
