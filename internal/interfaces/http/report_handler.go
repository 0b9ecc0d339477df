package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/templeops/temple-stock-api/internal/application/report"
)

// ReportHandler serves the read-only report endpoints.
type ReportHandler struct {
	lowStockUC *report.LowStockUseCase
	stockPDFUC *report.StockPDFUseCase
}

// NewReportHandler builds the handler.
func NewReportHandler(lowStockUC *report.LowStockUseCase, stockPDFUC *report.StockPDFUseCase) *ReportHandler {
	return &ReportHandler{lowStockUC: lowStockUC, stockPDFUC: stockPDFUC}
}

// LowStock godoc
// @Summary      Low-stock / reorder report
// @Description  Items at or below their reorder level with suggested order
//
//	quantities, most urgent first.
//
// @Tags         reports
// @Produce      json
// @Success      200  {array}   dto.LowStockItemDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	list, err := h.lowStockUC.GenerateLowStockReport(c.Context(), GetTempleID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"total": len(list),
		"items": list,
	})
}

// StockPDF godoc
// @Summary      Stock-on-hand report as PDF
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/stock.pdf [get]
func (h *ReportHandler) StockPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.stockPDFUC.GenerateStockPDF(c.Context(), GetTempleID(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="stock-report.pdf"`)
	return c.Send(pdfBytes)
}
