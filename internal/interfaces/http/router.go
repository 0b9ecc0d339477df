package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/templeops/temple-stock-api/internal/application/registry"
	"github.com/templeops/temple-stock-api/internal/application/report"
	"github.com/templeops/temple-stock-api/internal/application/stock"
)

// RouterDeps holds the use cases the router wires to handlers.
type RouterDeps struct {
	ItemUC      *registry.ItemUseCase
	StructureUC *registry.StructureUseCase
	UpdateStock *stock.UpdateStockUseCase
	Reconcile   *stock.ReconcileUseCase
	Ledger      *stock.LedgerUseCase
	LowStock    *report.LowStockUseCase
	StockPDF    *report.StockPDFUseCase
}

// Router registers the API routes. Read endpoints list only; every mutation
// of stock state goes through the movement and adjustment POSTs.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", TempleMiddleware())

	items := api.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Save)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)

	stockGroup := api.Group("/stock")
	stockHandler := NewStockHandler(deps.UpdateStock, deps.Reconcile, deps.Ledger)
	stockGroup.Post("/movements", stockHandler.RegisterMovement)
	stockGroup.Get("/transactions", stockHandler.ListTransactions)
	stockGroup.Post("/adjustments", stockHandler.Reconcile)
	stockGroup.Get("/adjustments", stockHandler.ListAdjustments)

	structures := api.Group("/structures")
	structureHandler := NewStructureHandler(deps.StructureUC)
	structures.Post("/", structureHandler.Create)
	structures.Get("/", structureHandler.List)
	structures.Get("/:id", structureHandler.GetByID)

	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.LowStock, deps.StockPDF)
	reports.Get("/low-stock", reportHandler.LowStock)
	reports.Get("/stock.pdf", reportHandler.StockPDF)
}
