package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/templeops/temple-stock-api/internal/application/dto"
	"github.com/templeops/temple-stock-api/internal/application/stock"
	"github.com/templeops/temple-stock-api/internal/domain/repository"
)

// StockHandler serves the balance engine and reconciliation endpoints, plus
// the read-only ledger and adjustment listings.
type StockHandler struct {
	updateUC    *stock.UpdateStockUseCase
	reconcileUC *stock.ReconcileUseCase
	ledgerUC    *stock.LedgerUseCase
}

// NewStockHandler builds the handler.
func NewStockHandler(
	updateUC *stock.UpdateStockUseCase,
	reconcileUC *stock.ReconcileUseCase,
	ledgerUC *stock.LedgerUseCase,
) *StockHandler {
	return &StockHandler{updateUC: updateUC, reconcileUC: reconcileUC, ledgerUC: ledgerUC}
}

// RegisterMovement godoc
// @Summary      Apply a signed stock movement
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovementRequest  true  "item_id, signed delta, optional type and linkage"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/movements [post]
func (h *StockHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.MovementRequest
	if bad, resp := parseBody(c, &in); bad {
		return resp
	}
	tx, err := h.updateUC.UpdateStock(c.Context(), in.ItemID, in.Delta, stock.TransactionMeta{
		Type:                 in.Type,
		StoreLocation:        in.StoreLocation,
		StructureID:          in.StructureID,
		StructureName:        in.StructureName,
		LinkedEvent:          in.LinkedEvent,
		LinkedKitchenRequest: in.LinkedKitchenRequest,
		LinkedFreelancer:     in.LinkedFreelancer,
		Notes:                in.Notes,
		CreatedBy:            in.CreatedBy,
		UnitPrice:            in.UnitPrice,
		TotalAmount:          in.TotalAmount,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(stock.ToTransactionResponse(tx))
}

// Reconcile godoc
// @Summary      Reconcile an item against a physical count
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReconcileRequest  true  "item_id, observed quantity, reason"
// @Success      201   {object}  dto.ReconcileResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/adjustments [post]
func (h *StockHandler) Reconcile(c *fiber.Ctx) error {
	var in dto.ReconcileRequest
	if bad, resp := parseBody(c, &in); bad {
		return resp
	}
	adj, tx, err := h.reconcileUC.Reconcile(c.Context(), in.ItemID, *in.ActualQty, in.Reason, stock.ReconcileContext{
		StructureName: in.StructureName,
		StoreLocation: in.StoreLocation,
		Notes:         in.Notes,
		AdjustedBy:    in.AdjustedBy,
	})
	if err != nil {
		return respondError(c, err)
	}
	resp := dto.ReconcileResponse{Adjustment: *stock.ToAdjustmentResponse(adj)}
	if tx != nil {
		resp.Transaction = stock.ToTransactionResponse(tx)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListTransactions godoc
// @Summary      List ledger entries
// @Tags         stock
// @Produce      json
// @Param        item_id       query  string  false  "filter by item"
// @Param        structure_id  query  string  false  "filter by structure"
// @Param        type          query  string  false  "filter by transaction type"
// @Param        from          query  string  false  "RFC3339 lower bound"
// @Param        to            query  string  false  "RFC3339 upper bound"
// @Success      200  {object}  dto.TransactionListResponse
// @Router       /api/stock/transactions [get]
func (h *StockHandler) ListTransactions(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "malformed query parameters"})
	}
	page.DefaultPage()

	filter := repository.TransactionFilter{
		ItemID:      c.Query("item_id"),
		StructureID: c.Query("structure_id"),
		Type:        c.Query("type"),
		Limit:       page.Limit,
		Offset:      page.Offset,
	}
	var bad bool
	filter.From, bad = parseTimeQuery(c, "from")
	if bad {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "from must be RFC3339"})
	}
	filter.To, bad = parseTimeQuery(c, "to")
	if bad {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "to must be RFC3339"})
	}

	list, err := h.ledgerUC.ListTransactions(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// ListAdjustments godoc
// @Summary      List reconciliation records
// @Tags         stock
// @Produce      json
// @Param        item_id  query  string  false  "filter by item"
// @Param        reason   query  string  false  "filter by reason"
// @Success      200  {object}  dto.AdjustmentListResponse
// @Router       /api/stock/adjustments [get]
func (h *StockHandler) ListAdjustments(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "malformed query parameters"})
	}
	page.DefaultPage()

	list, err := h.ledgerUC.ListAdjustments(c.Context(), repository.AdjustmentFilter{
		ItemID: c.Query("item_id"),
		Reason: c.Query("reason"),
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

func parseTimeQuery(c *fiber.Ctx, key string) (*time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, false
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, true
	}
	return &t, false
}
