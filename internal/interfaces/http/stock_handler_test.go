package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templeops/temple-stock-api/internal/application/dto"
	"github.com/templeops/temple-stock-api/internal/application/registry"
	"github.com/templeops/temple-stock-api/internal/application/report"
	"github.com/templeops/temple-stock-api/internal/application/stock"
	apphttp "github.com/templeops/temple-stock-api/internal/interfaces/http"
	"github.com/templeops/temple-stock-api/internal/infrastructure/memory"
	"github.com/templeops/temple-stock-api/internal/infrastructure/pdf"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test helpers
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp wires the full route table against the in-memory store.
func buildTestApp(t *testing.T) (*fiber.App, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	engine := stock.NewUpdateStockUseCase(store)
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ItemUC:      registry.NewItemUseCase(store.ItemRepository()),
		StructureUC: registry.NewStructureUseCase(store.StructureRepository()),
		UpdateStock: engine,
		Reconcile:   stock.NewReconcileUseCase(store, engine),
		Ledger:      stock.NewLedgerUseCase(store.TransactionRepository(), store.AdjustmentRepository()),
		LowStock:    report.NewLowStockUseCase(store.ItemRepository()),
		StockPDF:    report.NewStockPDFUseCase(store.ItemRepository(), pdf.NewMarotoStockReport()),
	})
	return app, store
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeInto(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out), "body: %s", raw)
}

func createItem(t *testing.T, app *fiber.App, body map[string]any) dto.ItemResponse {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/items/", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var item dto.ItemResponse
	decodeInto(t, resp, &item)
	return item
}

// ──────────────────────────────────────────────────────────────────────────────
// Movements and reconciliation over HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestMovementEndpoint(t *testing.T) {
	app, _ := buildTestApp(t)
	item := createItem(t, app, map[string]any{
		"name": "Rice Bags", "current_stock": "50", "reorder_level": "20",
	})

	resp := doJSON(t, app, http.MethodPost, "/api/stock/movements", map[string]any{
		"item_id": item.ID,
		"delta":   "-40",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var tx dto.TransactionResponse
	decodeInto(t, resp, &tx)
	assert.Equal(t, "Usage Out", tx.Type)
	assert.Equal(t, "40", tx.Quantity.String())
	assert.Equal(t, "10", tx.BalanceAfter.String())
	assert.Positive(t, tx.ID)
}

func TestMovementEndpointErrorMapping(t *testing.T) {
	app, _ := buildTestApp(t)
	item := createItem(t, app, map[string]any{
		"name": "Ghee Tins", "current_stock": "10",
	})

	cases := []struct {
		name     string
		body     map[string]any
		wantCode int
	}{
		{"missing item", map[string]any{"item_id": "ghost", "delta": "5"}, http.StatusNotFound},
		{"overdraw", map[string]any{"item_id": item.ID, "delta": "-11"}, http.StatusConflict},
		{"unknown type", map[string]any{"item_id": item.ID, "delta": "5", "type": "Teleport"}, http.StatusBadRequest},
		{"missing item_id", map[string]any{"delta": "5"}, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodPost, "/api/stock/movements", tc.body)
			assert.Equal(t, tc.wantCode, resp.StatusCode)
			var body dto.ErrorResponse
			decodeInto(t, resp, &body)
			assert.NotEmpty(t, body.Code)
		})
	}
}

func TestReconcileEndpoint(t *testing.T) {
	app, _ := buildTestApp(t)
	item := createItem(t, app, map[string]any{
		"name": "Rice Bags", "current_stock": "50", "reorder_level": "20",
	})

	resp := doJSON(t, app, http.MethodPost, "/api/stock/adjustments", map[string]any{
		"item_id":    item.ID,
		"actual_qty": "45",
		"reason":     "Physical Count",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.ReconcileResponse
	decodeInto(t, resp, &out)
	assert.Equal(t, "-5", out.Adjustment.Difference.String())
	require.NotNil(t, out.Transaction)
	assert.Equal(t, "Adjustment", out.Transaction.Type)
	assert.Equal(t, "45", out.Transaction.BalanceAfter.String())
	require.NotNil(t, out.Adjustment.TransactionID)
	assert.Equal(t, out.Transaction.ID, *out.Adjustment.TransactionID)

	// The ledger and the adjustment listing both show the reconciliation.
	listResp := doJSON(t, app, http.MethodGet, "/api/stock/transactions?item_id="+item.ID, nil)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var txList dto.TransactionListResponse
	decodeInto(t, listResp, &txList)
	require.Len(t, txList.Transactions, 1)

	adjResp := doJSON(t, app, http.MethodGet, "/api/stock/adjustments?item_id="+item.ID, nil)
	require.Equal(t, http.StatusOK, adjResp.StatusCode)
}

// An omitted count must be rejected, not read as zero: the legacy console
// coerced absent numbers to 0 and a bare {item_id, reason} body would have
// silently reconciled the item to empty.
func TestReconcileEndpointRequiresActualQty(t *testing.T) {
	app, _ := buildTestApp(t)
	item := createItem(t, app, map[string]any{"name": "Rice Bags", "current_stock": "50"})

	resp := doJSON(t, app, http.MethodPost, "/api/stock/adjustments", map[string]any{
		"item_id": item.ID,
		"reason":  "Physical Count",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body dto.ErrorResponse
	decodeInto(t, resp, &body)
	assert.Contains(t, body.Fields, "actual_qty")

	getResp := doJSON(t, app, http.MethodGet, "/api/items/"+item.ID, nil)
	require.Equal(t, http.StatusOK, getResp.StatusCode)
	var got dto.ItemResponse
	decodeInto(t, getResp, &got)
	assert.Equal(t, "50", got.CurrentStock.String(), "rejected request leaves the balance alone")
	assert.Equal(t, "In Stock", got.Status)

	// An explicit zero count is still a legitimate reconciliation.
	resp = doJSON(t, app, http.MethodPost, "/api/stock/adjustments", map[string]any{
		"item_id":    item.ID,
		"actual_qty": "0",
		"reason":     "Physical Count",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestReconcileEndpointRejectsBadReason(t *testing.T) {
	app, _ := buildTestApp(t)
	item := createItem(t, app, map[string]any{"name": "Oil Cans", "current_stock": "5"})

	resp := doJSON(t, app, http.MethodPost, "/api/stock/adjustments", map[string]any{
		"item_id":    item.ID,
		"actual_qty": "4",
		"reason":     "Vibes",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	decodeInto(t, resp, &body)
	assert.Contains(t, body.Fields, "reason")
}

func TestTransactionListRejectsBadTimeBound(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/stock/transactions?from=yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestItemEndpointNotFound(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/items/ghost", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLowStockReportEndpoint(t *testing.T) {
	app, _ := buildTestApp(t)
	createItem(t, app, map[string]any{
		"name": "Camphor", "current_stock": "2", "reorder_level": "10", "unit_price": "1.50",
	})
	createItem(t, app, map[string]any{
		"name": "Rice Bags", "current_stock": "100", "reorder_level": "20",
	})

	resp := doJSON(t, app, http.MethodGet, "/api/reports/low-stock", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Total int                   `json:"total"`
		Items []dto.LowStockItemDTO `json:"items"`
	}
	decodeInto(t, resp, &out)
	require.Equal(t, 1, out.Total)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Camphor", out.Items[0].Name)
	assert.Equal(t, 1, out.Items[0].Priority)
}
