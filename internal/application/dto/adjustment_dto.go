package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReconcileRequest is the body for POST /api/stock/adjustments: one
// physical-count reconciliation for one item. ActualQty is a pointer so an
// omitted count is rejected instead of decoding as zero and draining the
// item.
type ReconcileRequest struct {
	ItemID        string           `json:"item_id" validate:"required"`
	ActualQty     *decimal.Decimal `json:"actual_qty" validate:"required"`
	Reason        string          `json:"reason" validate:"required,oneof='Physical Count' 'Damage' 'Expired' 'Correction' 'Theft / Loss' 'System Error'"`
	StructureName string          `json:"structure_name,omitempty"`
	StoreLocation string          `json:"store_location,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	AdjustedBy    string          `json:"adjusted_by,omitempty"`
}

// AdjustmentResponse is a reconciliation audit record as returned by the API.
type AdjustmentResponse struct {
	ID            string          `json:"id"`
	OccurredAt    time.Time       `json:"occurred_at"`
	ItemID        string          `json:"item_id"`
	ItemName      string          `json:"item_name"`
	SystemQty     decimal.Decimal `json:"system_qty"`
	ActualQty     decimal.Decimal `json:"actual_qty"`
	Difference    decimal.Decimal `json:"difference"`
	Reason        string          `json:"reason"`
	StructureName string          `json:"structure_name,omitempty"`
	StoreLocation string          `json:"store_location,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	AdjustedBy    string          `json:"adjusted_by,omitempty"`
	TransactionID *int64          `json:"transaction_id,omitempty"`
}

// ReconcileResponse bundles the adjustment with the corrective transaction,
// when the difference was non-zero.
type ReconcileResponse struct {
	Adjustment  AdjustmentResponse   `json:"adjustment"`
	Transaction *TransactionResponse `json:"transaction,omitempty"`
}

// AdjustmentListResponse wraps a page of adjustments.
type AdjustmentListResponse struct {
	Adjustments []AdjustmentResponse `json:"adjustments"`
	Page        PageResponse         `json:"page"`
}
