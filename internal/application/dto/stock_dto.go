package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementRequest is the body for POST /api/stock/movements. Delta is signed:
// positive receives stock, negative issues it. Type defaults by delta sign
// (Purchase In / Usage Out) when omitted. The linked_* fields are free-text
// audit references.
type MovementRequest struct {
	ItemID               string           `json:"item_id" validate:"required"`
	Delta                decimal.Decimal  `json:"delta" validate:"required"`
	Type                 string           `json:"type,omitempty" validate:"omitempty,oneof='Purchase In' 'Donation In' 'Usage Out' 'Transfer' 'Return' 'Damage / Waste' 'Adjustment'"`
	StoreLocation        string           `json:"store_location,omitempty"`
	StructureID          string           `json:"structure_id,omitempty"`
	StructureName        string           `json:"structure_name,omitempty"`
	LinkedEvent          string           `json:"linked_event,omitempty"`
	LinkedKitchenRequest string           `json:"linked_kitchen_request,omitempty"`
	LinkedFreelancer     string           `json:"linked_freelancer,omitempty"`
	Notes                string           `json:"notes,omitempty"`
	CreatedBy            string           `json:"created_by,omitempty"`
	UnitPrice            *decimal.Decimal `json:"unit_price,omitempty"`
	TotalAmount          *decimal.Decimal `json:"total_amount,omitempty"`
}

// TransactionResponse is a ledger entry as returned by the API.
type TransactionResponse struct {
	ID                   int64           `json:"id"`
	OccurredAt           time.Time       `json:"occurred_at"`
	ItemID               string          `json:"item_id"`
	ItemName             string          `json:"item_name"`
	Type                 string          `json:"type"`
	Quantity             decimal.Decimal `json:"quantity"`
	BalanceAfter         decimal.Decimal `json:"balance_after"`
	StoreLocation        string          `json:"store_location,omitempty"`
	StructureID          string          `json:"structure_id,omitempty"`
	StructureName        string          `json:"structure_name,omitempty"`
	LinkedEvent          string          `json:"linked_event,omitempty"`
	LinkedKitchenRequest string          `json:"linked_kitchen_request,omitempty"`
	LinkedFreelancer     string          `json:"linked_freelancer,omitempty"`
	UnitPrice            decimal.Decimal `json:"unit_price"`
	TotalAmount          decimal.Decimal `json:"total_amount"`
	Notes                string          `json:"notes,omitempty"`
	CreatedBy            string          `json:"created_by,omitempty"`
}

// TransactionListResponse wraps a page of ledger entries.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Page         PageResponse          `json:"page"`
}
