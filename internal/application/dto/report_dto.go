package dto

import "github.com/shopspring/decimal"

// LowStockItemDTO is one line of the low-stock report: an item at or below
// its reorder level with a suggested order quantity.
type LowStockItemDTO struct {
	ItemID             string          `json:"item_id"`
	Code               string          `json:"code"`
	Name               string          `json:"name"`
	Category           string          `json:"category,omitempty"`
	Unit               string          `json:"unit,omitempty"`
	CurrentStock       decimal.Decimal `json:"current_stock"`
	ReorderLevel       decimal.Decimal `json:"reorder_level"`
	MinimumLevel       decimal.Decimal `json:"minimum_level"`
	Status             string          `json:"status"`
	IdealStock         decimal.Decimal `json:"ideal_stock"`          // ReorderLevel * 1.5
	SuggestedOrderQty  decimal.Decimal `json:"suggested_order_qty"`  // IdealStock - CurrentStock
	EstimatedOrderCost decimal.Decimal `json:"estimated_order_cost"` // SuggestedOrderQty * UnitPrice
	Priority           int             `json:"priority"`             // 1 = most urgent
}
