package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveItemRequest is the body for POST /api/items. When ID matches an
// existing item its descriptive fields are merge-updated; otherwise a new
// item is created (Code generated as ITM-### when absent). CurrentStock is
// honored on create only; after that the balance engine owns it.
type SaveItemRequest struct {
	ID               string           `json:"id,omitempty"`
	Code             string           `json:"code,omitempty"`
	Name             string           `json:"name" validate:"required"`
	ItemType         string           `json:"item_type,omitempty" validate:"omitempty,oneof=Consumable Perishable Asset DonationItem"`
	Category         string           `json:"category,omitempty"`
	Unit             string           `json:"unit,omitempty"`
	CurrentStock     *decimal.Decimal `json:"current_stock,omitempty"`
	ReorderLevel     *decimal.Decimal `json:"reorder_level,omitempty"`
	MinimumLevel     *decimal.Decimal `json:"minimum_level,omitempty"`
	DefaultStructure string           `json:"default_structure,omitempty"`
	StorageLocation  string           `json:"storage_location,omitempty"`
	UnitPrice        *decimal.Decimal `json:"unit_price,omitempty"`
	Supplier         string           `json:"supplier,omitempty"`
}

// ItemResponse is the item representation returned by the API.
type ItemResponse struct {
	ID               string          `json:"id"`
	Code             string          `json:"code"`
	TempleID         string          `json:"temple_id,omitempty"`
	Name             string          `json:"name"`
	ItemType         string          `json:"item_type"`
	Category         string          `json:"category,omitempty"`
	Unit             string          `json:"unit,omitempty"`
	CurrentStock     decimal.Decimal `json:"current_stock"`
	ReorderLevel     decimal.Decimal `json:"reorder_level"`
	MinimumLevel     decimal.Decimal `json:"minimum_level"`
	DefaultStructure string          `json:"default_structure,omitempty"`
	StorageLocation  string          `json:"storage_location,omitempty"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	Supplier         string          `json:"supplier,omitempty"`
	Status           string          `json:"status"`
	LastRestocked    *time.Time      `json:"last_restocked,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ItemListResponse wraps a page of items.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
