package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item classifications.
const (
	ItemTypeConsumable   = "Consumable"
	ItemTypePerishable   = "Perishable"
	ItemTypeAsset        = "Asset"
	ItemTypeDonationItem = "DonationItem"
)

// Derived stock status values.
const (
	StatusInStock    = "In Stock"
	StatusLowStock   = "Low Stock"
	StatusOutOfStock = "Out of Stock"
)

// StockItem represents a physical or quasi-physical thing the temple manages
// (rice, camphor, flowers, a generator). CurrentStock, Status and LastRestocked
// are owned by the balance engine: the registry never writes them directly.
type StockItem struct {
	ID               string
	Code             string // human-readable SKU, ITM-### when generated
	TempleID         string
	Name             string
	ItemType         string // Consumable, Perishable, Asset, DonationItem
	Category         string
	Unit             string // kg, litre, piece, bundle...
	CurrentStock     decimal.Decimal
	ReorderLevel     decimal.Decimal
	MinimumLevel     decimal.Decimal
	DefaultStructure string
	StorageLocation  string
	UnitPrice        decimal.Decimal
	Supplier         string
	Status           string // derived from CurrentStock vs ReorderLevel
	LastRestocked    *time.Time
	Version          int64 // optimistic guard on the stock-state write path
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ValidItemType reports whether t is one of the known item classifications.
func ValidItemType(t string) bool {
	switch t {
	case ItemTypeConsumable, ItemTypePerishable, ItemTypeAsset, ItemTypeDonationItem:
		return true
	}
	return false
}
