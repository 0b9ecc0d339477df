package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types. Quantity is always a non-negative magnitude; the type
// carries the direction.
const (
	TxTypePurchaseIn  = "Purchase In"
	TxTypeDonationIn  = "Donation In"
	TxTypeUsageOut    = "Usage Out"
	TxTypeTransfer    = "Transfer"
	TxTypeReturn      = "Return"
	TxTypeDamageWaste = "Damage / Waste"
	TxTypeAdjustment  = "Adjustment"
)

// StockTransaction is one immutable, signed quantity event in the ledger.
// IDs come from a monotonic sequence; per item, BalanceAfter of entry n equals
// BalanceAfter of entry n-1 plus the signed delta of entry n.
//
// LinkedEvent, LinkedKitchenRequest and LinkedFreelancer are soft linkage:
// free-text audit references with no referential integrity against the
// registries they name.
type StockTransaction struct {
	ID                   int64
	OccurredAt           time.Time
	ItemID               string
	ItemName             string // denormalized for audit readability
	Type                 string
	Quantity             decimal.Decimal // magnitude, >= 0
	BalanceAfter         decimal.Decimal
	StoreLocation        string
	StructureID          string
	StructureName        string
	LinkedEvent          string
	LinkedKitchenRequest string
	LinkedFreelancer     string
	UnitPrice            decimal.Decimal
	TotalAmount          decimal.Decimal
	Notes                string
	CreatedBy            string
	CreatedAt            time.Time
}

// ValidTxType reports whether t is one of the known transaction types.
func ValidTxType(t string) bool {
	switch t {
	case TxTypePurchaseIn, TxTypeDonationIn, TxTypeUsageOut, TxTypeTransfer,
		TxTypeReturn, TxTypeDamageWaste, TxTypeAdjustment:
		return true
	}
	return false
}

// InboundTxType reports whether t represents stock arriving at the temple.
// Only inbound movements refresh an item's LastRestocked timestamp.
func InboundTxType(t string) bool {
	switch t {
	case TxTypePurchaseIn, TxTypeDonationIn, TxTypeReturn:
		return true
	}
	return false
}
