package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reconciliation reason codes.
const (
	ReasonPhysicalCount = "Physical Count"
	ReasonDamage        = "Damage"
	ReasonExpired       = "Expired"
	ReasonCorrection    = "Correction"
	ReasonTheftLoss     = "Theft / Loss"
	ReasonSystemError   = "System Error"
)

// StockAdjustment is the audit record of a physical-count reconciliation,
// distinct from the corrective transaction it may trigger. Every adjustment
// with a non-zero difference references exactly one ledger transaction whose
// quantity equals the absolute difference.
type StockAdjustment struct {
	ID            string
	OccurredAt    time.Time
	ItemID        string
	ItemName      string
	SystemQty     decimal.Decimal // snapshot before correction
	ActualQty     decimal.Decimal // physically observed count
	Difference    decimal.Decimal // ActualQty - SystemQty
	Reason        string
	StructureName string
	StoreLocation string
	Notes         string
	AdjustedBy    string
	TransactionID *int64 // corrective ledger entry, nil when Difference is zero
	CreatedAt     time.Time
}

// ValidReason reports whether r is one of the known reconciliation reasons.
func ValidReason(r string) bool {
	switch r {
	case ReasonPhysicalCount, ReasonDamage, ReasonExpired, ReasonCorrection,
		ReasonTheftLoss, ReasonSystemError:
		return true
	}
	return false
}
