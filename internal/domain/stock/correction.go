package stock

import (
	"github.com/shopspring/decimal"

	"github.com/templeops/temple-stock-api/internal/domain/entity"
)

// CorrectionType maps a reconciliation reason to the transaction type of the
// corrective ledger entry. Loss-like reasons on a shortfall book as
// Damage / Waste; every other correction books under the dedicated
// Adjustment type so the ledger does not masquerade count fixes as purchases.
// The reason itself is preserved verbatim on the adjustment record.
func CorrectionType(reason string, difference decimal.Decimal) string {
	if difference.IsNegative() {
		switch reason {
		case entity.ReasonDamage, entity.ReasonExpired, entity.ReasonTheftLoss:
			return entity.TxTypeDamageWaste
		}
	}
	return entity.TxTypeAdjustment
}
