package stock

import (
	"github.com/shopspring/decimal"

	"github.com/templeops/temple-stock-api/internal/domain/entity"
)

// DeriveStatus classifies an item's stock level (domain service, pure).
// current <= 0 is Out of Stock, current <= reorderLevel is Low Stock,
// anything above the reorder level is In Stock.
func DeriveStatus(current, reorderLevel decimal.Decimal) string {
	if current.LessThanOrEqual(decimal.Zero) {
		return entity.StatusOutOfStock
	}
	if current.LessThanOrEqual(reorderLevel) {
		return entity.StatusLowStock
	}
	return entity.StatusInStock
}
