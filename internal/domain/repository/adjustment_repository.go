package repository

import (
	"context"

	"github.com/templeops/temple-stock-api/internal/domain/entity"
)

// AdjustmentFilter narrows adjustment listings.
type AdjustmentFilter struct {
	ItemID string
	Reason string
	Limit  int
	Offset int
}

// AdjustmentRepository is the persistence port for reconciliation audit
// records. Adjustments are immutable once created.
type AdjustmentRepository interface {
	Create(ctx context.Context, adj *entity.StockAdjustment) error
	GetByID(ctx context.Context, id string) (*entity.StockAdjustment, error)
	List(ctx context.Context, filter AdjustmentFilter) ([]*entity.StockAdjustment, error)
}
