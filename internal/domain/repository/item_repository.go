package repository

import (
	"context"

	"github.com/templeops/temple-stock-api/internal/domain/entity"
)

// ItemFilter narrows item listings.
type ItemFilter struct {
	TempleID  string
	Category  string
	Status    string
	Structure string
	Limit     int
	Offset    int
}

// ItemRepository is the persistence port for stock items. GetByID and
// GetByCode return (nil, nil) when the item does not exist: absence is a
// normal, checkable condition for callers.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.StockItem) error
	GetByID(ctx context.Context, id string) (*entity.StockItem, error)
	GetByCode(ctx context.Context, templeID, code string) (*entity.StockItem, error)
	// Update writes descriptive fields only; it never touches the
	// stock-state columns owned by the balance engine.
	Update(ctx context.Context, item *entity.StockItem) error
	// UpdateStockState writes current_stock, status and last_restocked,
	// guarded by the item version. A stale version yields
	// domain.ErrConcurrentWrite.
	UpdateStockState(ctx context.Context, item *entity.StockItem) error
	// GetForUpdate locks the item row for the duration of the enclosing
	// transaction (SELECT ... FOR UPDATE on PostgreSQL).
	GetForUpdate(ctx context.Context, id string) (*entity.StockItem, error)
	List(ctx context.Context, filter ItemFilter) ([]*entity.StockItem, error)
	// ListBelowReorder returns items whose current stock is at or below
	// their reorder level.
	ListBelowReorder(ctx context.Context, templeID string) ([]*entity.StockItem, error)
	// NextCode reserves the next sequential ITM-### code.
	NextCode(ctx context.Context) (string, error)
}
