package repository

import (
	"context"
	"time"

	"github.com/templeops/temple-stock-api/internal/domain/entity"
)

// TransactionFilter narrows ledger listings.
type TransactionFilter struct {
	ItemID      string
	StructureID string
	Type        string
	From        *time.Time
	To          *time.Time
	Limit       int
	Offset      int
}

// TransactionRepository is the persistence port for the stock ledger. The
// ledger is append-only: there is deliberately no update or delete.
type TransactionRepository interface {
	// Append persists the transaction and fills in its sequence ID.
	Append(ctx context.Context, tx *entity.StockTransaction) error
	GetByID(ctx context.Context, id int64) (*entity.StockTransaction, error)
	List(ctx context.Context, filter TransactionFilter) ([]*entity.StockTransaction, error)
}
