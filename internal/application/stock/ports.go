package stock

import (
	"context"

	"github.com/templeops/temple-stock-api/internal/domain/repository"
)

// TxRunner runs a function inside a database transaction, handing it
// repositories bound to that transaction. It is the atomicity boundary for
// the balance engine: the item mutation and the ledger append either both
// commit or neither does.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		txRepo repository.TransactionRepository,
		adjRepo repository.AdjustmentRepository,
	) error) error
}
