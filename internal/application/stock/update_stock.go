package stock

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/templeops/temple-stock-api/internal/domain"
	"github.com/templeops/temple-stock-api/internal/domain/entity"
	"github.com/templeops/temple-stock-api/internal/domain/repository"
	domstock "github.com/templeops/temple-stock-api/internal/domain/stock"
)

// UpdateStockUseCase is the single mutation path for item quantities: it
// moves an item's balance and appends the matching ledger entry inside one
// transaction, with the item row locked for the duration (SELECT FOR UPDATE
// on PostgreSQL). No other component writes CurrentStock or Status.
type UpdateStockUseCase struct {
	txRunner TxRunner
}

// NewUpdateStockUseCase builds the use case.
func NewUpdateStockUseCase(txRunner TxRunner) *UpdateStockUseCase {
	return &UpdateStockUseCase{txRunner: txRunner}
}

// TransactionMeta carries the optional context of a stock movement. Every
// field may be empty; Type defaults by delta sign. The Linked* fields are
// soft references kept for audit and filtering only.
type TransactionMeta struct {
	Type                 string
	StoreLocation        string
	StructureID          string
	StructureName        string
	LinkedEvent          string
	LinkedKitchenRequest string
	LinkedFreelancer     string
	Notes                string
	CreatedBy            string
	UnitPrice            *decimal.Decimal
	TotalAmount          *decimal.Decimal
}

// UpdateStock applies a signed delta to an item and appends the ledger entry.
// The two writes happen in one transaction; a missing item is an error, never
// a silent no-op.
func (uc *UpdateStockUseCase) UpdateStock(
	ctx context.Context,
	itemID string,
	delta decimal.Decimal,
	meta TransactionMeta,
) (*entity.StockTransaction, error) {
	if itemID == "" || delta.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if meta.Type != "" && !entity.ValidTxType(meta.Type) {
		return nil, domain.ErrInvalidInput
	}

	var created *entity.StockTransaction
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		txRepo repository.TransactionRepository,
		_ repository.AdjustmentRepository,
	) error {
		item, err := itemRepo.GetForUpdate(ctx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrItemNotFound
		}
		created, err = uc.ApplyInTx(ctx, itemRepo, txRepo, item, delta, meta, time.Now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ApplyInTx executes the balance mutation using repositories already bound to
// the caller's transaction. The reconciler uses it so that the corrective
// movement and the adjustment record share one commit. The caller must have
// loaded item via GetForUpdate on the same transaction.
func (uc *UpdateStockUseCase) ApplyInTx(
	ctx context.Context,
	itemRepo repository.ItemRepository,
	txRepo repository.TransactionRepository,
	item *entity.StockItem,
	delta decimal.Decimal,
	meta TransactionMeta,
	now time.Time,
) (*entity.StockTransaction, error) {
	prev := item.CurrentStock
	next := prev.Add(delta)
	if next.IsNegative() {
		return nil, domain.ErrInsufficientStock
	}

	txType := meta.Type
	if txType == "" {
		if delta.IsNegative() {
			txType = entity.TxTypeUsageOut
		} else {
			txType = entity.TxTypePurchaseIn
		}
	}

	item.CurrentStock = next
	item.Status = domstock.DeriveStatus(next, item.ReorderLevel)
	if delta.IsPositive() && entity.InboundTxType(txType) {
		item.LastRestocked = &now
	}
	item.UpdatedAt = now
	if err := itemRepo.UpdateStockState(ctx, item); err != nil {
		return nil, err
	}

	unitPrice := item.UnitPrice
	if meta.UnitPrice != nil {
		unitPrice = *meta.UnitPrice
	}
	quantity := delta.Abs()
	totalAmount := quantity.Mul(unitPrice)
	if meta.TotalAmount != nil {
		totalAmount = *meta.TotalAmount
	}
	storeLocation := meta.StoreLocation
	if storeLocation == "" {
		storeLocation = item.StorageLocation
	}

	tx := &entity.StockTransaction{
		OccurredAt:           now,
		ItemID:               item.ID,
		ItemName:             item.Name,
		Type:                 txType,
		Quantity:             quantity,
		BalanceAfter:         next,
		StoreLocation:        storeLocation,
		StructureID:          meta.StructureID,
		StructureName:        meta.StructureName,
		LinkedEvent:          meta.LinkedEvent,
		LinkedKitchenRequest: meta.LinkedKitchenRequest,
		LinkedFreelancer:     meta.LinkedFreelancer,
		UnitPrice:            unitPrice,
		TotalAmount:          totalAmount,
		Notes:                meta.Notes,
		CreatedBy:            meta.CreatedBy,
		CreatedAt:            now,
	}
	if err := txRepo.Append(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}
