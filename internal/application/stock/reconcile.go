package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/templeops/temple-stock-api/internal/domain"
	"github.com/templeops/temple-stock-api/internal/domain/entity"
	"github.com/templeops/temple-stock-api/internal/domain/repository"
	domstock "github.com/templeops/temple-stock-api/internal/domain/stock"
)

// ReconcileUseCase captures a physical-count exercise: it snapshots the
// system quantity, records the observed quantity, and corrects the gap
// through the balance engine. The adjustment record and the corrective
// transaction commit together.
type ReconcileUseCase struct {
	txRunner TxRunner
	engine   *UpdateStockUseCase
}

// NewReconcileUseCase builds the use case.
func NewReconcileUseCase(txRunner TxRunner, engine *UpdateStockUseCase) *ReconcileUseCase {
	return &ReconcileUseCase{txRunner: txRunner, engine: engine}
}

// ReconcileContext carries the audit context of a reconciliation.
type ReconcileContext struct {
	StructureName string
	StoreLocation string
	Notes         string
	AdjustedBy    string
}

// Reconcile compares the system quantity against the physically observed
// count and corrects the discrepancy. A zero difference records the
// adjustment only: the count merely confirmed the system value, so no
// zero-quantity ledger entry is appended. A negative or malformed observed
// count is rejected up front rather than coerced to zero.
func (uc *ReconcileUseCase) Reconcile(
	ctx context.Context,
	itemID string,
	actualQty decimal.Decimal,
	reason string,
	rc ReconcileContext,
) (*entity.StockAdjustment, *entity.StockTransaction, error) {
	if itemID == "" {
		return nil, nil, domain.ErrInvalidInput
	}
	if actualQty.IsNegative() {
		return nil, nil, domain.ErrInvalidQuantity
	}
	if !entity.ValidReason(reason) {
		return nil, nil, domain.ErrInvalidInput
	}

	var (
		adj       *entity.StockAdjustment
		corrected *entity.StockTransaction
	)
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		txRepo repository.TransactionRepository,
		adjRepo repository.AdjustmentRepository,
	) error {
		item, err := itemRepo.GetForUpdate(ctx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrItemNotFound
		}

		now := time.Now()
		systemQty := item.CurrentStock
		difference := actualQty.Sub(systemQty)

		if !difference.IsZero() {
			meta := TransactionMeta{
				Type:          domstock.CorrectionType(reason, difference),
				StoreLocation: rc.StoreLocation,
				StructureName: rc.StructureName,
				Notes:         rc.Notes,
				CreatedBy:     rc.AdjustedBy,
			}
			corrected, err = uc.engine.ApplyInTx(ctx, itemRepo, txRepo, item, difference, meta, now)
			if err != nil {
				return err
			}
		}

		adj = &entity.StockAdjustment{
			ID:            uuid.New().String(),
			OccurredAt:    now,
			ItemID:        item.ID,
			ItemName:      item.Name,
			SystemQty:     systemQty,
			ActualQty:     actualQty,
			Difference:    difference,
			Reason:        reason,
			StructureName: rc.StructureName,
			StoreLocation: rc.StoreLocation,
			Notes:         rc.Notes,
			AdjustedBy:    rc.AdjustedBy,
			CreatedAt:     now,
		}
		if corrected != nil {
			adj.TransactionID = &corrected.ID
		}
		return adjRepo.Create(ctx, adj)
	})
	if err != nil {
		return nil, nil, err
	}
	return adj, corrected, nil
}
