package stock

import (
	"context"

	"github.com/templeops/temple-stock-api/internal/application/dto"
	"github.com/templeops/temple-stock-api/internal/domain/entity"
	"github.com/templeops/temple-stock-api/internal/domain/repository"
)

// LedgerUseCase serves the read-only ledger and adjustment screens. It only
// lists; every mutation goes through UpdateStockUseCase or ReconcileUseCase.
type LedgerUseCase struct {
	txRepo  repository.TransactionRepository
	adjRepo repository.AdjustmentRepository
}

// NewLedgerUseCase builds the use case.
func NewLedgerUseCase(txRepo repository.TransactionRepository, adjRepo repository.AdjustmentRepository) *LedgerUseCase {
	return &LedgerUseCase{txRepo: txRepo, adjRepo: adjRepo}
}

// ListTransactions returns a page of ledger entries matching the filter.
func (uc *LedgerUseCase) ListTransactions(ctx context.Context, filter repository.TransactionFilter) (*dto.TransactionListResponse, error) {
	list, err := uc.txRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionResponse, 0, len(list))
	for _, tx := range list {
		out = append(out, *ToTransactionResponse(tx))
	}
	return &dto.TransactionListResponse{
		Transactions: out,
		Page:         dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}, nil
}

// ListAdjustments returns a page of reconciliation records.
func (uc *LedgerUseCase) ListAdjustments(ctx context.Context, filter repository.AdjustmentFilter) (*dto.AdjustmentListResponse, error) {
	list, err := uc.adjRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AdjustmentResponse, 0, len(list))
	for _, adj := range list {
		out = append(out, *ToAdjustmentResponse(adj))
	}
	return &dto.AdjustmentListResponse{
		Adjustments: out,
		Page:        dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}, nil
}

// ToTransactionResponse maps a ledger entry to its API shape.
func ToTransactionResponse(tx *entity.StockTransaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:                   tx.ID,
		OccurredAt:           tx.OccurredAt,
		ItemID:               tx.ItemID,
		ItemName:             tx.ItemName,
		Type:                 tx.Type,
		Quantity:             tx.Quantity,
		BalanceAfter:         tx.BalanceAfter,
		StoreLocation:        tx.StoreLocation,
		StructureID:          tx.StructureID,
		StructureName:        tx.StructureName,
		LinkedEvent:          tx.LinkedEvent,
		LinkedKitchenRequest: tx.LinkedKitchenRequest,
		LinkedFreelancer:     tx.LinkedFreelancer,
		UnitPrice:            tx.UnitPrice,
		TotalAmount:          tx.TotalAmount,
		Notes:                tx.Notes,
		CreatedBy:            tx.CreatedBy,
	}
}

// ToAdjustmentResponse maps an adjustment record to its API shape.
func ToAdjustmentResponse(adj *entity.StockAdjustment) *dto.AdjustmentResponse {
	return &dto.AdjustmentResponse{
		ID:            adj.ID,
		OccurredAt:    adj.OccurredAt,
		ItemID:        adj.ItemID,
		ItemName:      adj.ItemName,
		SystemQty:     adj.SystemQty,
		ActualQty:     adj.ActualQty,
		Difference:    adj.Difference,
		Reason:        adj.Reason,
		StructureName: adj.StructureName,
		StoreLocation: adj.StoreLocation,
		Notes:         adj.Notes,
		AdjustedBy:    adj.AdjustedBy,
		TransactionID: adj.TransactionID,
	}
}
