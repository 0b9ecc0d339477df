package report

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/templeops/temple-stock-api/internal/application/dto"
	"github.com/templeops/temple-stock-api/internal/domain/repository"
)

// LowStockUseCase builds the reorder report: every item at or below its
// reorder level, with a suggested order quantity, ranked so the items
// furthest below their minimum level come first.
type LowStockUseCase struct {
	itemRepo repository.ItemRepository
}

// NewLowStockUseCase builds the use case.
func NewLowStockUseCase(itemRepo repository.ItemRepository) *LowStockUseCase {
	return &LowStockUseCase{itemRepo: itemRepo}
}

// GenerateLowStockReport lists items below reorder with suggested quantities.
// Ideal stock is reorderLevel * 1.5; the suggestion tops the item back up to
// ideal and is priced at the item's unit price.
func (uc *LowStockUseCase) GenerateLowStockReport(ctx context.Context, templeID string) ([]dto.LowStockItemDTO, error) {
	items, err := uc.itemRepo.ListBelowReorder(ctx, templeID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []dto.LowStockItemDTO{}, nil
	}

	idealFactor := decimal.NewFromFloat(1.5)
	lines := make([]dto.LowStockItemDTO, 0, len(items))
	for _, it := range items {
		ideal := it.ReorderLevel.Mul(idealFactor)
		suggested := ideal.Sub(it.CurrentStock)
		if suggested.IsNegative() {
			suggested = decimal.Zero
		}
		lines = append(lines, dto.LowStockItemDTO{
			ItemID:             it.ID,
			Code:               it.Code,
			Name:               it.Name,
			Category:           it.Category,
			Unit:               it.Unit,
			CurrentStock:       it.CurrentStock,
			ReorderLevel:       it.ReorderLevel,
			MinimumLevel:       it.MinimumLevel,
			Status:             it.Status,
			IdealStock:         ideal,
			SuggestedOrderQty:  suggested,
			EstimatedOrderCost: suggested.Mul(it.UnitPrice),
		})
	}

	// Most urgent first: largest shortfall against the minimum level.
	sort.SliceStable(lines, func(i, j int) bool {
		si := lines[i].CurrentStock.Sub(lines[i].MinimumLevel)
		sj := lines[j].CurrentStock.Sub(lines[j].MinimumLevel)
		return si.LessThan(sj)
	})
	for i := range lines {
		lines[i].Priority = i + 1
	}
	return lines, nil
}
