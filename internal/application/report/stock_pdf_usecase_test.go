package report_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templeops/temple-stock-api/internal/application/report"
	"github.com/templeops/temple-stock-api/internal/domain/entity"
	"github.com/templeops/temple-stock-api/internal/infrastructure/memory"
)

// capturingGenerator records the items handed to it instead of rendering.
type capturingGenerator struct {
	items []*entity.StockItem
}

func (g *capturingGenerator) GenerateStockReport(_ context.Context, _ string, items []*entity.StockItem, _ time.Time) ([]byte, error) {
	g.items = items
	return []byte("pdf"), nil
}

// Registries larger than one repository page must still export in full.
func TestGenerateStockPDFCoversWholeRegistry(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	const total = 1207
	now := time.Now()
	for i := 0; i < total; i++ {
		err := store.ItemRepository().Create(ctx, &entity.StockItem{
			ID:        fmt.Sprintf("item-%04d", i),
			Code:      fmt.Sprintf("ITM-%04d", i),
			TempleID:  "main",
			Name:      fmt.Sprintf("Item %04d", i),
			ItemType:  entity.ItemTypeConsumable,
			Status:    entity.StatusInStock,
			CreatedAt: now,
			UpdatedAt: now,
		})
		require.NoError(t, err)
	}

	gen := &capturingGenerator{}
	uc := report.NewStockPDFUseCase(store.ItemRepository(), gen)

	out, err := uc.GenerateStockPDF(ctx, "main")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	require.Len(t, gen.items, total)

	// No duplicates across page boundaries.
	seen := make(map[string]bool, total)
	for _, it := range gen.items {
		assert.False(t, seen[it.ID], "item %s exported twice", it.ID)
		seen[it.ID] = true
	}
}

func TestGenerateStockPDFEmptyRegistry(t *testing.T) {
	store := memory.NewStore()
	gen := &capturingGenerator{}
	uc := report.NewStockPDFUseCase(store.ItemRepository(), gen)

	out, err := uc.GenerateStockPDF(context.Background(), "main")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.Empty(t, gen.items)
}
