package registry_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templeops/temple-stock-api/internal/application/dto"
	"github.com/templeops/temple-stock-api/internal/application/registry"
	"github.com/templeops/temple-stock-api/internal/application/stock"
	"github.com/templeops/temple-stock-api/internal/domain"
	"github.com/templeops/temple-stock-api/internal/domain/entity"
	"github.com/templeops/temple-stock-api/internal/infrastructure/memory"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestCreateItemDefaults(t *testing.T) {
	store := memory.NewStore()
	uc := registry.NewItemUseCase(store.ItemRepository())

	item, err := uc.CreateOrUpdate(context.Background(), "main", dto.SaveItemRequest{Name: "Camphor"})
	require.NoError(t, err)

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "ITM-001", item.Code, "generated codes are sequential, not length-based")
	assert.Equal(t, entity.ItemTypeConsumable, item.ItemType)
	assert.True(t, item.CurrentStock.IsZero())
	assert.Equal(t, entity.StatusOutOfStock, item.Status)
	assert.Nil(t, item.LastRestocked)

	second, err := uc.CreateOrUpdate(context.Background(), "main", dto.SaveItemRequest{Name: "Incense"})
	require.NoError(t, err)
	assert.Equal(t, "ITM-002", second.Code)
}

func TestCreateItemWithInitialStock(t *testing.T) {
	store := memory.NewStore()
	uc := registry.NewItemUseCase(store.ItemRepository())

	item, err := uc.CreateOrUpdate(context.Background(), "main", dto.SaveItemRequest{
		Name:         "Sandalwood Paste",
		Code:         "SND-001",
		CurrentStock: decPtr("3"),
		ReorderLevel: decPtr("5"),
		UnitPrice:    decPtr("120"),
	})
	require.NoError(t, err)

	assert.Equal(t, "SND-001", item.Code)
	assert.True(t, item.CurrentStock.Equal(dec("3")))
	assert.Equal(t, entity.StatusLowStock, item.Status, "3 <= reorder level 5")
}

func TestCreateItemValidation(t *testing.T) {
	store := memory.NewStore()
	uc := registry.NewItemUseCase(store.ItemRepository())

	t.Run("missing name", func(t *testing.T) {
		_, err := uc.CreateOrUpdate(context.Background(), "main", dto.SaveItemRequest{})
		assert.ErrorIs(t, err, domain.ErrInvalidItem)
	})
	t.Run("unknown item type", func(t *testing.T) {
		_, err := uc.CreateOrUpdate(context.Background(), "main", dto.SaveItemRequest{
			Name: "Bell", ItemType: "Relic",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidItem)
	})
	t.Run("negative initial stock", func(t *testing.T) {
		_, err := uc.CreateOrUpdate(context.Background(), "main", dto.SaveItemRequest{
			Name: "Bell", CurrentStock: decPtr("-1"),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	})
	t.Run("duplicate code", func(t *testing.T) {
		_, err := uc.CreateOrUpdate(context.Background(), "main", dto.SaveItemRequest{Name: "Bell", Code: "BEL-001"})
		require.NoError(t, err)
		_, err = uc.CreateOrUpdate(context.Background(), "main", dto.SaveItemRequest{Name: "Another Bell", Code: "BEL-001"})
		assert.ErrorIs(t, err, domain.ErrDuplicate)
	})
}

func TestUpdateItemMergesDescriptiveFieldsOnly(t *testing.T) {
	store := memory.NewStore()
	uc := registry.NewItemUseCase(store.ItemRepository())
	engine := stock.NewUpdateStockUseCase(store)

	created, err := uc.CreateOrUpdate(context.Background(), "main", dto.SaveItemRequest{
		Name:         "Rice Bags",
		CurrentStock: decPtr("50"),
		ReorderLevel: decPtr("20"),
	})
	require.NoError(t, err)

	// Move the balance through the engine, then merge-update the item.
	_, err = engine.UpdateStock(context.Background(), created.ID, dec("-40"), stock.TransactionMeta{})
	require.NoError(t, err)

	updated, err := uc.CreateOrUpdate(context.Background(), "main", dto.SaveItemRequest{
		ID:       created.ID,
		Name:     "Rice Bags (25kg)",
		Supplier: "Lakshmi Traders",
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.Code, updated.Code, "code survives the update")
	assert.Equal(t, "Rice Bags (25kg)", updated.Name)
	assert.Equal(t, "Lakshmi Traders", updated.Supplier)
	assert.True(t, updated.CurrentStock.Equal(dec("10")), "registry never writes the balance")
	assert.Equal(t, entity.StatusLowStock, updated.Status)
}

func TestCreateOrUpdateUnknownIDCreates(t *testing.T) {
	store := memory.NewStore()
	uc := registry.NewItemUseCase(store.ItemRepository())

	item, err := uc.CreateOrUpdate(context.Background(), "main", dto.SaveItemRequest{
		ID:   "imported-from-elsewhere",
		Name: "Brass Lamp",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "imported-from-elsewhere", item.ID, "unknown ids get a fresh identity")
	assert.Equal(t, "ITM-001", item.Code)
}

func TestGetByIDAbsent(t *testing.T) {
	store := memory.NewStore()
	uc := registry.NewItemUseCase(store.ItemRepository())

	item, err := uc.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, item)
}
