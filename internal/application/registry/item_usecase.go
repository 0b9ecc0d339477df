package registry

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/templeops/temple-stock-api/internal/application/dto"
	"github.com/templeops/temple-stock-api/internal/domain"
	"github.com/templeops/temple-stock-api/internal/domain/entity"
	"github.com/templeops/temple-stock-api/internal/domain/repository"
	domstock "github.com/templeops/temple-stock-api/internal/domain/stock"
)

// ItemUseCase is the item registry: master data for stockable items.
// Stock-state fields (CurrentStock, Status, LastRestocked) are written here
// only once, on creation; afterwards the balance engine owns them.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase builds the use case.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// CreateOrUpdate merge-updates an existing item's descriptive fields when the
// supplied ID matches, and creates a new item otherwise. A missing name is a
// validation error, not a silent no-op.
func (uc *ItemUseCase) CreateOrUpdate(ctx context.Context, templeID string, in dto.SaveItemRequest) (*dto.ItemResponse, error) {
	if in.ID != "" {
		existing, err := uc.repo.GetByID(ctx, in.ID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return uc.update(ctx, existing, in)
		}
		// Unknown ID falls through to create with a fresh identity.
	}
	return uc.create(ctx, templeID, in)
}

func (uc *ItemUseCase) create(ctx context.Context, templeID string, in dto.SaveItemRequest) (*dto.ItemResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidItem
	}
	itemType := in.ItemType
	if itemType == "" {
		itemType = entity.ItemTypeConsumable
	}
	if !entity.ValidItemType(itemType) {
		return nil, domain.ErrInvalidItem
	}

	code := in.Code
	if code == "" {
		var err error
		code, err = uc.repo.NextCode(ctx)
		if err != nil {
			return nil, err
		}
	} else {
		dup, err := uc.repo.GetByCode(ctx, templeID, code)
		if err != nil {
			return nil, err
		}
		if dup != nil {
			return nil, domain.ErrDuplicate
		}
	}

	currentStock := decimal.Zero
	if in.CurrentStock != nil {
		currentStock = *in.CurrentStock
	}
	if currentStock.IsNegative() {
		return nil, domain.ErrInvalidQuantity
	}

	now := time.Now()
	item := &entity.StockItem{
		ID:               uuid.New().String(),
		Code:             code,
		TempleID:         templeID,
		Name:             in.Name,
		ItemType:         itemType,
		Category:         in.Category,
		Unit:             in.Unit,
		CurrentStock:     currentStock,
		ReorderLevel:     deref(in.ReorderLevel),
		MinimumLevel:     deref(in.MinimumLevel),
		DefaultStructure: in.DefaultStructure,
		StorageLocation:  in.StorageLocation,
		UnitPrice:        deref(in.UnitPrice),
		Supplier:         in.Supplier,
		Status:           domstock.DeriveStatus(currentStock, deref(in.ReorderLevel)),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// update rewrites descriptive fields only. CurrentStock and Status are never
// touched here: quantity changes go through the balance engine.
func (uc *ItemUseCase) update(ctx context.Context, item *entity.StockItem, in dto.SaveItemRequest) (*dto.ItemResponse, error) {
	if in.Name != "" {
		item.Name = in.Name
	}
	if in.ItemType != "" {
		if !entity.ValidItemType(in.ItemType) {
			return nil, domain.ErrInvalidItem
		}
		item.ItemType = in.ItemType
	}
	if in.Category != "" {
		item.Category = in.Category
	}
	if in.Unit != "" {
		item.Unit = in.Unit
	}
	if in.ReorderLevel != nil {
		item.ReorderLevel = *in.ReorderLevel
	}
	if in.MinimumLevel != nil {
		item.MinimumLevel = *in.MinimumLevel
	}
	if in.DefaultStructure != "" {
		item.DefaultStructure = in.DefaultStructure
	}
	if in.StorageLocation != "" {
		item.StorageLocation = in.StorageLocation
	}
	if in.UnitPrice != nil {
		item.UnitPrice = *in.UnitPrice
	}
	if in.Supplier != "" {
		item.Supplier = in.Supplier
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID returns the item, or (nil, nil) when it does not exist.
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toItemResponse(item), nil
}

// List returns a page of items matching the filter.
func (uc *ItemUseCase) List(ctx context.Context, filter repository.ItemFilter) (*dto.ItemListResponse, error) {
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	return &dto.ItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}, nil
}

func deref(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func toItemResponse(it *entity.StockItem) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:               it.ID,
		Code:             it.Code,
		TempleID:         it.TempleID,
		Name:             it.Name,
		ItemType:         it.ItemType,
		Category:         it.Category,
		Unit:             it.Unit,
		CurrentStock:     it.CurrentStock,
		ReorderLevel:     it.ReorderLevel,
		MinimumLevel:     it.MinimumLevel,
		DefaultStructure: it.DefaultStructure,
		StorageLocation:  it.StorageLocation,
		UnitPrice:        it.UnitPrice,
		Supplier:         it.Supplier,
		Status:           it.Status,
		LastRestocked:    it.LastRestocked,
		CreatedAt:        it.CreatedAt,
		UpdatedAt:        it.UpdatedAt,
	}
}
