package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/templeops/temple-stock-api/internal/domain"
	"github.com/templeops/temple-stock-api/internal/domain/entity"
	"github.com/templeops/temple-stock-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, code, temple_id, name, item_type, category, unit,
	current_stock, reorder_level, minimum_level, default_structure,
	storage_location, unit_price, supplier, status, last_restocked,
	version, created_at, updated_at`

// ItemRepo implements ItemRepository on PostgreSQL (usable with pool or tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository builds the adapter. Pass a pool or a tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persists a new stock item.
func (r *ItemRepo) Create(ctx context.Context, item *entity.StockItem) error {
	query := `
		INSERT INTO stock_items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Code, item.TempleID, item.Name, item.ItemType, item.Category, item.Unit,
		item.CurrentStock, item.ReorderLevel, item.MinimumLevel, item.DefaultStructure,
		item.StorageLocation, item.UnitPrice, item.Supplier, item.Status, item.LastRestocked,
		item.Version, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create stock item: %w", err)
	}
	return nil
}

// GetByID returns the item, or (nil, nil) when it does not exist.
func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.StockItem, error) {
	query := `SELECT ` + itemColumns + ` FROM stock_items WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get stock item")
}

// GetByCode returns the item with the given SKU, or (nil, nil).
func (r *ItemRepo) GetByCode(ctx context.Context, templeID, code string) (*entity.StockItem, error) {
	query := `SELECT ` + itemColumns + ` FROM stock_items WHERE temple_id = $1 AND code = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, templeID, code), "get stock item by code")
}

// GetForUpdate locks the item row for the enclosing transaction.
func (r *ItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.StockItem, error) {
	query := `SELECT ` + itemColumns + ` FROM stock_items WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get stock item for update")
}

// Update writes descriptive fields. Stock-state columns stay untouched.
func (r *ItemRepo) Update(ctx context.Context, item *entity.StockItem) error {
	query := `
		UPDATE stock_items
		SET name = $2, item_type = $3, category = $4, unit = $5,
		    reorder_level = $6, minimum_level = $7, default_structure = $8,
		    storage_location = $9, unit_price = $10, supplier = $11, updated_at = $12
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		item.ID, item.Name, item.ItemType, item.Category, item.Unit,
		item.ReorderLevel, item.MinimumLevel, item.DefaultStructure,
		item.StorageLocation, item.UnitPrice, item.Supplier, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// UpdateStockState writes the balance-engine-owned columns with an optimistic
// version bump. A stale version means another writer slipped in between read
// and write, which the row lock should have prevented.
func (r *ItemRepo) UpdateStockState(ctx context.Context, item *entity.StockItem) error {
	query := `
		UPDATE stock_items
		SET current_stock = $2, status = $3, last_restocked = $4,
		    version = version + 1, updated_at = $5
		WHERE id = $1 AND version = $6`
	tag, err := r.q.Exec(ctx, query,
		item.ID, item.CurrentStock, item.Status, item.LastRestocked,
		item.UpdatedAt, item.Version,
	)
	if err != nil {
		return fmt.Errorf("update stock state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConcurrentWrite
	}
	item.Version++
	return nil
}

// List returns items matching the filter, newest first.
func (r *ItemRepo) List(ctx context.Context, filter repository.ItemFilter) ([]*entity.StockItem, error) {
	query := `SELECT ` + itemColumns + ` FROM stock_items WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.TempleID != "" {
		query += fmt.Sprintf(" AND temple_id = $%d", pos)
		args = append(args, filter.TempleID)
		pos++
	}
	if filter.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", pos)
		args = append(args, filter.Category)
		pos++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, filter.Status)
		pos++
	}
	if filter.Structure != "" {
		query += fmt.Sprintf(" AND default_structure = $%d", pos)
		args = append(args, filter.Structure)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY code LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// ListBelowReorder returns items at or below their reorder level.
func (r *ItemRepo) ListBelowReorder(ctx context.Context, templeID string) ([]*entity.StockItem, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM stock_items
		WHERE temple_id = $1 AND current_stock <= reorder_level
		ORDER BY current_stock - minimum_level`
	rows, err := r.q.Query(ctx, query, templeID)
	if err != nil {
		return nil, fmt.Errorf("list items below reorder: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// NextCode reserves the next ITM-### SKU from a dedicated sequence, so codes
// stay unique under concurrent creators.
func (r *ItemRepo) NextCode(ctx context.Context) (string, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT nextval('stock_item_code_seq')`).Scan(&n); err != nil {
		return "", fmt.Errorf("next item code: %w", err)
	}
	return fmt.Sprintf("ITM-%03d", n), nil
}

func (r *ItemRepo) scanOne(row pgx.Row, op string) (*entity.StockItem, error) {
	var it entity.StockItem
	err := row.Scan(
		&it.ID, &it.Code, &it.TempleID, &it.Name, &it.ItemType, &it.Category, &it.Unit,
		&it.CurrentStock, &it.ReorderLevel, &it.MinimumLevel, &it.DefaultStructure,
		&it.StorageLocation, &it.UnitPrice, &it.Supplier, &it.Status, &it.LastRestocked,
		&it.Version, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &it, nil
}

func (r *ItemRepo) scanAll(rows pgx.Rows) ([]*entity.StockItem, error) {
	var list []*entity.StockItem
	for rows.Next() {
		var it entity.StockItem
		if err := rows.Scan(
			&it.ID, &it.Code, &it.TempleID, &it.Name, &it.ItemType, &it.Category, &it.Unit,
			&it.CurrentStock, &it.ReorderLevel, &it.MinimumLevel, &it.DefaultStructure,
			&it.StorageLocation, &it.UnitPrice, &it.Supplier, &it.Status, &it.LastRestocked,
			&it.Version, &it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
