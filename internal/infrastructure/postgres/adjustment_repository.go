package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/templeops/temple-stock-api/internal/domain/entity"
	"github.com/templeops/temple-stock-api/internal/domain/repository"
)

var _ repository.AdjustmentRepository = (*AdjustmentRepo)(nil)

const adjColumns = `id, occurred_at, item_id, item_name, system_qty, actual_qty,
	difference, reason, structure_name, store_location, notes, adjusted_by,
	transaction_id, created_at`

// AdjustmentRepo implements AdjustmentRepository on PostgreSQL.
type AdjustmentRepo struct {
	q Querier
}

// NewAdjustmentRepository builds the adapter. Pass a pool or a tx (Querier).
func NewAdjustmentRepository(q Querier) *AdjustmentRepo {
	return &AdjustmentRepo{q: q}
}

// Create persists a reconciliation record.
func (r *AdjustmentRepo) Create(ctx context.Context, adj *entity.StockAdjustment) error {
	query := `
		INSERT INTO stock_adjustments (` + adjColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		adj.ID, adj.OccurredAt, adj.ItemID, adj.ItemName, adj.SystemQty, adj.ActualQty,
		adj.Difference, adj.Reason, adj.StructureName, adj.StoreLocation, adj.Notes,
		adj.AdjustedBy, adj.TransactionID, adj.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock adjustment: %w", err)
	}
	return nil
}

// GetByID returns one adjustment, or (nil, nil) when absent.
func (r *AdjustmentRepo) GetByID(ctx context.Context, id string) (*entity.StockAdjustment, error) {
	query := `SELECT ` + adjColumns + ` FROM stock_adjustments WHERE id = $1`
	var adj entity.StockAdjustment
	err := r.q.QueryRow(ctx, query, id).Scan(
		&adj.ID, &adj.OccurredAt, &adj.ItemID, &adj.ItemName, &adj.SystemQty, &adj.ActualQty,
		&adj.Difference, &adj.Reason, &adj.StructureName, &adj.StoreLocation, &adj.Notes,
		&adj.AdjustedBy, &adj.TransactionID, &adj.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock adjustment: %w", err)
	}
	return &adj, nil
}

// List returns adjustments matching the filter, newest first.
func (r *AdjustmentRepo) List(ctx context.Context, filter repository.AdjustmentFilter) ([]*entity.StockAdjustment, error) {
	query := `SELECT ` + adjColumns + ` FROM stock_adjustments WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.ItemID != "" {
		query += fmt.Sprintf(" AND item_id = $%d", pos)
		args = append(args, filter.ItemID)
		pos++
	}
	if filter.Reason != "" {
		query += fmt.Sprintf(" AND reason = $%d", pos)
		args = append(args, filter.Reason)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY occurred_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock adjustments: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockAdjustment
	for rows.Next() {
		var adj entity.StockAdjustment
		if err := rows.Scan(
			&adj.ID, &adj.OccurredAt, &adj.ItemID, &adj.ItemName, &adj.SystemQty, &adj.ActualQty,
			&adj.Difference, &adj.Reason, &adj.StructureName, &adj.StoreLocation, &adj.Notes,
			&adj.AdjustedBy, &adj.TransactionID, &adj.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock adjustment: %w", err)
		}
		list = append(list, &adj)
	}
	return list, rows.Err()
}
