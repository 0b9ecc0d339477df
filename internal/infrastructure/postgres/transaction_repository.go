package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/templeops/temple-stock-api/internal/domain/entity"
	"github.com/templeops/temple-stock-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

const txColumns = `id, occurred_at, item_id, item_name, type, quantity,
	balance_after, store_location, structure_id, structure_name,
	linked_event, linked_kitchen_request, linked_freelancer,
	unit_price, total_amount, notes, created_by, created_at`

// TransactionRepo implements the append-only ledger on PostgreSQL. IDs come
// from the table's BIGSERIAL, so they are monotonic across writers.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository builds the adapter. Pass a pool or a tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Append persists the transaction and fills in its sequence ID.
func (r *TransactionRepo) Append(ctx context.Context, tx *entity.StockTransaction) error {
	query := `
		INSERT INTO stock_transactions (occurred_at, item_id, item_name, type,
			quantity, balance_after, store_location, structure_id, structure_name,
			linked_event, linked_kitchen_request, linked_freelancer,
			unit_price, total_amount, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		tx.OccurredAt, tx.ItemID, tx.ItemName, tx.Type,
		tx.Quantity, tx.BalanceAfter, tx.StoreLocation, tx.StructureID, tx.StructureName,
		tx.LinkedEvent, tx.LinkedKitchenRequest, tx.LinkedFreelancer,
		tx.UnitPrice, tx.TotalAmount, tx.Notes, tx.CreatedBy, tx.CreatedAt,
	).Scan(&tx.ID)
	if err != nil {
		return fmt.Errorf("append stock transaction: %w", err)
	}
	return nil
}

// GetByID returns one ledger entry, or (nil, nil) when absent.
func (r *TransactionRepo) GetByID(ctx context.Context, id int64) (*entity.StockTransaction, error) {
	query := `SELECT ` + txColumns + ` FROM stock_transactions WHERE id = $1`
	var tx entity.StockTransaction
	err := r.q.QueryRow(ctx, query, id).Scan(
		&tx.ID, &tx.OccurredAt, &tx.ItemID, &tx.ItemName, &tx.Type, &tx.Quantity,
		&tx.BalanceAfter, &tx.StoreLocation, &tx.StructureID, &tx.StructureName,
		&tx.LinkedEvent, &tx.LinkedKitchenRequest, &tx.LinkedFreelancer,
		&tx.UnitPrice, &tx.TotalAmount, &tx.Notes, &tx.CreatedBy, &tx.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock transaction: %w", err)
	}
	return &tx, nil
}

// List returns ledger entries matching the filter, newest id first.
func (r *TransactionRepo) List(ctx context.Context, filter repository.TransactionFilter) ([]*entity.StockTransaction, error) {
	query := `SELECT ` + txColumns + ` FROM stock_transactions WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.ItemID != "" {
		query += fmt.Sprintf(" AND item_id = $%d", pos)
		args = append(args, filter.ItemID)
		pos++
	}
	if filter.StructureID != "" {
		query += fmt.Sprintf(" AND structure_id = $%d", pos)
		args = append(args, filter.StructureID)
		pos++
	}
	if filter.Type != "" {
		query += fmt.Sprintf(" AND type = $%d", pos)
		args = append(args, filter.Type)
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND occurred_at >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND occurred_at <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY id DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock transactions: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockTransaction
	for rows.Next() {
		var tx entity.StockTransaction
		if err := rows.Scan(
			&tx.ID, &tx.OccurredAt, &tx.ItemID, &tx.ItemName, &tx.Type, &tx.Quantity,
			&tx.BalanceAfter, &tx.StoreLocation, &tx.StructureID, &tx.StructureName,
			&tx.LinkedEvent, &tx.LinkedKitchenRequest, &tx.LinkedFreelancer,
			&tx.UnitPrice, &tx.TotalAmount, &tx.Notes, &tx.CreatedBy, &tx.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock transaction: %w", err)
		}
		list = append(list, &tx)
	}
	return list, rows.Err()
}
