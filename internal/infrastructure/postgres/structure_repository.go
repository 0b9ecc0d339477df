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

var _ repository.StructureRepository = (*StructureRepo)(nil)

// StructureRepo implements StructureRepository on PostgreSQL.
type StructureRepo struct {
	q Querier
}

// NewStructureRepository builds the adapter. Pass a pool or a tx (Querier).
func NewStructureRepository(q Querier) *StructureRepo {
	return &StructureRepo{q: q}
}

// Create persists a structure.
func (r *StructureRepo) Create(ctx context.Context, s *entity.Structure) error {
	query := `
		INSERT INTO structures (id, temple_id, name, kind, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, s.ID, s.TempleID, s.Name, s.Kind, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create structure: %w", err)
	}
	return nil
}

// GetByID returns the structure, or (nil, nil) when absent.
func (r *StructureRepo) GetByID(ctx context.Context, id string) (*entity.Structure, error) {
	query := `SELECT id, temple_id, name, kind, created_at, updated_at FROM structures WHERE id = $1`
	var s entity.Structure
	err := r.q.QueryRow(ctx, query, id).Scan(&s.ID, &s.TempleID, &s.Name, &s.Kind, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get structure: %w", err)
	}
	return &s, nil
}

// List returns a page of structures for a temple.
func (r *StructureRepo) List(ctx context.Context, templeID string, limit, offset int) ([]*entity.Structure, error) {
	query := `
		SELECT id, temple_id, name, kind, created_at, updated_at
		FROM structures WHERE temple_id = $1
		ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, templeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list structures: %w", err)
	}
	defer rows.Close()

	var list []*entity.Structure
	for rows.Next() {
		var s entity.Structure
		if err := rows.Scan(&s.ID, &s.TempleID, &s.Name, &s.Kind, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan structure: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
