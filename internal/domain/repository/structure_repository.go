package repository

import (
	"context"

	"github.com/templeops/temple-stock-api/internal/domain/entity"
)

// StructureRepository is the persistence port for temple structures.
type StructureRepository interface {
	Create(ctx context.Context, s *entity.Structure) error
	GetByID(ctx context.Context, id string) (*entity.Structure, error)
	List(ctx context.Context, templeID string, limit, offset int) ([]*entity.Structure, error)
}
