package registry

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/templeops/temple-stock-api/internal/application/dto"
	"github.com/templeops/temple-stock-api/internal/domain"
	"github.com/templeops/temple-stock-api/internal/domain/entity"
	"github.com/templeops/temple-stock-api/internal/domain/repository"
)

// StructureUseCase is the registry of temple structures (shrines, kitchen,
// store rooms) used to scope stock and populate pickers. Transactions link
// to structures by name only; nothing here enforces referential integrity.
type StructureUseCase struct {
	repo repository.StructureRepository
}

// NewStructureUseCase builds the use case.
func NewStructureUseCase(repo repository.StructureRepository) *StructureUseCase {
	return &StructureUseCase{repo: repo}
}

// Create registers a structure.
func (uc *StructureUseCase) Create(ctx context.Context, templeID string, in dto.CreateStructureRequest) (*dto.StructureResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	s := &entity.Structure{
		ID:        uuid.New().String(),
		TempleID:  templeID,
		Name:      in.Name,
		Kind:      in.Kind,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return toStructureResponse(s), nil
}

// GetByID returns the structure, or (nil, nil) when absent.
func (uc *StructureUseCase) GetByID(ctx context.Context, id string) (*dto.StructureResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	return toStructureResponse(s), nil
}

// List returns a page of structures.
func (uc *StructureUseCase) List(ctx context.Context, templeID string, limit, offset int) (*dto.StructureListResponse, error) {
	list, err := uc.repo.List(ctx, templeID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StructureResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toStructureResponse(s))
	}
	return &dto.StructureListResponse{
		Structures: out,
		Page:       dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toStructureResponse(s *entity.Structure) *dto.StructureResponse {
	return &dto.StructureResponse{
		ID:        s.ID,
		TempleID:  s.TempleID,
		Name:      s.Name,
		Kind:      s.Kind,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
