package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jprezende/AgroGestor-api/internal/application/dto"
	"github.com/jprezende/AgroGestor-api/internal/domain"
	"github.com/jprezende/AgroGestor-api/internal/domain/entity"
	"github.com/jprezende/AgroGestor-api/internal/domain/repository"
)

// FarmUseCase casos de uso para fazendas.
type FarmUseCase struct {
	repo repository.FarmRepository
}

// NewFarmUseCase constrói o caso de uso.
func NewFarmUseCase(repo repository.FarmRepository) *FarmUseCase {
	return &FarmUseCase{repo: repo}
}

// Create cria uma fazenda.
func (uc *FarmUseCase) Create(in dto.CreateFarmRequest) (*dto.FarmResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	farm := &entity.Farm{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Owner:     in.Owner,
		City:      in.City,
		State:     in.State,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(farm); err != nil {
		return nil, err
	}
	return toFarmResponse(farm), nil
}

// GetByID obtém uma fazenda por ID (nil se não existe).
func (uc *FarmUseCase) GetByID(id string) (*dto.FarmResponse, error) {
	farm, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if farm == nil {
		return nil, nil
	}
	return toFarmResponse(farm), nil
}

// List lista fazendas cadastradas.
func (uc *FarmUseCase) List(limit, offset int) (*dto.FarmListResponse, error) {
	list, total, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FarmResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *toFarmResponse(f))
	}
	return &dto.FarmListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

func toFarmResponse(f *entity.Farm) *dto.FarmResponse {
	if f == nil {
		return nil
	}
	return &dto.FarmResponse{
		ID:        f.ID,
		Name:      f.Name,
		Owner:     f.Owner,
		City:      f.City,
		State:     f.State,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
