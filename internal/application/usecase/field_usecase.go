package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jprezende/AgroGestor-api/internal/application/dto"
	"github.com/jprezende/AgroGestor-api/internal/domain"
	"github.com/jprezende/AgroGestor-api/internal/domain/entity"
	"github.com/jprezende/AgroGestor-api/internal/domain/repository"
)

// FieldUseCase casos de uso CRUD para talhões.
type FieldUseCase struct {
	repo repository.FieldRepository
}

// NewFieldUseCase constrói o caso de uso.
func NewFieldUseCase(repo repository.FieldRepository) *FieldUseCase {
	return &FieldUseCase{repo: repo}
}

// Create cria um talhão. Área em hectares deve ser positiva.
func (uc *FieldUseCase) Create(farmID string, in dto.CreateFieldRequest) (*dto.FieldResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	area, err := decimal.NewFromString(in.AreaHa)
	if err != nil || !area.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	field := &entity.Field{
		ID:        uuid.New().String(),
		FarmID:    farmID,
		Name:      in.Name,
		AreaHa:    area,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(field); err != nil {
		return nil, err
	}
	return toFieldResponse(field), nil
}

// GetByID obtém um talhão por ID (nil se não existe).
func (uc *FieldUseCase) GetByID(id string) (*dto.FieldResponse, error) {
	field, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if field == nil {
		return nil, nil
	}
	return toFieldResponse(field), nil
}

// Update atualiza campos informados.
func (uc *FieldUseCase) Update(id string, in dto.UpdateFieldRequest) (*dto.FieldResponse, error) {
	field, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if field == nil {
		return nil, nil
	}
	if in.Name != nil {
		field.Name = *in.Name
	}
	if in.AreaHa != nil {
		area, err := decimal.NewFromString(*in.AreaHa)
		if err != nil || !area.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		field.AreaHa = area
	}
	if in.Notes != nil {
		field.Notes = *in.Notes
	}
	field.UpdatedAt = time.Now()
	if err := uc.repo.Update(field); err != nil {
		return nil, err
	}
	return toFieldResponse(field), nil
}

// List lista talhões da fazenda com paginação e total.
func (uc *FieldUseCase) List(farmID string, limit, offset int) (*dto.FieldListResponse, error) {
	list, total, err := uc.repo.ListByFarm(farmID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FieldResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *toFieldResponse(f))
	}
	return &dto.FieldListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// Delete exclui um talhão por ID.
func (uc *FieldUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toFieldResponse(f *entity.Field) *dto.FieldResponse {
	if f == nil {
		return nil
	}
	return &dto.FieldResponse{
		ID:        f.ID,
		FarmID:    f.FarmID,
		Name:      f.Name,
		AreaHa:    f.AreaHa.String(),
		Notes:     f.Notes,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
