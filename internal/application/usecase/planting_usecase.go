package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jprezende/AgroGestor-api/internal/application/dto"
	"github.com/jprezende/AgroGestor-api/internal/domain"
	"github.com/jprezende/AgroGestor-api/internal/domain/entity"
	"github.com/jprezende/AgroGestor-api/internal/domain/repository"
)

// PlantingUseCase casos de uso para plantios.
type PlantingUseCase struct {
	repo   repository.PlantingRepository
	fields repository.FieldRepository
}

// NewPlantingUseCase constrói o caso de uso.
func NewPlantingUseCase(repo repository.PlantingRepository, fields repository.FieldRepository) *PlantingUseCase {
	return &PlantingUseCase{repo: repo, fields: fields}
}

// Create cria um plantio vinculado a um talhão da fazenda.
func (uc *PlantingUseCase) Create(farmID string, in dto.CreatePlantingRequest) (*dto.PlantingResponse, error) {
	if in.Crop == "" || in.FieldID == "" {
		return nil, domain.ErrInvalidInput
	}
	field, err := uc.fields.GetByID(in.FieldID)
	if err != nil {
		return nil, err
	}
	if field == nil || field.FarmID != farmID {
		return nil, fmt.Errorf("talhão %s: %w", in.FieldID, domain.ErrNotFound)
	}
	date, err := time.Parse("2006-01-02", in.PlantingDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	area, err := decimal.NewFromString(in.AreaHa)
	if err != nil || !area.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	target := decimal.Zero
	if in.YieldTargetKg != "" {
		if target, err = decimal.NewFromString(in.YieldTargetKg); err != nil || target.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	planting := &entity.Planting{
		ID:            uuid.New().String(),
		FarmID:        farmID,
		FieldID:       in.FieldID,
		Crop:          in.Crop,
		Variety:       in.Variety,
		PlantingDate:  date,
		AreaHa:        area,
		YieldTargetKg: target,
		Status:        entity.PlantingStatusInProgress,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(planting); err != nil {
		return nil, err
	}
	return toPlantingResponse(planting), nil
}

// GetByID obtém um plantio por ID (nil se não existe).
func (uc *PlantingUseCase) GetByID(id string) (*dto.PlantingResponse, error) {
	planting, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if planting == nil {
		return nil, nil
	}
	return toPlantingResponse(planting), nil
}

// Update atualiza campos informados; status só aceita os valores conhecidos.
func (uc *PlantingUseCase) Update(id string, in dto.UpdatePlantingRequest) (*dto.PlantingResponse, error) {
	planting, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if planting == nil {
		return nil, nil
	}
	if in.Crop != nil {
		planting.Crop = *in.Crop
	}
	if in.Variety != nil {
		planting.Variety = *in.Variety
	}
	if in.AreaHa != nil {
		area, err := decimal.NewFromString(*in.AreaHa)
		if err != nil || !area.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		planting.AreaHa = area
	}
	if in.YieldTargetKg != nil {
		target, err := decimal.NewFromString(*in.YieldTargetKg)
		if err != nil || target.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		planting.YieldTargetKg = target
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.PlantingStatusInProgress, entity.PlantingStatusCompleted, entity.PlantingStatusCancelled:
			planting.Status = *in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	planting.UpdatedAt = time.Now()
	if err := uc.repo.Update(planting); err != nil {
		return nil, err
	}
	return toPlantingResponse(planting), nil
}

// List lista plantios da fazenda, com filtro opcional por status.
func (uc *PlantingUseCase) List(farmID, status string, limit, offset int) (*dto.PlantingListResponse, error) {
	list, total, err := uc.repo.ListByFarm(farmID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PlantingResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPlantingResponse(p))
	}
	return &dto.PlantingListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// Delete exclui um plantio. As cargas de colheita vinculadas ficam com o
// vínculo nulo (responsabilidade do repositório, ON DELETE SET NULL).
func (uc *PlantingUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toPlantingResponse(p *entity.Planting) *dto.PlantingResponse {
	if p == nil {
		return nil
	}
	return &dto.PlantingResponse{
		ID:            p.ID,
		FarmID:        p.FarmID,
		FieldID:       p.FieldID,
		Crop:          p.Crop,
		Variety:       p.Variety,
		PlantingDate:  p.PlantingDate,
		AreaHa:        p.AreaHa,
		YieldTargetKg: p.YieldTargetKg,
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
