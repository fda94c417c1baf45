package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jprezende/AgroGestor-api/internal/application/dto"
	"github.com/jprezende/AgroGestor-api/internal/domain"
	"github.com/jprezende/AgroGestor-api/internal/domain/agro"
	"github.com/jprezende/AgroGestor-api/internal/domain/entity"
	"github.com/jprezende/AgroGestor-api/internal/domain/repository"
)

// AgrochemicalUseCase casos de uso CRUD para defensivos.
type AgrochemicalUseCase struct {
	repo repository.AgrochemicalRepository
}

// NewAgrochemicalUseCase constrói o caso de uso.
func NewAgrochemicalUseCase(repo repository.AgrochemicalRepository) *AgrochemicalUseCase {
	return &AgrochemicalUseCase{repo: repo}
}

// Create cria um defensivo. Categoria vazia é inferida pelo NCM e pelo nome
// (mesma tabela de regras usada na importação de NF-e).
func (uc *AgrochemicalUseCase) Create(farmID string, in dto.CreateAgrochemicalRequest) (*dto.AgrochemicalResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	category := in.Category
	if category == "" {
		category = agro.InferCategory(in.NCMCode, in.Name)
	}
	now := time.Now()
	item := &entity.Agrochemical{
		ID:             uuid.New().String(),
		FarmID:         farmID,
		Name:           in.Name,
		NCMCode:        in.NCMCode,
		Category:       category,
		Unit:           in.Unit,
		Manufacturer:   in.Manufacturer,
		RegistryNumber: in.RegistryNumber,
		ToxicityClass:  in.ToxicityClass,
		Location:       in.Location,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toAgrochemicalResponse(item), nil
}

// GetByID obtém um defensivo por ID (nil se não existe).
func (uc *AgrochemicalUseCase) GetByID(id string) (*dto.AgrochemicalResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toAgrochemicalResponse(item), nil
}

// Update atualiza campos informados; NCM novo sem categoria explícita reinfere.
func (uc *AgrochemicalUseCase) Update(id string, in dto.UpdateAgrochemicalRequest) (*dto.AgrochemicalResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.NCMCode != nil {
		item.NCMCode = *in.NCMCode
		if in.Category == nil {
			item.Category = agro.InferCategory(item.NCMCode, item.Name)
		}
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.Manufacturer != nil {
		item.Manufacturer = *in.Manufacturer
	}
	if in.RegistryNumber != nil {
		item.RegistryNumber = *in.RegistryNumber
	}
	if in.ToxicityClass != nil {
		item.ToxicityClass = *in.ToxicityClass
	}
	if in.Location != nil {
		item.Location = *in.Location
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toAgrochemicalResponse(item), nil
}

// List lista defensivos da fazenda com paginação e total.
func (uc *AgrochemicalUseCase) List(farmID string, limit, offset int) (*dto.AgrochemicalListResponse, error) {
	list, total, err := uc.repo.ListByFarm(farmID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AgrochemicalResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAgrochemicalResponse(a))
	}
	return &dto.AgrochemicalListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// Delete exclui um defensivo por ID.
func (uc *AgrochemicalUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toAgrochemicalResponse(a *entity.Agrochemical) *dto.AgrochemicalResponse {
	if a == nil {
		return nil
	}
	return &dto.AgrochemicalResponse{
		ID:             a.ID,
		FarmID:         a.FarmID,
		Name:           a.Name,
		NCMCode:        a.NCMCode,
		Category:       a.Category,
		Unit:           a.Unit,
		Manufacturer:   a.Manufacturer,
		RegistryNumber: a.RegistryNumber,
		ToxicityClass:  a.ToxicityClass,
		Location:       a.Location,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
