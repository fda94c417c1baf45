package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jprezende/AgroGestor-api/internal/application/dto"
	"github.com/jprezende/AgroGestor-api/internal/domain"
	"github.com/jprezende/AgroGestor-api/internal/domain/entity"
	"github.com/jprezende/AgroGestor-api/internal/domain/repository"
)

// MachineUseCase casos de uso CRUD para máquinas.
type MachineUseCase struct {
	repo repository.MachineRepository
}

// NewMachineUseCase constrói o caso de uso.
func NewMachineUseCase(repo repository.MachineRepository) *MachineUseCase {
	return &MachineUseCase{repo: repo}
}

// Create cria uma máquina.
func (uc *MachineUseCase) Create(farmID string, in dto.CreateMachineRequest) (*dto.MachineResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	machine := &entity.Machine{
		ID:        uuid.New().String(),
		FarmID:    farmID,
		Name:      in.Name,
		Model:     in.Model,
		Plate:     in.Plate,
		Year:      in.Year,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(machine); err != nil {
		return nil, err
	}
	return toMachineResponse(machine), nil
}

// GetByID obtém uma máquina por ID (nil se não existe).
func (uc *MachineUseCase) GetByID(id string) (*dto.MachineResponse, error) {
	machine, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if machine == nil {
		return nil, nil
	}
	return toMachineResponse(machine), nil
}

// Update atualiza campos informados.
func (uc *MachineUseCase) Update(id string, in dto.UpdateMachineRequest) (*dto.MachineResponse, error) {
	machine, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if machine == nil {
		return nil, nil
	}
	if in.Name != nil {
		machine.Name = *in.Name
	}
	if in.Model != nil {
		machine.Model = *in.Model
	}
	if in.Plate != nil {
		machine.Plate = *in.Plate
	}
	if in.Year != nil {
		machine.Year = *in.Year
	}
	if in.Active != nil {
		machine.Active = *in.Active
	}
	machine.UpdatedAt = time.Now()
	if err := uc.repo.Update(machine); err != nil {
		return nil, err
	}
	return toMachineResponse(machine), nil
}

// List lista máquinas da fazenda com paginação e total.
func (uc *MachineUseCase) List(farmID string, limit, offset int) (*dto.MachineListResponse, error) {
	list, total, err := uc.repo.ListByFarm(farmID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MachineResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMachineResponse(m))
	}
	return &dto.MachineListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// Delete exclui uma máquina por ID.
func (uc *MachineUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toMachineResponse(m *entity.Machine) *dto.MachineResponse {
	if m == nil {
		return nil
	}
	return &dto.MachineResponse{
		ID:        m.ID,
		FarmID:    m.FarmID,
		Name:      m.Name,
		Model:     m.Model,
		Plate:     m.Plate,
		Year:      m.Year,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
