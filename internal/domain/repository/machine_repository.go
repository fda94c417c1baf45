package repository

import "github.com/jprezende/AgroGestor-api/internal/domain/entity"

// MachineRepository define a porta de persistência para máquinas.
type MachineRepository interface {
	Create(machine *entity.Machine) error
	GetByID(id string) (*entity.Machine, error)
	Update(machine *entity.Machine) error
	ListByFarm(farmID string, limit, offset int) ([]*entity.Machine, int, error)
	Delete(id string) error
}
