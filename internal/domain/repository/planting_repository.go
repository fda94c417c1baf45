package repository

import "github.com/jprezende/AgroGestor-api/internal/domain/entity"

// PlantingRepository define a porta de persistência para plantios.
// Delete não pode cascatear para HarvestLoad: o vínculo vira nulo.
type PlantingRepository interface {
	Create(planting *entity.Planting) error
	GetByID(id string) (*entity.Planting, error)
	Update(planting *entity.Planting) error
	ListByFarm(farmID string, status string, limit, offset int) ([]*entity.Planting, int, error)
	Delete(id string) error
}
