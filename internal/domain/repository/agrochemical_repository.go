package repository

import "github.com/jprezende/AgroGestor-api/internal/domain/entity"

// AgrochemicalRepository define a porta de persistência para defensivos.
type AgrochemicalRepository interface {
	Create(item *entity.Agrochemical) error
	GetByID(id string) (*entity.Agrochemical, error)
	// GetByFarmAndRegistry localiza pelo registro MAPA (chave natural na importação de NF-e).
	GetByFarmAndRegistry(farmID, registryNumber string) (*entity.Agrochemical, error)
	GetByFarmAndName(farmID, name string) (*entity.Agrochemical, error)
	Update(item *entity.Agrochemical) error
	ListByFarm(farmID string, limit, offset int) ([]*entity.Agrochemical, int, error)
	Delete(id string) error
}
