package repository

import "github.com/jprezende/AgroGestor-api/internal/domain/entity"

// FarmRepository define a porta de persistência para fazendas.
type FarmRepository interface {
	Create(farm *entity.Farm) error
	GetByID(id string) (*entity.Farm, error)
	Update(farm *entity.Farm) error
	List(limit, offset int) ([]*entity.Farm, int, error)
}
