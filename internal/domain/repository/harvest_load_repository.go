package repository

import (
	"time"

	"github.com/jprezende/AgroGestor-api/internal/domain/entity"
)

// HarvestLoadFilter filtros de listagem/agregação de cargas de colheita.
// Crop e FieldName casam por substring sem diferenciar maiúsculas/acentos.
type HarvestLoadFilter struct {
	FarmID     string
	From       *time.Time
	To         *time.Time
	Crop       string
	FieldName  string
	PlantingID string
	Limit      int
	Offset     int
}

// HarvestLoadRepository define a porta de persistência para cargas de colheita.
type HarvestLoadRepository interface {
	Create(load *entity.HarvestLoad) error
	GetByID(id string) (*entity.HarvestLoad, error)
	List(filter HarvestLoadFilter) ([]*entity.HarvestLoad, int, error)
	// ListAll devolve todas as cargas do filtro sem paginação (agregação e export).
	ListAll(filter HarvestLoadFilter) ([]*entity.HarvestLoad, error)
	Delete(id string) error
}
