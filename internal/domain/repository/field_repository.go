package repository

import "github.com/jprezende/AgroGestor-api/internal/domain/entity"

// FieldRepository define a porta de persistência para talhões.
type FieldRepository interface {
	Create(field *entity.Field) error
	GetByID(id string) (*entity.Field, error)
	Update(field *entity.Field) error
	ListByFarm(farmID string, limit, offset int) ([]*entity.Field, int, error)
	Delete(id string) error
}
