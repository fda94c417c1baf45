package repository

import "github.com/jprezende/AgroGestor-api/internal/domain/entity"

// ProductRepository define a porta de persistência para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByFarmAndCode(farmID, code string) (*entity.Product, error)
	Update(product *entity.Product) error
	ListByFarm(farmID string, limit, offset int) ([]*entity.Product, int, error)
	Delete(id string) error
}
