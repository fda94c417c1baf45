package repository

import "github.com/jprezende/AgroGestor-api/internal/domain/entity"

// EmployeeRepository define a porta de persistência para funcionários.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	Update(employee *entity.Employee) error
	ListByFarm(farmID string, limit, offset int) ([]*entity.Employee, int, error)
	Delete(id string) error
}
