package repository

import "github.com/jprezende/AgroGestor-api/internal/domain/entity"

// UserRepository define a porta de persistência para usuários.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
}
