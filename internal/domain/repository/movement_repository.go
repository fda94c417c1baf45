package repository

import (
	"time"

	"github.com/jprezende/AgroGestor-api/internal/domain/entity"
)

// MovementFilter filtros de listagem de movimentações.
type MovementFilter struct {
	FarmID   string
	ItemKind string
	ItemID   string
	Type     string
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}

// MovementRepository define a porta de persistência para movimentações de estoque.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	Delete(id string) error
	// ListWithRefs lista movimentações com os campos de exibição resolvidos
	// (nome do item, funcionário e máquina) e o total para paginação.
	ListWithRefs(filter MovementFilter) ([]*entity.MovementWithRefs, int, error)
}
