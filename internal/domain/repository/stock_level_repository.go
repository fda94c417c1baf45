package repository

import "github.com/jprezende/AgroGestor-api/internal/domain/entity"

// StockLevelRepository define a porta para consultar/atualizar a quantidade em
// mãos de um item. Usado dentro de transações para garantir consistência.
type StockLevelRepository interface {
	Get(ref entity.ItemRef) (*entity.StockLevel, error)
	// GetForUpdate bloqueia a linha do item (SELECT FOR UPDATE) antes do
	// read-modify-write; serializa escritores concorrentes do mesmo item.
	// Item sem linha no razão: a implementação deve materializar a linha
	// zero antes de bloquear, para que o lock sempre exista.
	GetForUpdate(ref entity.ItemRef) (*entity.StockLevel, error)
	Upsert(level *entity.StockLevel) error
}
