package repository

import "github.com/jprezende/AgroGestor-api/internal/domain/entity"

// NFeImportRepository define a porta de persistência para notas importadas.
type NFeImportRepository interface {
	Create(imp *entity.NFeImport) error
	GetByFarmAndDigest(farmID, digest string) (*entity.NFeImport, error)
	ListByFarm(farmID string, limit, offset int) ([]*entity.NFeImport, int, error)
}
