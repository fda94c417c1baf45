package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status válidos de um plantio.
const (
	PlantingStatusInProgress = "EM_ANDAMENTO"
	PlantingStatusCompleted  = "CONCLUIDO"
	PlantingStatusCancelled  = "CANCELADO"
)

// Planting representa um plantio (safra de uma cultura em um talhão).
// Excluir um plantio não exclui as cargas de colheita vinculadas: o vínculo
// fica nulo (PlantingID de HarvestLoad é opcional).
type Planting struct {
	ID            string
	FarmID        string
	FieldID       string
	Crop          string
	Variety       string
	PlantingDate  time.Time
	AreaHa        decimal.Decimal
	YieldTargetKg decimal.Decimal // meta de produção, 0 = sem meta
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
