package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// HarvestLoad representa uma carga de colheita pesada na balança (romaneio).
// NetKg é derivado na entrada (bruto - tara) e a validação exige bruto
// estritamente maior que tara; cargas não afetam o razão de estoque.
type HarvestLoad struct {
	ID           string
	FarmID       string
	Date         time.Time
	Crop         string
	FieldName    string  // talhão em texto livre (filtro por substring)
	PlantingID   *string // vínculo opcional com Planting
	Plate        string  // placa do caminhão
	Driver       string
	Destination  string // silo, armazém, cooperativa
	TicketNumber string // número do ticket de balança
	GrossKg      decimal.Decimal
	TareKg       decimal.Decimal
	NetKg        decimal.Decimal
	Notes        string
	CreatedAt    time.Time
}
