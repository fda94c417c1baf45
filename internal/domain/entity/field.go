package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Field representa um talhão (área de plantio) da fazenda.
type Field struct {
	ID        string
	FarmID    string
	Name      string
	AreaHa    decimal.Decimal // hectares
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
