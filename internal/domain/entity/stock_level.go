package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de item controlados pelo razão de estoque (ledgers paralelos).
const (
	ItemKindProduct      = "PRODUTO"
	ItemKindAgrochemical = "DEFENSIVO"
)

// ItemRef identifica um item em qualquer um dos ledgers (produto ou defensivo).
type ItemRef struct {
	Kind string
	ID   string
}

// StockLevel representa a quantidade em mãos de um item. Linha única por item,
// mutada somente pelo razão de estoque dentro de transação com FOR UPDATE.
// Invariante: Quantity >= 0 sempre.
type StockLevel struct {
	ItemKind  string
	ItemID    string
	Quantity  decimal.Decimal
	UpdatedAt time.Time
}
