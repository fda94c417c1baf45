// Package nfe define a estrutura de uma NF-e de fornecedor já decodificada,
// usada como fonte de entrada em lote para o registro de movimentações.
package nfe

import (
	"time"

	"github.com/shopspring/decimal"
)

// Header dados do cabeçalho da nota.
type Header struct {
	DocumentNumber string
	Series         string
	IssueDate      time.Time
	SupplierName   string
	SupplierCNPJ   string
}

// LotBatch um lote/batch de um item da nota.
type LotBatch struct {
	LotID           string
	Quantity        decimal.Decimal
	ManufactureDate time.Time
	ExpiryDate      time.Time
}

// LineItem um item (det) da nota.
type LineItem struct {
	Description string
	NCMCode     string
	Unit        string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Lots        []LotBatch
}

// Document a nota decodificada. Digest é o SHA-256 do XML canônico (C14N),
// usado para detectar reimportação da mesma nota.
type Document struct {
	Header Header
	Items  []LineItem
	Digest string
}
