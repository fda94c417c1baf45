package entity

import "time"

// Agrochemical representa um defensivo agrícola (herbicida, fungicida, inseticida...).
// Mantido em catálogo separado de Product: o razão de estoque trata os dois em
// ledgers paralelos via ItemKind.
type Agrochemical struct {
	ID             string
	FarmID         string
	Name           string
	NCMCode        string // classificação fiscal (NCM) vinda da NF-e
	Category       string // inferida pela tabela de regras em domain/agro
	Unit           string
	Manufacturer   string
	RegistryNumber string // registro MAPA
	ToxicityClass  string
	Location       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
