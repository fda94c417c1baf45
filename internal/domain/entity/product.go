package entity

import "time"

// Product representa um item de almoxarifado da fazenda (peça, insumo, combustível).
// A quantidade em estoque não vive aqui: é mantida em StockLevel pelo razão de estoque.
type Product struct {
	ID        string
	FarmID    string
	Code      string // código único por fazenda
	Name      string
	Unit      string // UN, KG, L, CX...
	Location  string // prateleira, galpão
	ImageURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
