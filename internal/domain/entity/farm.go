package entity

import "time"

// Farm representa uma fazenda (tenant raiz: todos os demais registros pertencem a uma fazenda).
type Farm struct {
	ID        string
	Name      string
	Owner     string
	City      string
	State     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
