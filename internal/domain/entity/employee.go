package entity

import "time"

// Employee representa um funcionário da fazenda (referenciável em movimentações).
type Employee struct {
	ID        string
	FarmID    string
	Name      string
	Role      string // tratorista, aplicador, mecânico...
	Phone     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
