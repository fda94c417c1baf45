package entity

import "time"

// Machine representa uma máquina ou implemento (trator, colheitadeira, pulverizador).
type Machine struct {
	ID        string
	FarmID    string
	Name      string
	Model     string
	Plate     string // placa ou número de frota
	Year      int
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
