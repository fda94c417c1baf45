package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimentação de estoque.
const (
	MovementTypeEntrada = "ENTRADA"
	MovementTypeSaida   = "SAIDA"
)

// Movement representa uma movimentação de estoque (entrada ou saída).
// Quantity é sempre positiva; o sinal do efeito no razão vem do Type.
// Imutável após criada; a exclusão estorna o efeito no razão.
type Movement struct {
	ID         string
	FarmID     string
	ItemKind   string // PRODUTO ou DEFENSIVO
	ItemID     string
	Type       string // ENTRADA ou SAIDA
	Quantity   decimal.Decimal
	EmployeeID *string // opcional: quem retirou/recebeu
	MachineID  *string // opcional: máquina destino da saída
	Activity   string  // texto livre (aplicação, manutenção...)
	CreatedAt  time.Time
	CreatedBy  string // UserID
}

// MovementWithRefs é a projeção de Movement com os campos de exibição
// desnormalizados (join de leitura com item, funcionário e máquina).
type MovementWithRefs struct {
	Movement
	ItemName     string
	EmployeeName string
	MachineName  string
}
