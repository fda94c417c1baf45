package entity

import "time"

// Perfis válidos para User.
const (
	RoleAdmin    = "admin"
	RoleGerente  = "gerente"
	RoleOperador = "operador"
)

// User representa um usuário do sistema (pertence a uma Farm).
type User struct {
	ID           string
	FarmID       string
	Email        string
	PasswordHash string // hash bcrypt, nunca texto plano no domínio após persistir
	Name         string
	Role         string // admin, gerente, operador
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
