package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "admin"
	RoleTecnico   = "tecnico"
	RoleAtendente = "atendente"
)

// User representa um operador do sistema (pertence a uma Empresa).
type User struct {
	ID           string
	EmpresaID    string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano no domínio após persistir
	Nome         string
	Role         string // admin, tecnico, atendente
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
