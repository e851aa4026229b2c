package entity

import "time"

// Empresa representa um provedor/tenant do sistema (multi-tenant).
// Todas as consultas da aplicação são escopadas pelo seu ID.
type Empresa struct {
	ID        string
	Nome      string
	CNPJ      string
	Endereco  string
	Telefone  string
	Email     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
