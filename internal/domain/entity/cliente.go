package entity

import "time"

// Cliente representa um assinante do provedor.
type Cliente struct {
	ID        string
	EmpresaID string
	Nome      string
	CPFCNPJ   string
	Telefone  string // número WhatsApp, com DDI/DDD
	Email     string
	Endereco  string
	Bairro    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
