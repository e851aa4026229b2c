package dto

import "github.com/shopspring/decimal"

// CreateClienteRequest body para POST /api/clientes.
type CreateClienteRequest struct {
	Nome     string `json:"nome"`
	CPFCNPJ  string `json:"cpf_cnpj"`
	Telefone string `json:"telefone"`
	Email    string `json:"email,omitempty"`
	Endereco string `json:"endereco,omitempty"`
	Bairro   string `json:"bairro,omitempty"`
}

// UpdateClienteRequest body para PUT /api/clientes/:id.
type UpdateClienteRequest struct {
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
	Email    string `json:"email,omitempty"`
	Endereco string `json:"endereco,omitempty"`
	Bairro   string `json:"bairro,omitempty"`
}

// CreatePlanoRequest body para POST /api/planos.
type CreatePlanoRequest struct {
	Nome        string          `json:"nome"`
	Valor       decimal.Decimal `json:"valor"`
	GrupoRadius string          `json:"grupo_radius"`
}

// UpdatePlanoRequest body para PUT /api/planos/:id. Campos zero não alteram.
type UpdatePlanoRequest struct {
	Nome        string          `json:"nome,omitempty"`
	Valor       decimal.Decimal `json:"valor,omitempty"`
	GrupoRadius string          `json:"grupo_radius,omitempty"`
}

// CreateVeiculoRequest body para POST /api/veiculos.
type CreateVeiculoRequest struct {
	Placa     string `json:"placa"`
	Descricao string `json:"descricao,omitempty"`
}

// CreateMaterialRequest body para POST /api/materiais.
type CreateMaterialRequest struct {
	Modelo   string `json:"modelo"`
	Etiqueta string `json:"etiqueta"`
	Serial   string `json:"serial,omitempty"`
}
