package entity

import "time"

// Veiculo representa um veículo da empresa, destino possível de materiais.
type Veiculo struct {
	ID        string
	EmpresaID string
	Placa     string
	Descricao string
	CreatedAt time.Time
	UpdatedAt time.Time
}
