package entity

import "time"

// Material representa um item físico de estoque (roteador, ONU, bobina de
// cabo). Identidade imutável; a posição é rastreada pelo ledger de
// localizações, nunca pelo próprio material.
type Material struct {
	ID        string
	EmpresaID string
	Modelo    string
	Etiqueta  string // etiqueta/patrimônio colado no equipamento
	Serial    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
