package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Titulo representa uma parcela/cobrança de um contrato. NossoNumero é a
// referência bancária externa usada na regeração de boletos.
type Titulo struct {
	ID          string
	EmpresaID   string
	ContratoID  string
	Valor       decimal.Decimal
	Vencimento  time.Time
	Pago        bool
	NossoNumero string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
