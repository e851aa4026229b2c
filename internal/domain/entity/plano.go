package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plano representa um plano de acesso. GrupoRadius é a string de grupo enviada
// ao provisionamento (ex.: "plano_50mb"); quando vazia no contrato, o valor é
// resolvido por consulta a esta entidade.
type Plano struct {
	ID          string
	EmpresaID   string
	Nome        string
	Valor       decimal.Decimal // mensalidade
	GrupoRadius string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
