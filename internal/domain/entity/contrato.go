package entity

import "time"

// Status possíveis de um contrato. Contratos nunca são removidos; apenas
// transicionam de status.
const (
	StatusCriado      = "Criado"
	StatusAtivo       = "Ativo"
	StatusBloqueado   = "Bloqueado"
	StatusCancelado   = "Cancelado"
	StatusLiberado48h = "Liberado48h"
	StatusAgendado    = "Agendado"
)

// Ações de operador sobre o ciclo de vida do contrato.
const (
	AcaoLiberar    = "Liberar"
	AcaoLiberar48h = "Liberar48h"
	AcaoCancelar   = "Cancelar"
	AcaoBloquear   = "Bloquear"
)

// Contrato representa uma assinatura: credencial PPPoE, plano, dia de
// vencimento e status de provisionamento.
type Contrato struct {
	ID            string
	EmpresaID     string
	ClienteID     string
	PlanoID       string
	PPPoEUsuario  string
	PPPoESenha    string
	GrupoRadius   string // cópia do grupo do plano; pode estar vazio em contratos antigos
	DiaVencimento int    // 1..28
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
