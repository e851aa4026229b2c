package dto

// CreateContratoRequest body para POST /api/contratos.
type CreateContratoRequest struct {
	ClienteID     string `json:"cliente_id"`
	PlanoID       string `json:"plano_id"`
	PPPoEUsuario  string `json:"pppoe_usuario"`
	PPPoESenha    string `json:"pppoe_senha"`
	DiaVencimento int    `json:"dia_vencimento"`
}

// AcaoContratoRequest body para POST /api/contratos/:id/acao.
// Acao ∈ {Liberar, Liberar48h, Cancelar, Bloquear}.
type AcaoContratoRequest struct {
	Acao string `json:"acao"`
}

// DiaVencimentoRequest body para PUT /api/contratos/:id/dia-vencimento.
// A interface legada oferecia apenas os dias 10 e 25; a API aceita 1..28.
type DiaVencimentoRequest struct {
	Dia int `json:"dia"`
}
