package dto

// UpdateTemplateRequest body para PUT /api/templates/:id.
type UpdateTemplateRequest struct {
	Conteudo string `json:"conteudo"`
}

// AtivoTemplateRequest body para PATCH /api/templates/:id/ativo.
type AtivoTemplateRequest struct {
	Ativo bool `json:"ativo"`
}

// LembreteRequest body para POST /api/notificacoes/lembrete.
type LembreteRequest struct {
	ContratoID string `json:"contrato_id"`
	Tipo       string `json:"tipo"` // payment_reminder | overdue_payment | welcome
}
