package entity

import "time"

// Tipos de template de mensagem WhatsApp.
const (
	TemplateLembretePagamento = "payment_reminder"
	TemplatePagamentoAtrasado = "overdue_payment"
	TemplateBoasVindas        = "welcome"
)

// Placeholders aceitos no conteúdo dos templates.
const (
	PlaceholderNomeCliente = "{client_name}"
	PlaceholderValor       = "{amount}"
	PlaceholderVencimento  = "{due_date}"
)

// MensagemTemplate é um modelo de mensagem WhatsApp com placeholders nomeados.
// Apenas templates ativos são elegíveis para envio.
type MensagemTemplate struct {
	ID        string
	EmpresaID string
	Tipo      string // ver constantes Template*
	Conteudo  string
	Ativo     bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
