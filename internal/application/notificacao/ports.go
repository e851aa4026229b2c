package notificacao

import "context"

// Mensagem é o payload de envio para o serviço WhatsApp.
type Mensagem struct {
	Telefone string
	Texto    string
}

// EnviadorWhatsApp envia mensagens pelo serviço externo de WhatsApp.
// Falha de envio vira domain.ErrDependenciaExterna.
type EnviadorWhatsApp interface {
	Enviar(ctx context.Context, msg Mensagem) error
}
