package notificacao_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conectfibra/gestor-api/internal/application/notificacao"
	"github.com/conectfibra/gestor-api/internal/domain/entity"
)

func TestRender_SubstituiPlaceholders(t *testing.T) {
	template := &entity.MensagemTemplate{
		Tipo:     entity.TemplateLembretePagamento,
		Conteudo: "Olá {client_name}, sua fatura de R$ {amount} vence em {due_date}.",
	}
	out := notificacao.Render(template, notificacao.DadosMensagem{
		NomeCliente: "Maria Silva",
		Valor:       "89.90",
		Vencimento:  "10/09/2026",
	})
	assert.Equal(t, "Olá Maria Silva, sua fatura de R$ 89.90 vence em 10/09/2026.", out)
}

func TestRender_PlaceholderRepetido(t *testing.T) {
	template := &entity.MensagemTemplate{
		Conteudo: "{client_name}, confirme: {client_name}",
	}
	out := notificacao.Render(template, notificacao.DadosMensagem{NomeCliente: "João"})
	assert.Equal(t, "João, confirme: João", out)
}

// Conteúdo sem placeholders passa intacto; placeholders sem dado viram vazio.
func TestRender_DadosAusentes(t *testing.T) {
	template := &entity.MensagemTemplate{
		Conteudo: "Bem-vindo {client_name}! Valor: {amount}",
	}
	out := notificacao.Render(template, notificacao.DadosMensagem{NomeCliente: "Ana"})
	assert.Equal(t, "Bem-vindo Ana! Valor: ", out)

	simples := &entity.MensagemTemplate{Conteudo: "Mensagem fixa sem variáveis"}
	assert.Equal(t, "Mensagem fixa sem variáveis", notificacao.Render(simples, notificacao.DadosMensagem{}))
}
