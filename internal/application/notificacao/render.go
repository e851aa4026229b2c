package notificacao

import (
	"strings"

	"github.com/conectfibra/gestor-api/internal/domain/entity"
)

// DadosMensagem valores para substituição nos placeholders do template.
type DadosMensagem struct {
	NomeCliente string
	Valor       string // já formatado, ex. "89.90"
	Vencimento  string // já formatado, ex. "10/09/2026"
}

// Render substitui os placeholders nomeados do template pelos dados.
// Placeholders ausentes no conteúdo são simplesmente ignorados.
func Render(template *entity.MensagemTemplate, dados DadosMensagem) string {
	r := strings.NewReplacer(
		entity.PlaceholderNomeCliente, dados.NomeCliente,
		entity.PlaceholderValor, dados.Valor,
		entity.PlaceholderVencimento, dados.Vencimento,
	)
	return r.Replace(template.Conteudo)
}
