package contrato

import (
	"context"

	"github.com/conectfibra/gestor-api/internal/domain/repository"
)

// ProvisionamentoRequest corpo enviado ao webhook de provisionamento.
// Acao usa os valores de fio esperados pelo endpoint: "liberar", "liberar48h",
// "cancelar", "Bloquear".
type ProvisionamentoRequest struct {
	PPPoE  string `json:"pppoe"`
	Radius string `json:"radius"`
	Acao   string `json:"acao"`
}

// Provisionador aplica uma ação no sistema externo de provisionamento RADIUS.
// Resposta não-2xx vira domain.ErrDependenciaExterna.
type Provisionador interface {
	Aplicar(ctx context.Context, req ProvisionamentoRequest) error
}

// RegeneracaoRequest corpo enviado ao webhook de regeração de cobrança.
type RegeneracaoRequest struct {
	NossoNumeros        []string `json:"nossonumeros"`
	ContratoID          string   `json:"contrato_id"`
	PPPoE               string   `json:"pppoe"`
	DiaVencimentoAntigo int      `json:"dia_vencimento_antigo"`
	DiaVencimentoNovo   int      `json:"dia_vencimento_novo"`
}

// RegeneradorCobranca notifica o sistema externo que regera os boletos.
// Chamada best-effort: o chamador loga e segue em caso de erro.
type RegeneradorCobranca interface {
	Notificar(ctx context.Context, req RegeneracaoRequest) error
}

// CredenciaisRadius cadastra o par usuário/grupo PPPoE no accounting RADIUS
// (servidor de suporte), usado após criação de contrato ou troca de plano.
type CredenciaisRadius interface {
	Cadastrar(ctx context.Context, username, password, groupname string) error
}

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Garante que a remoção de títulos e a troca do
// dia de vencimento sejam atômicas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		tituloRepo repository.TituloRepository,
		contratoRepo repository.ContratoRepository,
	) error) error
}
