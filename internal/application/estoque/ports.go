package estoque

import (
	"context"

	"github.com/conectfibra/gestor-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando o
// repositório de localizações atado a essa tx. Garante que o append no
// histórico e o upsert da projeção sejam atômicos.
type TxRunner interface {
	Run(ctx context.Context, fn func(locRepo repository.LocalizacaoRepository) error) error
}
