package repository

import "github.com/conectfibra/gestor-api/internal/domain/entity"

// LocalizacaoRepository define o porto para o ledger de localizações e sua
// projeção materializada. Append e UpsertAtual devem ocorrer na mesma
// transação (ver estoque.TxRunner) para que a projeção nunca divirja do
// histórico.
type LocalizacaoRepository interface {
	Append(loc *entity.Localizacao) error
	UpsertAtual(atual *entity.LocalizacaoAtual) error
	GetAtual(empresaID, materialID string) (*entity.LocalizacaoAtual, error)
	Historico(empresaID, materialID string, limit, offset int) ([]*entity.Localizacao, error)
}
