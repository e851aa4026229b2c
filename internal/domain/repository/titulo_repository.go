package repository

import "github.com/conectfibra/gestor-api/internal/domain/entity"

// TituloRepository define o porto de persistência para Titulo.
// A geração de títulos é feita por um job externo de cobrança; aqui entram a
// consulta e a remoção em massa dos não pagos (troca de dia de vencimento).
type TituloRepository interface {
	Create(titulo *entity.Titulo) error
	ListByContrato(empresaID, contratoID string) ([]*entity.Titulo, error)
	ListNaoPagos(empresaID, contratoID string) ([]*entity.Titulo, error)
	// DeleteNaoPagos remove todos os títulos não pagos do contrato e devolve
	// a quantidade removida.
	DeleteNaoPagos(empresaID, contratoID string) (int64, error)
}
