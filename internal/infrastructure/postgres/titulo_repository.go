package postgres

import (
	"context"
	"fmt"

	"github.com/conectfibra/gestor-api/internal/domain"
	"github.com/conectfibra/gestor-api/internal/domain/entity"
	"github.com/conectfibra/gestor-api/internal/domain/repository"
)

var _ repository.TituloRepository = (*TituloRepo)(nil)

// TituloRepo implementação de TituloRepository (usável com pool ou tx).
type TituloRepo struct {
	q Querier
}

// NewTituloRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewTituloRepository(q Querier) *TituloRepo {
	return &TituloRepo{q: q}
}

const tituloCols = `id, empresa_id, contrato_id, valor, vencimento, pago, nosso_numero, created_at, updated_at`

// Create persiste um título.
func (r *TituloRepo) Create(titulo *entity.Titulo) error {
	query := `
		INSERT INTO titulos (id, empresa_id, contrato_id, valor, vencimento, pago, nosso_numero, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		titulo.ID, titulo.EmpresaID, titulo.ContratoID, titulo.Valor, titulo.Vencimento,
		titulo.Pago, titulo.NossoNumero, titulo.CreatedAt, titulo.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert titulo: %w", err)
	}
	return nil
}

// ListByContrato lista todos os títulos do contrato, por vencimento.
func (r *TituloRepo) ListByContrato(empresaID, contratoID string) ([]*entity.Titulo, error) {
	query := `SELECT ` + tituloCols + ` FROM titulos WHERE empresa_id = $1 AND contrato_id = $2 ORDER BY vencimento`
	return r.list(query, empresaID, contratoID)
}

// ListNaoPagos lista os títulos em aberto do contrato, por vencimento.
func (r *TituloRepo) ListNaoPagos(empresaID, contratoID string) ([]*entity.Titulo, error) {
	query := `SELECT ` + tituloCols + ` FROM titulos WHERE empresa_id = $1 AND contrato_id = $2 AND pago = false ORDER BY vencimento`
	return r.list(query, empresaID, contratoID)
}

func (r *TituloRepo) list(query string, args ...any) ([]*entity.Titulo, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list titulos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Titulo
	for rows.Next() {
		var t entity.Titulo
		if err := rows.Scan(
			&t.ID, &t.EmpresaID, &t.ContratoID, &t.Valor, &t.Vencimento,
			&t.Pago, &t.NossoNumero, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan titulo: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// DeleteNaoPagos remove os títulos não pagos do contrato e devolve a
// quantidade removida. Títulos pagos nunca são tocados.
func (r *TituloRepo) DeleteNaoPagos(empresaID, contratoID string) (int64, error) {
	query := `DELETE FROM titulos WHERE empresa_id = $1 AND contrato_id = $2 AND pago = false`
	tag, err := r.q.Exec(context.Background(), query, empresaID, contratoID)
	if err != nil {
		return 0, fmt.Errorf("delete titulos nao pagos: %w", err)
	}
	return tag.RowsAffected(), nil
}
