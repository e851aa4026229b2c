package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/conectfibra/gestor-api/internal/domain/entity"
	"github.com/conectfibra/gestor-api/internal/domain/repository"
)

var _ repository.LocalizacaoRepository = (*LocalizacaoRepo)(nil)

// LocalizacaoRepo implementação do ledger de localizações e da projeção
// corrente (usável com pool ou tx; Append e UpsertAtual devem rodar na mesma
// tx via EstoqueTxRunner).
type LocalizacaoRepo struct {
	q Querier
}

// NewLocalizacaoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewLocalizacaoRepository(q Querier) *LocalizacaoRepo {
	return &LocalizacaoRepo{q: q}
}

// Append insere um fato no ledger. Nunca há UPDATE nesta tabela.
func (r *LocalizacaoRepo) Append(loc *entity.Localizacao) error {
	query := `
		INSERT INTO localizacoes (id, empresa_id, material_id, tipo, veiculo_id, contrato_id, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		loc.ID, loc.EmpresaID, loc.MaterialID, loc.Tipo, loc.VeiculoID, loc.ContratoID,
		loc.CreatedAt, loc.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("append localizacao: %w", err)
	}
	return nil
}

// UpsertAtual grava a posição corrente do material (uma linha por material).
func (r *LocalizacaoRepo) UpsertAtual(atual *entity.LocalizacaoAtual) error {
	query := `
		INSERT INTO localizacao_atual (material_id, empresa_id, tipo, veiculo_id, contrato_id, atualizado_em)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (material_id) DO UPDATE SET
			tipo = EXCLUDED.tipo,
			veiculo_id = EXCLUDED.veiculo_id,
			contrato_id = EXCLUDED.contrato_id,
			atualizado_em = EXCLUDED.atualizado_em`
	_, err := r.q.Exec(context.Background(), query,
		atual.MaterialID, atual.EmpresaID, atual.Tipo, atual.VeiculoID, atual.ContratoID, atual.AtualizadoEm,
	)
	if err != nil {
		return fmt.Errorf("upsert localizacao atual: %w", err)
	}
	return nil
}

// GetAtual lê a posição corrente pela projeção, sem varrer o histórico.
func (r *LocalizacaoRepo) GetAtual(empresaID, materialID string) (*entity.LocalizacaoAtual, error) {
	query := `
		SELECT material_id, empresa_id, tipo, veiculo_id, contrato_id, atualizado_em
		FROM localizacao_atual WHERE empresa_id = $1 AND material_id = $2`
	var a entity.LocalizacaoAtual
	err := r.q.QueryRow(context.Background(), query, empresaID, materialID).Scan(
		&a.MaterialID, &a.EmpresaID, &a.Tipo, &a.VeiculoID, &a.ContratoID, &a.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get localizacao atual: %w", err)
	}
	return &a, nil
}

// Historico lista a trilha do material, mais recente primeiro.
func (r *LocalizacaoRepo) Historico(empresaID, materialID string, limit, offset int) ([]*entity.Localizacao, error) {
	query := `
		SELECT id, empresa_id, material_id, tipo, veiculo_id, contrato_id, created_at, created_by
		FROM localizacoes WHERE empresa_id = $1 AND material_id = $2
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, empresaID, materialID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("historico localizacoes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Localizacao
	for rows.Next() {
		var l entity.Localizacao
		if err := rows.Scan(
			&l.ID, &l.EmpresaID, &l.MaterialID, &l.Tipo, &l.VeiculoID, &l.ContratoID,
			&l.CreatedAt, &l.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan localizacao: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
