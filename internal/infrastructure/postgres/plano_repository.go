package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/conectfibra/gestor-api/internal/domain"
	"github.com/conectfibra/gestor-api/internal/domain/entity"
	"github.com/conectfibra/gestor-api/internal/domain/repository"
)

var _ repository.PlanoRepository = (*PlanoRepo)(nil)

// PlanoRepo implementação de PlanoRepository (usável com pool ou tx).
type PlanoRepo struct {
	q Querier
}

// NewPlanoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewPlanoRepository(q Querier) *PlanoRepo {
	return &PlanoRepo{q: q}
}

const planoCols = `id, empresa_id, nome, valor, grupo_radius, created_at, updated_at`

// Create persiste um novo plano.
func (r *PlanoRepo) Create(plano *entity.Plano) error {
	query := `
		INSERT INTO planos (id, empresa_id, nome, valor, grupo_radius, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		plano.ID, plano.EmpresaID, plano.Nome, plano.Valor, plano.GrupoRadius,
		plano.CreatedAt, plano.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert plano: %w", err)
	}
	return nil
}

// GetByID obtém um plano da empresa.
func (r *PlanoRepo) GetByID(empresaID, id string) (*entity.Plano, error) {
	query := `SELECT ` + planoCols + ` FROM planos WHERE empresa_id = $1 AND id = $2`
	var p entity.Plano
	err := r.q.QueryRow(context.Background(), query, empresaID, id).Scan(
		&p.ID, &p.EmpresaID, &p.Nome, &p.Valor, &p.GrupoRadius, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plano: %w", err)
	}
	return &p, nil
}

// ListByEmpresa lista planos da empresa com paginação.
func (r *PlanoRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Plano, error) {
	query := `SELECT ` + planoCols + ` FROM planos WHERE empresa_id = $1 ORDER BY nome LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, empresaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list planos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Plano
	for rows.Next() {
		var p entity.Plano
		if err := rows.Scan(&p.ID, &p.EmpresaID, &p.Nome, &p.Valor, &p.GrupoRadius, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan plano: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update atualiza um plano.
func (r *PlanoRepo) Update(plano *entity.Plano) error {
	query := `
		UPDATE planos SET nome = $3, valor = $4, grupo_radius = $5, updated_at = $6
		WHERE empresa_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		plano.EmpresaID, plano.ID, plano.Nome, plano.Valor, plano.GrupoRadius, plano.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update plano: %w", err)
	}
	return nil
}
