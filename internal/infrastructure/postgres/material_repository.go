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

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo implementação de MaterialRepository (usável com pool ou tx).
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

const materialCols = `id, empresa_id, modelo, etiqueta, serial, created_at, updated_at`

// Create persiste um novo material.
func (r *MaterialRepo) Create(material *entity.Material) error {
	query := `
		INSERT INTO materiais (id, empresa_id, modelo, etiqueta, serial, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		material.ID, material.EmpresaID, material.Modelo, material.Etiqueta, material.Serial,
		material.CreatedAt, material.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert material: %w", err)
	}
	return nil
}

// GetByID obtém um material da empresa.
func (r *MaterialRepo) GetByID(empresaID, id string) (*entity.Material, error) {
	query := `SELECT ` + materialCols + ` FROM materiais WHERE empresa_id = $1 AND id = $2`
	var m entity.Material
	err := r.q.QueryRow(context.Background(), query, empresaID, id).Scan(
		&m.ID, &m.EmpresaID, &m.Modelo, &m.Etiqueta, &m.Serial, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	return &m, nil
}

// ListByEmpresa lista materiais da empresa com paginação.
func (r *MaterialRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Material, error) {
	query := `SELECT ` + materialCols + ` FROM materiais WHERE empresa_id = $1 ORDER BY etiqueta LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, empresaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list materiais: %w", err)
	}
	defer rows.Close()
	var list []*entity.Material
	for rows.Next() {
		var m entity.Material
		if err := rows.Scan(&m.ID, &m.EmpresaID, &m.Modelo, &m.Etiqueta, &m.Serial, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
