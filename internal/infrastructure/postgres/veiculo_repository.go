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

var _ repository.VeiculoRepository = (*VeiculoRepo)(nil)

// VeiculoRepo implementação de VeiculoRepository (usável com pool ou tx).
type VeiculoRepo struct {
	q Querier
}

// NewVeiculoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewVeiculoRepository(q Querier) *VeiculoRepo {
	return &VeiculoRepo{q: q}
}

// Create persiste um novo veículo.
func (r *VeiculoRepo) Create(veiculo *entity.Veiculo) error {
	query := `
		INSERT INTO veiculos (id, empresa_id, placa, descricao, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		veiculo.ID, veiculo.EmpresaID, veiculo.Placa, veiculo.Descricao,
		veiculo.CreatedAt, veiculo.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert veiculo: %w", err)
	}
	return nil
}

// GetByID obtém um veículo da empresa.
func (r *VeiculoRepo) GetByID(empresaID, id string) (*entity.Veiculo, error) {
	query := `SELECT id, empresa_id, placa, descricao, created_at, updated_at FROM veiculos WHERE empresa_id = $1 AND id = $2`
	var v entity.Veiculo
	err := r.q.QueryRow(context.Background(), query, empresaID, id).Scan(
		&v.ID, &v.EmpresaID, &v.Placa, &v.Descricao, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get veiculo: %w", err)
	}
	return &v, nil
}

// ListByEmpresa lista veículos da empresa com paginação.
func (r *VeiculoRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Veiculo, error) {
	query := `SELECT id, empresa_id, placa, descricao, created_at, updated_at FROM veiculos WHERE empresa_id = $1 ORDER BY placa LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, empresaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list veiculos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Veiculo
	for rows.Next() {
		var v entity.Veiculo
		if err := rows.Scan(&v.ID, &v.EmpresaID, &v.Placa, &v.Descricao, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan veiculo: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
