package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/conectfibra/gestor-api/internal/domain"
	"github.com/conectfibra/gestor-api/internal/domain/entity"
	"github.com/conectfibra/gestor-api/internal/domain/repository"
)

var _ repository.ContratoRepository = (*ContratoRepo)(nil)

// ContratoRepo implementação de ContratoRepository (usável com pool ou tx).
type ContratoRepo struct {
	q Querier
}

// NewContratoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewContratoRepository(q Querier) *ContratoRepo {
	return &ContratoRepo{q: q}
}

const contratoCols = `id, empresa_id, cliente_id, plano_id, pppoe_usuario, pppoe_senha,
		grupo_radius, dia_vencimento, status, created_at, updated_at`

// Create persiste um novo contrato.
func (r *ContratoRepo) Create(contrato *entity.Contrato) error {
	query := `
		INSERT INTO contratos (id, empresa_id, cliente_id, plano_id, pppoe_usuario, pppoe_senha, grupo_radius, dia_vencimento, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		contrato.ID, contrato.EmpresaID, contrato.ClienteID, contrato.PlanoID,
		contrato.PPPoEUsuario, contrato.PPPoESenha, contrato.GrupoRadius,
		contrato.DiaVencimento, contrato.Status, contrato.CreatedAt, contrato.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert contrato: %w", err)
	}
	return nil
}

// GetByID obtém um contrato da empresa.
func (r *ContratoRepo) GetByID(empresaID, id string) (*entity.Contrato, error) {
	query := `SELECT ` + contratoCols + ` FROM contratos WHERE empresa_id = $1 AND id = $2`
	var c entity.Contrato
	err := r.q.QueryRow(context.Background(), query, empresaID, id).Scan(
		&c.ID, &c.EmpresaID, &c.ClienteID, &c.PlanoID, &c.PPPoEUsuario, &c.PPPoESenha,
		&c.GrupoRadius, &c.DiaVencimento, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contrato: %w", err)
	}
	return &c, nil
}

// ListByEmpresa lista contratos da empresa com paginação.
func (r *ContratoRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Contrato, error) {
	query := `SELECT ` + contratoCols + ` FROM contratos WHERE empresa_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, empresaID, limit, offset)
}

// ListByCliente lista contratos de um cliente.
func (r *ContratoRepo) ListByCliente(empresaID, clienteID string) ([]*entity.Contrato, error) {
	query := `SELECT ` + contratoCols + ` FROM contratos WHERE empresa_id = $1 AND cliente_id = $2 ORDER BY created_at DESC`
	return r.list(query, empresaID, clienteID)
}

func (r *ContratoRepo) list(query string, args ...any) ([]*entity.Contrato, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contratos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Contrato
	for rows.Next() {
		var c entity.Contrato
		if err := rows.Scan(
			&c.ID, &c.EmpresaID, &c.ClienteID, &c.PlanoID, &c.PPPoEUsuario, &c.PPPoESenha,
			&c.GrupoRadius, &c.DiaVencimento, &c.Status, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan contrato: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// UpdateStatus grava o novo status do contrato.
func (r *ContratoRepo) UpdateStatus(empresaID, id, status string) error {
	query := `UPDATE contratos SET status = $3, updated_at = $4 WHERE empresa_id = $1 AND id = $2`
	tag, err := r.q.Exec(context.Background(), query, empresaID, id, status, time.Now())
	if err != nil {
		return fmt.Errorf("update status contrato: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// UpdateDiaVencimento grava o novo dia de vencimento.
func (r *ContratoRepo) UpdateDiaVencimento(empresaID, id string, dia int) error {
	query := `UPDATE contratos SET dia_vencimento = $3, updated_at = $4 WHERE empresa_id = $1 AND id = $2`
	tag, err := r.q.Exec(context.Background(), query, empresaID, id, dia, time.Now())
	if err != nil {
		return fmt.Errorf("update dia vencimento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}
