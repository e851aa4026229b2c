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

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementação de ClienteRepository (usável com pool ou tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

const clienteCols = `id, empresa_id, nome, cpf_cnpj, telefone, email, endereco, bairro, created_at, updated_at`

// Create persiste um novo cliente.
func (r *ClienteRepo) Create(cliente *entity.Cliente) error {
	query := `
		INSERT INTO clientes (id, empresa_id, nome, cpf_cnpj, telefone, email, endereco, bairro, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.EmpresaID, cliente.Nome, cliente.CPFCNPJ, cliente.Telefone,
		cliente.Email, cliente.Endereco, cliente.Bairro, cliente.CreatedAt, cliente.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtém um cliente da empresa.
func (r *ClienteRepo) GetByID(empresaID, id string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteCols + ` FROM clientes WHERE empresa_id = $1 AND id = $2`
	var c entity.Cliente
	err := r.q.QueryRow(context.Background(), query, empresaID, id).Scan(
		&c.ID, &c.EmpresaID, &c.Nome, &c.CPFCNPJ, &c.Telefone, &c.Email,
		&c.Endereco, &c.Bairro, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// ListByEmpresa lista clientes da empresa com paginação.
func (r *ClienteRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Cliente, error) {
	query := `SELECT ` + clienteCols + ` FROM clientes WHERE empresa_id = $1 ORDER BY nome LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, empresaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(
			&c.ID, &c.EmpresaID, &c.Nome, &c.CPFCNPJ, &c.Telefone, &c.Email,
			&c.Endereco, &c.Bairro, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update atualiza um cliente.
func (r *ClienteRepo) Update(cliente *entity.Cliente) error {
	query := `
		UPDATE clientes SET nome = $3, telefone = $4, email = $5, endereco = $6, bairro = $7, updated_at = $8
		WHERE empresa_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		cliente.EmpresaID, cliente.ID, cliente.Nome, cliente.Telefone, cliente.Email,
		cliente.Endereco, cliente.Bairro, cliente.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// Delete remove um cliente da empresa.
func (r *ClienteRepo) Delete(empresaID, id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clientes WHERE empresa_id = $1 AND id = $2`, empresaID, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}
