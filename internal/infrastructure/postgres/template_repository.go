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

var _ repository.TemplateRepository = (*TemplateRepo)(nil)

// TemplateRepo implementação de TemplateRepository (usável com pool ou tx).
type TemplateRepo struct {
	q Querier
}

// NewTemplateRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewTemplateRepository(q Querier) *TemplateRepo {
	return &TemplateRepo{q: q}
}

const templateCols = `id, empresa_id, tipo, conteudo, ativo, created_at, updated_at`

// Create persiste um novo template.
func (r *TemplateRepo) Create(template *entity.MensagemTemplate) error {
	query := `
		INSERT INTO mensagem_templates (id, empresa_id, tipo, conteudo, ativo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		template.ID, template.EmpresaID, template.Tipo, template.Conteudo, template.Ativo,
		template.CreatedAt, template.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert template: %w", err)
	}
	return nil
}

// GetByID obtém um template da empresa.
func (r *TemplateRepo) GetByID(empresaID, id string) (*entity.MensagemTemplate, error) {
	query := `SELECT ` + templateCols + ` FROM mensagem_templates WHERE empresa_id = $1 AND id = $2`
	return r.getOne(query, empresaID, id)
}

// GetAtivoPorTipo obtém o template ativo do tipo, se houver.
func (r *TemplateRepo) GetAtivoPorTipo(empresaID, tipo string) (*entity.MensagemTemplate, error) {
	query := `SELECT ` + templateCols + ` FROM mensagem_templates WHERE empresa_id = $1 AND tipo = $2 AND ativo = true`
	return r.getOne(query, empresaID, tipo)
}

func (r *TemplateRepo) getOne(query string, args ...any) (*entity.MensagemTemplate, error) {
	var t entity.MensagemTemplate
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&t.ID, &t.EmpresaID, &t.Tipo, &t.Conteudo, &t.Ativo, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get template: %w", err)
	}
	return &t, nil
}

// ListByEmpresa lista os templates da empresa.
func (r *TemplateRepo) ListByEmpresa(empresaID string) ([]*entity.MensagemTemplate, error) {
	query := `SELECT ` + templateCols + ` FROM mensagem_templates WHERE empresa_id = $1 ORDER BY tipo`
	rows, err := r.q.Query(context.Background(), query, empresaID)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()
	var list []*entity.MensagemTemplate
	for rows.Next() {
		var t entity.MensagemTemplate
		if err := rows.Scan(&t.ID, &t.EmpresaID, &t.Tipo, &t.Conteudo, &t.Ativo, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update troca o conteúdo de um template.
func (r *TemplateRepo) Update(template *entity.MensagemTemplate) error {
	query := `
		UPDATE mensagem_templates SET conteudo = $3, updated_at = $4
		WHERE empresa_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		template.EmpresaID, template.ID, template.Conteudo, template.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update template: %w", err)
	}
	return nil
}

// SetAtivo liga/desliga um template.
func (r *TemplateRepo) SetAtivo(empresaID, id string, ativo bool) error {
	query := `UPDATE mensagem_templates SET ativo = $3, updated_at = $4 WHERE empresa_id = $1 AND id = $2`
	tag, err := r.q.Exec(context.Background(), query, empresaID, id, ativo, time.Now())
	if err != nil {
		return fmt.Errorf("set ativo template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}
