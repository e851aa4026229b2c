package repository

import "github.com/conectfibra/gestor-api/internal/domain/entity"

// TemplateRepository define o porto de persistência para MensagemTemplate.
type TemplateRepository interface {
	Create(template *entity.MensagemTemplate) error
	GetByID(empresaID, id string) (*entity.MensagemTemplate, error)
	GetAtivoPorTipo(empresaID, tipo string) (*entity.MensagemTemplate, error)
	ListByEmpresa(empresaID string) ([]*entity.MensagemTemplate, error)
	Update(template *entity.MensagemTemplate) error
	SetAtivo(empresaID, id string, ativo bool) error
}
