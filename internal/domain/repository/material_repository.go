package repository

import "github.com/conectfibra/gestor-api/internal/domain/entity"

// MaterialRepository define o porto de persistência para Material.
type MaterialRepository interface {
	Create(material *entity.Material) error
	GetByID(empresaID, id string) (*entity.Material, error)
	ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Material, error)
}
