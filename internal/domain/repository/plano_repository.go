package repository

import "github.com/conectfibra/gestor-api/internal/domain/entity"

// PlanoRepository define o porto de persistência para Plano.
type PlanoRepository interface {
	Create(plano *entity.Plano) error
	GetByID(empresaID, id string) (*entity.Plano, error)
	ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Plano, error)
	Update(plano *entity.Plano) error
}
