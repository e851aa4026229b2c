package repository

import "github.com/conectfibra/gestor-api/internal/domain/entity"

// ClienteRepository define o porto de persistência para Cliente.
// Todas as leituras recebem empresaID: o filtro de tenant é injetado aqui,
// nunca deixado a cargo do chamador.
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(empresaID, id string) (*entity.Cliente, error)
	ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
	Delete(empresaID, id string) error
}
