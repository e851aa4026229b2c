package repository

import "github.com/conectfibra/gestor-api/internal/domain/entity"

// VeiculoRepository define o porto de persistência para Veiculo.
type VeiculoRepository interface {
	Create(veiculo *entity.Veiculo) error
	GetByID(empresaID, id string) (*entity.Veiculo, error)
	ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Veiculo, error)
}
