package repository

import "github.com/conectfibra/gestor-api/internal/domain/entity"

// EmpresaRepository define o porto de persistência para Empresa (tenant).
type EmpresaRepository interface {
	Create(empresa *entity.Empresa) error
	GetByID(id string) (*entity.Empresa, error)
	List(limit, offset int) ([]*entity.Empresa, error)
}
