package repository

import "github.com/conectfibra/gestor-api/internal/domain/entity"

// ContratoRepository define o porto de persistência para Contrato.
// Contratos nunca são removidos: apenas Create e atualizações de campo.
type ContratoRepository interface {
	Create(contrato *entity.Contrato) error
	GetByID(empresaID, id string) (*entity.Contrato, error)
	ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Contrato, error)
	ListByCliente(empresaID, clienteID string) ([]*entity.Contrato, error)
	UpdateStatus(empresaID, id, status string) error
	UpdateDiaVencimento(empresaID, id string, dia int) error
}
