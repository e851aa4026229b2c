package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/conectfibra/gestor-api/internal/domain"
	"github.com/conectfibra/gestor-api/internal/domain/entity"
	"github.com/conectfibra/gestor-api/internal/domain/repository"
)

// EmpresaUseCase operações sobre tenants.
type EmpresaUseCase struct {
	repo repository.EmpresaRepository
}

func NewEmpresaUseCase(repo repository.EmpresaRepository) *EmpresaUseCase {
	return &EmpresaUseCase{repo: repo}
}

func (uc *EmpresaUseCase) Create(nome, cnpj string) (*entity.Empresa, error) {
	if nome == "" {
		return nil, domain.ErrEntradaInvalida
	}
	now := time.Now()
	empresa := &entity.Empresa{
		ID:        uuid.New().String(),
		Nome:      nome,
		CNPJ:      cnpj,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(empresa); err != nil {
		return nil, err
	}
	return empresa, nil
}

func (uc *EmpresaUseCase) GetByID(id string) (*entity.Empresa, error) {
	empresa, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return empresa, nil
}

func (uc *EmpresaUseCase) List(limit, offset int) ([]*entity.Empresa, error) {
	return uc.repo.List(limit, offset)
}
