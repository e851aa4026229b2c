package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/conectfibra/gestor-api/internal/application/dto"
	"github.com/conectfibra/gestor-api/internal/domain"
	"github.com/conectfibra/gestor-api/internal/domain/entity"
	"github.com/conectfibra/gestor-api/internal/domain/repository"
)

// VeiculoUseCase operações de cadastro de veículos.
type VeiculoUseCase struct {
	repo repository.VeiculoRepository
}

func NewVeiculoUseCase(repo repository.VeiculoRepository) *VeiculoUseCase {
	return &VeiculoUseCase{repo: repo}
}

func (uc *VeiculoUseCase) Create(empresaID string, in dto.CreateVeiculoRequest) (*entity.Veiculo, error) {
	if in.Placa == "" {
		return nil, domain.ErrEntradaInvalida
	}
	now := time.Now()
	veiculo := &entity.Veiculo{
		ID:        uuid.New().String(),
		EmpresaID: empresaID,
		Placa:     in.Placa,
		Descricao: in.Descricao,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(veiculo); err != nil {
		return nil, err
	}
	return veiculo, nil
}

func (uc *VeiculoUseCase) GetByID(empresaID, id string) (*entity.Veiculo, error) {
	veiculo, err := uc.repo.GetByID(empresaID, id)
	if err != nil {
		return nil, err
	}
	if veiculo == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return veiculo, nil
}

func (uc *VeiculoUseCase) List(empresaID string, limit, offset int) ([]*entity.Veiculo, error) {
	return uc.repo.ListByEmpresa(empresaID, limit, offset)
}
