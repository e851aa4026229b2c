package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/conectfibra/gestor-api/internal/application/dto"
	"github.com/conectfibra/gestor-api/internal/domain"
	"github.com/conectfibra/gestor-api/internal/domain/entity"
	"github.com/conectfibra/gestor-api/internal/domain/repository"
)

// MaterialUseCase operações de cadastro de materiais de estoque.
// A movimentação fica em estoque.MovimentarUseCase.
type MaterialUseCase struct {
	repo repository.MaterialRepository
}

func NewMaterialUseCase(repo repository.MaterialRepository) *MaterialUseCase {
	return &MaterialUseCase{repo: repo}
}

func (uc *MaterialUseCase) Create(empresaID string, in dto.CreateMaterialRequest) (*entity.Material, error) {
	if in.Modelo == "" || in.Etiqueta == "" {
		return nil, domain.ErrEntradaInvalida
	}
	now := time.Now()
	material := &entity.Material{
		ID:        uuid.New().String(),
		EmpresaID: empresaID,
		Modelo:    in.Modelo,
		Etiqueta:  in.Etiqueta,
		Serial:    in.Serial,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(material); err != nil {
		return nil, err
	}
	return material, nil
}

func (uc *MaterialUseCase) GetByID(empresaID, id string) (*entity.Material, error) {
	material, err := uc.repo.GetByID(empresaID, id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return material, nil
}

func (uc *MaterialUseCase) List(empresaID string, limit, offset int) ([]*entity.Material, error) {
	return uc.repo.ListByEmpresa(empresaID, limit, offset)
}
