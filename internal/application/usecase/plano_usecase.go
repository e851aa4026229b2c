package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/conectfibra/gestor-api/internal/application/dto"
	"github.com/conectfibra/gestor-api/internal/domain"
	"github.com/conectfibra/gestor-api/internal/domain/entity"
	"github.com/conectfibra/gestor-api/internal/domain/repository"
)

// PlanoUseCase operações de cadastro de planos de acesso.
type PlanoUseCase struct {
	repo repository.PlanoRepository
}

func NewPlanoUseCase(repo repository.PlanoRepository) *PlanoUseCase {
	return &PlanoUseCase{repo: repo}
}

// Create valida e persiste um plano. GrupoRadius é obrigatório: sem ele o
// provisionamento de contratos do plano não funciona.
func (uc *PlanoUseCase) Create(empresaID string, in dto.CreatePlanoRequest) (*entity.Plano, error) {
	if in.Nome == "" || in.GrupoRadius == "" || in.Valor.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrEntradaInvalida
	}
	now := time.Now()
	plano := &entity.Plano{
		ID:          uuid.New().String(),
		EmpresaID:   empresaID,
		Nome:        in.Nome,
		Valor:       in.Valor,
		GrupoRadius: in.GrupoRadius,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(plano); err != nil {
		return nil, err
	}
	return plano, nil
}

func (uc *PlanoUseCase) GetByID(empresaID, id string) (*entity.Plano, error) {
	plano, err := uc.repo.GetByID(empresaID, id)
	if err != nil {
		return nil, err
	}
	if plano == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return plano, nil
}

func (uc *PlanoUseCase) List(empresaID string, limit, offset int) ([]*entity.Plano, error) {
	return uc.repo.ListByEmpresa(empresaID, limit, offset)
}

// Update troca nome, valor e grupo de um plano existente. Contratos já criados
// mantêm a cópia antiga do grupo até a próxima ação de provisionamento.
func (uc *PlanoUseCase) Update(empresaID, id string, in dto.UpdatePlanoRequest) (*entity.Plano, error) {
	plano, err := uc.repo.GetByID(empresaID, id)
	if err != nil {
		return nil, err
	}
	if plano == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if in.Nome != "" {
		plano.Nome = in.Nome
	}
	if in.Valor.GreaterThan(decimal.Zero) {
		plano.Valor = in.Valor
	}
	if in.GrupoRadius != "" {
		plano.GrupoRadius = in.GrupoRadius
	}
	plano.UpdatedAt = time.Now()
	if err := uc.repo.Update(plano); err != nil {
		return nil, err
	}
	return plano, nil
}
