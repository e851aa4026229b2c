package estoque

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/conectfibra/gestor-api/internal/domain"
	"github.com/conectfibra/gestor-api/internal/domain/entity"
	"github.com/conectfibra/gestor-api/internal/domain/repository"
)

// MovimentarUseCase registra movimentações de materiais como ledger
// append-only e mantém a projeção de localização corrente na mesma transação.
type MovimentarUseCase struct {
	txRunner     TxRunner
	materialRepo repository.MaterialRepository
	veiculoRepo  repository.VeiculoRepository
	contratoRepo repository.ContratoRepository
	locRepo      repository.LocalizacaoRepository
}

// NewMovimentarUseCase constrói o caso de uso.
func NewMovimentarUseCase(
	txRunner TxRunner,
	materialRepo repository.MaterialRepository,
	veiculoRepo repository.VeiculoRepository,
	contratoRepo repository.ContratoRepository,
	locRepo repository.LocalizacaoRepository,
) *MovimentarUseCase {
	return &MovimentarUseCase{
		txRunner:     txRunner,
		materialRepo: materialRepo,
		veiculoRepo:  veiculoRepo,
		contratoRepo: contratoRepo,
		locRepo:      locRepo,
	}
}

// MovimentoInput entrada para Movimentar.
type MovimentoInput struct {
	EmpresaID  string
	UserID     string
	MaterialID string
	Tipo       string
	VeiculoID  string
	ContratoID string
}

// validar aplica a regra de referência: empresa sem referência alguma;
// veiculo/contrato com exatamente a referência correspondente.
func validar(in MovimentoInput) error {
	switch in.Tipo {
	case entity.LocalizacaoEmpresa:
		if in.VeiculoID != "" || in.ContratoID != "" {
			return domain.ErrEntradaInvalida
		}
	case entity.LocalizacaoVeiculo:
		if in.VeiculoID == "" || in.ContratoID != "" {
			return domain.ErrEntradaInvalida
		}
	case entity.LocalizacaoContrato:
		if in.ContratoID == "" || in.VeiculoID != "" {
			return domain.ErrEntradaInvalida
		}
	default:
		return domain.ErrEntradaInvalida
	}
	if in.MaterialID == "" {
		return domain.ErrEntradaInvalida
	}
	return nil
}

// Movimentar valida o destino, confere que material e referência pertencem à
// empresa e grava, numa única transação, o fato no histórico e a nova posição
// corrente.
func (uc *MovimentarUseCase) Movimentar(ctx context.Context, in MovimentoInput) (*entity.Localizacao, error) {
	if err := validar(in); err != nil {
		return nil, err
	}

	material, err := uc.materialRepo.GetByID(in.EmpresaID, in.MaterialID)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNaoEncontrado
	}

	switch in.Tipo {
	case entity.LocalizacaoVeiculo:
		veiculo, err := uc.veiculoRepo.GetByID(in.EmpresaID, in.VeiculoID)
		if err != nil {
			return nil, err
		}
		if veiculo == nil {
			return nil, domain.ErrNaoEncontrado
		}
	case entity.LocalizacaoContrato:
		contrato, err := uc.contratoRepo.GetByID(in.EmpresaID, in.ContratoID)
		if err != nil {
			return nil, err
		}
		if contrato == nil {
			return nil, domain.ErrNaoEncontrado
		}
	}

	now := time.Now()
	loc := &entity.Localizacao{
		ID:         uuid.New().String(),
		EmpresaID:  in.EmpresaID,
		MaterialID: in.MaterialID,
		Tipo:       in.Tipo,
		CreatedAt:  now,
		CreatedBy:  in.UserID,
	}
	if in.VeiculoID != "" {
		loc.VeiculoID = &in.VeiculoID
	}
	if in.ContratoID != "" {
		loc.ContratoID = &in.ContratoID
	}

	err = uc.txRunner.Run(ctx, func(locRepo repository.LocalizacaoRepository) error {
		if err := locRepo.Append(loc); err != nil {
			return err
		}
		return locRepo.UpsertAtual(&entity.LocalizacaoAtual{
			MaterialID:   loc.MaterialID,
			EmpresaID:    loc.EmpresaID,
			Tipo:         loc.Tipo,
			VeiculoID:    loc.VeiculoID,
			ContratoID:   loc.ContratoID,
			AtualizadoEm: now,
		})
	})
	if err != nil {
		return nil, err
	}
	return loc, nil
}

// LocalizacaoAtual devolve a posição corrente do material pela projeção
// materializada, sem varrer o histórico.
func (uc *MovimentarUseCase) LocalizacaoAtual(ctx context.Context, empresaID, materialID string) (*entity.LocalizacaoAtual, error) {
	atual, err := uc.locRepo.GetAtual(empresaID, materialID)
	if err != nil {
		return nil, err
	}
	if atual == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return atual, nil
}

// Historico lista a trilha append-only do material, mais recente primeiro.
func (uc *MovimentarUseCase) Historico(ctx context.Context, empresaID, materialID string, limit, offset int) ([]*entity.Localizacao, error) {
	return uc.locRepo.Historico(empresaID, materialID, limit, offset)
}
