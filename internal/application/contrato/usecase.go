package contrato

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/conectfibra/gestor-api/internal/application/dto"
	"github.com/conectfibra/gestor-api/internal/domain"
	"github.com/conectfibra/gestor-api/internal/domain/entity"
	"github.com/conectfibra/gestor-api/internal/domain/repository"
	"github.com/conectfibra/gestor-api/pkg/logger"
)

// UseCase operações de cadastro e consulta de contratos.
type UseCase struct {
	contratoRepo repository.ContratoRepository
	clienteRepo  repository.ClienteRepository
	planoRepo    repository.PlanoRepository
	tituloRepo   repository.TituloRepository
	credenciais  CredenciaisRadius
	log          *logger.Logger
}

// NewUseCase constrói o caso de uso de contratos.
func NewUseCase(
	contratoRepo repository.ContratoRepository,
	clienteRepo repository.ClienteRepository,
	planoRepo repository.PlanoRepository,
	tituloRepo repository.TituloRepository,
	credenciais CredenciaisRadius,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		contratoRepo: contratoRepo,
		clienteRepo:  clienteRepo,
		planoRepo:    planoRepo,
		tituloRepo:   tituloRepo,
		credenciais:  credenciais,
		log:          log,
	}
}

// Create cadastra um contrato com status Criado e registra a credencial PPPoE
// no accounting RADIUS via servidor de suporte. A falha do cadastro RADIUS não
// desfaz o contrato: é logada e o provisionamento pode ser re-disparado com a
// ação Liberar.
func (uc *UseCase) Create(ctx context.Context, empresaID string, in dto.CreateContratoRequest) (*entity.Contrato, error) {
	if in.ClienteID == "" || in.PlanoID == "" || in.PPPoEUsuario == "" || in.PPPoESenha == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if in.DiaVencimento < 1 || in.DiaVencimento > 28 {
		return nil, domain.ErrEntradaInvalida
	}

	cliente, err := uc.clienteRepo.GetByID(empresaID, in.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNaoEncontrado
	}
	plano, err := uc.planoRepo.GetByID(empresaID, in.PlanoID)
	if err != nil {
		return nil, err
	}
	if plano == nil {
		return nil, domain.ErrNaoEncontrado
	}

	now := time.Now()
	contrato := &entity.Contrato{
		ID:            uuid.New().String(),
		EmpresaID:     empresaID,
		ClienteID:     in.ClienteID,
		PlanoID:       in.PlanoID,
		PPPoEUsuario:  in.PPPoEUsuario,
		PPPoESenha:    in.PPPoESenha,
		GrupoRadius:   plano.GrupoRadius,
		DiaVencimento: in.DiaVencimento,
		Status:        entity.StatusCriado,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.contratoRepo.Create(contrato); err != nil {
		return nil, err
	}

	if err := uc.credenciais.Cadastrar(ctx, contrato.PPPoEUsuario, contrato.PPPoESenha, plano.GrupoRadius); err != nil {
		uc.log.Warn().Err(err).
			Str("contrato_id", contrato.ID).
			Str("pppoe", contrato.PPPoEUsuario).
			Msg("cadastro de credencial RADIUS falhou")
	}

	return contrato, nil
}

// GetByID devolve um contrato da empresa.
func (uc *UseCase) GetByID(empresaID, id string) (*entity.Contrato, error) {
	contrato, err := uc.contratoRepo.GetByID(empresaID, id)
	if err != nil {
		return nil, err
	}
	if contrato == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return contrato, nil
}

// List lista contratos da empresa com paginação.
func (uc *UseCase) List(empresaID string, limit, offset int) ([]*entity.Contrato, error) {
	return uc.contratoRepo.ListByEmpresa(empresaID, limit, offset)
}

// Titulos lista os títulos do contrato (pagos e não pagos).
func (uc *UseCase) Titulos(empresaID, contratoID string) ([]*entity.Titulo, error) {
	contrato, err := uc.contratoRepo.GetByID(empresaID, contratoID)
	if err != nil {
		return nil, err
	}
	if contrato == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return uc.tituloRepo.ListByContrato(empresaID, contratoID)
}
