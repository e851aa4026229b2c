package contrato

import (
	"context"

	"github.com/conectfibra/gestor-api/internal/domain"
	"github.com/conectfibra/gestor-api/internal/domain/entity"
	"github.com/conectfibra/gestor-api/internal/domain/repository"
)

// AcaoUseCase aplica ações de ciclo de vida sobre contratos (Liberar,
// Liberar48h, Cancelar, Bloquear). O webhook de provisionamento é o gatilho de
// commit: a escrita local de status só acontece depois do provisionamento
// responder 2xx; falha externa aborta sem tocar o banco.
type AcaoUseCase struct {
	contratoRepo  repository.ContratoRepository
	planoRepo     repository.PlanoRepository
	provisionador Provisionador
}

// NewAcaoUseCase constrói o caso de uso.
func NewAcaoUseCase(
	contratoRepo repository.ContratoRepository,
	planoRepo repository.PlanoRepository,
	provisionador Provisionador,
) *AcaoUseCase {
	return &AcaoUseCase{
		contratoRepo:  contratoRepo,
		planoRepo:     planoRepo,
		provisionador: provisionador,
	}
}

// comandoProvisionamento mapeia a ação do operador para o valor de fio do
// webhook. "Bloquear" com B maiúsculo é o que o endpoint espera; preservado.
func comandoProvisionamento(acao string) (comando, novoStatus string, ok bool) {
	switch acao {
	case entity.AcaoLiberar:
		return "liberar", entity.StatusAtivo, true
	case entity.AcaoLiberar48h:
		return "liberar48h", "", true // sem escrita local
	case entity.AcaoCancelar:
		return "cancelar", entity.StatusCancelado, true
	case entity.AcaoBloquear:
		return "Bloquear", entity.StatusBloqueado, true
	}
	return "", "", false
}

// AplicarAcao resolve o grupo RADIUS do plano, notifica o provisionamento e,
// para Liberar/Cancelar/Bloquear, persiste o novo status. Liberar48h faz
// somente a chamada externa. Devolve o contrato com o status resultante.
func (uc *AcaoUseCase) AplicarAcao(ctx context.Context, empresaID, contratoID, acao string) (*entity.Contrato, error) {
	comando, novoStatus, ok := comandoProvisionamento(acao)
	if !ok {
		return nil, domain.ErrEntradaInvalida
	}

	contrato, err := uc.contratoRepo.GetByID(empresaID, contratoID)
	if err != nil {
		return nil, err
	}
	if contrato == nil {
		return nil, domain.ErrNaoEncontrado
	}

	grupo, err := uc.resolverGrupoRadius(contrato)
	if err != nil {
		return nil, err
	}

	if err := uc.provisionador.Aplicar(ctx, ProvisionamentoRequest{
		PPPoE:  contrato.PPPoEUsuario,
		Radius: grupo,
		Acao:   comando,
	}); err != nil {
		// Aborta sem escrita local: status permanece o que era.
		return nil, err
	}

	if novoStatus == "" {
		return contrato, nil
	}

	// O provisionamento já foi notificado; uma falha aqui deixa os dois lados
	// divergentes e é devolvida ao chamador para re-disparo manual.
	if err := uc.contratoRepo.UpdateStatus(empresaID, contrato.ID, novoStatus); err != nil {
		return nil, err
	}
	contrato.Status = novoStatus
	return contrato, nil
}

// resolverGrupoRadius usa o grupo gravado no contrato e, se ausente, busca o
// grupo do plano (contratos antigos não carregam a cópia).
func (uc *AcaoUseCase) resolverGrupoRadius(contrato *entity.Contrato) (string, error) {
	if contrato.GrupoRadius != "" {
		return contrato.GrupoRadius, nil
	}
	plano, err := uc.planoRepo.GetByID(contrato.EmpresaID, contrato.PlanoID)
	if err != nil {
		return "", err
	}
	if plano == nil || plano.GrupoRadius == "" {
		return "", domain.ErrEntradaInvalida
	}
	return plano.GrupoRadius, nil
}
