package contrato

import (
	"context"

	"github.com/conectfibra/gestor-api/internal/domain"
	"github.com/conectfibra/gestor-api/internal/domain/repository"
	"github.com/conectfibra/gestor-api/pkg/logger"
)

// VencimentoUseCase troca o dia de vencimento de um contrato, invalidando os
// títulos não pagos para que o job externo de cobrança os regere no novo
// calendário. A notificação ao webhook de regeração é best-effort; a remoção
// dos títulos e a gravação do novo dia acontecem numa única transação.
type VencimentoUseCase struct {
	contratoRepo repository.ContratoRepository
	tituloRepo   repository.TituloRepository
	regenerador  RegeneradorCobranca
	txRunner     TxRunner
	log          *logger.Logger
}

// NewVencimentoUseCase constrói o caso de uso.
func NewVencimentoUseCase(
	contratoRepo repository.ContratoRepository,
	tituloRepo repository.TituloRepository,
	regenerador RegeneradorCobranca,
	txRunner TxRunner,
	log *logger.Logger,
) *VencimentoUseCase {
	return &VencimentoUseCase{
		contratoRepo: contratoRepo,
		tituloRepo:   tituloRepo,
		regenerador:  regenerador,
		txRunner:     txRunner,
		log:          log,
	}
}

// TrocarDiaVencimento executa o fluxo completo. Não é idempotente, mas é
// seguro repetir: a segunda chamada não encontra títulos a remover e ainda
// assim grava o dia.
func (uc *VencimentoUseCase) TrocarDiaVencimento(ctx context.Context, empresaID, contratoID string, novoDia int) error {
	if novoDia < 1 || novoDia > 28 {
		return domain.ErrEntradaInvalida
	}

	contrato, err := uc.contratoRepo.GetByID(empresaID, contratoID)
	if err != nil {
		return err
	}
	if contrato == nil {
		return domain.ErrNaoEncontrado
	}

	naoPagos, err := uc.tituloRepo.ListNaoPagos(empresaID, contratoID)
	if err != nil {
		return err
	}
	nossonumeros := make([]string, 0, len(naoPagos))
	for _, t := range naoPagos {
		nossonumeros = append(nossonumeros, t.NossoNumero)
	}

	// Best-effort: falha aqui é logada e engolida, nunca aborta a troca.
	if err := uc.regenerador.Notificar(ctx, RegeneracaoRequest{
		NossoNumeros:        nossonumeros,
		ContratoID:          contrato.ID,
		PPPoE:               contrato.PPPoEUsuario,
		DiaVencimentoAntigo: contrato.DiaVencimento,
		DiaVencimentoNovo:   novoDia,
	}); err != nil {
		uc.log.Warn().Err(err).
			Str("contrato_id", contrato.ID).
			Int("dia_novo", novoDia).
			Msg("webhook de regeração de cobrança falhou")
	}

	// Remoção dos não pagos e gravação do novo dia na mesma transação:
	// ou o contrato perde os títulos E ganha o novo dia, ou nada muda.
	return uc.txRunner.Run(ctx, func(
		tituloRepo repository.TituloRepository,
		contratoRepo repository.ContratoRepository,
	) error {
		if _, err := tituloRepo.DeleteNaoPagos(empresaID, contratoID); err != nil {
			return err
		}
		return contratoRepo.UpdateDiaVencimento(empresaID, contratoID, novoDia)
	})
}
