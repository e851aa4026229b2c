package notificacao

import (
	"context"
	"time"

	"github.com/conectfibra/gestor-api/internal/application/dto"
	"github.com/conectfibra/gestor-api/internal/domain"
	"github.com/conectfibra/gestor-api/internal/domain/entity"
	"github.com/conectfibra/gestor-api/internal/domain/repository"
)

// UseCase gerencia templates de mensagem e o disparo de lembretes WhatsApp.
type UseCase struct {
	templateRepo repository.TemplateRepository
	contratoRepo repository.ContratoRepository
	clienteRepo  repository.ClienteRepository
	tituloRepo   repository.TituloRepository
	planoRepo    repository.PlanoRepository
	enviador     EnviadorWhatsApp
}

// NewUseCase constrói o caso de uso de notificações.
func NewUseCase(
	templateRepo repository.TemplateRepository,
	contratoRepo repository.ContratoRepository,
	clienteRepo repository.ClienteRepository,
	tituloRepo repository.TituloRepository,
	planoRepo repository.PlanoRepository,
	enviador EnviadorWhatsApp,
) *UseCase {
	return &UseCase{
		templateRepo: templateRepo,
		contratoRepo: contratoRepo,
		clienteRepo:  clienteRepo,
		tituloRepo:   tituloRepo,
		planoRepo:    planoRepo,
		enviador:     enviador,
	}
}

// ListTemplates lista os templates da empresa.
func (uc *UseCase) ListTemplates(empresaID string) ([]*entity.MensagemTemplate, error) {
	return uc.templateRepo.ListByEmpresa(empresaID)
}

// UpdateTemplate troca o conteúdo de um template.
func (uc *UseCase) UpdateTemplate(empresaID, id string, in dto.UpdateTemplateRequest) (*entity.MensagemTemplate, error) {
	if in.Conteudo == "" {
		return nil, domain.ErrEntradaInvalida
	}
	template, err := uc.templateRepo.GetByID(empresaID, id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, domain.ErrNaoEncontrado
	}
	template.Conteudo = in.Conteudo
	template.UpdatedAt = time.Now()
	if err := uc.templateRepo.Update(template); err != nil {
		return nil, err
	}
	return template, nil
}

// SetAtivo liga/desliga um template.
func (uc *UseCase) SetAtivo(empresaID, id string, ativo bool) error {
	template, err := uc.templateRepo.GetByID(empresaID, id)
	if err != nil {
		return err
	}
	if template == nil {
		return domain.ErrNaoEncontrado
	}
	return uc.templateRepo.SetAtivo(empresaID, id, ativo)
}

// EnviarLembrete seleciona o template ativo do tipo, renderiza com os dados do
// cliente e do próximo título em aberto e envia pelo serviço WhatsApp.
// Template inexistente ou inativo recusa o envio com erro de validação.
func (uc *UseCase) EnviarLembrete(ctx context.Context, empresaID, contratoID, tipo string) error {
	template, err := uc.templateRepo.GetAtivoPorTipo(empresaID, tipo)
	if err != nil {
		return err
	}
	if template == nil {
		return domain.ErrEntradaInvalida
	}

	contrato, err := uc.contratoRepo.GetByID(empresaID, contratoID)
	if err != nil {
		return err
	}
	if contrato == nil {
		return domain.ErrNaoEncontrado
	}
	cliente, err := uc.clienteRepo.GetByID(empresaID, contrato.ClienteID)
	if err != nil {
		return err
	}
	if cliente == nil {
		return domain.ErrNaoEncontrado
	}

	dados := DadosMensagem{NomeCliente: cliente.Nome}
	naoPagos, err := uc.tituloRepo.ListNaoPagos(empresaID, contratoID)
	if err != nil {
		return err
	}
	if len(naoPagos) > 0 {
		// Títulos vêm ordenados por vencimento: o primeiro é o próximo a vencer.
		dados.Valor = naoPagos[0].Valor.StringFixed(2)
		dados.Vencimento = naoPagos[0].Vencimento.Format("02/01/2006")
	} else if plano, err := uc.planoRepo.GetByID(empresaID, contrato.PlanoID); err == nil && plano != nil {
		dados.Valor = plano.Valor.StringFixed(2)
	}

	return uc.enviador.Enviar(ctx, Mensagem{
		Telefone: cliente.Telefone,
		Texto:    Render(template, dados),
	})
}
