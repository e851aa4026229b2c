package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/conectfibra/gestor-api/internal/application/dto"
	"github.com/conectfibra/gestor-api/internal/application/notificacao"
	"github.com/conectfibra/gestor-api/internal/domain"
	"github.com/conectfibra/gestor-api/pkg/metrics"
)

// NotificacaoHandler templates de mensagem e envio de lembretes por WhatsApp.
type NotificacaoHandler struct {
	uc   *notificacao.UseCase
	mets *metrics.Metrics
}

func NewNotificacaoHandler(uc *notificacao.UseCase, mets *metrics.Metrics) *NotificacaoHandler {
	return &NotificacaoHandler{uc: uc, mets: mets}
}

func (h *NotificacaoHandler) ListTemplates(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "empresa_id obrigatório"})
	}
	out, err := h.uc.ListTemplates(empresaID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

func (h *NotificacaoHandler) UpdateTemplate(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	var in dto.UpdateTemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.UpdateTemplate(empresaID, c.Params("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEntradaInvalida):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "conteudo é obrigatório"})
		case errors.Is(err, domain.ErrNaoEncontrado):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "template não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

func (h *NotificacaoHandler) SetAtivo(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	var in dto.AtivoTemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.uc.SetAtivo(empresaID, c.Params("id"), in.Ativo); err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "template não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// EnviarLembrete godoc
// @Summary      Enviar lembrete de pagamento
// @Description  Renderiza o template ativo do tipo pedido com os dados do contrato e envia por WhatsApp.
// @Tags         notificacoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LembreteRequest  true  "Contrato e tipo de template"
// @Success      202
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/notificacoes/lembrete [post]
func (h *NotificacaoHandler) EnviarLembrete(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "empresa_id obrigatório"})
	}
	var in dto.LembreteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.uc.EnviarLembrete(c.UserContext(), empresaID, in.ContratoID, in.Tipo); err != nil {
		h.mets.Erros.WithLabelValues("enviar_lembrete").Inc()
		switch {
		case errors.Is(err, domain.ErrEntradaInvalida):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrNaoEncontrado):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contrato não encontrado"})
		case errors.Is(err, domain.ErrDependenciaExterna):
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM_ERROR", Message: "envio de mensagem indisponível"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.mets.MensagensEnviadas.Inc()
	return c.SendStatus(fiber.StatusAccepted)
}
