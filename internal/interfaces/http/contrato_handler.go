package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/conectfibra/gestor-api/internal/application/contrato"
	"github.com/conectfibra/gestor-api/internal/application/dto"
	"github.com/conectfibra/gestor-api/internal/domain"
	"github.com/conectfibra/gestor-api/pkg/metrics"
)

// ContratoHandler contratos e suas ações de ciclo de vida.
type ContratoHandler struct {
	uc         *contrato.UseCase
	acaoUC     *contrato.AcaoUseCase
	vencimento *contrato.VencimentoUseCase
	mets       *metrics.Metrics
}

func NewContratoHandler(uc *contrato.UseCase, acaoUC *contrato.AcaoUseCase, vencimento *contrato.VencimentoUseCase, mets *metrics.Metrics) *ContratoHandler {
	return &ContratoHandler{uc: uc, acaoUC: acaoUC, vencimento: vencimento, mets: mets}
}

func (h *ContratoHandler) Create(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "empresa_id obrigatório"})
	}
	var in dto.CreateContratoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), empresaID, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEntradaInvalida):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrNaoEncontrado):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cliente ou plano não encontrado"})
		case errors.Is(err, domain.ErrDuplicado):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "usuário pppoe já cadastrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *ContratoHandler) GetByID(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	out, err := h.uc.GetByID(empresaID, c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contrato não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

func (h *ContratoHandler) List(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.uc.List(empresaID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

func (h *ContratoHandler) Titulos(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	out, err := h.uc.Titulos(empresaID, c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contrato não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AplicarAcao godoc
// @Summary      Aplicar ação de ciclo de vida
// @Description  Liberar, Liberar48h, Cancelar ou Bloquear. O webhook de provisionamento é chamado antes de persistir o status.
// @Tags         contratos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID do contrato"
// @Param        body  body  dto.AcaoContratoRequest  true  "Ação"
// @Success      200   {object}  entity.Contrato
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/contratos/{id}/acao [post]
func (h *ContratoHandler) AplicarAcao(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "empresa_id obrigatório"})
	}
	var in dto.AcaoContratoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	acao := strings.TrimSpace(in.Acao)
	out, err := h.acaoUC.AplicarAcao(c.UserContext(), empresaID, c.Params("id"), acao)
	if err != nil {
		h.mets.Erros.WithLabelValues("acao_contrato").Inc()
		switch {
		case errors.Is(err, domain.ErrEntradaInvalida):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrNaoEncontrado):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contrato não encontrado"})
		case errors.Is(err, domain.ErrDependenciaExterna):
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM_ERROR", Message: "provisionamento indisponível, nenhuma alteração aplicada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.mets.AcoesContrato.WithLabelValues(acao).Inc()
	return c.JSON(out)
}

// TrocarDiaVencimento godoc
// @Summary      Trocar dia de vencimento
// @Description  Notifica a regeneração de cobrança (melhor esforço), apaga títulos não pagos e grava o novo dia numa transação.
// @Tags         contratos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID do contrato"
// @Param        body  body  dto.DiaVencimentoRequest  true  "Novo dia (1..28)"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/contratos/{id}/dia-vencimento [put]
func (h *ContratoHandler) TrocarDiaVencimento(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "empresa_id obrigatório"})
	}
	var in dto.DiaVencimentoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.vencimento.TrocarDiaVencimento(c.UserContext(), empresaID, c.Params("id"), in.Dia); err != nil {
		h.mets.Erros.WithLabelValues("dia_vencimento").Inc()
		switch {
		case errors.Is(err, domain.ErrEntradaInvalida):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dia deve estar entre 1 e 28"})
		case errors.Is(err, domain.ErrNaoEncontrado):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contrato não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
