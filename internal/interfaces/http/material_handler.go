package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/conectfibra/gestor-api/internal/application/dto"
	"github.com/conectfibra/gestor-api/internal/application/estoque"
	"github.com/conectfibra/gestor-api/internal/application/usecase"
	"github.com/conectfibra/gestor-api/internal/domain"
	"github.com/conectfibra/gestor-api/pkg/metrics"
)

// MaterialHandler cadastro de materiais e movimentação de estoque.
type MaterialHandler struct {
	uc   *usecase.MaterialUseCase
	mov  *estoque.MovimentarUseCase
	mets *metrics.Metrics
}

func NewMaterialHandler(uc *usecase.MaterialUseCase, mov *estoque.MovimentarUseCase, mets *metrics.Metrics) *MaterialHandler {
	return &MaterialHandler{uc: uc, mov: mov, mets: mets}
}

func (h *MaterialHandler) Create(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "empresa_id obrigatório"})
	}
	var in dto.CreateMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(empresaID, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEntradaInvalida):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "modelo e etiqueta são obrigatórios"})
		case errors.Is(err, domain.ErrDuplicado):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "etiqueta já cadastrada nesta empresa"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *MaterialHandler) GetByID(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	out, err := h.uc.GetByID(empresaID, c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "material não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

func (h *MaterialHandler) List(c *fiber.Ctx) error {
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

// Movimentar godoc
// @Summary      Movimentar material
// @Description  Registra a transferência do material para empresa, veículo ou contrato.
// @Tags         materiais
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                         true  "ID do material"
// @Param        body  body  dto.MovimentarMaterialRequest  true  "Destino do movimento"
// @Success      201   {object}  entity.Localizacao
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/materiais/{id}/movimentar [post]
func (h *MaterialHandler) Movimentar(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	if empresaID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "empresa_id obrigatório"})
	}
	var in dto.MovimentarMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.mov.Movimentar(c.UserContext(), estoque.MovimentoInput{
		EmpresaID:  empresaID,
		UserID:     GetUserID(c),
		MaterialID: c.Params("id"),
		Tipo:       in.Tipo,
		VeiculoID:  in.VeiculoID,
		ContratoID: in.ContratoID,
	})
	if err != nil {
		h.mets.Erros.WithLabelValues("movimentar_material").Inc()
		switch {
		case errors.Is(err, domain.ErrEntradaInvalida):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo deve ser empresa, veiculo ou contrato, com a referência correspondente"})
		case errors.Is(err, domain.ErrNaoEncontrado):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "material ou destino não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.mets.MovimentosMaterial.Inc()
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Localizacao devolve a posição corrente do material (projeção materializada).
func (h *MaterialHandler) Localizacao(c *fiber.Ctx) error {
	empresaID := GetEmpresaID(c)
	atual, err := h.mov.LocalizacaoAtual(c.UserContext(), empresaID, c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "material sem localização registrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.LocalizacaoResponse{
		MaterialID:   atual.MaterialID,
		Tipo:         atual.Tipo,
		VeiculoID:    atual.VeiculoID,
		ContratoID:   atual.ContratoID,
		AtualizadoEm: atual.AtualizadoEm.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// Historico lista a trilha de movimentos do material, mais recente primeiro.
func (h *MaterialHandler) Historico(c *fiber.Ctx) error {
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
	out, err := h.mov.Historico(c.UserContext(), empresaID, c.Params("id"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
