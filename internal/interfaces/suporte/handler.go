package suporte

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/conectfibra/gestor-api/internal/application/dto"
	"github.com/conectfibra/gestor-api/internal/infrastructure/mysql"
	"github.com/conectfibra/gestor-api/pkg/logger"
)

// Handler expõe as operações de suporte contra o banco do RADIUS.
type Handler struct {
	store *mysql.RadiusStore
	log   *logger.Logger
}

func NewHandler(store *mysql.RadiusStore, log *logger.Logger) *Handler {
	return &Handler{store: store, log: log}
}

type credenciaisRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Groupname string `json:"groupname"`
}

// AddContractCredentials grava em radcheck/radusergroup as credenciais PPPoE
// de um contrato. Idempotente: repetir a chamada substitui os registros.
func (h *Handler) AddContractCredentials(c *fiber.Ctx) error {
	var req credenciaisRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "corpo inválido",
		})
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Groupname = strings.TrimSpace(req.Groupname)
	if req.Username == "" || req.Password == "" || req.Groupname == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION_ERROR", Message: "username, password e groupname são obrigatórios",
		})
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	if err := h.store.UpsertCredenciais(ctx, req.Username, req.Password, req.Groupname); err != nil {
		h.log.Error().Err(err).Msg("falha ao gravar credenciais radius")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL_ERROR", Message: "erro interno",
		})
	}
	h.log.Info().
		Str("username", req.Username).
		Str("groupname", req.Groupname).
		Msg("credenciais radius gravadas")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "ok"})
}

// Connections devolve a última sessão registrada em radacct para o usuário.
func (h *Handler) Connections(c *fiber.Ctx) error {
	username := strings.TrimSpace(c.Params("username"))
	if username == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION_ERROR", Message: "username obrigatório",
		})
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	conexao, err := h.store.UltimaConexao(ctx, username)
	if err != nil {
		h.log.Error().Err(err).Msg("falha ao consultar radacct")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL_ERROR", Message: "erro interno",
		})
	}
	if conexao == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "sem sessões registradas",
		})
	}
	return c.JSON(fiber.Map{
		"username":      conexao.Username,
		"online":        conexao.Online(),
		"ip":            conexao.IP,
		"mac":           conexao.MAC,
		"inicio":        conexao.Inicio,
		"fim":           conexao.Fim,
		"bytes_entrada": conexao.BytesEntrada,
		"bytes_saida":   conexao.BytesSaida,
	})
}
