package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/conectfibra/gestor-api/internal/application/notificacao"
	"github.com/conectfibra/gestor-api/internal/domain"
	"github.com/conectfibra/gestor-api/pkg/logger"
)

var _ notificacao.EnviadorWhatsApp = (*Client)(nil)

// Client envia mensagens de texto pelo serviço externo de WhatsApp.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient constrói o cliente do serviço WhatsApp.
func NewClient(baseURL, token string, log *logger.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        log,
	}
}

type sendRequest struct {
	Telefone string `json:"telefone"`
	Mensagem string `json:"mensagem"`
	Tipo     string `json:"tipo"`
}

type sendResponse struct {
	Success bool `json:"success"`
	Error   struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
}

// Enviar entrega uma mensagem de texto. Erros de transporte e respostas
// não-2xx viram domain.ErrDependenciaExterna.
func (c *Client) Enviar(ctx context.Context, msg notificacao.Mensagem) error {
	body, err := json.Marshal(sendRequest{
		Telefone: msg.Telefone,
		Mensagem: msg.Texto,
		Tipo:     "text",
	})
	if err != nil {
		return fmt.Errorf("marshal mensagem: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/mensagens/send", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("criar request whatsapp: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.token)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: whatsapp: %v", domain.ErrDependenciaExterna, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var errBody sendResponse
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		c.log.Error().
			Int("status", resp.StatusCode).
			Str("codigo", errBody.Error.Code).
			Str("mensagem", errBody.Error.Message).
			Msg("serviço WhatsApp retornou erro")
		return fmt.Errorf("%w: whatsapp status %d", domain.ErrDependenciaExterna, resp.StatusCode)
	}

	c.log.Info().Str("telefone", msg.Telefone).Msg("mensagem WhatsApp enviada")
	return nil
}
