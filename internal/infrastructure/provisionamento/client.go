package provisionamento

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/conectfibra/gestor-api/internal/application/contrato"
	"github.com/conectfibra/gestor-api/internal/domain"
	"github.com/conectfibra/gestor-api/pkg/logger"
)

var _ contrato.Provisionador = (*Client)(nil)

// Client chama o webhook HTTP de provisionamento RADIUS.
// Apenas o status HTTP da resposta é avaliado; o corpo não tem schema
// documentado.
type Client struct {
	url        string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient constrói o cliente com a URL fixa do webhook.
func NewClient(url string, log *logger.Logger) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        log,
	}
}

// Aplicar envia {pppoe, radius, acao} ao webhook. Resposta não-2xx vira
// domain.ErrDependenciaExterna para que o chamador aborte sem escrita local.
func (c *Client) Aplicar(ctx context.Context, req contrato.ProvisionamentoRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal provisionamento: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("criar request provisionamento: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: provisionamento: %v", domain.ErrDependenciaExterna, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.log.Error().
			Int("status", resp.StatusCode).
			Str("pppoe", req.PPPoE).
			Str("acao", req.Acao).
			Str("body", string(raw)).
			Msg("provisionamento retornou erro")
		return fmt.Errorf("%w: provisionamento status %d", domain.ErrDependenciaExterna, resp.StatusCode)
	}

	c.log.Info().
		Str("pppoe", req.PPPoE).
		Str("acao", req.Acao).
		Msg("provisionamento aplicado")
	return nil
}
