package cobranca

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/conectfibra/gestor-api/internal/application/contrato"
	"github.com/conectfibra/gestor-api/internal/domain"
)

var _ contrato.RegeneradorCobranca = (*Client)(nil)

// Client chama o webhook de regeração de cobrança. A chamada é best-effort:
// o caso de uso loga e segue quando este cliente devolve erro.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient constrói o cliente com a URL fixa do webhook.
func NewClient(url string) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Notificar envia os nossonumeros e o dia antigo/novo ao webhook.
func (c *Client) Notificar(ctx context.Context, req contrato.RegeneracaoRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal regeneracao: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("criar request regeneracao: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: regeneracao: %v", domain.ErrDependenciaExterna, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: regeneracao status %d", domain.ErrDependenciaExterna, resp.StatusCode)
	}
	return nil
}
