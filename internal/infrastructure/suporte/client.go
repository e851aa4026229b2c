package suporte

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

var _ contrato.CredenciaisRadius = (*Client)(nil)

// Client chama o servidor de suporte (cmd/support) para cadastrar credenciais
// PPPoE no accounting RADIUS.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constrói o cliente do servidor de suporte.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type credenciaisRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Groupname string `json:"groupname"`
}

// Cadastrar faz o upsert do par check/grupo no RADIUS via
// POST /support/add-contract-credentials.
func (c *Client) Cadastrar(ctx context.Context, username, password, groupname string) error {
	body, err := json.Marshal(credenciaisRequest{
		Username:  username,
		Password:  password,
		Groupname: groupname,
	})
	if err != nil {
		return fmt.Errorf("marshal credenciais: %w", err)
	}

	url := c.baseURL + "/support/add-contract-credentials"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("criar request suporte: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: suporte: %v", domain.ErrDependenciaExterna, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: suporte status %d", domain.ErrDependenciaExterna, resp.StatusCode)
	}
	return nil
}
