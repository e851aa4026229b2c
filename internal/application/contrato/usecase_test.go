package contrato_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conectfibra/gestor-api/internal/application/contrato"
	"github.com/conectfibra/gestor-api/internal/application/dto"
	"github.com/conectfibra/gestor-api/internal/domain"
	"github.com/conectfibra/gestor-api/internal/domain/entity"
)

type fakeClienteRepo struct {
	clientes map[string]*entity.Cliente
}

func (f *fakeClienteRepo) Create(c *entity.Cliente) error { return nil }

func (f *fakeClienteRepo) GetByID(empresaID, id string) (*entity.Cliente, error) {
	c, ok := f.clientes[id]
	if !ok || c.EmpresaID != empresaID {
		return nil, nil
	}
	return c, nil
}

func (f *fakeClienteRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Cliente, error) {
	return nil, nil
}

func (f *fakeClienteRepo) Update(c *entity.Cliente) error { return nil }

func (f *fakeClienteRepo) Delete(empresaID, id string) error { return nil }

type fakeCredenciais struct {
	cadastros [][3]string // username, password, groupname
	err       error
}

func (f *fakeCredenciais) Cadastrar(ctx context.Context, username, password, groupname string) error {
	f.cadastros = append(f.cadastros, [3]string{username, password, groupname})
	return f.err
}

func montarCreateUC(credenciais *fakeCredenciais) (*contrato.UseCase, *fakeContratoRepo) {
	repo := novoFakeContratoRepo()
	uc := contrato.NewUseCase(
		repo,
		&fakeClienteRepo{clientes: map[string]*entity.Cliente{
			"cli-1": {ID: "cli-1", EmpresaID: "emp-1", Nome: "Maria"},
		}},
		&fakePlanoRepo{planos: map[string]*entity.Plano{
			"plano-1": {ID: "plano-1", EmpresaID: "emp-1", GrupoRadius: "plano_50mb"},
		}},
		&fakeTituloRepo{},
		credenciais,
		testLogger(),
	)
	return uc, repo
}

func createRequest() dto.CreateContratoRequest {
	return dto.CreateContratoRequest{
		ClienteID:     "cli-1",
		PlanoID:       "plano-1",
		PPPoEUsuario:  "maria2026083101",
		PPPoESenha:    "segredo",
		DiaVencimento: 10,
	}
}

// O contrato nasce Criado, com a cópia do grupo do plano, e a credencial PPPoE
// é registrada no servidor de suporte.
func TestCreate_ContratoCriadoComCredencial(t *testing.T) {
	credenciais := &fakeCredenciais{}
	uc, repo := montarCreateUC(credenciais)

	out, err := uc.Create(context.Background(), "emp-1", createRequest())
	require.NoError(t, err)

	assert.Equal(t, entity.StatusCriado, out.Status)
	assert.Equal(t, "plano_50mb", out.GrupoRadius, "grupo copiado do plano")
	assert.NotEmpty(t, out.ID)
	assert.Contains(t, repo.contratos, out.ID)

	require.Len(t, credenciais.cadastros, 1)
	assert.Equal(t, [3]string{"maria2026083101", "segredo", "plano_50mb"}, credenciais.cadastros[0])
}

// Falha no cadastro RADIUS não desfaz o contrato: é best-effort.
func TestCreate_FalhaCredencialNaoDesfazContrato(t *testing.T) {
	credenciais := &fakeCredenciais{err: errors.New("suporte fora do ar")}
	uc, repo := montarCreateUC(credenciais)

	out, err := uc.Create(context.Background(), "emp-1", createRequest())
	require.NoError(t, err)
	assert.Contains(t, repo.contratos, out.ID, "contrato permanece gravado")
}

func TestCreate_ValidacaoDeCampos(t *testing.T) {
	uc, _ := montarCreateUC(&fakeCredenciais{})

	casos := []struct {
		nome    string
		mutacao func(*dto.CreateContratoRequest)
	}{
		{"sem cliente", func(r *dto.CreateContratoRequest) { r.ClienteID = "" }},
		{"sem plano", func(r *dto.CreateContratoRequest) { r.PlanoID = "" }},
		{"sem pppoe", func(r *dto.CreateContratoRequest) { r.PPPoEUsuario = "" }},
		{"sem senha", func(r *dto.CreateContratoRequest) { r.PPPoESenha = "" }},
		{"dia zero", func(r *dto.CreateContratoRequest) { r.DiaVencimento = 0 }},
		{"dia 29", func(r *dto.CreateContratoRequest) { r.DiaVencimento = 29 }},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			req := createRequest()
			c.mutacao(&req)
			_, err := uc.Create(context.Background(), "emp-1", req)
			assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
		})
	}
}

func TestCreate_ClienteDeOutraEmpresa(t *testing.T) {
	uc, _ := montarCreateUC(&fakeCredenciais{})

	_, err := uc.Create(context.Background(), "emp-2", createRequest())
	require.ErrorIs(t, err, domain.ErrNaoEncontrado)
}
