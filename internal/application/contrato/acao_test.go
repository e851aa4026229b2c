package contrato_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conectfibra/gestor-api/internal/application/contrato"
	"github.com/conectfibra/gestor-api/internal/domain"
	"github.com/conectfibra/gestor-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeContratoRepo struct {
	contratos         map[string]*entity.Contrato
	statusAtualizados []string // pares "id=status" na ordem de chamada
	diasAtualizados   []int
	errUpdateStatus   error
	errUpdateDia      error
}

func novoFakeContratoRepo(cs ...*entity.Contrato) *fakeContratoRepo {
	m := make(map[string]*entity.Contrato, len(cs))
	for _, c := range cs {
		m[c.ID] = c
	}
	return &fakeContratoRepo{contratos: m}
}

func (f *fakeContratoRepo) Create(c *entity.Contrato) error {
	f.contratos[c.ID] = c
	return nil
}

func (f *fakeContratoRepo) GetByID(empresaID, id string) (*entity.Contrato, error) {
	c, ok := f.contratos[id]
	if !ok || c.EmpresaID != empresaID {
		return nil, nil
	}
	copia := *c
	return &copia, nil
}

func (f *fakeContratoRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Contrato, error) {
	var out []*entity.Contrato
	for _, c := range f.contratos {
		if c.EmpresaID == empresaID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeContratoRepo) ListByCliente(empresaID, clienteID string) ([]*entity.Contrato, error) {
	var out []*entity.Contrato
	for _, c := range f.contratos {
		if c.EmpresaID == empresaID && c.ClienteID == clienteID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeContratoRepo) UpdateStatus(empresaID, id, status string) error {
	if f.errUpdateStatus != nil {
		return f.errUpdateStatus
	}
	c, ok := f.contratos[id]
	if !ok || c.EmpresaID != empresaID {
		return domain.ErrNaoEncontrado
	}
	c.Status = status
	f.statusAtualizados = append(f.statusAtualizados, id+"="+status)
	return nil
}

func (f *fakeContratoRepo) UpdateDiaVencimento(empresaID, id string, dia int) error {
	if f.errUpdateDia != nil {
		return f.errUpdateDia
	}
	c, ok := f.contratos[id]
	if !ok || c.EmpresaID != empresaID {
		return domain.ErrNaoEncontrado
	}
	c.DiaVencimento = dia
	f.diasAtualizados = append(f.diasAtualizados, dia)
	return nil
}

type fakePlanoRepo struct {
	planos map[string]*entity.Plano
}

func (f *fakePlanoRepo) Create(p *entity.Plano) error { return nil }

func (f *fakePlanoRepo) GetByID(empresaID, id string) (*entity.Plano, error) {
	p, ok := f.planos[id]
	if !ok || p.EmpresaID != empresaID {
		return nil, nil
	}
	return p, nil
}

func (f *fakePlanoRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Plano, error) {
	return nil, nil
}

func (f *fakePlanoRepo) Update(p *entity.Plano) error { return nil }

type fakeProvisionador struct {
	chamadas []contrato.ProvisionamentoRequest
	err      error
}

func (f *fakeProvisionador) Aplicar(ctx context.Context, req contrato.ProvisionamentoRequest) error {
	f.chamadas = append(f.chamadas, req)
	return f.err
}

func contratoAtivo(id, empresaID string) *entity.Contrato {
	return &entity.Contrato{
		ID:            id,
		EmpresaID:     empresaID,
		ClienteID:     "cliente-1",
		PlanoID:       "plano-1",
		PPPoEUsuario:  "joao2024031014",
		PPPoESenha:    "segredo",
		GrupoRadius:   "plano_50mb",
		DiaVencimento: 10,
		Status:        entity.StatusAtivo,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Cancelar deve chamar o provisionamento com "cancelar" e só então gravar o
// status Cancelado.
func TestAplicarAcao_CancelarPersisteAposProvisionar(t *testing.T) {
	repo := novoFakeContratoRepo(contratoAtivo("42", "emp-1"))
	prov := &fakeProvisionador{}
	uc := contrato.NewAcaoUseCase(repo, &fakePlanoRepo{}, prov)

	out, err := uc.AplicarAcao(context.Background(), "emp-1", "42", entity.AcaoCancelar)
	require.NoError(t, err)

	require.Len(t, prov.chamadas, 1)
	assert.Equal(t, "cancelar", prov.chamadas[0].Acao)
	assert.Equal(t, "joao2024031014", prov.chamadas[0].PPPoE)
	assert.Equal(t, entity.StatusCancelado, out.Status)
	assert.Equal(t, entity.StatusCancelado, repo.contratos["42"].Status)
}

// Bloquear usa o valor de fio com B maiúsculo e grava Bloqueado.
func TestAplicarAcao_BloquearUsaValorDeFio(t *testing.T) {
	repo := novoFakeContratoRepo(contratoAtivo("42", "emp-1"))
	prov := &fakeProvisionador{}
	uc := contrato.NewAcaoUseCase(repo, &fakePlanoRepo{}, prov)

	out, err := uc.AplicarAcao(context.Background(), "emp-1", "42", entity.AcaoBloquear)
	require.NoError(t, err)

	require.Len(t, prov.chamadas, 1)
	assert.Equal(t, contrato.ProvisionamentoRequest{
		PPPoE:  "joao2024031014",
		Radius: "plano_50mb",
		Acao:   "Bloquear",
	}, prov.chamadas[0])
	assert.Equal(t, entity.StatusBloqueado, out.Status)
}

// Falha do webhook aborta a ação sem tocar o status local.
func TestAplicarAcao_FalhaExternaNaoPersiste(t *testing.T) {
	repo := novoFakeContratoRepo(contratoAtivo("42", "emp-1"))
	prov := &fakeProvisionador{err: domain.ErrDependenciaExterna}
	uc := contrato.NewAcaoUseCase(repo, &fakePlanoRepo{}, prov)

	_, err := uc.AplicarAcao(context.Background(), "emp-1", "42", entity.AcaoBloquear)
	require.ErrorIs(t, err, domain.ErrDependenciaExterna)

	assert.Equal(t, entity.StatusAtivo, repo.contratos["42"].Status,
		"status local não deve mudar quando o provisionamento falha")
	assert.Empty(t, repo.statusAtualizados)
}

// Liberar48h só dispara o webhook; nenhuma escrita local acontece.
func TestAplicarAcao_Liberar48hNaoPersiste(t *testing.T) {
	repo := novoFakeContratoRepo(contratoAtivo("42", "emp-1"))
	prov := &fakeProvisionador{}
	uc := contrato.NewAcaoUseCase(repo, &fakePlanoRepo{}, prov)

	out, err := uc.AplicarAcao(context.Background(), "emp-1", "42", entity.AcaoLiberar48h)
	require.NoError(t, err)

	require.Len(t, prov.chamadas, 1)
	assert.Equal(t, "liberar48h", prov.chamadas[0].Acao)
	assert.Equal(t, entity.StatusAtivo, out.Status, "o status devolvido é o corrente")
	assert.Empty(t, repo.statusAtualizados, "Liberar48h não grava status")
}

// Contrato antigo sem cópia do grupo resolve pelo plano.
func TestAplicarAcao_GrupoVemDoPlano(t *testing.T) {
	c := contratoAtivo("42", "emp-1")
	c.GrupoRadius = ""
	repo := novoFakeContratoRepo(c)
	planos := &fakePlanoRepo{planos: map[string]*entity.Plano{
		"plano-1": {ID: "plano-1", EmpresaID: "emp-1", GrupoRadius: "plano_100mb"},
	}}
	prov := &fakeProvisionador{}
	uc := contrato.NewAcaoUseCase(repo, planos, prov)

	_, err := uc.AplicarAcao(context.Background(), "emp-1", "42", entity.AcaoLiberar)
	require.NoError(t, err)

	require.Len(t, prov.chamadas, 1)
	assert.Equal(t, "plano_100mb", prov.chamadas[0].Radius)
}

// Sem grupo no contrato nem no plano, a ação é recusada antes do webhook.
func TestAplicarAcao_SemGrupoRecusa(t *testing.T) {
	c := contratoAtivo("42", "emp-1")
	c.GrupoRadius = ""
	repo := novoFakeContratoRepo(c)
	prov := &fakeProvisionador{}
	uc := contrato.NewAcaoUseCase(repo, &fakePlanoRepo{planos: map[string]*entity.Plano{}}, prov)

	_, err := uc.AplicarAcao(context.Background(), "emp-1", "42", entity.AcaoLiberar)
	require.ErrorIs(t, err, domain.ErrEntradaInvalida)
	assert.Empty(t, prov.chamadas)
}

func TestAplicarAcao_AcaoDesconhecida(t *testing.T) {
	repo := novoFakeContratoRepo(contratoAtivo("42", "emp-1"))
	prov := &fakeProvisionador{}
	uc := contrato.NewAcaoUseCase(repo, &fakePlanoRepo{}, prov)

	_, err := uc.AplicarAcao(context.Background(), "emp-1", "42", "Suspender")
	require.ErrorIs(t, err, domain.ErrEntradaInvalida)
	assert.Empty(t, prov.chamadas)
}

func TestAplicarAcao_ContratoDeOutraEmpresa(t *testing.T) {
	repo := novoFakeContratoRepo(contratoAtivo("42", "emp-1"))
	prov := &fakeProvisionador{}
	uc := contrato.NewAcaoUseCase(repo, &fakePlanoRepo{}, prov)

	_, err := uc.AplicarAcao(context.Background(), "emp-2", "42", entity.AcaoLiberar)
	require.ErrorIs(t, err, domain.ErrNaoEncontrado)
	assert.Empty(t, prov.chamadas)
}
