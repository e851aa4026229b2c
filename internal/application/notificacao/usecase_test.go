package notificacao_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conectfibra/gestor-api/internal/application/dto"
	"github.com/conectfibra/gestor-api/internal/application/notificacao"
	"github.com/conectfibra/gestor-api/internal/domain"
	"github.com/conectfibra/gestor-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeTemplateRepo struct {
	templates []*entity.MensagemTemplate
}

func (f *fakeTemplateRepo) Create(tpl *entity.MensagemTemplate) error { return nil }

func (f *fakeTemplateRepo) GetByID(empresaID, id string) (*entity.MensagemTemplate, error) {
	for _, tpl := range f.templates {
		if tpl.EmpresaID == empresaID && tpl.ID == id {
			return tpl, nil
		}
	}
	return nil, nil
}

func (f *fakeTemplateRepo) GetAtivoPorTipo(empresaID, tipo string) (*entity.MensagemTemplate, error) {
	for _, tpl := range f.templates {
		if tpl.EmpresaID == empresaID && tpl.Tipo == tipo && tpl.Ativo {
			return tpl, nil
		}
	}
	return nil, nil
}

func (f *fakeTemplateRepo) ListByEmpresa(empresaID string) ([]*entity.MensagemTemplate, error) {
	return f.templates, nil
}

func (f *fakeTemplateRepo) Update(tpl *entity.MensagemTemplate) error { return nil }

func (f *fakeTemplateRepo) SetAtivo(empresaID, id string, ativo bool) error {
	for _, tpl := range f.templates {
		if tpl.EmpresaID == empresaID && tpl.ID == id {
			tpl.Ativo = ativo
		}
	}
	return nil
}

type fakeContratoRepo struct {
	contratos map[string]*entity.Contrato
}

func (f *fakeContratoRepo) Create(c *entity.Contrato) error { return nil }

func (f *fakeContratoRepo) GetByID(empresaID, id string) (*entity.Contrato, error) {
	c, ok := f.contratos[id]
	if !ok || c.EmpresaID != empresaID {
		return nil, nil
	}
	return c, nil
}

func (f *fakeContratoRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Contrato, error) {
	return nil, nil
}

func (f *fakeContratoRepo) ListByCliente(empresaID, clienteID string) ([]*entity.Contrato, error) {
	return nil, nil
}

func (f *fakeContratoRepo) UpdateStatus(empresaID, id, status string) error { return nil }

func (f *fakeContratoRepo) UpdateDiaVencimento(empresaID, id string, dia int) error { return nil }

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

type fakeTituloRepo struct {
	titulos []*entity.Titulo
}

func (f *fakeTituloRepo) Create(t *entity.Titulo) error { return nil }

func (f *fakeTituloRepo) ListByContrato(empresaID, contratoID string) ([]*entity.Titulo, error) {
	return f.titulos, nil
}

func (f *fakeTituloRepo) ListNaoPagos(empresaID, contratoID string) ([]*entity.Titulo, error) {
	var out []*entity.Titulo
	for _, t := range f.titulos {
		if t.EmpresaID == empresaID && t.ContratoID == contratoID && !t.Pago {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTituloRepo) DeleteNaoPagos(empresaID, contratoID string) (int64, error) {
	return 0, nil
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

type fakeEnviador struct {
	enviadas []notificacao.Mensagem
	err      error
}

func (f *fakeEnviador) Enviar(ctx context.Context, msg notificacao.Mensagem) error {
	f.enviadas = append(f.enviadas, msg)
	return f.err
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func montarUseCase(templates []*entity.MensagemTemplate, titulos []*entity.Titulo, enviador *fakeEnviador) *notificacao.UseCase {
	return notificacao.NewUseCase(
		&fakeTemplateRepo{templates: templates},
		&fakeContratoRepo{contratos: map[string]*entity.Contrato{
			"con-1": {ID: "con-1", EmpresaID: "emp-1", ClienteID: "cli-1", PlanoID: "plano-1"},
		}},
		&fakeClienteRepo{clientes: map[string]*entity.Cliente{
			"cli-1": {ID: "cli-1", EmpresaID: "emp-1", Nome: "Maria Silva", Telefone: "5511999990000"},
		}},
		&fakeTituloRepo{titulos: titulos},
		&fakePlanoRepo{planos: map[string]*entity.Plano{
			"plano-1": {ID: "plano-1", EmpresaID: "emp-1", Valor: decimal.NewFromFloat(99.90)},
		}},
		enviador,
	)
}

func templateLembrete(ativo bool) *entity.MensagemTemplate {
	return &entity.MensagemTemplate{
		ID:        "tpl-1",
		EmpresaID: "emp-1",
		Tipo:      entity.TemplateLembretePagamento,
		Conteudo:  "Olá {client_name}, R$ {amount} vence em {due_date}.",
		Ativo:     ativo,
	}
}

// O lembrete usa o primeiro título em aberto para valor e vencimento.
func TestEnviarLembrete_RenderizaComTituloEmAberto(t *testing.T) {
	enviador := &fakeEnviador{}
	uc := montarUseCase(
		[]*entity.MensagemTemplate{templateLembrete(true)},
		[]*entity.Titulo{{
			ID: "t1", EmpresaID: "emp-1", ContratoID: "con-1",
			Valor:      decimal.NewFromFloat(89.90),
			Vencimento: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		}},
		enviador,
	)

	err := uc.EnviarLembrete(context.Background(), "emp-1", "con-1", entity.TemplateLembretePagamento)
	require.NoError(t, err)

	require.Len(t, enviador.enviadas, 1)
	assert.Equal(t, "5511999990000", enviador.enviadas[0].Telefone)
	assert.Equal(t, "Olá Maria Silva, R$ 89.90 vence em 10/09/2026.", enviador.enviadas[0].Texto)
}

// Sem título em aberto, o valor cai para o do plano.
func TestEnviarLembrete_SemTituloUsaValorDoPlano(t *testing.T) {
	enviador := &fakeEnviador{}
	uc := montarUseCase([]*entity.MensagemTemplate{templateLembrete(true)}, nil, enviador)

	err := uc.EnviarLembrete(context.Background(), "emp-1", "con-1", entity.TemplateLembretePagamento)
	require.NoError(t, err)

	require.Len(t, enviador.enviadas, 1)
	assert.Contains(t, enviador.enviadas[0].Texto, "99.90")
}

// Template inativo (ou inexistente) recusa o envio sem chamar o serviço.
func TestEnviarLembrete_TemplateInativoRecusa(t *testing.T) {
	enviador := &fakeEnviador{}
	uc := montarUseCase([]*entity.MensagemTemplate{templateLembrete(false)}, nil, enviador)

	err := uc.EnviarLembrete(context.Background(), "emp-1", "con-1", entity.TemplateLembretePagamento)
	require.ErrorIs(t, err, domain.ErrEntradaInvalida)
	assert.Empty(t, enviador.enviadas)
}

func TestEnviarLembrete_ContratoNaoEncontrado(t *testing.T) {
	enviador := &fakeEnviador{}
	uc := montarUseCase([]*entity.MensagemTemplate{templateLembrete(true)}, nil, enviador)

	err := uc.EnviarLembrete(context.Background(), "emp-1", "con-nao-existe", entity.TemplateLembretePagamento)
	require.ErrorIs(t, err, domain.ErrNaoEncontrado)
	assert.Empty(t, enviador.enviadas)
}

func TestUpdateTemplate_ConteudoVazioRecusa(t *testing.T) {
	uc := montarUseCase([]*entity.MensagemTemplate{templateLembrete(true)}, nil, &fakeEnviador{})

	_, err := uc.UpdateTemplate("emp-1", "tpl-1", dto.UpdateTemplateRequest{Conteudo: ""})
	require.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestSetAtivo_TemplateInexistente(t *testing.T) {
	uc := montarUseCase(nil, nil, &fakeEnviador{})

	err := uc.SetAtivo("emp-1", "tpl-nao-existe", true)
	require.ErrorIs(t, err, domain.ErrNaoEncontrado)
}
