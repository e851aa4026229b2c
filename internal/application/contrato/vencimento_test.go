package contrato_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conectfibra/gestor-api/internal/application/contrato"
	"github.com/conectfibra/gestor-api/internal/domain"
	"github.com/conectfibra/gestor-api/internal/domain/entity"
	"github.com/conectfibra/gestor-api/internal/domain/repository"
	"github.com/conectfibra/gestor-api/pkg/logger"
)

type fakeTituloRepo struct {
	titulos []*entity.Titulo
}

func (f *fakeTituloRepo) Create(t *entity.Titulo) error {
	f.titulos = append(f.titulos, t)
	return nil
}

func (f *fakeTituloRepo) ListByContrato(empresaID, contratoID string) ([]*entity.Titulo, error) {
	var out []*entity.Titulo
	for _, t := range f.titulos {
		if t.EmpresaID == empresaID && t.ContratoID == contratoID {
			out = append(out, t)
		}
	}
	return out, nil
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
	var restantes []*entity.Titulo
	var removidos int64
	for _, t := range f.titulos {
		if t.EmpresaID == empresaID && t.ContratoID == contratoID && !t.Pago {
			removidos++
			continue
		}
		restantes = append(restantes, t)
	}
	f.titulos = restantes
	return removidos, nil
}

type fakeRegenerador struct {
	chamadas []contrato.RegeneracaoRequest
	err      error
}

func (f *fakeRegenerador) Notificar(ctx context.Context, req contrato.RegeneracaoRequest) error {
	f.chamadas = append(f.chamadas, req)
	return f.err
}

// fakeTxRunner executa a função diretamente sobre os fakes, sem transação.
type fakeTxRunner struct {
	tituloRepo   repository.TituloRepository
	contratoRepo repository.ContratoRepository
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	tituloRepo repository.TituloRepository,
	contratoRepo repository.ContratoRepository,
) error) error {
	return fn(f.tituloRepo, f.contratoRepo)
}

func tituloDe(id, contratoID string, pago bool, nossoNumero string) *entity.Titulo {
	return &entity.Titulo{
		ID:          id,
		EmpresaID:   "emp-1",
		ContratoID:  contratoID,
		Valor:       decimal.NewFromFloat(89.90),
		Vencimento:  time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		Pago:        pago,
		NossoNumero: nossoNumero,
	}
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func novoVencimentoUC(repo *fakeContratoRepo, titulos *fakeTituloRepo, regen *fakeRegenerador) *contrato.VencimentoUseCase {
	return contrato.NewVencimentoUseCase(repo, titulos, regen,
		&fakeTxRunner{tituloRepo: titulos, contratoRepo: repo}, testLogger())
}

// A troca remove exatamente os títulos não pagos, preserva os pagos e grava o
// novo dia; o webhook recebe os nossonumeros removidos.
func TestTrocarDia_RemoveNaoPagosEGravaDia(t *testing.T) {
	repo := novoFakeContratoRepo(contratoAtivo("42", "emp-1"))
	titulos := &fakeTituloRepo{titulos: []*entity.Titulo{
		tituloDe("t1", "42", false, "90001"),
		tituloDe("t2", "42", false, "90002"),
		tituloDe("t3", "42", true, "90003"),
	}}
	regen := &fakeRegenerador{}
	uc := novoVencimentoUC(repo, titulos, regen)

	err := uc.TrocarDiaVencimento(context.Background(), "emp-1", "42", 25)
	require.NoError(t, err)

	assert.Equal(t, 25, repo.contratos["42"].DiaVencimento)
	require.Len(t, titulos.titulos, 1, "só o título pago deve restar")
	assert.Equal(t, "t3", titulos.titulos[0].ID)

	require.Len(t, regen.chamadas, 1)
	assert.ElementsMatch(t, []string{"90001", "90002"}, regen.chamadas[0].NossoNumeros)
	assert.Equal(t, 10, regen.chamadas[0].DiaVencimentoAntigo)
	assert.Equal(t, 25, regen.chamadas[0].DiaVencimentoNovo)
	assert.Equal(t, "joao2024031014", regen.chamadas[0].PPPoE)
}

// Falha do webhook de regeração não aborta: é best-effort.
func TestTrocarDia_WebhookFalhaNaoAborta(t *testing.T) {
	repo := novoFakeContratoRepo(contratoAtivo("42", "emp-1"))
	titulos := &fakeTituloRepo{titulos: []*entity.Titulo{
		tituloDe("t1", "42", false, "90001"),
	}}
	regen := &fakeRegenerador{err: errors.New("timeout")}
	uc := novoVencimentoUC(repo, titulos, regen)

	err := uc.TrocarDiaVencimento(context.Background(), "emp-1", "42", 15)
	require.NoError(t, err)

	assert.Equal(t, 15, repo.contratos["42"].DiaVencimento)
	assert.Empty(t, titulos.titulos, "títulos não pagos removidos mesmo com webhook fora do ar")
	assert.Len(t, regen.chamadas, 1, "o webhook deve ter sido tentado")
}

// Repetir a troca é seguro: a segunda chamada não encontra títulos a remover
// e ainda assim grava o dia.
func TestTrocarDia_RepetirEhSeguro(t *testing.T) {
	repo := novoFakeContratoRepo(contratoAtivo("42", "emp-1"))
	titulos := &fakeTituloRepo{titulos: []*entity.Titulo{
		tituloDe("t1", "42", false, "90001"),
	}}
	regen := &fakeRegenerador{}
	uc := novoVencimentoUC(repo, titulos, regen)

	require.NoError(t, uc.TrocarDiaVencimento(context.Background(), "emp-1", "42", 25))
	require.NoError(t, uc.TrocarDiaVencimento(context.Background(), "emp-1", "42", 25))

	assert.Equal(t, 25, repo.contratos["42"].DiaVencimento)
	assert.Equal(t, []int{25, 25}, repo.diasAtualizados)
	require.Len(t, regen.chamadas, 2)
	assert.Empty(t, regen.chamadas[1].NossoNumeros, "segunda chamada sem títulos a regerar")
}

func TestTrocarDia_DiaInvalido(t *testing.T) {
	repo := novoFakeContratoRepo(contratoAtivo("42", "emp-1"))
	titulos := &fakeTituloRepo{}
	regen := &fakeRegenerador{}
	uc := novoVencimentoUC(repo, titulos, regen)

	for _, dia := range []int{0, -1, 29, 31} {
		err := uc.TrocarDiaVencimento(context.Background(), "emp-1", "42", dia)
		assert.ErrorIs(t, err, domain.ErrEntradaInvalida, "dia %d deve ser recusado", dia)
	}
	assert.Empty(t, regen.chamadas)
	assert.Equal(t, 10, repo.contratos["42"].DiaVencimento)
}

func TestTrocarDia_ContratoNaoEncontrado(t *testing.T) {
	repo := novoFakeContratoRepo()
	uc := novoVencimentoUC(repo, &fakeTituloRepo{}, &fakeRegenerador{})

	err := uc.TrocarDiaVencimento(context.Background(), "emp-1", "nao-existe", 25)
	require.ErrorIs(t, err, domain.ErrNaoEncontrado)
}
