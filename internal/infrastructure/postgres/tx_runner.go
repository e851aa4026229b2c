package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/conectfibra/gestor-api/internal/application/contrato"
	"github.com/conectfibra/gestor-api/internal/application/estoque"
	"github.com/conectfibra/gestor-api/internal/domain/repository"
)

// Garantias de interface.
var _ contrato.TxRunner = (*TxRunner)(nil)
var _ estoque.TxRunner = (*EstoqueTxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL com os
// repositórios de títulos e contratos atados à tx (troca de dia de vencimento).
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com repos atados à tx e faz Commit ou
// Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	tituloRepo repository.TituloRepository,
	contratoRepo repository.ContratoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewTituloRepository(tx), NewContratoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// EstoqueTxRunner executa callbacks com o repositório de localizações atado à
// tx (append no ledger + upsert da projeção corrente).
type EstoqueTxRunner struct {
	pool *pgxpool.Pool
}

// NewEstoqueTxRunner constrói o runner com o pool.
func NewEstoqueTxRunner(pool *pgxpool.Pool) *EstoqueTxRunner {
	return &EstoqueTxRunner{pool: pool}
}

// Run inicia uma transação, executa fn e faz Commit ou Rollback.
func (r *EstoqueTxRunner) Run(ctx context.Context, fn func(locRepo repository.LocalizacaoRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewLocalizacaoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
