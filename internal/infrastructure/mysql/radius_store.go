package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/conectfibra/gestor-api/pkg/config"
)

// RadiusStore acessa o banco MySQL do RADIUS (schema FreeRADIUS: radcheck,
// radusergroup, radacct).
type RadiusStore struct {
	db *sqlx.DB
}

// NewRadiusStore abre a conexão e valida com ping.
func NewRadiusStore(cfg config.MySQLConfig) (*RadiusStore, error) {
	db, err := sqlx.Open("mysql", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("abrir mysql: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}
	return &RadiusStore{db: db}, nil
}

// Close fecha a conexão.
func (s *RadiusStore) Close() error {
	return s.db.Close()
}

// UpsertCredenciais grava o par Cleartext-Password em radcheck e o grupo em
// radusergroup, substituindo os registros anteriores do usuário. As duas
// escritas rodam numa transação.
func (s *RadiusStore) UpsertCredenciais(ctx context.Context, username, password, groupname string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM radcheck WHERE username = ?`, username); err != nil {
		return fmt.Errorf("limpar radcheck: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO radcheck (username, attribute, op, value) VALUES (?, 'Cleartext-Password', ':=', ?)`,
		username, password,
	); err != nil {
		return fmt.Errorf("insert radcheck: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM radusergroup WHERE username = ?`, username); err != nil {
		return fmt.Errorf("limpar radusergroup: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO radusergroup (username, groupname, priority) VALUES (?, ?, 1)`,
		username, groupname,
	); err != nil {
		return fmt.Errorf("insert radusergroup: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Conexao telemetria da última sessão PPPoE de um usuário (radacct).
type Conexao struct {
	Username     string       `db:"username" json:"username"`
	IP           string       `db:"framedipaddress" json:"ip"`
	MAC          string       `db:"callingstationid" json:"mac"`
	Inicio       time.Time  `db:"acctstarttime" json:"inicio"`
	Fim          *time.Time `db:"acctstoptime" json:"fim,omitempty"`
	BytesEntrada int64      `db:"acctinputoctets" json:"bytes_entrada"`
	BytesSaida   int64      `db:"acctoutputoctets" json:"bytes_saida"`
}

// Online indica se a sessão segue aberta (sem acctstoptime).
func (c Conexao) Online() bool {
	return c.Fim == nil
}

// UltimaConexao devolve a sessão mais recente do usuário, ou nil se nunca
// conectou.
func (s *RadiusStore) UltimaConexao(ctx context.Context, username string) (*Conexao, error) {
	const query = `
		SELECT username, framedipaddress, callingstationid, acctstarttime, acctstoptime,
		       acctinputoctets, acctoutputoctets
		FROM radacct WHERE username = ?
		ORDER BY acctstarttime DESC LIMIT 1`
	var c Conexao
	if err := s.db.GetContext(ctx, &c, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("consultar radacct: %w", err)
	}
	return &c, nil
}
