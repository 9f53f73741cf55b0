package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/liveem/livem-core/pkg/errors"
	"github.com/liveem/livem-core/pkg/i18n"
)

type ConnectConfig struct {
	DSN        string `toml:"dsn"`
	EnableWAL  bool   `toml:"enable_wal"`
	SyncPragma string `toml:"sync_pragma"` // OFF | NORMAL | FULL | EXTRA
}

var validSyncModes = map[string]bool{
	"OFF":    true,
	"NORMAL": true,
	"FULL":   true,
	"EXTRA":  true,
}

func (c ConnectConfig) FormatDSN() (string, error) {
	params := url.Values{}
	if c.EnableWAL {
		params.Add("_journal_mode", "WAL")
	}
	if c.SyncPragma != "" {
		mode := strings.ToUpper(c.SyncPragma)
		if !validSyncModes[mode] {
			return "", fmt.Errorf("invalid sync pragma value: %s", c.SyncPragma)
		}
		params.Add("_synchronous", mode)
	}
	// foreign keys carry the block/image cascade
	params.Add("_foreign_keys", "on")

	dsn := c.DSN
	if strings.Contains(dsn, "?") {
		return dsn + "&" + params.Encode(), nil
	}
	return dsn + "?" + params.Encode(), nil
}

// SqlProvider owns the database handle. A single local sqlite file,
// single writer; master and replica are the same connection and the
// accessors only exist to keep store code uniform.
type SqlProvider struct {
	db *sqlx.DB
}

func MustSetupProvider(cfg ConnectConfig) *SqlProvider {
	dsn, err := cfg.FormatDSN()
	if err != nil {
		panic(err)
	}

	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		panic(fmt.Errorf("failed to connect database %s: %w", cfg.DSN, err))
	}

	// single local writer; one connection also keeps :memory: databases
	// on a single handle instead of one per pooled conn
	db.SetMaxOpenConns(1)

	return &SqlProvider{db: db}
}

func (p *SqlProvider) Close() error {
	return p.db.Close()
}

// Executor is satisfied by both *sqlx.DB and *sqlx.Tx.
type Executor interface {
	Exec(query string, args ...any) (sql.Result, error)
	Get(dest any, query string, args ...any) error
	Select(dest any, query string, args ...any) error
}

type txContextKey struct{}

// Transaction runs fn atomically. The open transaction rides the context,
// so every store call made with that context joins it.
func (p *SqlProvider) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txContextKey{}).(*sqlx.Tx); ok {
		// already inside a transaction
		return fn(ctx)
	}

	tx, err := p.db.Beginx()
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err = fn(context.WithValue(ctx, txContextKey{}, tx)); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (p *SqlProvider) GetMaster(ctx context.Context) Executor {
	if tx, ok := ctx.Value(txContextKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return p.db
}

func (p *SqlProvider) GetReplica(ctx context.Context) Executor {
	if tx, ok := ctx.Value(txContextKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return p.db
}

type SqlProviderAchieve interface {
	GetMaster(ctx context.Context) Executor
	GetReplica(ctx context.Context) Executor
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CommonFields struct {
	provider   SqlProviderAchieve
	table      string
	allColumns []string
}

func (c *CommonFields) SetProvider(p SqlProviderAchieve) { c.provider = p }
func (c *CommonFields) SetTable(table string)            { c.table = table }
func (c *CommonFields) SetAllColumns(cols ...string)     { c.allColumns = cols }

func (c *CommonFields) GetTable() string        { return c.table }
func (c *CommonFields) GetAllColumns() []string { return c.allColumns }

func (c *CommonFields) GetMaster(ctx context.Context) Executor  { return c.provider.GetMaster(ctx) }
func (c *CommonFields) GetReplica(ctx context.Context) Executor { return c.provider.GetReplica(ctx) }

func ErrorSqlBuild(err error) error {
	return errors.New("sqlstore.build", i18n.ERROR_INTERNAL, err)
}
