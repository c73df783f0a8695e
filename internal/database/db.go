// Package database provides database connection management and schema migrations.
package database

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // driver: sqlite

	"github.com/at-ishikawa/lexiquiz/internal/config"
	"github.com/at-ishikawa/lexiquiz/schemas"
)

func init() {
	// modernc registers itself as "sqlite", which sqlx doesn't know by default
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

const (
	defaultSQLiteDSN   = "file:lexiquiz.db?_pragma=busy_timeout(5000)"
	defaultPostgresDSN = "postgres://localhost:5432/lexiquiz?sslmode=disable"
)

// Open opens a connection for the configured driver. It doesn't connect until the first query.
func Open(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	var driverName, dsn string
	switch cfg.Driver {
	case config.DriverSQLite, "":
		driverName = "sqlite"
		dsn = cfg.DSN
		if dsn == "" {
			dsn = defaultSQLiteDSN
		}
	case config.DriverPostgres:
		driverName = "pgx"
		dsn = cfg.DSN
		if dsn == "" {
			dsn = defaultPostgresDSN
		}
	case config.DriverMySQL:
		driverName = "mysql"
		dsn = mysqlDSN(cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database connection: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)
	}

	return db, nil
}

func mysqlDSN(cfg config.DatabaseConfig) string {
	mysqlCfg := mysql.NewConfig()
	mysqlCfg.User = cfg.Username
	mysqlCfg.Passwd = cfg.Password
	mysqlCfg.Net = "tcp"
	mysqlCfg.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	mysqlCfg.DBName = cfg.Database
	mysqlCfg.ParseTime = true
	mysqlCfg.MultiStatements = true
	// report matched rows so that no-op updates aren't mistaken for missing rows
	mysqlCfg.ClientFoundRows = true
	if cfg.TLS {
		mysqlCfg.TLSConfig = "true"
	}
	if len(cfg.Params) > 0 {
		mysqlCfg.Params = cfg.Params
	}
	return mysqlCfg.FormatDSN()
}

// DialectOf maps a connection back to its migration directory.
func DialectOf(db *sqlx.DB) (string, error) {
	switch db.DriverName() {
	case "sqlite", "sqlite3":
		return config.DriverSQLite, nil
	case "pgx", "postgres":
		return config.DriverPostgres, nil
	case "mysql":
		return config.DriverMySQL, nil
	}
	return "", fmt.Errorf("unsupported database driver: %s", db.DriverName())
}

// Migrate applies the embedded migrations of the connection's dialect in file name order.
// Every migration is written to be idempotent, so it's safe to run on each start.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	dialect, err := DialectOf(db)
	if err != nil {
		return err
	}
	return migrate(ctx, db, schemas.Migrations, path.Join("migrations", dialect))
}

func migrate(ctx context.Context, db *sqlx.DB, migrations fs.FS, dir string) error {
	entries, err := fs.ReadDir(migrations, dir)
	if err != nil {
		return fmt.Errorf("read migrations %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)

	for _, name := range files {
		contents, err := fs.ReadFile(migrations, path.Join(dir, name))
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		for _, statement := range splitStatements(string(contents)) {
			if _, err := db.ExecContext(ctx, statement); err != nil {
				return fmt.Errorf("apply migration %s: %w", name, err)
			}
		}
		slog.Default().Debug("migration applied", "file", name, "dir", dir)
	}
	return nil
}

func splitStatements(contents string) []string {
	var statements []string
	for _, statement := range strings.Split(contents, ";") {
		statement = strings.TrimSpace(statement)
		if statement == "" {
			continue
		}
		statements = append(statements, statement)
	}
	return statements
}

// RunInTx runs fn within a database transaction.
// If fn returns an error, the transaction is rolled back; otherwise, it is committed.
func RunInTx(ctx context.Context, db *sqlx.DB, fn func(ctx context.Context, tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback transaction: %w (original error: %v)", rbErr, err)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
