package dbx

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/dmitrijs2005/vivault/internal/vault/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Driver names a supported storage backend.
type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

type backend struct {
	sqlDriver    string
	gooseDialect string
	migrations   string
}

var backends = map[Driver]backend{
	DriverSQLite:   {sqlDriver: "sqlite", gooseDialect: "sqlite3", migrations: "sqlite"},
	DriverPostgres: {sqlDriver: "pgx", gooseDialect: "postgres", migrations: "postgres"},
}

// ParseDriver validates a driver name from configuration.
func ParseDriver(name string) (Driver, error) {
	d := Driver(name)
	if _, ok := backends[d]; !ok {
		return "", fmt.Errorf("unsupported database driver %q", name)
	}
	return d, nil
}

// Open connects to the backend and applies pending migrations.
//
// SQLite is limited to a single connection: it serializes writers anyway,
// and an in-memory database only lives as long as its connection.
func Open(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	b, ok := backends[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sql.Open(b.sqlDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := Migrate(ctx, db, driver); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}
	return db, nil
}

// Migrate applies the embedded migrations for driver.
func Migrate(ctx context.Context, db *sql.DB, driver Driver) error {
	b, ok := backends[driver]
	if !ok {
		return fmt.Errorf("unsupported database driver %q", driver)
	}

	dir, err := fs.Sub(migrations.FS, b.migrations)
	if err != nil {
		return err
	}

	goose.SetBaseFS(dir)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(b.gooseDialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}
