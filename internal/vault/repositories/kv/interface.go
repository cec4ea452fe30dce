// Package kv is the vault's key-value persistence: one row per key, opaque
// byte values. Both the durable vault table and the transient session table
// use it.
package kv

import (
	"context"

	"github.com/dmitrijs2005/vivault/internal/dbx"
)

// Table names one of the key-value tables created by the migrations.
type Table string

const (
	// TableMetadata is durable: credentials and master key verification.
	TableMetadata Table = "metadata"
	// TableSession holds the session flag; it never carries key material.
	TableSession Table = "session_state"
)

// Repository stores opaque values by key. Get returns (nil, nil) when the
// key is absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}

// Factory builds a Repository bound to a connection or a transaction.
type Factory func(db dbx.DBTX, table Table) Repository

// FactoryFor returns the repository constructor for a backend.
func FactoryFor(driver dbx.Driver) Factory {
	if driver == dbx.DriverPostgres {
		return func(db dbx.DBTX, table Table) Repository { return NewPostgresRepository(db, table) }
	}
	return func(db dbx.DBTX, table Table) Repository { return NewSQLiteRepository(db, table) }
}
