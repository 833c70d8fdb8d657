// Package dbx holds the minimal database/sql surface shared by SQL
// repositories. Both *sql.DB and *sql.Tx satisfy DBTX, so a repository can be
// bound to either without caring which one it got.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql used by our repositories.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
