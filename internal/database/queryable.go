package database

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// Queryable is satisfied by both *sqlx.DB and *sqlx.Tx, allowing store
// methods to be used inside or outside of a transaction.
type Queryable interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
	Rebind(query string) string
}

var (
	_ Queryable = (*sqlx.DB)(nil)
	_ Queryable = (*sqlx.Tx)(nil)
)
