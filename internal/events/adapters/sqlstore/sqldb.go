package sqlstore

import (
	"context"
	"database/sql"
)

type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// NewSQLDB narrows *sql.DB to the subset the repository uses.
func NewSQLDB(db *sql.DB) DB {
	return db
}
