package sqlx

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
)

type Tx struct {
	tx *sql.Tx

	driver  DBDriver
	flavor  DBFlavor
	version string
}

func (tx *Tx) Driver() DBDriver {
	return tx.driver
}

func (tx *Tx) Flavor() DBFlavor {
	return tx.flavor
}

func (tx *Tx) Version() string {
	return tx.version
}

func (tx *Tx) Exec(query string, args ...interface{}) (sql.Result, error) {
	return tx.tx.Exec(query, args...)
}

func (tx *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return tx.tx.ExecContext(ctx, query, args...)
}

func (tx *Tx) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return tx.tx.Query(query, args...)
}

func (tx *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return tx.tx.QueryContext(ctx, query, args...)
}

func (tx *Tx) QueryRow(query string, args ...interface{}) squirrel.RowScanner {
	return tx.tx.QueryRow(query, args...)
}

func (tx *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) squirrel.RowScanner {
	return tx.tx.QueryRowContext(ctx, query, args...)
}

func (tx *Tx) Commit() error {
	return tx.tx.Commit()
}

func (tx *Tx) Rollback() error {
	return tx.tx.Rollback()
}
