package snapshot

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/campusfm/projectperm/pkg/sqlx"
)

const snapshotEntryTable = "snapshot_entry"

// SQLStorage keeps entries in the snapshot_entry table.
type SQLStorage struct {
	conn *sqlx.DB
}

func NewSQLStorage(conn *sqlx.DB) *SQLStorage {
	return &SQLStorage{conn: conn}
}

func (s *SQLStorage) Get(ctx context.Context, key string) (string, bool, error) {
	var value string

	err := squirrel.Select("entry_value").
		From(snapshotEntryTable).
		Where(squirrel.Eq{"entry_key": key}).
		RunWith(s.conn).
		QueryRowContext(ctx).
		Scan(&value)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		return "", false, err
	default:
		return value, true, nil
	}
}

func (s *SQLStorage) Set(ctx context.Context, key, value string) error {
	_, err := squirrel.Insert(snapshotEntryTable).
		Columns("entry_key", "entry_value").
		Values(key, value).
		Suffix("ON DUPLICATE KEY UPDATE entry_value = VALUES(entry_value)").
		RunWith(s.conn).
		ExecContext(ctx)

	return err
}
