package migrations

import (
	"context"

	"github.com/campusfm/projectperm/pkg/logx"
	"github.com/campusfm/projectperm/pkg/sqlx"
)

var createSnapshotEntryTable = `
CREATE TABLE IF NOT EXISTS snapshot_entry
(
	entry_key VARCHAR(255) NOT NULL PRIMARY KEY,
	entry_value MEDIUMTEXT NOT NULL
)
`

var dropSnapshotEntryTable = `DROP TABLE snapshot_entry`

func createSnapshotEntryTableUp(ctx context.Context, logger logx.Logger, tx *sqlx.Tx) error {
	logger = logger.WithName("create-snapshot-entry-table")
	logger.Debug(starting)
	defer logger.Debug(finished)

	_, err := tx.ExecContext(ctx, createSnapshotEntryTable)

	return err
}

func createSnapshotEntryTableDown(ctx context.Context, logger logx.Logger, tx *sqlx.Tx) error {
	logger = logger.WithName("create-snapshot-entry-table")
	logger.Debug(starting)
	defer logger.Debug(finished)

	_, err := tx.ExecContext(ctx, dropSnapshotEntryTable)

	return err
}
