package sqlx

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/campusfm/projectperm/pkg/logx"
)

// ApplyMigrations runs, in order, every migration whose index is not yet
// recorded in tableName. Each migration runs in its own transaction.
func ApplyMigrations(
	ctx context.Context,
	logger logx.Logger,
	conn *DB,
	tableName string,
	migrations []Migration,
) error {
	tableLogger := logger.WithName("create-migrations-table").WithData(logx.Data{Key: "table_name", Value: tableName})
	if err := createMigrationsTable(ctx, tableLogger, conn, tableName); err != nil {
		return err
	}

	if len(migrations) == 0 {
		return nil
	}

	migrationsLogger := logger.WithName("apply-migrations").WithData(logx.Data{Key: "table_name", Value: tableName})

	applied, err := RetrieveAppliedMigrations(ctx, migrationsLogger, conn, tableName)
	if err != nil {
		return err
	}
	migrationsLogger.Debug(retrievedAppliedMigrations, logx.Data{Key: "versions", Value: len(applied)})

	for version, migration := range migrations {
		migrationLogger := migrationsLogger.WithData(
			logx.Data{Key: "version", Value: version},
			logx.Data{Key: "name", Value: migration.Name},
		)

		if _, ok := applied[version]; ok {
			migrationLogger.Debug(skippedAppliedMigration)
			continue
		}

		if err = applyMigration(ctx, migrationLogger, conn, tableName, version, migration); err != nil {
			return err
		}
	}

	return nil
}

func createMigrationsTable(
	ctx context.Context,
	logger logx.Logger,
	conn *DB,
	tableName string,
) (err error) {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		logger.Error(failedToStartTransaction, err)
		return
	}

	defer func() {
		if err != nil {
			logger.Error(failedToCreateTable, err)
		}
		err = Commit(logger, tx, err)
	}()

	_, err = tx.ExecContext(ctx, "CREATE TABLE IF NOT EXISTS `"+tableName+
		"` (version INTEGER, name VARCHAR(255), applied_at DATETIME)")

	return
}

func applyMigration(
	ctx context.Context,
	logger logx.Logger,
	conn *DB,
	tableName string,
	version int,
	migration Migration,
) (err error) {
	logger.Debug(starting)

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		logger.Error(failedToStartTransaction, err)
		return
	}

	defer func() {
		if err != nil {
			logger.Error(failedToApplyMigration, err)
		}
		err = Commit(logger, tx, err)
	}()

	if err = migration.Up(ctx, logger, tx); err != nil {
		return
	}

	_, err = squirrel.Insert(tableName).
		Columns("version", "name", "applied_at").
		Values(version, migration.Name, time.Now().UTC()).
		RunWith(tx).
		ExecContext(ctx)
	if err != nil {
		return
	}

	logger.Debug(finished)

	return
}
