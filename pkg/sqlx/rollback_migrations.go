package sqlx

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/campusfm/projectperm/pkg/logx"
)

// RollbackMigrations undoes the latest applied migration, or every applied
// migration when all is set, newest first.
func RollbackMigrations(
	ctx context.Context,
	logger logx.Logger,
	conn *DB,
	tableName string,
	migrations []Migration,
	all bool,
) error {
	migrationsLogger := logger.WithName("rollback-migrations").WithData(logx.Data{Key: "table_name", Value: tableName})

	if len(migrations) == 0 {
		return nil
	}

	applied, err := RetrieveAppliedMigrations(ctx, migrationsLogger, conn, tableName)
	if err != nil {
		return err
	}
	migrationsLogger.Debug(retrievedAppliedMigrations, logx.Data{Key: "versions", Value: len(applied)})

	for version := len(migrations) - 1; version >= 0; version-- {
		migration := migrations[version]
		migrationLogger := migrationsLogger.WithData(
			logx.Data{Key: "version", Value: version},
			logx.Data{Key: "name", Value: migration.Name},
		)

		if _, ok := applied[version]; !ok {
			migrationLogger.Debug(skipping)
			continue
		}

		if err = rollbackMigration(ctx, migrationLogger, conn, tableName, version, migration); err != nil {
			return err
		}

		if !all {
			return nil
		}
	}

	return nil
}

func rollbackMigration(
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
			logger.Error(failedToRollbackMigration, err)
		}
		err = Commit(logger, tx, err)
	}()

	if err = migration.Down(ctx, logger, tx); err != nil {
		return
	}

	_, err = squirrel.Delete(tableName).
		Where(squirrel.Eq{"version": version}).
		RunWith(tx).
		ExecContext(ctx)
	if err != nil {
		return
	}

	logger.Debug(finished)

	return
}
