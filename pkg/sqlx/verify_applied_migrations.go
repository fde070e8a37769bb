package sqlx

import (
	"context"

	"github.com/campusfm/projectperm/pkg/logx"
)

// VerifyAppliedMigrations reports whether exactly the given migrations,
// with matching names, have been applied.
func VerifyAppliedMigrations(
	ctx context.Context,
	logger logx.Logger,
	conn *DB,
	tableName string,
	migrations []Migration,
) (bool, error) {
	logger = logger.WithName("verify-applied-migrations")

	applied, err := RetrieveAppliedMigrations(ctx, logger, conn, tableName)
	if err != nil {
		return false, err
	}

	if len(migrations) != len(applied) {
		logger.Info(migrationCountMismatch,
			logx.Data{Key: "expected", Value: len(migrations)},
			logx.Data{Key: "applied", Value: len(applied)},
		)
		return false, nil
	}

	for version, migration := range migrations {
		appliedMigration, ok := applied[version]
		if !ok {
			logger.Info(migrationNotFound, logx.Data{Key: "name", Value: migration.Name})
			return false, nil
		}

		if migration.Name != appliedMigration.Name {
			logger.Info(migrationMismatch,
				logx.Data{Key: "expected_name", Value: migration.Name},
				logx.Data{Key: "applied_name", Value: appliedMigration.Name},
			)
			return false, nil
		}
	}

	logger.Debug(success)
	return true, nil
}
