package main

import (
	"context"

	"github.com/campusfm/projectperm/cmd/flags"
	"github.com/campusfm/projectperm/pkg/logx"
	"github.com/campusfm/projectperm/pkg/migrations"
	"github.com/campusfm/projectperm/pkg/sqlx"
)

type MigrateCommand struct {
	Logger flags.LagerFlag

	Rollback bool `long:"rollback" description:"Roll back the latest applied migration instead of applying pending ones"`
	All      bool `long:"all" description:"With --rollback, roll back every applied migration"`

	DB flags.DBFlag `group:"DB" namespace:"db"`
}

func (cmd MigrateCommand) Execute([]string) error {
	ctx := context.Background()
	logger := cmd.Logger.Logger("projectperm").WithName("migrate")

	logger.Debug(starting)
	defer logger.Debug(finished)

	if cmd.DB.IsInMemory() {
		logger.Info(skippedInMemoryMigrations)
		return nil
	}

	conn, err := cmd.DB.Connect(ctx, logger)
	if err != nil {
		return err
	}
	defer conn.Close()

	logger = logger.WithData(logx.Data{Key: "table_name", Value: migrations.TableName})

	if cmd.Rollback {
		err = sqlx.RollbackMigrations(ctx, logger, conn, migrations.TableName, migrations.Migrations, cmd.All)
		if err != nil {
			logger.Error(failedToRollbackMigrations, err)
		}
		return err
	}

	if err = sqlx.ApplyMigrations(ctx, logger, conn, migrations.TableName, migrations.Migrations); err != nil {
		logger.Error(failedToApplyMigrations, err)
	}

	return err
}
