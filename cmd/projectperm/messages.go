package main

const (
	starting = "starting"
	finished = "finished"

	failedToListen               = "failed-to-listen"
	failedToParseTLSCredentials  = "failed-to-parse-tls-credentials"
	failedToLoadConfig           = "failed-to-load-config"
	failedToCreateSnapshotter    = "failed-to-create-snapshotter"
	failedToLoadSnapshot         = "failed-to-load-snapshot"
	failedToSeedAssignments      = "failed-to-seed-assignments"
	failedToVerifyMigrations     = "failed-to-verify-migrations"
	failedToOpenAuditLog         = "failed-to-open-audit-log"
	failedToApplyMigrations      = "failed-to-apply-migrations"
	failedToRollbackMigrations   = "failed-to-rollback-migrations"
	migrationsOutOfSync          = "migrations-out-of-sync"
	receivedSignal               = "received-signal"
	seededAssignments            = "seeded-assignments"
	skippedInMemoryMigrations    = "skipped-in-memory-migrations"
	usingInMemoryAssignmentStore = "using-in-memory-assignment-store"
	usingSQLAssignmentStore      = "using-sql-assignment-store"
)
