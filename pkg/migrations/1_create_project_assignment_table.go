package migrations

import (
	"context"

	"github.com/campusfm/projectperm/pkg/logx"
	"github.com/campusfm/projectperm/pkg/sqlx"
)

var createProjectAssignmentTable = `
CREATE TABLE IF NOT EXISTS project_assignment
(
	id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
	project_id VARCHAR(255) NOT NULL,
	project_title VARCHAR(255) NOT NULL DEFAULT '',
	staff_email VARCHAR(255) NOT NULL,
	staff_name VARCHAR(255) NOT NULL DEFAULT '',
	role VARCHAR(255) NOT NULL DEFAULT '',
	assigned_by VARCHAR(255) NOT NULL DEFAULT '',
	assigned_date DATETIME(6) NOT NULL,
	can_edit BOOLEAN NOT NULL DEFAULT FALSE,
	can_delete BOOLEAN NOT NULL DEFAULT FALSE,
	can_view_documents BOOLEAN NOT NULL DEFAULT FALSE,
	can_upload_documents BOOLEAN NOT NULL DEFAULT FALSE,
	UNIQUE KEY unique_project_staff (project_id, staff_email)
)
`

var dropProjectAssignmentTable = `DROP TABLE project_assignment`

func createProjectAssignmentTableUp(ctx context.Context, logger logx.Logger, tx *sqlx.Tx) error {
	logger = logger.WithName("create-project-assignment-table")
	logger.Debug(starting)
	defer logger.Debug(finished)

	_, err := tx.ExecContext(ctx, createProjectAssignmentTable)

	return err
}

func createProjectAssignmentTableDown(ctx context.Context, logger logx.Logger, tx *sqlx.Tx) error {
	logger = logger.WithName("create-project-assignment-table")
	logger.Debug(starting)
	defer logger.Debug(finished)

	_, err := tx.ExecContext(ctx, dropProjectAssignmentTable)

	return err
}
