package migrations

import (
	"context"

	"github.com/campusfm/projectperm/pkg/logx"
	"github.com/campusfm/projectperm/pkg/sqlx"
)

var addStaffIndexToProjectAssignmentTable = `
ALTER TABLE
	project_assignment
ADD INDEX
	project_assignment_staff_email_idx (staff_email)
`

var dropStaffIndexFromProjectAssignmentTable = `
ALTER TABLE
	project_assignment
DROP INDEX
	project_assignment_staff_email_idx
`

func alterProjectAssignmentTableAddStaffIndexUp(ctx context.Context, logger logx.Logger, tx *sqlx.Tx) error {
	logger = logger.WithName("alter-project-assignment-table-add-staff-index")
	logger.Debug(starting)
	defer logger.Debug(finished)

	_, err := tx.ExecContext(ctx, addStaffIndexToProjectAssignmentTable)

	return err
}

func alterProjectAssignmentTableAddStaffIndexDown(ctx context.Context, logger logx.Logger, tx *sqlx.Tx) error {
	logger = logger.WithName("alter-project-assignment-table-add-staff-index")
	logger.Debug(starting)
	defer logger.Debug(finished)

	_, err := tx.ExecContext(ctx, dropStaffIndexFromProjectAssignmentTable)

	return err
}
