package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/campusfm/projectperm/pkg/logx"
	"github.com/campusfm/projectperm/pkg/perm"
	"github.com/campusfm/projectperm/pkg/sqlx"
)

type runner interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) squirrel.RowScanner
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) squirrel.RowScanner
}

var (
	_ runner = (*sqlx.DB)(nil)
	_ runner = (*sqlx.Tx)(nil)

	_ squirrel.BaseRunner = runner(nil)
)

const upsertAssignmentSuffix = "ON DUPLICATE KEY UPDATE " +
	"project_title = VALUES(project_title), " +
	"staff_name = VALUES(staff_name), " +
	"role = VALUES(role), " +
	"assigned_by = VALUES(assigned_by), " +
	"assigned_date = VALUES(assigned_date), " +
	"can_edit = VALUES(can_edit), " +
	"can_delete = VALUES(can_delete), " +
	"can_view_documents = VALUES(can_view_documents), " +
	"can_upload_documents = VALUES(can_upload_documents)"

func upsertAssignment(
	ctx context.Context,
	logger logx.Logger,
	conn runner,
	a perm.Assignment,
) error {
	logger = logger.WithName("upsert-assignment").WithData(
		logx.Data{Key: "project.id", Value: a.ProjectID},
		logx.Data{Key: "staff.email", Value: a.StaffEmail},
	)
	logger.Debug(starting)
	defer logger.Debug(finished)

	_, err := squirrel.Insert(projectAssignmentTable).
		Columns(assignmentColumns...).
		Values(
			a.ProjectID,
			a.ProjectTitle,
			a.StaffEmail,
			a.StaffName,
			a.Role,
			a.AssignedBy,
			a.AssignedDate,
			a.Permissions.CanEdit,
			a.Permissions.CanDelete,
			a.Permissions.CanViewDocuments,
			a.Permissions.CanUploadDocuments,
		).
		Suffix(upsertAssignmentSuffix).
		RunWith(conn).
		ExecContext(ctx)
	if err != nil {
		logger.Error(failedToUpsertAssignment, err)
		return err
	}

	return nil
}

func deleteAssignment(
	ctx context.Context,
	logger logx.Logger,
	conn runner,
	projectID,
	staffEmail string,
) error {
	logger = logger.WithName("delete-assignment").WithData(
		logx.Data{Key: "project.id", Value: projectID},
		logx.Data{Key: "staff.email", Value: staffEmail},
	)
	logger.Debug(starting)
	defer logger.Debug(finished)

	result, err := squirrel.Delete(projectAssignmentTable).
		Where(squirrel.Eq{
			"project_id":  projectID,
			"staff_email": staffEmail,
		}).
		RunWith(conn).
		ExecContext(ctx)
	if err != nil {
		logger.Error(failedToDeleteAssignment, err)
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		logger.Error(failedToCountRowsAffected, err)
		return err
	}

	if n == 0 {
		logger.Debug(assignmentNotFound)
	}

	return nil
}

func selectAssignments() squirrel.SelectBuilder {
	return squirrel.Select(append([]string{"id"}, assignmentColumns...)...).
		From(projectAssignmentTable)
}

func listAssignments(
	ctx context.Context,
	logger logx.Logger,
	conn runner,
	where squirrel.Eq,
) ([]perm.Assignment, error) {
	rows, err := selectAssignments().
		Where(where).
		OrderBy("id").
		RunWith(conn).
		QueryContext(ctx)
	if err != nil {
		logger.Error(failedToListAssignments, err)
		return nil, err
	}
	defer rows.Close()

	assignments := []perm.Assignment{}
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			logger.Error(failedToScanRow, err)
			return nil, err
		}

		assignments = append(assignments, a.Assignment)
	}

	if err = rows.Err(); err != nil {
		logger.Error(failedToIterateOverRows, err)
		return nil, err
	}

	return assignments, nil
}

func findAssignment(
	ctx context.Context,
	logger logx.Logger,
	conn runner,
	projectID,
	staffEmail string,
) (assignment, bool, error) {
	a, err := scanAssignment(selectAssignments().
		Where(squirrel.Eq{
			"project_id":  projectID,
			"staff_email": staffEmail,
		}).
		RunWith(conn).
		QueryRowContext(ctx))

	switch {
	case errors.Is(err, sql.ErrNoRows):
		logger.Debug(assignmentNotFound)
		return assignment{}, false, nil
	case err != nil:
		logger.Error(failedToFindAssignment, err)
		return assignment{}, false, err
	default:
		return a, true, nil
	}
}

func countAssignments(
	ctx context.Context,
	logger logx.Logger,
	conn runner,
) (int, error) {
	var count int

	err := squirrel.Select("COUNT(*)").
		From(projectAssignmentTable).
		RunWith(conn).
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		logger.Error(failedToCountAssignments, err)
		return 0, err
	}

	return count, nil
}
