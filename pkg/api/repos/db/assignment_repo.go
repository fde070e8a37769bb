package db

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/campusfm/projectperm/pkg/api/repos"
	"github.com/campusfm/projectperm/pkg/logx"
	"github.com/campusfm/projectperm/pkg/perm"
	"github.com/campusfm/projectperm/pkg/sqlx"
)

func (s *Store) AssignStaff(
	ctx context.Context,
	logger logx.Logger,
	req repos.AssignStaffRequest,
) (err error) {
	logger = logger.WithName("data-service")

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		logger.Error(failedToStartTransaction, err)
		return
	}

	defer func() {
		err = sqlx.Commit(logger, tx, err)
	}()

	err = upsertAssignment(ctx, logger, tx, perm.Assignment{
		ProjectID:    req.ProjectID,
		ProjectTitle: req.ProjectTitle,
		StaffEmail:   req.StaffEmail,
		StaffName:    req.StaffName,
		Role:         req.Role,
		AssignedBy:   req.AssignedBy,
		AssignedDate: s.clock.Now().UTC(),
		Permissions:  req.Permissions,
	})

	return
}

func (s *Store) RemoveStaff(
	ctx context.Context,
	logger logx.Logger,
	projectID,
	staffEmail string,
) (err error) {
	logger = logger.WithName("data-service")

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		logger.Error(failedToStartTransaction, err)
		return
	}

	defer func() {
		err = sqlx.Commit(logger, tx, err)
	}()

	err = deleteAssignment(ctx, logger, tx, projectID, staffEmail)

	return
}

func (s *Store) ListProjectAssignments(
	ctx context.Context,
	logger logx.Logger,
	query repos.ListProjectAssignmentsQuery,
) ([]perm.Assignment, error) {
	logger = logger.WithName("data-service").WithData(logx.Data{Key: "project.id", Value: query.ProjectID})

	return listAssignments(ctx, logger, s.conn, squirrel.Eq{"project_id": query.ProjectID})
}

func (s *Store) ListStaffAssignments(
	ctx context.Context,
	logger logx.Logger,
	query repos.ListStaffAssignmentsQuery,
) ([]perm.Assignment, error) {
	logger = logger.WithName("data-service").WithData(logx.Data{Key: "staff.email", Value: query.StaffEmail})

	return listAssignments(ctx, logger, s.conn, squirrel.Eq{"staff_email": query.StaffEmail})
}

func (s *Store) FindAssignment(
	ctx context.Context,
	logger logx.Logger,
	projectID,
	staffEmail string,
) (perm.Assignment, bool, error) {
	a, found, err := findAssignment(ctx, logger.WithName("data-service"), s.conn, projectID, staffEmail)

	return a.Assignment, found, err
}

func (s *Store) CountAssignments(
	ctx context.Context,
	logger logx.Logger,
) (int, error) {
	return countAssignments(ctx, logger.WithName("data-service"), s.conn)
}
