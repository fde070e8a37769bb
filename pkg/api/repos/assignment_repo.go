package repos

import (
	"context"

	"github.com/campusfm/projectperm/pkg/logx"
	"github.com/campusfm/projectperm/pkg/perm"
)

// AssignStaffRequest carries everything needed to create or replace the
// assignment of one staff member on one project.
type AssignStaffRequest struct {
	ProjectID    string
	ProjectTitle string
	StaffEmail   string
	StaffName    string
	Role         string
	AssignedBy   string
	Permissions  perm.AssignmentPermissions
}

type ListProjectAssignmentsQuery struct {
	ProjectID string
}

type ListStaffAssignmentsQuery struct {
	StaffEmail string
}

//go:generate counterfeiter . AssignmentRepo

// AssignmentRepo holds at most one assignment per (project, staff) pair.
//
// AssignStaff replaces an existing assignment for the pair. RemoveStaff
// succeeds when nothing matches. List operations return an empty slice for
// unknown keys.
type AssignmentRepo interface {
	AssignStaff(
		ctx context.Context,
		logger logx.Logger,
		req AssignStaffRequest,
	) error

	RemoveStaff(
		ctx context.Context,
		logger logx.Logger,
		projectID,
		staffEmail string,
	) error

	ListProjectAssignments(
		ctx context.Context,
		logger logx.Logger,
		query ListProjectAssignmentsQuery,
	) ([]perm.Assignment, error)

	ListStaffAssignments(
		ctx context.Context,
		logger logx.Logger,
		query ListStaffAssignmentsQuery,
	) ([]perm.Assignment, error)

	FindAssignment(
		ctx context.Context,
		logger logx.Logger,
		projectID,
		staffEmail string,
	) (perm.Assignment, bool, error)

	CountAssignments(
		ctx context.Context,
		logger logx.Logger,
	) (int, error)
}
