package rbac

import (
	"context"

	"github.com/campusfm/projectperm/pkg/api/repos"
	"github.com/campusfm/projectperm/pkg/logx"
	"github.com/campusfm/projectperm/pkg/perm"
)

// Resolver answers permission questions from the assignments in repo.
//
// Page access is granted to staff holding any assignment at all, while
// project access needs an assignment on that exact project. A staff member
// can therefore open a listing and still be refused one of its projects.
type Resolver struct {
	repo   repos.AssignmentRepo
	policy Policy
}

func NewResolver(repo repos.AssignmentRepo, policy Policy) *Resolver {
	return &Resolver{
		repo:   repo,
		policy: policy,
	}
}

func (r *Resolver) CanAccessPage(
	ctx context.Context,
	logger logx.Logger,
	user perm.User,
	category perm.Category,
) (bool, error) {
	if !user.Role.IsStaff() {
		// Admin and Client always pass; unknown roles fail open.
		return true, nil
	}

	if r.policy.Allows(user.Department, category) {
		return true, nil
	}

	assignments, err := r.staffAssignments(ctx, logger, user)
	if err != nil {
		return false, err
	}

	return len(assignments) > 0, nil
}

func (r *Resolver) UserPermissions(
	ctx context.Context,
	logger logx.Logger,
	user perm.User,
	category perm.Category,
) (perm.UserPermissions, error) {
	logger = logger.WithName("resolve-user-permissions").WithData(
		logx.Data{Key: "user.role", Value: string(user.Role)},
		logx.Data{Key: "category", Value: string(category)},
	)

	if user.Role == perm.RoleAdmin {
		return perm.UserPermissions{
			CanView:            true,
			CanAdd:             true,
			CanEdit:            true,
			CanDelete:          true,
			CanApprove:         true,
			CanAssignStaff:     true,
			CanManageDocuments: true,
			CanExport:          true,
			CanManageInsights:  true,
			AssignedProjects:   []string{},
		}, nil
	}

	if !user.Role.IsStaff() {
		return readOnly(), nil
	}

	access, err := r.CanAccessPage(ctx, logger, user, category)
	if err != nil {
		return perm.UserPermissions{}, err
	}

	if !access {
		logger.Debug(pageAccessDenied)
		return readOnly(), nil
	}

	assignments, err := r.staffAssignments(ctx, logger, user)
	if err != nil {
		return perm.UserPermissions{}, err
	}

	projectIDs := make([]string, 0, len(assignments))
	for _, a := range assignments {
		projectIDs = append(projectIDs, a.ProjectID)
	}
	assigned := len(assignments) > 0

	return perm.UserPermissions{
		CanView:            true,
		CanAdd:             true,
		CanEdit:            assigned,
		CanManageDocuments: assigned,
		CanExport:          true,
		CanManageInsights:  user.Role == perm.RoleEditor,
		AssignedProjects:   projectIDs,
	}, nil
}

func (r *Resolver) CanViewProject(
	ctx context.Context,
	logger logx.Logger,
	user perm.User,
	projectID string,
) (bool, error) {
	if user.Role == perm.RoleAdmin || user.Role == perm.RoleClient {
		return true, nil
	}

	_, found, err := r.assignment(ctx, logger, user, projectID)

	return found, err
}

func (r *Resolver) CanEditProject(
	ctx context.Context,
	logger logx.Logger,
	user perm.User,
	projectID string,
) (bool, error) {
	if user.Role == perm.RoleAdmin {
		return true, nil
	}

	a, _, err := r.assignment(ctx, logger, user, projectID)

	return a.Permissions.CanEdit, err
}

func (r *Resolver) CanDeleteProject(
	ctx context.Context,
	logger logx.Logger,
	user perm.User,
	projectID string,
) (bool, error) {
	if user.Role == perm.RoleAdmin {
		return true, nil
	}

	a, _, err := r.assignment(ctx, logger, user, projectID)

	return a.Permissions.CanDelete, err
}

func (r *Resolver) staffAssignments(ctx context.Context, logger logx.Logger, user perm.User) ([]perm.Assignment, error) {
	assignments, err := r.repo.ListStaffAssignments(ctx, logger, repos.ListStaffAssignmentsQuery{StaffEmail: user.Email})
	if err != nil {
		logger.Error(failedToListAssignments, err)
		return nil, err
	}

	return assignments, nil
}

func (r *Resolver) assignment(
	ctx context.Context,
	logger logx.Logger,
	user perm.User,
	projectID string,
) (perm.Assignment, bool, error) {
	a, found, err := r.repo.FindAssignment(ctx, logger, projectID, user.Email)
	if err != nil {
		logger.Error(failedToFindAssignment, err, logx.Data{Key: "project.id", Value: projectID})
		return perm.Assignment{}, false, err
	}

	return a, found, nil
}

func readOnly() perm.UserPermissions {
	return perm.UserPermissions{
		CanView:          true,
		CanExport:        true,
		AssignedProjects: []string{},
	}
}
