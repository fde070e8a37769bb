package inmemory

import (
	"context"

	"github.com/campusfm/projectperm/pkg/api/repos"
	"github.com/campusfm/projectperm/pkg/logx"
	"github.com/campusfm/projectperm/pkg/perm"
)

func (s *Store) AssignStaff(
	ctx context.Context,
	logger logx.Logger,
	req repos.AssignStaffRequest,
) error {
	logger = logger.WithName("in-memory-store")

	assignment := perm.Assignment{
		ProjectID:    req.ProjectID,
		ProjectTitle: req.ProjectTitle,
		StaffEmail:   req.StaffEmail,
		StaffName:    req.StaffName,
		Role:         req.Role,
		AssignedBy:   req.AssignedBy,
		AssignedDate: s.clock.Now(),
		Permissions:  req.Permissions,
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	assignments, exists := s.assignments[req.ProjectID]
	if !exists {
		s.projectIDs = append(s.projectIDs, req.ProjectID)
	}

	replaced := false
	for i, existing := range assignments {
		if existing.StaffEmail == req.StaffEmail {
			assignments[i] = assignment
			replaced = true
			break
		}
	}

	if !replaced {
		assignments = append(assignments, assignment)
	}
	s.assignments[req.ProjectID] = assignments

	logger.Debug(success, logx.Data{Key: "replaced", Value: replaced})

	return s.persist(ctx, logger)
}

func (s *Store) RemoveStaff(
	ctx context.Context,
	logger logx.Logger,
	projectID,
	staffEmail string,
) error {
	logger = logger.WithName("in-memory-store")

	s.lock.Lock()
	defer s.lock.Unlock()

	if assignments, exists := s.assignments[projectID]; exists {
		kept := make([]perm.Assignment, 0, len(assignments))
		for _, a := range assignments {
			if a.StaffEmail != staffEmail {
				kept = append(kept, a)
			}
		}
		s.assignments[projectID] = kept
	} else {
		logger.Debug(projectNotFound)
	}

	return s.persist(ctx, logger)
}

func (s *Store) ListProjectAssignments(
	ctx context.Context,
	logger logx.Logger,
	query repos.ListProjectAssignmentsQuery,
) ([]perm.Assignment, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return copyAssignments(s.assignments[query.ProjectID]), nil
}

func (s *Store) ListStaffAssignments(
	ctx context.Context,
	logger logx.Logger,
	query repos.ListStaffAssignmentsQuery,
) ([]perm.Assignment, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	assignments := []perm.Assignment{}
	for _, projectID := range s.projectIDs {
		for _, a := range s.assignments[projectID] {
			if a.StaffEmail == query.StaffEmail {
				assignments = append(assignments, a)
			}
		}
	}

	return assignments, nil
}

func (s *Store) FindAssignment(
	ctx context.Context,
	logger logx.Logger,
	projectID,
	staffEmail string,
) (perm.Assignment, bool, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	for _, a := range s.assignments[projectID] {
		if a.StaffEmail == staffEmail {
			return a, true, nil
		}
	}

	return perm.Assignment{}, false, nil
}

func (s *Store) CountAssignments(
	ctx context.Context,
	logger logx.Logger,
) (int, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	count := 0
	for _, assignments := range s.assignments {
		count += len(assignments)
	}

	return count, nil
}
