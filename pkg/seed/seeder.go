package seed

import (
	"context"

	"github.com/campusfm/projectperm/pkg/api/repos"
	"github.com/campusfm/projectperm/pkg/logx"
	"github.com/campusfm/projectperm/pkg/perm"
)

type Seeder struct {
	repo        repos.AssignmentRepo
	policy      Policy
	assignments []perm.Assignment
}

func NewSeeder(repo repos.AssignmentRepo, policy Policy, assignments []perm.Assignment) *Seeder {
	return &Seeder{
		repo:        repo,
		policy:      policy,
		assignments: assignments,
	}
}

// Seed writes the configured assignments according to the policy and
// returns how many were written. It must run after the store has loaded
// its snapshot.
func (s *Seeder) Seed(ctx context.Context, logger logx.Logger) (int, error) {
	logger = logger.WithName("seed").WithData(logx.Data{Key: "policy", Value: string(s.policy)})
	logger.Debug(starting)

	switch s.policy {
	case PolicyNever:
		logger.Info(skipped)
		return 0, nil
	case PolicyWhenEmpty:
		count, err := s.repo.CountAssignments(ctx, logger)
		if err != nil {
			logger.Error(failedToCountAssignments, err)
			return 0, err
		}

		if count > 0 {
			logger.Info(skipped, logx.Data{Key: "existing", Value: count})
			return 0, nil
		}
	}

	seeded := 0
	for _, a := range s.assignments {
		err := s.repo.AssignStaff(ctx, logger, repos.AssignStaffRequest{
			ProjectID:    a.ProjectID,
			ProjectTitle: a.ProjectTitle,
			StaffEmail:   a.StaffEmail,
			StaffName:    a.StaffName,
			Role:         a.Role,
			AssignedBy:   a.AssignedBy,
			Permissions:  a.Permissions,
		})

		switch {
		case perm.IsPersistenceFailure(err):
			logger.Error(failedToPersistAssignment, err,
				logx.Data{Key: "project.id", Value: a.ProjectID},
				logx.Data{Key: "staff.email", Value: a.StaffEmail},
			)
		case err != nil:
			logger.Error(failedToSeedAssignment, err)
			return seeded, err
		}

		seeded++
	}

	logger.Info(success, logx.Data{Key: "seeded", Value: seeded})

	return seeded, nil
}
