package monitor

import (
	"context"
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/campusfm/projectperm/pkg/logx"
	"github.com/campusfm/projectperm/pkg/perm"
)

const (
	ProbeStaffEmail    = "probe@system.local"
	ProbeProjectPrefix = "system.probe."
	ProbeDepartment    = "system"
)

//go:generate counterfeiter . Client

type Client interface {
	AssignStaff(ctx context.Context, assignment perm.Assignment) error
	RemoveStaff(ctx context.Context, projectID, staffEmail string) error
	CanViewProject(ctx context.Context, user perm.User, projectID string) (bool, error)
}

var ProbeUser = perm.User{
	Email:      ProbeStaffEmail,
	Role:       perm.RoleStaff,
	Department: ProbeDepartment,
}

type LabeledDuration struct {
	Label    string
	Duration time.Duration
}

// Probe assigns itself to a throwaway project and checks that the server
// grants access to that project and refuses access to another one.
type Probe struct {
	client Client
	clock  clock.Clock
}

func NewProbe(client Client, c clock.Clock) *Probe {
	return &Probe{
		client: client,
		clock:  c,
	}
}

func AssignedProjectID(uniqueSuffix string) string {
	return ProbeProjectPrefix + "assigned." + uniqueSuffix
}

func UnassignedProjectID(uniqueSuffix string) string {
	return ProbeProjectPrefix + "unassigned." + uniqueSuffix
}

func (p *Probe) Setup(ctx context.Context, logger logx.Logger, uniqueSuffix string) ([]LabeledDuration, error) {
	type setupResult struct {
		Error     error
		Durations []LabeledDuration
	}

	logger.Debug(starting)
	defer logger.Debug(finished)

	doneChan := make(chan setupResult, 1)

	go func() {
		projectID := AssignedProjectID(uniqueSuffix)

		start := p.clock.Now()
		err := p.client.AssignStaff(ctx, perm.Assignment{
			ProjectID:    projectID,
			ProjectTitle: "Probe",
			StaffEmail:   ProbeStaffEmail,
			StaffName:    "Probe",
			Role:         "Probe",
			AssignedBy:   ProbeStaffEmail,
			Permissions: perm.AssignmentPermissions{
				CanEdit: true,
			},
		})
		duration := p.clock.Since(start)

		if err != nil && !perm.IsPersistenceFailure(err) {
			logger.Error(failedToAssignStaff, err, logx.Data{Key: "project.id", Value: projectID})
			doneChan <- setupResult{Error: err}
			return
		}

		if err != nil {
			logger.Info(notPersisted, logx.Data{Key: "project.id", Value: projectID})
		}

		doneChan <- setupResult{Durations: []LabeledDuration{{Label: "AssignStaff", Duration: duration}}}
	}()

	select {
	case <-ctx.Done():
		return []LabeledDuration{}, ctx.Err()
	case result := <-doneChan:
		return result.Durations, result.Error
	}
}

func (p *Probe) Run(
	ctx context.Context,
	logger logx.Logger,
	uniqueSuffix string,
) (correct bool, durations []LabeledDuration, err error) {
	logger.Debug(starting)
	defer logger.Debug(finished)

	type result struct {
		Correct   bool
		Durations []LabeledDuration
		Err       error
	}

	doneChan := make(chan result, 1)
	go func() {
		r := result{}

		ok, duration, runErr := p.checkView(ctx, logger.WithName("can-view-assigned-project"), AssignedProjectID(uniqueSuffix), true)
		r.Durations = append(r.Durations, duration)
		if runErr != nil || !ok {
			r.Err = runErr
			doneChan <- r
			return
		}

		ok, duration, runErr = p.checkView(ctx, logger.WithName("can-view-unassigned-project"), UnassignedProjectID(uniqueSuffix), false)
		r.Durations = append(r.Durations, duration)
		r.Err = runErr
		r.Correct = ok
		doneChan <- r
	}()

	select {
	case <-ctx.Done():
		err = ctx.Err()
		return
	case r := <-doneChan:
		return r.Correct, r.Durations, r.Err
	}
}

func (p *Probe) Cleanup(ctx context.Context, cleanupTimeout time.Duration, logger logx.Logger, uniqueSuffix string) ([]LabeledDuration, error) {
	type cleanupResult struct {
		Error     error
		Durations []LabeledDuration
	}

	logger.Debug(starting)
	defer logger.Debug(finished)

	cctx, cancel := context.WithTimeout(ctx, cleanupTimeout)
	defer cancel()

	doneChan := make(chan cleanupResult, 1)

	go func() {
		projectID := AssignedProjectID(uniqueSuffix)

		start := p.clock.Now()
		err := p.client.RemoveStaff(cctx, projectID, ProbeStaffEmail)
		result := cleanupResult{
			Durations: []LabeledDuration{{Label: "RemoveStaff", Duration: p.clock.Since(start)}},
		}

		if err != nil && !perm.IsPersistenceFailure(err) {
			logger.Error(failedToRemoveStaff, err, logx.Data{Key: "project.id", Value: projectID})
			result.Error = err
		}

		doneChan <- result
	}()

	select {
	case <-cctx.Done():
		return []LabeledDuration{}, cctx.Err()
	case result := <-doneChan:
		return result.Durations, result.Error
	}
}

func (p *Probe) checkView(
	ctx context.Context,
	logger logx.Logger,
	projectID string,
	expected bool,
) (bool, LabeledDuration, error) {
	logger = logger.WithData(
		logx.Data{Key: "staff.email", Value: ProbeStaffEmail},
		logx.Data{Key: "project.id", Value: projectID},
	)

	start := p.clock.Now()
	canView, err := p.client.CanViewProject(ctx, ProbeUser, projectID)
	duration := LabeledDuration{Label: "CanViewProject", Duration: p.clock.Since(start)}

	if err != nil {
		logger.Error(failedToCheckProjectAccess, err)
		return false, duration, err
	}

	if canView != expected {
		logger.Info(incorrectResponse,
			logx.Data{Key: "expected", Value: expected},
			logx.Data{Key: "got", Value: canView},
		)
		return false, duration, nil
	}

	return true, duration, nil
}
