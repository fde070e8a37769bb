package rpc

import (
	"context"

	"github.com/campusfm/projectperm/pkg/api/protos"
	"github.com/campusfm/projectperm/pkg/api/repos"
	"github.com/campusfm/projectperm/pkg/contextx"
	"github.com/campusfm/projectperm/pkg/logx"
	"github.com/campusfm/projectperm/pkg/perm"
)

const (
	AssignStaffSignature = "AssignStaff"
	RemoveStaffSignature = "RemoveStaff"
)

type AssignmentServiceServer struct {
	logger         logx.Logger
	securityLogger logx.SecurityLogger
	repo           repos.AssignmentRepo
	validator      *requestValidator
}

func NewAssignmentServiceServer(
	logger logx.Logger,
	securityLogger logx.SecurityLogger,
	repo repos.AssignmentRepo,
) *AssignmentServiceServer {
	return &AssignmentServiceServer{
		logger:         logger,
		securityLogger: securityLogger,
		repo:           repo,
		validator:      newRequestValidator(),
	}
}

func (s *AssignmentServiceServer) AssignStaff(
	ctx context.Context,
	req *protos.AssignStaffRequest,
) (*protos.AssignStaffResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	assignedBy := req.AssignedBy
	if subject, ok := contextx.SubjectFromContext(ctx); ok && assignedBy == "" {
		assignedBy = subject
	}

	securityData := []logx.SecurityData{
		{Key: "projectId", Value: req.ProjectID},
		{Key: "staffEmail", Value: req.StaffEmail},
	}
	// CEF rejects empty extension values.
	if req.Role != "" {
		securityData = append(securityData, logx.SecurityData{Key: "role", Value: req.Role})
	}
	if assignedBy != "" {
		securityData = append(securityData, logx.SecurityData{Key: "assignedBy", Value: assignedBy})
	}
	s.securityLogger.Log(ctx, AssignStaffSignature, "Staff assignment", securityData...)

	logger := s.logger.WithName("assign-staff").WithData(
		logx.Data{Key: "project.id", Value: req.ProjectID},
		logx.Data{Key: "staff.email", Value: req.StaffEmail},
		logx.Data{Key: "assigned.by", Value: assignedBy},
	)
	logger.Debug(starting)

	err := s.repo.AssignStaff(ctx, logger, repos.AssignStaffRequest{
		ProjectID:    req.ProjectID,
		ProjectTitle: req.ProjectTitle,
		StaffEmail:   req.StaffEmail,
		StaffName:    req.StaffName,
		Role:         req.Role,
		AssignedBy:   assignedBy,
		Permissions:  perm.AssignmentPermissions(req.Permissions),
	})

	persisted, err := s.checkPersisted(logger, err)
	if err != nil {
		return nil, togRPCError(err)
	}

	logger.Debug(success)
	return &protos.AssignStaffResponse{Persisted: persisted}, nil
}

func (s *AssignmentServiceServer) RemoveStaff(
	ctx context.Context,
	req *protos.RemoveStaffRequest,
) (*protos.RemoveStaffResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	s.securityLogger.Log(ctx, RemoveStaffSignature, "Staff removal",
		logx.SecurityData{Key: "projectId", Value: req.ProjectID},
		logx.SecurityData{Key: "staffEmail", Value: req.StaffEmail},
	)

	logger := s.logger.WithName("remove-staff").WithData(
		logx.Data{Key: "project.id", Value: req.ProjectID},
		logx.Data{Key: "staff.email", Value: req.StaffEmail},
	)
	logger.Debug(starting)

	err := s.repo.RemoveStaff(ctx, logger, req.ProjectID, req.StaffEmail)

	persisted, err := s.checkPersisted(logger, err)
	if err != nil {
		return nil, togRPCError(err)
	}

	logger.Debug(success)
	return &protos.RemoveStaffResponse{Persisted: persisted}, nil
}

func (s *AssignmentServiceServer) ListProjectAssignments(
	ctx context.Context,
	req *protos.ListProjectAssignmentsRequest,
) (*protos.ListAssignmentsResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	logger := s.logger.WithName("list-project-assignments").WithData(
		logx.Data{Key: "project.id", Value: req.ProjectID},
	)
	logger.Debug(starting)

	assignments, err := s.repo.ListProjectAssignments(ctx, logger, repos.ListProjectAssignmentsQuery{
		ProjectID: req.ProjectID,
	})
	if err != nil {
		return nil, togRPCError(err)
	}

	logger.Debug(success)
	return &protos.ListAssignmentsResponse{Assignments: toProtoAssignments(assignments)}, nil
}

func (s *AssignmentServiceServer) ListStaffAssignments(
	ctx context.Context,
	req *protos.ListStaffAssignmentsRequest,
) (*protos.ListAssignmentsResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	logger := s.logger.WithName("list-staff-assignments").WithData(
		logx.Data{Key: "staff.email", Value: req.StaffEmail},
	)
	logger.Debug(starting)

	assignments, err := s.repo.ListStaffAssignments(ctx, logger, repos.ListStaffAssignmentsQuery{
		StaffEmail: req.StaffEmail,
	})
	if err != nil {
		return nil, togRPCError(err)
	}

	logger.Debug(success)
	return &protos.ListAssignmentsResponse{Assignments: toProtoAssignments(assignments)}, nil
}

// checkPersisted turns a persistence failure into a successful call that
// reports persisted false. The mutation has already been applied.
func (s *AssignmentServiceServer) checkPersisted(logger logx.Logger, err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case perm.IsPersistenceFailure(err):
		logger.Error(persistenceFailed, err)
		return false, nil
	default:
		return false, err
	}
}
