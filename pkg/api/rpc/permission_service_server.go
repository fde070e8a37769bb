package rpc

import (
	"context"

	"github.com/campusfm/projectperm/pkg/api/protos"
	"github.com/campusfm/projectperm/pkg/logx"
	"github.com/campusfm/projectperm/pkg/perm"
	"github.com/campusfm/projectperm/pkg/rbac"
)

type PermissionServiceServer struct {
	logger    logx.Logger
	resolver  *rbac.Resolver
	validator *requestValidator
}

func NewPermissionServiceServer(
	logger logx.Logger,
	resolver *rbac.Resolver,
) *PermissionServiceServer {
	return &PermissionServiceServer{
		logger:    logger,
		resolver:  resolver,
		validator: newRequestValidator(),
	}
}

func (s *PermissionServiceServer) CanAccessPage(
	ctx context.Context,
	req *protos.CanAccessPageRequest,
) (*protos.CanAccessPageResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	logger := s.userLogger("can-access-page", req.User).WithData(logx.Data{Key: "category", Value: req.Category})
	logger.Debug(starting)

	allowed, err := s.resolver.CanAccessPage(ctx, logger, toUser(req.User), perm.Category(req.Category))
	if err != nil {
		return nil, togRPCError(err)
	}

	logger.Debug(success, logx.Data{Key: "allowed", Value: allowed})
	return &protos.CanAccessPageResponse{Allowed: allowed}, nil
}

func (s *PermissionServiceServer) GetUserPermissions(
	ctx context.Context,
	req *protos.GetUserPermissionsRequest,
) (*protos.GetUserPermissionsResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	logger := s.userLogger("get-user-permissions", req.User).WithData(logx.Data{Key: "category", Value: req.Category})
	logger.Debug(starting)

	permissions, err := s.resolver.UserPermissions(ctx, logger, toUser(req.User), perm.Category(req.Category))
	if err != nil {
		return nil, togRPCError(err)
	}

	logger.Debug(success)
	return &protos.GetUserPermissionsResponse{Permissions: toProtoUserPermissions(permissions)}, nil
}

func (s *PermissionServiceServer) CanViewProject(
	ctx context.Context,
	req *protos.ProjectAccessRequest,
) (*protos.ProjectAccessResponse, error) {
	return s.projectAccess(ctx, "can-view-project", req, s.resolver.CanViewProject)
}

func (s *PermissionServiceServer) CanEditProject(
	ctx context.Context,
	req *protos.ProjectAccessRequest,
) (*protos.ProjectAccessResponse, error) {
	return s.projectAccess(ctx, "can-edit-project", req, s.resolver.CanEditProject)
}

func (s *PermissionServiceServer) CanDeleteProject(
	ctx context.Context,
	req *protos.ProjectAccessRequest,
) (*protos.ProjectAccessResponse, error) {
	return s.projectAccess(ctx, "can-delete-project", req, s.resolver.CanDeleteProject)
}

type projectCheck func(ctx context.Context, logger logx.Logger, user perm.User, projectID string) (bool, error)

func (s *PermissionServiceServer) projectAccess(
	ctx context.Context,
	name string,
	req *protos.ProjectAccessRequest,
	check projectCheck,
) (*protos.ProjectAccessResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	logger := s.userLogger(name, req.User).WithData(logx.Data{Key: "project.id", Value: req.ProjectID})
	logger.Debug(starting)

	allowed, err := check(ctx, logger, toUser(req.User), req.ProjectID)
	if err != nil {
		return nil, togRPCError(err)
	}

	logger.Debug(success, logx.Data{Key: "allowed", Value: allowed})
	return &protos.ProjectAccessResponse{Allowed: allowed}, nil
}

func (s *PermissionServiceServer) userLogger(name string, user protos.User) logx.Logger {
	return s.logger.WithName(name).WithData(
		logx.Data{Key: "user.email", Value: user.Email},
		logx.Data{Key: "user.role", Value: user.Role},
		logx.Data{Key: "user.department", Value: user.Department},
	)
}
