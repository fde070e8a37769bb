package perm

import (
	"context"
	"crypto/tls"
	"errors"

	"github.com/campusfm/projectperm/pkg/api/protos"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// TokenMetadataKey is the request metadata key the server reads the ID
// token from.
const TokenMetadataKey = "token"

type Client struct {
	conn *grpc.ClientConn

	assignmentServiceClient protos.AssignmentServiceClient
	permissionServiceClient protos.PermissionServiceClient
}

func Dial(addr string, opts ...DialOption) (*Client, error) {
	config := &options{}

	for _, opt := range opts {
		opt(config)
	}

	var grpcOpts []grpc.DialOption

	if config.transportCredentials != nil {
		grpcOpts = append(grpcOpts, grpc.WithTransportCredentials(config.transportCredentials))
	} else {
		return nil, ErrNoTransportSecurity
	}

	if config.token != "" {
		grpcOpts = append(grpcOpts, grpc.WithPerRPCCredentials(tokenCredentials{
			token:  config.token,
			secure: !config.insecure,
		}))
	}

	conn, err := grpc.Dial(addr, grpcOpts...)
	if err != nil {
		return nil, ErrFailedToConnect
	}

	return &Client{
		conn:                    conn,
		assignmentServiceClient: protos.NewAssignmentServiceClient(conn),
		permissionServiceClient: protos.NewPermissionServiceClient(conn),
	}, nil
}

func (c *Client) Close() error {
	if err := c.conn.Close(); err != nil {
		return ErrClientConnClosing
	}
	return nil
}

// AssignStaff creates or replaces the assignment for the staff member on
// the project. The error satisfies IsPersistenceFailure when the server
// applied the change but could not save it.
func (c *Client) AssignStaff(ctx context.Context, assignment Assignment) error {
	res, err := c.assignmentServiceClient.AssignStaff(ctx, &protos.AssignStaffRequest{
		ProjectID:    assignment.ProjectID,
		ProjectTitle: assignment.ProjectTitle,
		StaffEmail:   assignment.StaffEmail,
		StaffName:    assignment.StaffName,
		Role:         assignment.Role,
		AssignedBy:   assignment.AssignedBy,
		Permissions:  protos.AssignmentPermissions(assignment.Permissions),
	})
	if err != nil {
		return fromStatusError(err)
	}

	if !res.Persisted {
		return NewErrPersistenceFailed(ErrNotPersisted)
	}

	return nil
}

func (c *Client) RemoveStaff(ctx context.Context, projectID, staffEmail string) error {
	res, err := c.assignmentServiceClient.RemoveStaff(ctx, &protos.RemoveStaffRequest{
		ProjectID:  projectID,
		StaffEmail: staffEmail,
	})
	if err != nil {
		return fromStatusError(err)
	}

	if !res.Persisted {
		return NewErrPersistenceFailed(ErrNotPersisted)
	}

	return nil
}

func (c *Client) ListProjectAssignments(ctx context.Context, projectID string) ([]Assignment, error) {
	res, err := c.assignmentServiceClient.ListProjectAssignments(ctx, &protos.ListProjectAssignmentsRequest{
		ProjectID: projectID,
	})
	if err != nil {
		return nil, fromStatusError(err)
	}

	return fromProtoAssignments(res.Assignments), nil
}

func (c *Client) ListStaffAssignments(ctx context.Context, staffEmail string) ([]Assignment, error) {
	res, err := c.assignmentServiceClient.ListStaffAssignments(ctx, &protos.ListStaffAssignmentsRequest{
		StaffEmail: staffEmail,
	})
	if err != nil {
		return nil, fromStatusError(err)
	}

	return fromProtoAssignments(res.Assignments), nil
}

func (c *Client) CanAccessPage(ctx context.Context, user User, category Category) (bool, error) {
	res, err := c.permissionServiceClient.CanAccessPage(ctx, &protos.CanAccessPageRequest{
		User:     toProtoUser(user),
		Category: string(category),
	})
	if err != nil {
		return false, fromStatusError(err)
	}

	return res.Allowed, nil
}

func (c *Client) GetUserPermissions(ctx context.Context, user User, category Category) (UserPermissions, error) {
	res, err := c.permissionServiceClient.GetUserPermissions(ctx, &protos.GetUserPermissionsRequest{
		User:     toProtoUser(user),
		Category: string(category),
	})
	if err != nil {
		return UserPermissions{}, fromStatusError(err)
	}

	permissions := UserPermissions(res.Permissions)
	if permissions.AssignedProjects == nil {
		permissions.AssignedProjects = []string{}
	}

	return permissions, nil
}

func (c *Client) CanViewProject(ctx context.Context, user User, projectID string) (bool, error) {
	return c.projectAccess(ctx, c.permissionServiceClient.CanViewProject, user, projectID)
}

func (c *Client) CanEditProject(ctx context.Context, user User, projectID string) (bool, error) {
	return c.projectAccess(ctx, c.permissionServiceClient.CanEditProject, user, projectID)
}

func (c *Client) CanDeleteProject(ctx context.Context, user User, projectID string) (bool, error) {
	return c.projectAccess(ctx, c.permissionServiceClient.CanDeleteProject, user, projectID)
}

type projectAccessCall func(context.Context, *protos.ProjectAccessRequest, ...grpc.CallOption) (*protos.ProjectAccessResponse, error)

func (c *Client) projectAccess(ctx context.Context, call projectAccessCall, user User, projectID string) (bool, error) {
	res, err := call(ctx, &protos.ProjectAccessRequest{
		User:      toProtoUser(user),
		ProjectID: projectID,
	})
	if err != nil {
		return false, fromStatusError(err)
	}

	return res.Allowed, nil
}

type DialOption func(*options)

func WithTLSConfig(config *tls.Config) DialOption {
	return func(o *options) {
		o.transportCredentials = credentials.NewTLS(config)
		o.insecure = false
	}
}

// WithInsecure disables transport security. Only meant for local
// development and tests.
func WithInsecure() DialOption {
	return func(o *options) {
		o.transportCredentials = insecure.NewCredentials()
		o.insecure = true
	}
}

// WithToken sends the ID token with every call.
func WithToken(token string) DialOption {
	return func(o *options) {
		o.token = token
	}
}

type options struct {
	transportCredentials credentials.TransportCredentials
	insecure             bool
	token                string
}

type tokenCredentials struct {
	token  string
	secure bool
}

func (c tokenCredentials) GetRequestMetadata(ctx context.Context, uri ...string) (map[string]string, error) {
	return map[string]string{TokenMetadataKey: c.token}, nil
}

func (c tokenCredentials) RequireTransportSecurity() bool {
	return c.secure
}

func fromStatusError(err error) error {
	s, ok := status.FromError(err)
	if !ok {
		return ErrUnknown
	}

	switch s.Code() {
	case codes.Unauthenticated:
		return ErrUnauthenticated
	case codes.NotFound:
		return ErrAssignmentNotFound
	case codes.InvalidArgument:
		return NewErrInvalidRequest(s.Message())
	case codes.Unavailable:
		return ErrFailedToConnect
	default:
		return errors.Join(ErrUnknown, errors.New(s.Message()))
	}
}

func toProtoUser(u User) protos.User {
	return protos.User{
		Email:      u.Email,
		Role:       string(u.Role),
		Department: u.Department,
	}
}

func fromProtoAssignments(pAssignments []protos.Assignment) []Assignment {
	assignments := make([]Assignment, 0, len(pAssignments))
	for _, a := range pAssignments {
		assignments = append(assignments, Assignment{
			ProjectID:    a.ProjectID,
			ProjectTitle: a.ProjectTitle,
			StaffEmail:   a.StaffEmail,
			StaffName:    a.StaffName,
			Role:         a.Role,
			AssignedBy:   a.AssignedBy,
			AssignedDate: a.AssignedDate,
			Permissions:  AssignmentPermissions(a.Permissions),
		})
	}

	return assignments
}
