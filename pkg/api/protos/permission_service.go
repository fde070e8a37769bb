package protos

import (
	"context"

	"google.golang.org/grpc"
)

const (
	permissionServiceCanAccessPageMethod      = "/projectperm.PermissionService/CanAccessPage"
	permissionServiceGetUserPermissionsMethod = "/projectperm.PermissionService/GetUserPermissions"
	permissionServiceCanViewProjectMethod     = "/projectperm.PermissionService/CanViewProject"
	permissionServiceCanEditProjectMethod     = "/projectperm.PermissionService/CanEditProject"
	permissionServiceCanDeleteProjectMethod   = "/projectperm.PermissionService/CanDeleteProject"
)

// PermissionServiceClient answers page and project permission checks.
type PermissionServiceClient interface {
	CanAccessPage(ctx context.Context, in *CanAccessPageRequest, opts ...grpc.CallOption) (*CanAccessPageResponse, error)
	GetUserPermissions(ctx context.Context, in *GetUserPermissionsRequest, opts ...grpc.CallOption) (*GetUserPermissionsResponse, error)
	CanViewProject(ctx context.Context, in *ProjectAccessRequest, opts ...grpc.CallOption) (*ProjectAccessResponse, error)
	CanEditProject(ctx context.Context, in *ProjectAccessRequest, opts ...grpc.CallOption) (*ProjectAccessResponse, error)
	CanDeleteProject(ctx context.Context, in *ProjectAccessRequest, opts ...grpc.CallOption) (*ProjectAccessResponse, error)
}

type permissionServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPermissionServiceClient(cc grpc.ClientConnInterface) PermissionServiceClient {
	return &permissionServiceClient{cc: cc}
}

func (c *permissionServiceClient) CanAccessPage(ctx context.Context, in *CanAccessPageRequest, opts ...grpc.CallOption) (*CanAccessPageResponse, error) {
	out := new(CanAccessPageResponse)
	if err := c.cc.Invoke(ctx, permissionServiceCanAccessPageMethod, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *permissionServiceClient) GetUserPermissions(ctx context.Context, in *GetUserPermissionsRequest, opts ...grpc.CallOption) (*GetUserPermissionsResponse, error) {
	out := new(GetUserPermissionsResponse)
	if err := c.cc.Invoke(ctx, permissionServiceGetUserPermissionsMethod, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *permissionServiceClient) CanViewProject(ctx context.Context, in *ProjectAccessRequest, opts ...grpc.CallOption) (*ProjectAccessResponse, error) {
	out := new(ProjectAccessResponse)
	if err := c.cc.Invoke(ctx, permissionServiceCanViewProjectMethod, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *permissionServiceClient) CanEditProject(ctx context.Context, in *ProjectAccessRequest, opts ...grpc.CallOption) (*ProjectAccessResponse, error) {
	out := new(ProjectAccessResponse)
	if err := c.cc.Invoke(ctx, permissionServiceCanEditProjectMethod, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *permissionServiceClient) CanDeleteProject(ctx context.Context, in *ProjectAccessRequest, opts ...grpc.CallOption) (*ProjectAccessResponse, error) {
	out := new(ProjectAccessResponse)
	if err := c.cc.Invoke(ctx, permissionServiceCanDeleteProjectMethod, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

type PermissionServiceServer interface {
	CanAccessPage(context.Context, *CanAccessPageRequest) (*CanAccessPageResponse, error)
	GetUserPermissions(context.Context, *GetUserPermissionsRequest) (*GetUserPermissionsResponse, error)
	CanViewProject(context.Context, *ProjectAccessRequest) (*ProjectAccessResponse, error)
	CanEditProject(context.Context, *ProjectAccessRequest) (*ProjectAccessResponse, error)
	CanDeleteProject(context.Context, *ProjectAccessRequest) (*ProjectAccessResponse, error)
}

func RegisterPermissionServiceServer(s grpc.ServiceRegistrar, srv PermissionServiceServer) {
	s.RegisterService(&PermissionServiceDesc, srv)
}

var PermissionServiceDesc = grpc.ServiceDesc{
	ServiceName: "projectperm.PermissionService",
	HandlerType: (*PermissionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CanAccessPage",
			Handler:    permissionServiceCanAccessPageHandler,
		},
		{
			MethodName: "GetUserPermissions",
			Handler:    permissionServiceGetUserPermissionsHandler,
		},
		{
			MethodName: "CanViewProject",
			Handler:    permissionServiceCanViewProjectHandler,
		},
		{
			MethodName: "CanEditProject",
			Handler:    permissionServiceCanEditProjectHandler,
		},
		{
			MethodName: "CanDeleteProject",
			Handler:    permissionServiceCanDeleteProjectHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "permission_service",
}

func permissionServiceCanAccessPageHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CanAccessPageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PermissionServiceServer).CanAccessPage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: permissionServiceCanAccessPageMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PermissionServiceServer).CanAccessPage(ctx, req.(*CanAccessPageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func permissionServiceGetUserPermissionsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetUserPermissionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PermissionServiceServer).GetUserPermissions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: permissionServiceGetUserPermissionsMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PermissionServiceServer).GetUserPermissions(ctx, req.(*GetUserPermissionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func permissionServiceCanViewProjectHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProjectAccessRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PermissionServiceServer).CanViewProject(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: permissionServiceCanViewProjectMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PermissionServiceServer).CanViewProject(ctx, req.(*ProjectAccessRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func permissionServiceCanEditProjectHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProjectAccessRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PermissionServiceServer).CanEditProject(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: permissionServiceCanEditProjectMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PermissionServiceServer).CanEditProject(ctx, req.(*ProjectAccessRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func permissionServiceCanDeleteProjectHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProjectAccessRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PermissionServiceServer).CanDeleteProject(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: permissionServiceCanDeleteProjectMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PermissionServiceServer).CanDeleteProject(ctx, req.(*ProjectAccessRequest))
	}
	return interceptor(ctx, in, info, handler)
}
