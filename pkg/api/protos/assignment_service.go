package protos

import (
	"context"

	"google.golang.org/grpc"
)

const (
	assignmentServiceAssignStaffMethod            = "/projectperm.AssignmentService/AssignStaff"
	assignmentServiceRemoveStaffMethod            = "/projectperm.AssignmentService/RemoveStaff"
	assignmentServiceListProjectAssignmentsMethod = "/projectperm.AssignmentService/ListProjectAssignments"
	assignmentServiceListStaffAssignmentsMethod   = "/projectperm.AssignmentService/ListStaffAssignments"
)

// AssignmentServiceClient manages project staff assignments.
type AssignmentServiceClient interface {
	AssignStaff(ctx context.Context, in *AssignStaffRequest, opts ...grpc.CallOption) (*AssignStaffResponse, error)
	RemoveStaff(ctx context.Context, in *RemoveStaffRequest, opts ...grpc.CallOption) (*RemoveStaffResponse, error)
	ListProjectAssignments(ctx context.Context, in *ListProjectAssignmentsRequest, opts ...grpc.CallOption) (*ListAssignmentsResponse, error)
	ListStaffAssignments(ctx context.Context, in *ListStaffAssignmentsRequest, opts ...grpc.CallOption) (*ListAssignmentsResponse, error)
}

type assignmentServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAssignmentServiceClient(cc grpc.ClientConnInterface) AssignmentServiceClient {
	return &assignmentServiceClient{cc: cc}
}

func (c *assignmentServiceClient) AssignStaff(ctx context.Context, in *AssignStaffRequest, opts ...grpc.CallOption) (*AssignStaffResponse, error) {
	out := new(AssignStaffResponse)
	if err := c.cc.Invoke(ctx, assignmentServiceAssignStaffMethod, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *assignmentServiceClient) RemoveStaff(ctx context.Context, in *RemoveStaffRequest, opts ...grpc.CallOption) (*RemoveStaffResponse, error) {
	out := new(RemoveStaffResponse)
	if err := c.cc.Invoke(ctx, assignmentServiceRemoveStaffMethod, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *assignmentServiceClient) ListProjectAssignments(ctx context.Context, in *ListProjectAssignmentsRequest, opts ...grpc.CallOption) (*ListAssignmentsResponse, error) {
	out := new(ListAssignmentsResponse)
	if err := c.cc.Invoke(ctx, assignmentServiceListProjectAssignmentsMethod, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *assignmentServiceClient) ListStaffAssignments(ctx context.Context, in *ListStaffAssignmentsRequest, opts ...grpc.CallOption) (*ListAssignmentsResponse, error) {
	out := new(ListAssignmentsResponse)
	if err := c.cc.Invoke(ctx, assignmentServiceListStaffAssignmentsMethod, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

type AssignmentServiceServer interface {
	AssignStaff(context.Context, *AssignStaffRequest) (*AssignStaffResponse, error)
	RemoveStaff(context.Context, *RemoveStaffRequest) (*RemoveStaffResponse, error)
	ListProjectAssignments(context.Context, *ListProjectAssignmentsRequest) (*ListAssignmentsResponse, error)
	ListStaffAssignments(context.Context, *ListStaffAssignmentsRequest) (*ListAssignmentsResponse, error)
}

func RegisterAssignmentServiceServer(s grpc.ServiceRegistrar, srv AssignmentServiceServer) {
	s.RegisterService(&AssignmentServiceDesc, srv)
}

var AssignmentServiceDesc = grpc.ServiceDesc{
	ServiceName: "projectperm.AssignmentService",
	HandlerType: (*AssignmentServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AssignStaff",
			Handler:    assignmentServiceAssignStaffHandler,
		},
		{
			MethodName: "RemoveStaff",
			Handler:    assignmentServiceRemoveStaffHandler,
		},
		{
			MethodName: "ListProjectAssignments",
			Handler:    assignmentServiceListProjectAssignmentsHandler,
		},
		{
			MethodName: "ListStaffAssignments",
			Handler:    assignmentServiceListStaffAssignmentsHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "assignment_service",
}

func assignmentServiceAssignStaffHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AssignStaffRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AssignmentServiceServer).AssignStaff(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: assignmentServiceAssignStaffMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AssignmentServiceServer).AssignStaff(ctx, req.(*AssignStaffRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func assignmentServiceRemoveStaffHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RemoveStaffRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AssignmentServiceServer).RemoveStaff(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: assignmentServiceRemoveStaffMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AssignmentServiceServer).RemoveStaff(ctx, req.(*RemoveStaffRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func assignmentServiceListProjectAssignmentsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListProjectAssignmentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AssignmentServiceServer).ListProjectAssignments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: assignmentServiceListProjectAssignmentsMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AssignmentServiceServer).ListProjectAssignments(ctx, req.(*ListProjectAssignmentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func assignmentServiceListStaffAssignmentsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListStaffAssignmentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AssignmentServiceServer).ListStaffAssignments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: assignmentServiceListStaffAssignmentsMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AssignmentServiceServer).ListStaffAssignments(ctx, req.(*ListStaffAssignmentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}
