// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: interpreter.proto

package interpreterv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	RunInterpreter_Execute_FullMethodName = "/arc.interpreter.v1.RunInterpreter/Execute"
)

// RunInterpreterClient is the client API for RunInterpreter service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// RunInterpreter executes agent runs on behalf of the coordinator. The
// coordinator owns run state; the interpreter reports the final outcome
// of each execution and polls run status for cancellation at its own
// checkpoints.
type RunInterpreterClient interface {
	// Execute runs one agent run to completion and reports the outcome.
	Execute(ctx context.Context, in *ExecuteRequest, opts ...grpc.CallOption) (*ExecuteResponse, error)
}

type runInterpreterClient struct {
	cc grpc.ClientConnInterface
}

func NewRunInterpreterClient(cc grpc.ClientConnInterface) RunInterpreterClient {
	return &runInterpreterClient{cc}
}

func (c *runInterpreterClient) Execute(ctx context.Context, in *ExecuteRequest, opts ...grpc.CallOption) (*ExecuteResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExecuteResponse)
	err := c.cc.Invoke(ctx, RunInterpreter_Execute_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RunInterpreterServer is the server API for RunInterpreter service.
// All implementations must embed UnimplementedRunInterpreterServer
// for forward compatibility.
//
// RunInterpreter executes agent runs on behalf of the coordinator. The
// coordinator owns run state; the interpreter reports the final outcome
// of each execution and polls run status for cancellation at its own
// checkpoints.
type RunInterpreterServer interface {
	// Execute runs one agent run to completion and reports the outcome.
	Execute(context.Context, *ExecuteRequest) (*ExecuteResponse, error)
	mustEmbedUnimplementedRunInterpreterServer()
}

// UnimplementedRunInterpreterServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedRunInterpreterServer struct{}

func (UnimplementedRunInterpreterServer) Execute(context.Context, *ExecuteRequest) (*ExecuteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Execute not implemented")
}
func (UnimplementedRunInterpreterServer) mustEmbedUnimplementedRunInterpreterServer() {}
func (UnimplementedRunInterpreterServer) testEmbeddedByValue()                        {}

// UnsafeRunInterpreterServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to RunInterpreterServer will
// result in compilation errors.
type UnsafeRunInterpreterServer interface {
	mustEmbedUnimplementedRunInterpreterServer()
}

func RegisterRunInterpreterServer(s grpc.ServiceRegistrar, srv RunInterpreterServer) {
	// If the following call panics, it indicates UnimplementedRunInterpreterServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&RunInterpreter_ServiceDesc, srv)
}

func _RunInterpreter_Execute_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExecuteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RunInterpreterServer).Execute(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RunInterpreter_Execute_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RunInterpreterServer).Execute(ctx, req.(*ExecuteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// RunInterpreter_ServiceDesc is the grpc.ServiceDesc for RunInterpreter service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var RunInterpreter_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "arc.interpreter.v1.RunInterpreter",
	HandlerType: (*RunInterpreterServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Execute",
			Handler:    _RunInterpreter_Execute_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "interpreter.proto",
}
