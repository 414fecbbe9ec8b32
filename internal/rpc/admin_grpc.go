package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-exchange-admin/models"
)

const (
	AdminServiceName = "exchange.admin.v1.AdminService"

	AdminService_Login_FullMethodName                = "/exchange.admin.v1.AdminService/Login"
	AdminService_Ping_FullMethodName                 = "/exchange.admin.v1.AdminService/Ping"
	AdminService_StopEngine_FullMethodName           = "/exchange.admin.v1.AdminService/StopEngine"
	AdminService_AddUser_FullMethodName              = "/exchange.admin.v1.AdminService/AddUser"
	AdminService_AddUserAsync_FullMethodName         = "/exchange.admin.v1.AdminService/AddUserAsync"
	AdminService_SubscribeAdminEvents_FullMethodName = "/exchange.admin.v1.AdminService/SubscribeAdminEvents"
)

// AdminServiceClient is the client API for AdminService.
type AdminServiceClient interface {
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	StopEngine(ctx context.Context, in *StopEngineRequest, opts ...grpc.CallOption) (*StopEngineResponse, error)
	AddUser(ctx context.Context, in *AddUserRequest, opts ...grpc.CallOption) (*AddUserResponse, error)
	AddUserAsync(ctx context.Context, in *AddUserRequest, opts ...grpc.CallOption) (*Empty, error)
	SubscribeAdminEvents(ctx context.Context, in *SubscribeAdminEventsRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[models.AdminEvent], error)
}

type adminServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAdminServiceClient(cc grpc.ClientConnInterface) AdminServiceClient {
	return &adminServiceClient{cc}
}

func (c *adminServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	out := new(LoginResponse)
	if err := c.cc.Invoke(ctx, AdminService_Login_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	out := new(PingResponse)
	if err := c.cc.Invoke(ctx, AdminService_Ping_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) StopEngine(ctx context.Context, in *StopEngineRequest, opts ...grpc.CallOption) (*StopEngineResponse, error) {
	out := new(StopEngineResponse)
	if err := c.cc.Invoke(ctx, AdminService_StopEngine_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) AddUser(ctx context.Context, in *AddUserRequest, opts ...grpc.CallOption) (*AddUserResponse, error) {
	out := new(AddUserResponse)
	if err := c.cc.Invoke(ctx, AdminService_AddUser_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) AddUserAsync(ctx context.Context, in *AddUserRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.cc.Invoke(ctx, AdminService_AddUserAsync_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) SubscribeAdminEvents(ctx context.Context, in *SubscribeAdminEventsRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[models.AdminEvent], error) {
	stream, err := c.cc.NewStream(ctx, &AdminService_ServiceDesc.Streams[0], AdminService_SubscribeAdminEvents_FullMethodName, withCodec(opts)...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[SubscribeAdminEventsRequest, models.AdminEvent]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// AdminServiceServer is the server API for AdminService.
// All implementations must embed UnimplementedAdminServiceServer
// for forward compatibility.
type AdminServiceServer interface {
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	StopEngine(context.Context, *StopEngineRequest) (*StopEngineResponse, error)
	AddUser(context.Context, *AddUserRequest) (*AddUserResponse, error)
	AddUserAsync(context.Context, *AddUserRequest) (*Empty, error)
	SubscribeAdminEvents(*SubscribeAdminEventsRequest, grpc.ServerStreamingServer[models.AdminEvent]) error
	mustEmbedUnimplementedAdminServiceServer()
}

// UnimplementedAdminServiceServer must be embedded by value.
type UnimplementedAdminServiceServer struct{}

func (UnimplementedAdminServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedAdminServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedAdminServiceServer) StopEngine(context.Context, *StopEngineRequest) (*StopEngineResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method StopEngine not implemented")
}
func (UnimplementedAdminServiceServer) AddUser(context.Context, *AddUserRequest) (*AddUserResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddUser not implemented")
}
func (UnimplementedAdminServiceServer) AddUserAsync(context.Context, *AddUserRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method AddUserAsync not implemented")
}
func (UnimplementedAdminServiceServer) SubscribeAdminEvents(*SubscribeAdminEventsRequest, grpc.ServerStreamingServer[models.AdminEvent]) error {
	return status.Error(codes.Unimplemented, "method SubscribeAdminEvents not implemented")
}
func (UnimplementedAdminServiceServer) mustEmbedUnimplementedAdminServiceServer() {}

func RegisterAdminServiceServer(s grpc.ServiceRegistrar, srv AdminServiceServer) {
	s.RegisterService(&AdminService_ServiceDesc, srv)
}

func _AdminService_Login_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(LoginRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).Login(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: AdminService_Login_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AdminServiceServer).Login(ctx, req.(*LoginRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_Ping_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(PingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: AdminService_Ping_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AdminServiceServer).Ping(ctx, req.(*PingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_StopEngine_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(StopEngineRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).StopEngine(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: AdminService_StopEngine_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AdminServiceServer).StopEngine(ctx, req.(*StopEngineRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_AddUser_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(AddUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).AddUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: AdminService_AddUser_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AdminServiceServer).AddUser(ctx, req.(*AddUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_AddUserAsync_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(AddUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).AddUserAsync(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: AdminService_AddUserAsync_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AdminServiceServer).AddUserAsync(ctx, req.(*AddUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_SubscribeAdminEvents_Handler(srv any, stream grpc.ServerStream) error {
	m := new(SubscribeAdminEventsRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(AdminServiceServer).SubscribeAdminEvents(m, &grpc.GenericServerStream[SubscribeAdminEventsRequest, models.AdminEvent]{ServerStream: stream})
}

// AdminService_ServiceDesc is the grpc.ServiceDesc for AdminService.
var AdminService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: AdminServiceName,
	HandlerType: (*AdminServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Login", Handler: _AdminService_Login_Handler},
		{MethodName: "Ping", Handler: _AdminService_Ping_Handler},
		{MethodName: "StopEngine", Handler: _AdminService_StopEngine_Handler},
		{MethodName: "AddUser", Handler: _AdminService_AddUser_Handler},
		{MethodName: "AddUserAsync", Handler: _AdminService_AddUserAsync_Handler},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "SubscribeAdminEvents",
			Handler:       _AdminService_SubscribeAdminEvents_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "exchange/admin/v1/admin.proto",
}
