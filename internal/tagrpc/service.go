package tagrpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "usertags.TagService"

// FullMethod returns "/usertags.TagService/<method>".
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// TagServiceServer is implemented by the server side of TagService.
type TagServiceServer interface {
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	AddTags(context.Context, *AddTagsRequest) (*AddTagsResponse, error)
	CreateUser(context.Context, *CreateUserRequest) (*CreateUserResponse, error)
	RemoveTag(context.Context, *RemoveTagRequest) (*RemoveTagResponse, error)
	GetUserTags(context.Context, *GetUserTagsRequest) (*GetUserTagsResponse, error)
	GetUsersWithTag(context.Context, *GetUsersWithTagRequest) (*GetUsersWithTagResponse, error)
	HasTag(context.Context, *HasTagRequest) (*HasTagResponse, error)
	ListUsers(context.Context, *ListUsersRequest) (*ListUsersResponse, error)
	ListTags(context.Context, *ListTagsRequest) (*ListTagsResponse, error)
	Clear(context.Context, *ClearRequest) (*ClearResponse, error)
	Stats(context.Context, *StatsRequest) (*StatsResponse, error)
}

// UnimplementedTagServiceServer answers codes.Unimplemented for every method.
// Embed it to stay forward compatible.
type UnimplementedTagServiceServer struct{}

func (UnimplementedTagServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedTagServiceServer) AddTags(context.Context, *AddTagsRequest) (*AddTagsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddTags not implemented")
}
func (UnimplementedTagServiceServer) CreateUser(context.Context, *CreateUserRequest) (*CreateUserResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateUser not implemented")
}
func (UnimplementedTagServiceServer) RemoveTag(context.Context, *RemoveTagRequest) (*RemoveTagResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveTag not implemented")
}
func (UnimplementedTagServiceServer) GetUserTags(context.Context, *GetUserTagsRequest) (*GetUserTagsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUserTags not implemented")
}
func (UnimplementedTagServiceServer) GetUsersWithTag(context.Context, *GetUsersWithTagRequest) (*GetUsersWithTagResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUsersWithTag not implemented")
}
func (UnimplementedTagServiceServer) HasTag(context.Context, *HasTagRequest) (*HasTagResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method HasTag not implemented")
}
func (UnimplementedTagServiceServer) ListUsers(context.Context, *ListUsersRequest) (*ListUsersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListUsers not implemented")
}
func (UnimplementedTagServiceServer) ListTags(context.Context, *ListTagsRequest) (*ListTagsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListTags not implemented")
}
func (UnimplementedTagServiceServer) Clear(context.Context, *ClearRequest) (*ClearResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Clear not implemented")
}
func (UnimplementedTagServiceServer) Stats(context.Context, *StatsRequest) (*StatsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Stats not implemented")
}

// unary adapts a typed server method to grpc.MethodHandler, routing through
// the server's interceptor chain when one is installed.
func unary[Req, Resp any](method string, call func(TagServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(TagServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(method)}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(TagServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ServiceDesc describes TagService for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TagServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Ping", Handler: unary("Ping", TagServiceServer.Ping)},
		{MethodName: "AddTags", Handler: unary("AddTags", TagServiceServer.AddTags)},
		{MethodName: "CreateUser", Handler: unary("CreateUser", TagServiceServer.CreateUser)},
		{MethodName: "RemoveTag", Handler: unary("RemoveTag", TagServiceServer.RemoveTag)},
		{MethodName: "GetUserTags", Handler: unary("GetUserTags", TagServiceServer.GetUserTags)},
		{MethodName: "GetUsersWithTag", Handler: unary("GetUsersWithTag", TagServiceServer.GetUsersWithTag)},
		{MethodName: "HasTag", Handler: unary("HasTag", TagServiceServer.HasTag)},
		{MethodName: "ListUsers", Handler: unary("ListUsers", TagServiceServer.ListUsers)},
		{MethodName: "ListTags", Handler: unary("ListTags", TagServiceServer.ListTags)},
		{MethodName: "Clear", Handler: unary("Clear", TagServiceServer.Clear)},
		{MethodName: "Stats", Handler: unary("Stats", TagServiceServer.Stats)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "usertags/tag_service",
}

// RegisterTagServiceServer registers srv on s.
func RegisterTagServiceServer(s grpc.ServiceRegistrar, srv TagServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// TagServiceClient is the client API for TagService.
type TagServiceClient interface {
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	AddTags(ctx context.Context, in *AddTagsRequest, opts ...grpc.CallOption) (*AddTagsResponse, error)
	CreateUser(ctx context.Context, in *CreateUserRequest, opts ...grpc.CallOption) (*CreateUserResponse, error)
	RemoveTag(ctx context.Context, in *RemoveTagRequest, opts ...grpc.CallOption) (*RemoveTagResponse, error)
	GetUserTags(ctx context.Context, in *GetUserTagsRequest, opts ...grpc.CallOption) (*GetUserTagsResponse, error)
	GetUsersWithTag(ctx context.Context, in *GetUsersWithTagRequest, opts ...grpc.CallOption) (*GetUsersWithTagResponse, error)
	HasTag(ctx context.Context, in *HasTagRequest, opts ...grpc.CallOption) (*HasTagResponse, error)
	ListUsers(ctx context.Context, in *ListUsersRequest, opts ...grpc.CallOption) (*ListUsersResponse, error)
	ListTags(ctx context.Context, in *ListTagsRequest, opts ...grpc.CallOption) (*ListTagsResponse, error)
	Clear(ctx context.Context, in *ClearRequest, opts ...grpc.CallOption) (*ClearResponse, error)
	Stats(ctx context.Context, in *StatsRequest, opts ...grpc.CallOption) (*StatsResponse, error)
}

type tagServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewTagServiceClient returns a client stub over cc.
func NewTagServiceClient(cc grpc.ClientConnInterface) TagServiceClient {
	return &tagServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tagServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, "Ping", in, opts)
}

func (c *tagServiceClient) AddTags(ctx context.Context, in *AddTagsRequest, opts ...grpc.CallOption) (*AddTagsResponse, error) {
	return invoke[AddTagsResponse](ctx, c.cc, "AddTags", in, opts)
}

func (c *tagServiceClient) CreateUser(ctx context.Context, in *CreateUserRequest, opts ...grpc.CallOption) (*CreateUserResponse, error) {
	return invoke[CreateUserResponse](ctx, c.cc, "CreateUser", in, opts)
}

func (c *tagServiceClient) RemoveTag(ctx context.Context, in *RemoveTagRequest, opts ...grpc.CallOption) (*RemoveTagResponse, error) {
	return invoke[RemoveTagResponse](ctx, c.cc, "RemoveTag", in, opts)
}

func (c *tagServiceClient) GetUserTags(ctx context.Context, in *GetUserTagsRequest, opts ...grpc.CallOption) (*GetUserTagsResponse, error) {
	return invoke[GetUserTagsResponse](ctx, c.cc, "GetUserTags", in, opts)
}

func (c *tagServiceClient) GetUsersWithTag(ctx context.Context, in *GetUsersWithTagRequest, opts ...grpc.CallOption) (*GetUsersWithTagResponse, error) {
	return invoke[GetUsersWithTagResponse](ctx, c.cc, "GetUsersWithTag", in, opts)
}

func (c *tagServiceClient) HasTag(ctx context.Context, in *HasTagRequest, opts ...grpc.CallOption) (*HasTagResponse, error) {
	return invoke[HasTagResponse](ctx, c.cc, "HasTag", in, opts)
}

func (c *tagServiceClient) ListUsers(ctx context.Context, in *ListUsersRequest, opts ...grpc.CallOption) (*ListUsersResponse, error) {
	return invoke[ListUsersResponse](ctx, c.cc, "ListUsers", in, opts)
}

func (c *tagServiceClient) ListTags(ctx context.Context, in *ListTagsRequest, opts ...grpc.CallOption) (*ListTagsResponse, error) {
	return invoke[ListTagsResponse](ctx, c.cc, "ListTags", in, opts)
}

func (c *tagServiceClient) Clear(ctx context.Context, in *ClearRequest, opts ...grpc.CallOption) (*ClearResponse, error) {
	return invoke[ClearResponse](ctx, c.cc, "Clear", in, opts)
}

func (c *tagServiceClient) Stats(ctx context.Context, in *StatsRequest, opts ...grpc.CallOption) (*StatsResponse, error) {
	return invoke[StatsResponse](ctx, c.cc, "Stats", in, opts)
}
