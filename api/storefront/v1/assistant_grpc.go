package storefrontv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const (
	AssistantService_Greeting_FullMethodName    = "/storefront.v1.AssistantService/Greeting"
	AssistantService_SendMessage_FullMethodName = "/storefront.v1.AssistantService/SendMessage"
)

type AssistantServiceServer interface {
	Greeting(context.Context, *emptypb.Empty) (*MessageResponse, error)
	SendMessage(context.Context, *SendMessageRequest) (*MessageResponse, error)
}

// UnimplementedAssistantServiceServer answers every method with codes.Unimplemented.
type UnimplementedAssistantServiceServer struct{}

func (UnimplementedAssistantServiceServer) Greeting(context.Context, *emptypb.Empty) (*MessageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Greeting not implemented")
}

func (UnimplementedAssistantServiceServer) SendMessage(context.Context, *SendMessageRequest) (*MessageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SendMessage not implemented")
}

func RegisterAssistantServiceServer(s grpc.ServiceRegistrar, srv AssistantServiceServer) {
	s.RegisterService(&AssistantService_ServiceDesc, srv)
}

var AssistantService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "storefront.v1.AssistantService",
	HandlerType: (*AssistantServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Greeting",
			Handler:    unary(AssistantService_Greeting_FullMethodName, AssistantServiceServer.Greeting),
		},
		{
			MethodName: "SendMessage",
			Handler:    unary(AssistantService_SendMessage_FullMethodName, AssistantServiceServer.SendMessage),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: serviceFile,
}

type AssistantServiceClient interface {
	Greeting(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*MessageResponse, error)
	SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*MessageResponse, error)
}

type assistantServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAssistantServiceClient(cc grpc.ClientConnInterface) AssistantServiceClient {
	return &assistantServiceClient{cc}
}

func (c *assistantServiceClient) Greeting(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*MessageResponse, error) {
	return invoke[MessageResponse](ctx, c.cc, AssistantService_Greeting_FullMethodName, in, opts)
}

func (c *assistantServiceClient) SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*MessageResponse, error) {
	return invoke[MessageResponse](ctx, c.cc, AssistantService_SendMessage_FullMethodName, in, opts)
}
