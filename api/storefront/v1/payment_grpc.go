package storefrontv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	PaymentService_StartPayment_FullMethodName  = "/storefront.v1.PaymentService/StartPayment"
	PaymentService_GetPayment_FullMethodName    = "/storefront.v1.PaymentService/GetPayment"
	PaymentService_CancelPayment_FullMethodName = "/storefront.v1.PaymentService/CancelPayment"
)

type PaymentServiceServer interface {
	StartPayment(context.Context, *StartPaymentRequest) (*PaymentResponse, error)
	GetPayment(context.Context, *PaymentRequest) (*PaymentResponse, error)
	CancelPayment(context.Context, *PaymentRequest) (*PaymentResponse, error)
}

// UnimplementedPaymentServiceServer answers every method with codes.Unimplemented.
type UnimplementedPaymentServiceServer struct{}

func (UnimplementedPaymentServiceServer) StartPayment(context.Context, *StartPaymentRequest) (*PaymentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method StartPayment not implemented")
}

func (UnimplementedPaymentServiceServer) GetPayment(context.Context, *PaymentRequest) (*PaymentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetPayment not implemented")
}

func (UnimplementedPaymentServiceServer) CancelPayment(context.Context, *PaymentRequest) (*PaymentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CancelPayment not implemented")
}

func RegisterPaymentServiceServer(s grpc.ServiceRegistrar, srv PaymentServiceServer) {
	s.RegisterService(&PaymentService_ServiceDesc, srv)
}

var PaymentService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "storefront.v1.PaymentService",
	HandlerType: (*PaymentServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "StartPayment",
			Handler:    unary(PaymentService_StartPayment_FullMethodName, PaymentServiceServer.StartPayment),
		},
		{
			MethodName: "GetPayment",
			Handler:    unary(PaymentService_GetPayment_FullMethodName, PaymentServiceServer.GetPayment),
		},
		{
			MethodName: "CancelPayment",
			Handler:    unary(PaymentService_CancelPayment_FullMethodName, PaymentServiceServer.CancelPayment),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: serviceFile,
}

type PaymentServiceClient interface {
	StartPayment(ctx context.Context, in *StartPaymentRequest, opts ...grpc.CallOption) (*PaymentResponse, error)
	GetPayment(ctx context.Context, in *PaymentRequest, opts ...grpc.CallOption) (*PaymentResponse, error)
	CancelPayment(ctx context.Context, in *PaymentRequest, opts ...grpc.CallOption) (*PaymentResponse, error)
}

type paymentServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPaymentServiceClient(cc grpc.ClientConnInterface) PaymentServiceClient {
	return &paymentServiceClient{cc}
}

func (c *paymentServiceClient) StartPayment(ctx context.Context, in *StartPaymentRequest, opts ...grpc.CallOption) (*PaymentResponse, error) {
	return invoke[PaymentResponse](ctx, c.cc, PaymentService_StartPayment_FullMethodName, in, opts)
}

func (c *paymentServiceClient) GetPayment(ctx context.Context, in *PaymentRequest, opts ...grpc.CallOption) (*PaymentResponse, error) {
	return invoke[PaymentResponse](ctx, c.cc, PaymentService_GetPayment_FullMethodName, in, opts)
}

func (c *paymentServiceClient) CancelPayment(ctx context.Context, in *PaymentRequest, opts ...grpc.CallOption) (*PaymentResponse, error) {
	return invoke[PaymentResponse](ctx, c.cc, PaymentService_CancelPayment_FullMethodName, in, opts)
}
