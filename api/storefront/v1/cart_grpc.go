package storefrontv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const (
	CartService_GetCart_FullMethodName     = "/storefront.v1.CartService/GetCart"
	CartService_AddItem_FullMethodName     = "/storefront.v1.CartService/AddItem"
	CartService_AddItems_FullMethodName    = "/storefront.v1.CartService/AddItems"
	CartService_SetQuantity_FullMethodName = "/storefront.v1.CartService/SetQuantity"
	CartService_RemoveItem_FullMethodName  = "/storefront.v1.CartService/RemoveItem"
	CartService_ClearCart_FullMethodName   = "/storefront.v1.CartService/ClearCart"
	CartService_GetQuote_FullMethodName    = "/storefront.v1.CartService/GetQuote"
)

type CartServiceServer interface {
	GetCart(context.Context, *emptypb.Empty) (*CartResponse, error)
	AddItem(context.Context, *AddItemRequest) (*CartResponse, error)
	AddItems(context.Context, *AddItemsRequest) (*CartResponse, error)
	SetQuantity(context.Context, *SetQuantityRequest) (*CartResponse, error)
	RemoveItem(context.Context, *RemoveItemRequest) (*CartResponse, error)
	ClearCart(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	GetQuote(context.Context, *QuoteRequest) (*QuoteResponse, error)
}

// UnimplementedCartServiceServer answers every method with codes.Unimplemented.
type UnimplementedCartServiceServer struct{}

func (UnimplementedCartServiceServer) GetCart(context.Context, *emptypb.Empty) (*CartResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCart not implemented")
}

func (UnimplementedCartServiceServer) AddItem(context.Context, *AddItemRequest) (*CartResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddItem not implemented")
}

func (UnimplementedCartServiceServer) AddItems(context.Context, *AddItemsRequest) (*CartResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddItems not implemented")
}

func (UnimplementedCartServiceServer) SetQuantity(context.Context, *SetQuantityRequest) (*CartResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetQuantity not implemented")
}

func (UnimplementedCartServiceServer) RemoveItem(context.Context, *RemoveItemRequest) (*CartResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveItem not implemented")
}

func (UnimplementedCartServiceServer) ClearCart(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method ClearCart not implemented")
}

func (UnimplementedCartServiceServer) GetQuote(context.Context, *QuoteRequest) (*QuoteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetQuote not implemented")
}

func RegisterCartServiceServer(s grpc.ServiceRegistrar, srv CartServiceServer) {
	s.RegisterService(&CartService_ServiceDesc, srv)
}

var CartService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "storefront.v1.CartService",
	HandlerType: (*CartServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetCart",
			Handler:    unary(CartService_GetCart_FullMethodName, CartServiceServer.GetCart),
		},
		{
			MethodName: "AddItem",
			Handler:    unary(CartService_AddItem_FullMethodName, CartServiceServer.AddItem),
		},
		{
			MethodName: "AddItems",
			Handler:    unary(CartService_AddItems_FullMethodName, CartServiceServer.AddItems),
		},
		{
			MethodName: "SetQuantity",
			Handler:    unary(CartService_SetQuantity_FullMethodName, CartServiceServer.SetQuantity),
		},
		{
			MethodName: "RemoveItem",
			Handler:    unary(CartService_RemoveItem_FullMethodName, CartServiceServer.RemoveItem),
		},
		{
			MethodName: "ClearCart",
			Handler:    unary(CartService_ClearCart_FullMethodName, CartServiceServer.ClearCart),
		},
		{
			MethodName: "GetQuote",
			Handler:    unary(CartService_GetQuote_FullMethodName, CartServiceServer.GetQuote),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: serviceFile,
}

type CartServiceClient interface {
	GetCart(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*CartResponse, error)
	AddItem(ctx context.Context, in *AddItemRequest, opts ...grpc.CallOption) (*CartResponse, error)
	AddItems(ctx context.Context, in *AddItemsRequest, opts ...grpc.CallOption) (*CartResponse, error)
	SetQuantity(ctx context.Context, in *SetQuantityRequest, opts ...grpc.CallOption) (*CartResponse, error)
	RemoveItem(ctx context.Context, in *RemoveItemRequest, opts ...grpc.CallOption) (*CartResponse, error)
	ClearCart(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	GetQuote(ctx context.Context, in *QuoteRequest, opts ...grpc.CallOption) (*QuoteResponse, error)
}

type cartServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCartServiceClient(cc grpc.ClientConnInterface) CartServiceClient {
	return &cartServiceClient{cc}
}

func (c *cartServiceClient) GetCart(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*CartResponse, error) {
	return invoke[CartResponse](ctx, c.cc, CartService_GetCart_FullMethodName, in, opts)
}

func (c *cartServiceClient) AddItem(ctx context.Context, in *AddItemRequest, opts ...grpc.CallOption) (*CartResponse, error) {
	return invoke[CartResponse](ctx, c.cc, CartService_AddItem_FullMethodName, in, opts)
}

func (c *cartServiceClient) AddItems(ctx context.Context, in *AddItemsRequest, opts ...grpc.CallOption) (*CartResponse, error) {
	return invoke[CartResponse](ctx, c.cc, CartService_AddItems_FullMethodName, in, opts)
}

func (c *cartServiceClient) SetQuantity(ctx context.Context, in *SetQuantityRequest, opts ...grpc.CallOption) (*CartResponse, error) {
	return invoke[CartResponse](ctx, c.cc, CartService_SetQuantity_FullMethodName, in, opts)
}

func (c *cartServiceClient) RemoveItem(ctx context.Context, in *RemoveItemRequest, opts ...grpc.CallOption) (*CartResponse, error) {
	return invoke[CartResponse](ctx, c.cc, CartService_RemoveItem_FullMethodName, in, opts)
}

func (c *cartServiceClient) ClearCart(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke[emptypb.Empty](ctx, c.cc, CartService_ClearCart_FullMethodName, in, opts)
}

func (c *cartServiceClient) GetQuote(ctx context.Context, in *QuoteRequest, opts ...grpc.CallOption) (*QuoteResponse, error) {
	return invoke[QuoteResponse](ctx, c.cc, CartService_GetQuote_FullMethodName, in, opts)
}
