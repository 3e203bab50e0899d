package storefrontv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const (
	WishlistService_GetWishlist_FullMethodName        = "/storefront.v1.WishlistService/GetWishlist"
	WishlistService_AddToWishlist_FullMethodName      = "/storefront.v1.WishlistService/AddToWishlist"
	WishlistService_RemoveFromWishlist_FullMethodName = "/storefront.v1.WishlistService/RemoveFromWishlist"
	WishlistService_ToggleWishlist_FullMethodName     = "/storefront.v1.WishlistService/ToggleWishlist"
	WishlistService_ClearWishlist_FullMethodName      = "/storefront.v1.WishlistService/ClearWishlist"
	WishlistService_AddAllToCart_FullMethodName       = "/storefront.v1.WishlistService/AddAllToCart"
)

type WishlistServiceServer interface {
	GetWishlist(context.Context, *emptypb.Empty) (*WishlistResponse, error)
	AddToWishlist(context.Context, *WishlistItemRequest) (*WishlistResponse, error)
	RemoveFromWishlist(context.Context, *WishlistItemRequest) (*WishlistResponse, error)
	ToggleWishlist(context.Context, *WishlistItemRequest) (*WishlistResponse, error)
	ClearWishlist(context.Context, *emptypb.Empty) (*WishlistResponse, error)
	AddAllToCart(context.Context, *emptypb.Empty) (*CartResponse, error)
}

// UnimplementedWishlistServiceServer answers every method with codes.Unimplemented.
type UnimplementedWishlistServiceServer struct{}

func (UnimplementedWishlistServiceServer) GetWishlist(context.Context, *emptypb.Empty) (*WishlistResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetWishlist not implemented")
}

func (UnimplementedWishlistServiceServer) AddToWishlist(context.Context, *WishlistItemRequest) (*WishlistResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddToWishlist not implemented")
}

func (UnimplementedWishlistServiceServer) RemoveFromWishlist(context.Context, *WishlistItemRequest) (*WishlistResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveFromWishlist not implemented")
}

func (UnimplementedWishlistServiceServer) ToggleWishlist(context.Context, *WishlistItemRequest) (*WishlistResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ToggleWishlist not implemented")
}

func (UnimplementedWishlistServiceServer) ClearWishlist(context.Context, *emptypb.Empty) (*WishlistResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ClearWishlist not implemented")
}

func (UnimplementedWishlistServiceServer) AddAllToCart(context.Context, *emptypb.Empty) (*CartResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddAllToCart not implemented")
}

func RegisterWishlistServiceServer(s grpc.ServiceRegistrar, srv WishlistServiceServer) {
	s.RegisterService(&WishlistService_ServiceDesc, srv)
}

var WishlistService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "storefront.v1.WishlistService",
	HandlerType: (*WishlistServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetWishlist",
			Handler:    unary(WishlistService_GetWishlist_FullMethodName, WishlistServiceServer.GetWishlist),
		},
		{
			MethodName: "AddToWishlist",
			Handler:    unary(WishlistService_AddToWishlist_FullMethodName, WishlistServiceServer.AddToWishlist),
		},
		{
			MethodName: "RemoveFromWishlist",
			Handler:    unary(WishlistService_RemoveFromWishlist_FullMethodName, WishlistServiceServer.RemoveFromWishlist),
		},
		{
			MethodName: "ToggleWishlist",
			Handler:    unary(WishlistService_ToggleWishlist_FullMethodName, WishlistServiceServer.ToggleWishlist),
		},
		{
			MethodName: "ClearWishlist",
			Handler:    unary(WishlistService_ClearWishlist_FullMethodName, WishlistServiceServer.ClearWishlist),
		},
		{
			MethodName: "AddAllToCart",
			Handler:    unary(WishlistService_AddAllToCart_FullMethodName, WishlistServiceServer.AddAllToCart),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: serviceFile,
}

type WishlistServiceClient interface {
	GetWishlist(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*WishlistResponse, error)
	AddToWishlist(ctx context.Context, in *WishlistItemRequest, opts ...grpc.CallOption) (*WishlistResponse, error)
	RemoveFromWishlist(ctx context.Context, in *WishlistItemRequest, opts ...grpc.CallOption) (*WishlistResponse, error)
	ToggleWishlist(ctx context.Context, in *WishlistItemRequest, opts ...grpc.CallOption) (*WishlistResponse, error)
	ClearWishlist(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*WishlistResponse, error)
	AddAllToCart(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*CartResponse, error)
}

type wishlistServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewWishlistServiceClient(cc grpc.ClientConnInterface) WishlistServiceClient {
	return &wishlistServiceClient{cc}
}

func (c *wishlistServiceClient) GetWishlist(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*WishlistResponse, error) {
	return invoke[WishlistResponse](ctx, c.cc, WishlistService_GetWishlist_FullMethodName, in, opts)
}

func (c *wishlistServiceClient) AddToWishlist(ctx context.Context, in *WishlistItemRequest, opts ...grpc.CallOption) (*WishlistResponse, error) {
	return invoke[WishlistResponse](ctx, c.cc, WishlistService_AddToWishlist_FullMethodName, in, opts)
}

func (c *wishlistServiceClient) RemoveFromWishlist(ctx context.Context, in *WishlistItemRequest, opts ...grpc.CallOption) (*WishlistResponse, error) {
	return invoke[WishlistResponse](ctx, c.cc, WishlistService_RemoveFromWishlist_FullMethodName, in, opts)
}

func (c *wishlistServiceClient) ToggleWishlist(ctx context.Context, in *WishlistItemRequest, opts ...grpc.CallOption) (*WishlistResponse, error) {
	return invoke[WishlistResponse](ctx, c.cc, WishlistService_ToggleWishlist_FullMethodName, in, opts)
}

func (c *wishlistServiceClient) ClearWishlist(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*WishlistResponse, error) {
	return invoke[WishlistResponse](ctx, c.cc, WishlistService_ClearWishlist_FullMethodName, in, opts)
}

func (c *wishlistServiceClient) AddAllToCart(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*CartResponse, error) {
	return invoke[CartResponse](ctx, c.cc, WishlistService_AddAllToCart_FullMethodName, in, opts)
}
