package storefrontv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const (
	CatalogService_ListProducts_FullMethodName   = "/storefront.v1.CatalogService/ListProducts"
	CatalogService_GetProduct_FullMethodName     = "/storefront.v1.CatalogService/GetProduct"
	CatalogService_ListCategories_FullMethodName = "/storefront.v1.CatalogService/ListCategories"
)

type CatalogServiceServer interface {
	ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error)
	GetProduct(context.Context, *GetProductRequest) (*GetProductResponse, error)
	ListCategories(context.Context, *emptypb.Empty) (*ListCategoriesResponse, error)
}

// UnimplementedCatalogServiceServer answers every method with codes.Unimplemented.
type UnimplementedCatalogServiceServer struct{}

func (UnimplementedCatalogServiceServer) ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListProducts not implemented")
}

func (UnimplementedCatalogServiceServer) GetProduct(context.Context, *GetProductRequest) (*GetProductResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetProduct not implemented")
}

func (UnimplementedCatalogServiceServer) ListCategories(context.Context, *emptypb.Empty) (*ListCategoriesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCategories not implemented")
}

func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogService_ServiceDesc, srv)
}

var CatalogService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "storefront.v1.CatalogService",
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListProducts",
			Handler:    unary(CatalogService_ListProducts_FullMethodName, CatalogServiceServer.ListProducts),
		},
		{
			MethodName: "GetProduct",
			Handler:    unary(CatalogService_GetProduct_FullMethodName, CatalogServiceServer.GetProduct),
		},
		{
			MethodName: "ListCategories",
			Handler:    unary(CatalogService_ListCategories_FullMethodName, CatalogServiceServer.ListCategories),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: serviceFile,
}

type CatalogServiceClient interface {
	ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsResponse, error)
	GetProduct(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*GetProductResponse, error)
	ListCategories(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*ListCategoriesResponse, error)
}

type catalogServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCatalogServiceClient(cc grpc.ClientConnInterface) CatalogServiceClient {
	return &catalogServiceClient{cc}
}

func (c *catalogServiceClient) ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsResponse, error) {
	return invoke[ListProductsResponse](ctx, c.cc, CatalogService_ListProducts_FullMethodName, in, opts)
}

func (c *catalogServiceClient) GetProduct(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*GetProductResponse, error) {
	return invoke[GetProductResponse](ctx, c.cc, CatalogService_GetProduct_FullMethodName, in, opts)
}

func (c *catalogServiceClient) ListCategories(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*ListCategoriesResponse, error) {
	return invoke[ListCategoriesResponse](ctx, c.cc, CatalogService_ListCategories_FullMethodName, in, opts)
}
