package server

import (
	pb "github.com/fekuna/omnipos-storefront-service/api/storefront/v1"
	"github.com/fekuna/omnipos-storefront-service/internal/middleware"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// Handlers are the storefront service implementations to expose.
type Handlers struct {
	Catalog   pb.CatalogServiceServer
	Cart      pb.CartServiceServer
	Wishlist  pb.WishlistServiceServer
	Payment   pb.PaymentServiceServer
	Assistant pb.AssistantServiceServer
}

type Options struct {
	RateLimiter      *middleware.RateLimiter // nil disables limiting
	EnableReflection bool
}

// New builds a gRPC server with the storefront services, health checking and optional reflection.
func New(h Handlers, opts Options, log logger.ZapLogger) (*grpc.Server, *health.Server) {
	interceptors := []grpc.UnaryServerInterceptor{
		middleware.ContextInterceptor(),
		middleware.LoggingInterceptor(log),
	}
	if opts.RateLimiter != nil {
		interceptors = append(interceptors, opts.RateLimiter.UnaryInterceptor())
	}

	s := grpc.NewServer(grpc.ChainUnaryInterceptor(interceptors...))

	pb.RegisterCatalogServiceServer(s, h.Catalog)
	pb.RegisterCartServiceServer(s, h.Cart)
	pb.RegisterWishlistServiceServer(s, h.Wishlist)
	pb.RegisterPaymentServiceServer(s, h.Payment)
	pb.RegisterAssistantServiceServer(s, h.Assistant)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(s, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	for name := range s.GetServiceInfo() {
		healthServer.SetServingStatus(name, grpc_health_v1.HealthCheckResponse_SERVING)
	}

	if opts.EnableReflection {
		reflection.Register(s)
	}
	return s, healthServer
}
