package main

import (
	"context"
	"io"
	"log"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fekuna/omnipos-storefront-service/config"
	"github.com/fekuna/omnipos-storefront-service/internal/cart"
	"github.com/fekuna/omnipos-storefront-service/internal/catalog"
	"github.com/fekuna/omnipos-storefront-service/internal/kvstore"
	"github.com/fekuna/omnipos-storefront-service/internal/middleware"
	"github.com/fekuna/omnipos-storefront-service/internal/order"
	"github.com/fekuna/omnipos-storefront-service/internal/order/publisher"
	"github.com/fekuna/omnipos-storefront-service/internal/pricing"
	"github.com/fekuna/omnipos-storefront-service/internal/scheduler"
	"github.com/fekuna/omnipos-storefront-service/internal/server"
	"github.com/fekuna/omnipos-storefront-service/pkg/database/postgres"
	"github.com/fekuna/omnipos-storefront-service/pkg/i18n"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"

	assistantH "github.com/fekuna/omnipos-storefront-service/internal/assistant/handler"
	assistantUCPkg "github.com/fekuna/omnipos-storefront-service/internal/assistant/usecase"

	cartH "github.com/fekuna/omnipos-storefront-service/internal/cart/handler"
	cartRepoPkg "github.com/fekuna/omnipos-storefront-service/internal/cart/repository"
	cartUCPkg "github.com/fekuna/omnipos-storefront-service/internal/cart/usecase"

	catH "github.com/fekuna/omnipos-storefront-service/internal/catalog/handler"
	catRepoPkg "github.com/fekuna/omnipos-storefront-service/internal/catalog/repository"
	catUCPkg "github.com/fekuna/omnipos-storefront-service/internal/catalog/usecase"

	payH "github.com/fekuna/omnipos-storefront-service/internal/payment/handler"
	payUCPkg "github.com/fekuna/omnipos-storefront-service/internal/payment/usecase"

	wishH "github.com/fekuna/omnipos-storefront-service/internal/wishlist/handler"
	wishRepoPkg "github.com/fekuna/omnipos-storefront-service/internal/wishlist/repository"
	wishUCPkg "github.com/fekuna/omnipos-storefront-service/internal/wishlist/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "development" || cfg.Server.AppEnv == "dev" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 3. Initialize i18n
	translator, err := i18n.New()
	if err != nil {
		appLogger.Fatal("Could not load locales", zap.Error(err))
	}
	if file := os.Getenv("I18N_EXTRA_LOCALE"); file != "" {
		if err := translator.Load(file); err != nil {
			appLogger.Warn("Failed to load extra locale", zap.String("file", file), zap.Error(err))
		}
	}

	// 4. Load Catalog
	catRepo, closeCatalog := newCatalogRepository(ctx, cfg, appLogger)
	defer closeCatalog()

	products, err := catUCPkg.LoadCatalog(ctx, catRepo)
	if err != nil {
		appLogger.Fatal("Could not load catalog", zap.String("source", cfg.Catalog.Source), zap.Error(err))
	}
	appLogger.Info("Catalog loaded", zap.String("source", cfg.Catalog.Source), zap.Int("products", products.Len()))

	// 5. Pricing
	pricingOpts, err := pricing.ParseOptions(cfg.Pricing.FreeShippingThreshold, cfg.Pricing.ShippingFee, cfg.Pricing.TaxRate, cfg.Pricing.PromoCodes)
	if err != nil {
		appLogger.Fatal("Invalid pricing configuration", zap.Error(err))
	}

	// 6. Wishlist and Cart Stores
	store, closeStore := newKVStore(ctx, cfg, appLogger)
	defer closeStore()

	var cartRepo cart.Repository = cartRepoPkg.NewMemoryRepository()
	if cfg.Cart.Backend == "kv" {
		cartRepo = cartRepoPkg.NewKVRepository(store, cfg.Cart.KeyPrefix, appLogger)
		appLogger.Info("Carts stored with wishlists", zap.String("backend", cfg.Wishlist.Backend))
	}

	// 7. Order Publisher
	var orderPub order.Publisher
	if len(cfg.Kafka.Brokers) > 0 {
		orderPub = publisher.NewKafkaPublisher(&publisher.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		}, appLogger)
		appLogger.Info("Publishing orders to Kafka", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))
	} else {
		orderPub = publisher.NewLogPublisher(appLogger)
		appLogger.Warn("No Kafka brokers configured, order events are only logged")
	}
	defer orderPub.Close()

	sched := scheduler.New()

	// 8. Initialize UseCases
	catUC := catUCPkg.NewCatalogUseCase(products, translator, appLogger)
	cartUC := cartUCPkg.NewCartUseCase(cartRepo, catUC, pricing.NewEngine(pricingOpts), appLogger)
	wishUC := wishUCPkg.NewWishlistUseCase(wishRepoPkg.NewKVRepository(store, cfg.Wishlist.KeyPrefix, appLogger), catUC, cartUC, appLogger)
	payUC := payUCPkg.NewPaymentUseCase(cartUC, orderPub, sched, payUCPkg.Options{
		CompleteAfter: cfg.Payment.CompleteAfter,
		Deadline:      cfg.Payment.Deadline,
		Retention:     cfg.Payment.Retention,
	}, appLogger)
	assistantUC := assistantUCPkg.NewAssistantUseCase(translator, sched, cfg.Assistant.ReplyDelay, pricingOpts, appLogger)

	// 9. Initialize Handlers
	handlers := server.Handlers{
		Catalog:   catH.NewCatalogHandler(catUC, appLogger),
		Cart:      cartH.NewCartHandler(cartUC, appLogger),
		Wishlist:  wishH.NewWishlistHandler(wishUC, appLogger),
		Payment:   payH.NewPaymentHandler(payUC, appLogger),
		Assistant: assistantH.NewAssistantHandler(assistantUC, appLogger),
	}

	// 10. Start gRPC Server
	port := cfg.Server.GRPCPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	lis, err := net.Listen("tcp", port)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	go limiter.Run(ctx)

	grpcServer, healthServer := server.New(handlers, server.Options{
		RateLimiter:      limiter,
		EnableReflection: true,
	}, appLogger)

	appLogger.Info("Starting gRPC server", zap.String("port", port))

	// Graceful Shutdown
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	healthServer.Shutdown()
	grpcServer.GracefulStop()
	sched.Stop()
	appLogger.Info("Server stopped")
}

func newCatalogRepository(ctx context.Context, cfg *config.Config, appLogger logger.ZapLogger) (catalog.Repository, func()) {
	switch cfg.Catalog.Source {
	case "file":
		return catRepoPkg.NewFileRepository(cfg.Catalog.File), func() {}
	case "postgres":
		db, err := postgres.NewPostgres(ctx, &postgres.Config{
			Host:            cfg.Postgres.Host,
			Port:            cfg.Postgres.Port,
			User:            cfg.Postgres.User,
			Password:        cfg.Postgres.Password,
			DBName:          cfg.Postgres.DBName,
			SSLMode:         cfg.Postgres.SSLMode,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
			ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
		})
		if err != nil {
			appLogger.Fatal("Could not connect to database", zap.Error(err))
		}
		appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))
		return catRepoPkg.NewPGRepository(db), func() { _ = db.Close() }
	default:
		return catRepoPkg.NewSeedRepository(), func() {}
	}
}

func newKVStore(ctx context.Context, cfg *config.Config, appLogger logger.ZapLogger) (kvstore.Store, func()) {
	switch cfg.Wishlist.Backend {
	case "sqlite":
		s, err := kvstore.OpenSQLite(ctx, cfg.Wishlist.SQLitePath)
		if err != nil {
			appLogger.Fatal("Could not open SQLite store", zap.String("path", cfg.Wishlist.SQLitePath), zap.Error(err))
		}
		appLogger.Info("Wishlists stored in SQLite", zap.String("path", cfg.Wishlist.SQLitePath))
		return s, closer(s, appLogger)
	case "redis":
		rdb, err := kvstore.NewRedisClient(ctx, &kvstore.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			appLogger.Fatal("Could not connect to Redis", zap.Error(err))
		}
		appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
		return kvstore.NewRedisStore(rdb), closer(rdb, appLogger)
	default:
		appLogger.Warn("Wishlists kept in memory and lost on restart")
		return kvstore.NewMemoryStore(), func() {}
	}
}

func closer(c io.Closer, appLogger logger.ZapLogger) func() {
	return func() {
		if err := c.Close(); err != nil {
			appLogger.Warn("close failed", zap.Error(err))
		}
	}
}
