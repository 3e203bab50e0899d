package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server    ServerConfig
	Logger    LoggerConfig
	Catalog   CatalogConfig
	Postgres  PostgresConfig
	Pricing   PricingConfig
	Cart      CartConfig
	Wishlist  WishlistConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Payment   PaymentConfig
	Assistant AssistantConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	AppEnv   string
	GRPCPort string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

// CatalogConfig selects where products come from: seed, file or postgres.
type CatalogConfig struct {
	Source string
	File   string
}

type PostgresConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	ConnMaxIdleTime int
}

type PricingConfig struct {
	FreeShippingThreshold string
	ShippingFee           string
	TaxRate               string
	// PromoCodes is "code=rate" pairs, e.g. "student10=0.1,welcome20=0.2".
	PromoCodes map[string]string
}

// CartConfig picks memory (per process) or kv, which shares the wishlist backend.
type CartConfig struct {
	Backend   string
	KeyPrefix string
}

// WishlistConfig selects the key-value backend: memory, sqlite or redis.
type WishlistConfig struct {
	Backend    string
	SQLitePath string
	KeyPrefix  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type PaymentConfig struct {
	CompleteAfter time.Duration
	Deadline      time.Duration
	Retention     time.Duration
}

type AssistantConfig struct {
	ReplyDelay time.Duration
}

type RateLimitConfig struct {
	RPS   int
	Burst int
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:   getEnv("APP_ENV", "dev"),
			GRPCPort: getEnv("GRPC_PORT", ":8090"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Catalog: CatalogConfig{
			Source: getEnv("CATALOG_SOURCE", "seed"),
			File:   getEnv("CATALOG_FILE", "catalog.yaml"),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "localhost"),
			Port:            getEnv("POSTGRES_PORT", "5433"),
			User:            getEnv("POSTGRES_USER", "omnipos"),
			Password:        getEnv("POSTGRES_PASSWORD", "omnipos"),
			DBName:          getEnv("POSTGRES_DB", "omnipos_storefront"),
			SSLMode:         getEnv("POSTGRES_SSLMODE", "disable"),
			MaxOpenConns:    getEnvInt("POSTGRES_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("POSTGRES_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvInt("POSTGRES_CONN_MAX_LIFETIME", 300),
			ConnMaxIdleTime: getEnvInt("POSTGRES_CONN_MAX_IDLE_TIME", 60),
		},
		Pricing: PricingConfig{
			FreeShippingThreshold: getEnv("PRICING_FREE_SHIPPING_THRESHOLD", "75"),
			ShippingFee:           getEnv("PRICING_SHIPPING_FEE", "9.99"),
			TaxRate:               getEnv("PRICING_TAX_RATE", "0.08"),
			PromoCodes:            getEnvMap("PRICING_PROMO_CODES", map[string]string{"student10": "0.1", "welcome20": "0.2"}),
		},
		Cart: CartConfig{
			Backend:   getEnv("CART_BACKEND", "memory"),
			KeyPrefix: getEnv("CART_KEY_PREFIX", "cart"),
		},
		Wishlist: WishlistConfig{
			Backend:    getEnv("WISHLIST_BACKEND", "memory"),
			SQLitePath: getEnv("WISHLIST_SQLITE_PATH", "storefront.db"),
			KeyPrefix:  getEnv("WISHLIST_KEY_PREFIX", "wishlist"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Brokers: getEnvSlice("KAFKA_BROKERS", nil),
			Topic:   getEnv("KAFKA_TOPIC_ORDERS", "storefront.orders"),
		},
		Payment: PaymentConfig{
			CompleteAfter: getEnvDuration("PAYMENT_COMPLETE_AFTER", 5*time.Second),
			Deadline:      getEnvDuration("PAYMENT_DEADLINE", 10*time.Minute),
			Retention:     getEnvDuration("PAYMENT_RETENTION", time.Hour),
		},
		Assistant: AssistantConfig{
			ReplyDelay: getEnvDuration("ASSISTANT_REPLY_DELAY", 1500*time.Millisecond),
		},
		RateLimit: RateLimitConfig{
			RPS:   getEnvInt("RATE_LIMIT_RPS", 20),
			Burst: getEnvInt("RATE_LIMIT_BURST", 40),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return strings.Split(value, ",")
	}
	return fallback
}

func getEnvMap(key string, fallback map[string]string) map[string]string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	out := make(map[string]string)
	for _, pair := range strings.Split(value, ",") {
		k, v, found := strings.Cut(strings.TrimSpace(pair), "=")
		if !found || k == "" {
			continue
		}
		out[strings.ToLower(k)] = v
	}
	return out
}
