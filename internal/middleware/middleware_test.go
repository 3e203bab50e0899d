package middleware

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fekuna/omnipos-storefront-service/internal/session"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

var info = &grpc.UnaryServerInfo{FullMethod: "/storefront.v1.CartService/GetCart"}

func echoSession(ctx context.Context, req any) (any, error) {
	return session.ID(ctx), nil
}

func withSession(id string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs(session.MetadataKey, id))
}

func TestContextInterceptor(t *testing.T) {
	resp, err := ContextInterceptor()(withSession("s1"), nil, info, echoSession)
	require.NoError(t, err)
	assert.Equal(t, "s1", resp)

	resp, err = ContextInterceptor()(context.Background(), nil, info, echoSession)
	require.NoError(t, err)
	assert.Equal(t, session.Anonymous, resp)

	_, err = ContextInterceptor()(withSession(strings.Repeat("a", 129)), nil, info, echoSession)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestLoggingInterceptor_PassesThrough(t *testing.T) {
	failing := func(ctx context.Context, req any) (any, error) {
		return nil, status.Error(codes.NotFound, "nope")
	}
	_, err := LoggingInterceptor(logger.NewNop())(context.Background(), nil, info, failing)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestRateLimiter_PerSession(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	intercept := rl.UnaryInterceptor()

	for i := 0; i < 2; i++ {
		_, err := intercept(withSession("a"), nil, info, echoSession)
		require.NoError(t, err)
	}
	_, err := intercept(withSession("a"), nil, info, echoSession)
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))

	// another session has its own bucket
	_, err = intercept(withSession("b"), nil, info, echoSession)
	assert.NoError(t, err)
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	now := time.Now()
	rl.now = func() time.Time { return now }

	rl.limiter("old")
	now = now.Add(visitorIdleTTL + time.Second)
	rl.limiter("fresh")
	rl.cleanup()

	assert.NotContains(t, rl.visitors, "old")
	assert.Contains(t, rl.visitors, "fresh")
}
