package session

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/metadata"
)

func TestFromContext_Defaults(t *testing.T) {
	info := FromContext(context.Background())
	assert.Equal(t, Anonymous, info.ID)
	assert.Equal(t, "en", info.Language)
}

func TestFromContext_Metadata(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(
		"x-session-id", " abc-123 ",
		"accept-language", "id-ID,id;q=0.9,en;q=0.8",
	))
	info := FromContext(ctx)
	assert.Equal(t, "abc-123", info.ID)
	assert.Equal(t, "id-ID", info.Language)
}

func TestParse_RejectsOversizedID(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(
		"x-session-id", strings.Repeat("x", 200),
	))
	_, err := Parse(ctx)
	assert.ErrorIs(t, err, ErrSessionIDTooLong)

	ctx = metadata.NewIncomingContext(context.Background(), metadata.Pairs(
		"x-session-id", strings.Repeat("x", 128),
	))
	info, err := Parse(ctx)
	assert.NoError(t, err)
	assert.Len(t, info.ID, 128)
}

func TestWithInfo_Wins(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-session-id", "from-md"))
	ctx = WithInfo(ctx, Info{ID: "from-ctx", Language: "en"})
	assert.Equal(t, "from-ctx", ID(ctx))
}
