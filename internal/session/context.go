package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/grpc/metadata"
)

const (
	MetadataKey      = "x-session-id"
	LanguageKey      = "accept-language"
	Anonymous        = "anonymous"
	DefaultLanguage  = "en"
	maxSessionIDSize = 128
)

var ErrSessionIDTooLong = errors.New("session id too long")

type ctxKey struct{}

type Info struct {
	ID       string
	Language string
}

func WithInfo(ctx context.Context, info Info) context.Context {
	return context.WithValue(ctx, ctxKey{}, info)
}

// FromContext returns the session put there by the interceptor, falling back to
// incoming metadata so handlers work without it.
func FromContext(ctx context.Context) Info {
	if info, ok := ctx.Value(ctxKey{}).(Info); ok {
		return info
	}
	return FromMetadata(ctx)
}

// FromMetadata is Parse without the error; an unusable id reads as Anonymous.
func FromMetadata(ctx context.Context) Info {
	info, _ := Parse(ctx)
	return info
}

// Parse reads the session from incoming metadata. A missing or blank id is Anonymous;
// an id over 128 bytes is rejected so it cannot share the anonymous session.
func Parse(ctx context.Context) (Info, error) {
	info := Info{ID: Anonymous, Language: DefaultLanguage}

	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return info, nil
	}
	if val := md.Get(LanguageKey); len(val) > 0 {
		info.Language = primaryLanguage(val[0])
	}
	if val := md.Get(MetadataKey); len(val) > 0 {
		id := strings.TrimSpace(val[0])
		if len(id) > maxSessionIDSize {
			return info, fmt.Errorf("%w: %d bytes, max %d", ErrSessionIDTooLong, len(id), maxSessionIDSize)
		}
		if id != "" {
			info.ID = id
		}
	}
	return info, nil
}

// primaryLanguage takes the first tag of an Accept-Language value, e.g. "id-ID,id;q=0.9" gives "id-ID".
func primaryLanguage(header string) string {
	tag, _, _ := strings.Cut(header, ",")
	tag, _, _ = strings.Cut(tag, ";")
	tag = strings.TrimSpace(tag)
	if tag == "" || tag == "*" {
		return DefaultLanguage
	}
	return tag
}

func ID(ctx context.Context) string {
	return FromContext(ctx).ID
}
