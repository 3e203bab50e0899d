package assistant

import "context"

type UseCase interface {
	Greeting(ctx context.Context, lang string) *Message
	// Send answers text after the configured reply delay.
	Send(ctx context.Context, lang, text string) (*Message, error)
}
