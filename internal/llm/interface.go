// Package llm sends a single prompt to a chat model and returns its reply.
package llm

import (
	"context"
	"errors"
)

// ErrEmptyReply is returned when the model answers with no text.
var ErrEmptyReply = errors.New("empty reply from model")

// Client is a one-shot chat: one user message in, one text reply out.
type Client interface {
	Chat(ctx context.Context, model, prompt string) (string, error)
}
