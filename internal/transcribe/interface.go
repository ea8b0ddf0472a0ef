package transcribe

import "context"

// Engine turns an audio file into plain text.
type Engine interface {
	Name() string
	Transcribe(ctx context.Context, audioPath string) (string, error)
}
