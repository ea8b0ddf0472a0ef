package executor

import "context"

// Executor runs external programs such as ffmpeg and whisper-cli.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
}
