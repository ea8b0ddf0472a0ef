// Package opener hands a file to the desktop's default application.
package opener

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/jwulff/antnotes/internal/executor"
)

var ErrNotFound = errors.New("file not found")

type Opener struct {
	executor executor.Executor
	goos     string
}

func New(exec executor.Executor) *Opener {
	return &Opener{executor: exec, goos: runtime.GOOS}
}

// Open launches the platform handler for path. A missing file returns
// ErrNotFound without running anything.
func (o *Opener) Open(ctx context.Context, path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}

	name, args := command(o.goos, path)
	if _, err := o.executor.Execute(ctx, name, args...); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func command(goos, path string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}
	default:
		return "xdg-open", []string{path}
	}
}
