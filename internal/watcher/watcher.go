// Package watcher reports changes to the library folders so the UI can
// refresh without the user asking.
package watcher

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jwulff/antnotes/internal/logger"
	"github.com/jwulff/antnotes/internal/store"
)

// DefaultDebounce groups the burst of events a single save produces.
const DefaultDebounce = 250 * time.Millisecond

type Watcher struct {
	fs       *fsnotify.Watcher
	debounce time.Duration
	logger   logger.Logger
	changes  chan struct{}
}

// New watches the Recordings, Transcripts and Notes folders of st.
func New(st *store.Store, debounce time.Duration, log logger.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	for _, f := range store.Folders {
		if err := fw.Add(st.Dir(f)); err != nil {
			fw.Close()
			return nil, fmt.Errorf("watch %s: %w", f.Dir(), err)
		}
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		fs:       fw,
		debounce: debounce,
		logger:   log,
		changes:  make(chan struct{}, 1),
	}, nil
}

// Changes delivers one notification per quiet period after folder activity.
// Pending notifications coalesce.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Run forwards folder events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.logger.Debug(ctx, "Folder event: %s %s", event.Op, event.Name)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			select {
			case w.changes <- struct{}{}:
			default:
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warn(ctx, "Watcher error: %v", err)
		}
	}
}

func (w *Watcher) Close() error {
	return w.fs.Close()
}
