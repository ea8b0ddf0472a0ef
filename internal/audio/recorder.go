package audio

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	ErrRecording = errors.New("already recording")
	ErrIdle      = errors.New("not recording")
)

// Recorder runs at most one capture session at a time.
type Recorder struct {
	source Source
	format Format

	mu      sync.Mutex
	session *session
}

type session struct {
	cancel context.CancelFunc
	done   chan captureResult
	exited chan struct{}
}

type captureResult struct {
	samples []float32
	err     error
}

func NewRecorder(source Source, format Format) *Recorder {
	return &Recorder{source: source, format: format}
}

// Recording reports whether samples are still being captured. It turns
// false when the stream fails, though Stop must still be called to collect
// what was captured before the failure.
func (r *Recorder) Recording() bool {
	r.mu.Lock()
	s := r.session
	r.mu.Unlock()

	if s == nil {
		return false
	}
	select {
	case <-s.exited:
		return false
	default:
		return true
	}
}

// Start opens the input stream and begins capturing in the background.
// Opening happens synchronously so a missing device is reported here.
func (r *Recorder) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.session != nil {
		return ErrRecording
	}

	stream, err := r.source.Open(r.format)
	if err != nil {
		return fmt.Errorf("open input stream: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	s := &session{
		cancel: cancel,
		done:   make(chan captureResult, 1),
		exited: make(chan struct{}),
	}
	r.session = s

	go capture(ctx, stream, s.done, s.exited)
	return nil
}

// Stop ends the active session and hands back everything captured.
// It returns once the capture goroutine has exited. A read failure is
// returned alongside the samples captured before it.
func (r *Recorder) Stop() (Capture, error) {
	r.mu.Lock()
	s := r.session
	r.session = nil
	r.mu.Unlock()

	if s == nil {
		return Capture{}, ErrIdle
	}

	s.cancel()
	res := <-s.done

	c := Capture{
		Samples:    res.samples,
		SampleRate: r.format.SampleRate,
		Channels:   r.format.Channels,
	}
	return c, res.err
}

// capture owns the sample buffer until it is sent on done.
func capture(ctx context.Context, stream Stream, done chan<- captureResult, exited chan<- struct{}) {
	defer close(exited)

	var samples []float32
	var err error

	for ctx.Err() == nil {
		block, rerr := stream.Read(ctx)
		if rerr != nil {
			if ctx.Err() == nil {
				err = fmt.Errorf("read input stream: %w", rerr)
			}
			break
		}
		samples = append(samples, block...)
	}

	if cerr := stream.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("close input stream: %w", cerr)
	}
	done <- captureResult{samples: samples, err: err}
}
