package audio

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// fakeStream returns a fixed block every tick until closed. With readErr
// set it fails once failAfter blocks have been read.
type fakeStream struct {
	block     []float32
	tick      time.Duration
	readErr   error
	failAfter int

	mu     sync.Mutex
	closed bool
	reads  int
}

func (s *fakeStream) Read(ctx context.Context) ([]float32, error) {
	s.mu.Lock()
	s.reads++
	fail := s.readErr != nil && s.reads > s.failAfter
	s.mu.Unlock()
	if fail {
		return nil, s.readErr
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(s.tick):
	}
	out := make([]float32, len(s.block))
	copy(out, s.block)
	return out, nil
}

func (s *fakeStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *fakeStream) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

type fakeSource struct {
	stream  *fakeStream
	openErr error
	opened  int
}

func (s *fakeSource) Open(Format) (Stream, error) {
	if s.openErr != nil {
		return nil, s.openErr
	}
	s.opened++
	return s.stream, nil
}

var testFormat = Format{SampleRate: 44100, Channels: 1, FramesPerBuffer: 4}

func TestRecorderStartStop(t *testing.T) {
	stream := &fakeStream{block: []float32{0.1, 0.2, 0.3, 0.4}, tick: time.Millisecond}
	rec := NewRecorder(&fakeSource{stream: stream}, testFormat)

	if rec.Recording() {
		t.Fatal("new recorder should be idle")
	}
	if err := rec.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !rec.Recording() {
		t.Fatal("should be recording after Start")
	}

	time.Sleep(20 * time.Millisecond)

	c, err := rec.Stop()
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if rec.Recording() {
		t.Error("should be idle after Stop")
	}
	if c.Empty() {
		t.Fatal("capture should have samples")
	}
	if len(c.Samples)%4 != 0 {
		t.Errorf("samples = %d, want whole blocks", len(c.Samples))
	}
	if c.SampleRate != 44100 {
		t.Errorf("SampleRate = %d", c.SampleRate)
	}
	if !stream.isClosed() {
		t.Error("stream should be closed after Stop")
	}
}

func TestRecorderDoubleStart(t *testing.T) {
	stream := &fakeStream{block: []float32{0}, tick: time.Millisecond}
	src := &fakeSource{stream: stream}
	rec := NewRecorder(src, testFormat)

	if err := rec.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer rec.Stop()

	if err := rec.Start(context.Background()); !errors.Is(err, ErrRecording) {
		t.Errorf("second Start = %v, want ErrRecording", err)
	}
	if src.opened != 1 {
		t.Errorf("opened = %d, want 1", src.opened)
	}
}

func TestRecorderStopWhenIdle(t *testing.T) {
	rec := NewRecorder(&fakeSource{}, testFormat)

	if _, err := rec.Stop(); !errors.Is(err, ErrIdle) {
		t.Errorf("Stop = %v, want ErrIdle", err)
	}
}

func TestRecorderNoInputDevice(t *testing.T) {
	deviceErr := errors.New("no default input device")
	rec := NewRecorder(&fakeSource{openErr: deviceErr}, testFormat)

	err := rec.Start(context.Background())
	if !errors.Is(err, deviceErr) {
		t.Fatalf("Start = %v, want device error", err)
	}
	if rec.Recording() {
		t.Error("failed Start should leave recorder idle")
	}
}

func TestRecorderReadError(t *testing.T) {
	readErr := errors.New("device unplugged")
	stream := &fakeStream{readErr: readErr}
	rec := NewRecorder(&fakeSource{stream: stream}, testFormat)

	if err := rec.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	_, err := rec.Stop()
	if !errors.Is(err, readErr) {
		t.Errorf("Stop = %v, want read error", err)
	}
}

func TestRecorderKeepsSamplesBeforeReadError(t *testing.T) {
	readErr := errors.New("device unplugged")
	stream := &fakeStream{block: []float32{0.1, 0.2}, tick: time.Millisecond, readErr: readErr, failAfter: 3}
	rec := NewRecorder(&fakeSource{stream: stream}, testFormat)

	if err := rec.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for rec.Recording() {
		if time.Now().After(deadline) {
			t.Fatal("Recording should turn false after the stream fails")
		}
		time.Sleep(time.Millisecond)
	}

	c, err := rec.Stop()
	if !errors.Is(err, readErr) {
		t.Errorf("Stop = %v, want read error", err)
	}
	if len(c.Samples) != 6 {
		t.Errorf("samples = %d, want the 3 blocks read before the failure", len(c.Samples))
	}
	if !stream.isClosed() {
		t.Error("stream should be closed")
	}
	if _, err := rec.Stop(); !errors.Is(err, ErrIdle) {
		t.Errorf("second Stop = %v, want ErrIdle", err)
	}
}

func TestRecorderRestart(t *testing.T) {
	stream := &fakeStream{block: []float32{0.5}, tick: time.Millisecond}
	rec := NewRecorder(&fakeSource{stream: stream}, testFormat)

	for i := 0; i < 2; i++ {
		if err := rec.Start(context.Background()); err != nil {
			t.Fatalf("Start #%d: %v", i, err)
		}
		time.Sleep(5 * time.Millisecond)
		if _, err := rec.Stop(); err != nil {
			t.Fatalf("Stop #%d: %v", i, err)
		}
	}
}
