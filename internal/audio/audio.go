// Package audio owns microphone capture sessions and turns captured
// samples into compressed recordings.
package audio

import "context"

// Format describes the sample stream delivered by a Source.
type Format struct {
	SampleRate      int
	Channels        int
	FramesPerBuffer int
}

// Source opens input streams, e.g. the default microphone.
type Source interface {
	Open(format Format) (Stream, error)
}

// Stream delivers blocks of float32 samples in [-1, 1].
// Read blocks until the next block is available.
type Stream interface {
	Read(ctx context.Context) ([]float32, error)
	Close() error
}

// Capture is the finished result of one recording session.
type Capture struct {
	Samples    []float32
	SampleRate int
	Channels   int
}

// Empty reports whether nothing was captured.
func (c Capture) Empty() bool {
	return len(c.Samples) == 0
}
