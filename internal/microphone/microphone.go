// Package microphone reads the default input device through PortAudio.
package microphone

import (
	"context"
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"

	"github.com/jwulff/antnotes/internal/audio"
)

// Source opens the system default input device.
type Source struct{}

func NewSource() *Source {
	return &Source{}
}

// DefaultDeviceName reports the default input device, for diagnostics.
func DefaultDeviceName() (string, error) {
	if err := portaudio.Initialize(); err != nil {
		return "", fmt.Errorf("portaudio init: %w", err)
	}
	defer portaudio.Terminate()

	dev, err := portaudio.DefaultInputDevice()
	if err != nil {
		return "", err
	}
	return dev.Name, nil
}

// Open starts a blocking input stream with the requested format.
func (s *Source) Open(format audio.Format) (audio.Stream, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("portaudio init: %w", err)
	}

	buf := make([]float32, format.FramesPerBuffer*format.Channels)
	stream, err := portaudio.OpenDefaultStream(format.Channels, 0, float64(format.SampleRate), format.FramesPerBuffer, buf)
	if err != nil {
		portaudio.Terminate()
		return nil, err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, err
	}

	return &inputStream{stream: stream, buf: buf}, nil
}

type inputStream struct {
	stream *portaudio.Stream
	buf    []float32

	closeOnce sync.Once
}

// Read waits for one buffer of frames, roughly FramesPerBuffer/SampleRate.
func (s *inputStream) Read(ctx context.Context) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.stream.Read(); err != nil {
		// Overflow only means samples were dropped; keep going.
		if err != portaudio.InputOverflowed {
			return nil, err
		}
	}
	block := make([]float32, len(s.buf))
	copy(block, s.buf)
	return block, nil
}

func (s *inputStream) Close() error {
	var err error
	s.closeOnce.Do(func() {
		if stopErr := s.stream.Stop(); stopErr != nil {
			err = stopErr
		}
		if closeErr := s.stream.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		portaudio.Terminate()
	})
	return err
}
