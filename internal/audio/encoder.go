package audio

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jwulff/antnotes/internal/executor"
	"github.com/jwulff/antnotes/internal/logger"
	"github.com/jwulff/antnotes/internal/store"
)

// ErrEmptyName is returned when a recording is saved without a name.
var ErrEmptyName = errors.New("recording name is empty")

const bitDepth = 16

// Encoder writes captures into the Recordings folder as MP3.
type Encoder struct {
	store      *store.Store
	executor   executor.Executor
	logger     logger.Logger
	ffmpegPath string
	bitrate    string
}

func NewEncoder(st *store.Store, exec executor.Executor, log logger.Logger, ffmpegPath, bitrate string) *Encoder {
	return &Encoder{
		store:      st,
		executor:   exec,
		logger:     log,
		ffmpegPath: ffmpegPath,
		bitrate:    bitrate,
	}
}

// Save writes the capture as Recordings/<name>.mp3 and returns its path.
// The intermediate WAV is always removed.
func (e *Encoder) Save(ctx context.Context, c Capture, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if err := store.ValidateName(name); err != nil {
		return "", err
	}
	if c.Empty() {
		return "", fmt.Errorf("nothing was captured")
	}

	wavPath := e.store.Path(store.Recordings, name+".wav")
	mp3Path := e.store.Path(store.Recordings, store.RecordingName(name))

	if err := writeWAV(wavPath, c); err != nil {
		os.Remove(wavPath)
		return "", fmt.Errorf("write wav: %w", err)
	}
	defer e.removeTemp(ctx, wavPath)

	args := []string{
		"-i", wavPath,
		"-codec:a", "libmp3lame",
		"-b:a", e.bitrate,
		"-y",
		mp3Path,
	}
	if _, err := e.executor.Execute(ctx, e.ffmpegPath, args...); err != nil {
		return "", fmt.Errorf("ffmpeg encode mp3: %w", err)
	}

	e.logger.Info(ctx, "Recording saved: %s (%d samples at %d Hz)", mp3Path, len(c.Samples), c.SampleRate)
	return mp3Path, nil
}

func (e *Encoder) removeTemp(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		e.logger.Warn(ctx, "Failed to remove temp file %s: %v", path, err)
	}
}

// writeWAV encodes float samples as 16-bit PCM.
func writeWAV(path string, c Capture) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	channels := c.Channels
	if channels <= 0 {
		channels = 1
	}

	enc := wav.NewEncoder(f, c.SampleRate, bitDepth, channels, 1)
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  c.SampleRate,
		},
		Data:           make([]int, len(c.Samples)),
		SourceBitDepth: bitDepth,
	}
	for i, s := range c.Samples {
		buf.Data[i] = toPCM16(s)
	}

	if err := enc.Write(buf); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

func toPCM16(s float32) int {
	v := math.Max(-1, math.Min(1, float64(s)))
	return int(math.Round(v * math.MaxInt16))
}
