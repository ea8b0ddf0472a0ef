package transcribe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jwulff/antnotes/internal/executor"
	"github.com/jwulff/antnotes/internal/logger"
)

type WhisperCPPConfig struct {
	BinaryPath string
	ModelPath  string
	FFmpegPath string
	Language   string
	Threads    int
	TempDir    string
}

// WhisperCPP runs the whisper.cpp command line tool on a 16 kHz mono copy
// of the input.
type WhisperCPP struct {
	cfg      WhisperCPPConfig
	executor executor.Executor
	logger   logger.Logger
}

func NewWhisperCPP(cfg WhisperCPPConfig, exec executor.Executor, log logger.Logger) *WhisperCPP {
	return &WhisperCPP{cfg: cfg, executor: exec, logger: log}
}

func (w *WhisperCPP) Name() string { return "whisper-cpp" }

func (w *WhisperCPP) Transcribe(ctx context.Context, audioPath string) (string, error) {
	tempDir, err := os.MkdirTemp(w.cfg.TempDir, "antnotes-whisper-*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	wavPath := filepath.Join(tempDir, "audio.wav")
	if err := w.resample(ctx, audioPath, wavPath); err != nil {
		return "", err
	}

	// whisper-cli appends .txt to the output prefix
	outputPrefix := filepath.Join(tempDir, "transcript")

	args := []string{
		"-m", w.cfg.ModelPath,
		"-f", wavPath,
		"-l", w.cfg.Language,
		"-t", strconv.Itoa(w.cfg.Threads),
		"-nt",
		"-otxt",
		"-of", outputPrefix,
	}

	w.logger.Info(ctx, "Starting transcription with %d threads: %s", w.cfg.Threads, audioPath)
	if _, err := w.executor.Execute(ctx, w.cfg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	data, err := os.ReadFile(outputPrefix + ".txt")
	if err != nil {
		return "", fmt.Errorf("read whisper output: %w", err)
	}
	return string(data), nil
}

// resample converts any input ffmpeg understands into the 16 kHz mono PCM
// whisper.cpp expects.
func (w *WhisperCPP) resample(ctx context.Context, in, out string) error {
	args := []string{
		"-i", in,
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		out,
	}
	if _, err := w.executor.Execute(ctx, w.cfg.FFmpegPath, args...); err != nil {
		return fmt.Errorf("ffmpeg resample: %w", err)
	}
	return nil
}
