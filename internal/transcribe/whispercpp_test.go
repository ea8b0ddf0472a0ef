package transcribe

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/jwulff/antnotes/internal/logger"
)

// fakeTools imitates ffmpeg and whisper-cli by writing their output files.
type fakeTools struct {
	text       string
	whisperErr error
	calls      []string
}

func (f *fakeTools) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, name+" "+strings.Join(args, " "))
	switch name {
	case "ffmpeg":
		return "", os.WriteFile(args[len(args)-1], []byte("RIFF"), 0o644)
	case "whisper-cli":
		if f.whisperErr != nil {
			return "", f.whisperErr
		}
		prefix := args[len(args)-1]
		return "", os.WriteFile(prefix+".txt", []byte("  "+f.text+"\n"), 0o644)
	}
	return "", errors.New("unexpected command " + name)
}

func newTestWhisper(tools *fakeTools, tempDir string) *WhisperCPP {
	return NewWhisperCPP(WhisperCPPConfig{
		BinaryPath: "whisper-cli",
		ModelPath:  "models/ggml-large-v3-turbo.bin",
		FFmpegPath: "ffmpeg",
		Language:   "auto",
		Threads:    4,
		TempDir:    tempDir,
	}, tools, logger.NewNop())
}

func TestWhisperCPPTranscribe(t *testing.T) {
	tempDir := t.TempDir()
	tools := &fakeTools{text: "hello lecture"}
	w := newTestWhisper(tools, tempDir)

	text, err := w.Transcribe(context.Background(), "Recordings/lec1.mp3")
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if text != "  hello lecture\n" {
		t.Errorf("text = %q", text)
	}

	if len(tools.calls) != 2 {
		t.Fatalf("calls = %d, want 2", len(tools.calls))
	}
	if !strings.Contains(tools.calls[0], "-ar 16000") {
		t.Errorf("ffmpeg call = %q", tools.calls[0])
	}
	if !strings.Contains(tools.calls[1], "-m models/ggml-large-v3-turbo.bin") || !strings.Contains(tools.calls[1], "-otxt") {
		t.Errorf("whisper call = %q", tools.calls[1])
	}

	leftovers, _ := os.ReadDir(tempDir)
	if len(leftovers) != 0 {
		t.Errorf("temp files left behind: %d", len(leftovers))
	}
}

func TestWhisperCPPFailure(t *testing.T) {
	tools := &fakeTools{whisperErr: errors.New("failed to load model")}
	w := newTestWhisper(tools, t.TempDir())

	_, err := w.Transcribe(context.Background(), "Recordings/lec1.mp3")
	if err == nil || !strings.Contains(err.Error(), "failed to load model") {
		t.Fatalf("err = %v", err)
	}
}
