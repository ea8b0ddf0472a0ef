package logger

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zapcore.Level
	}{
		{"debug level", "debug", zapcore.DebugLevel},
		{"info level", "info", zapcore.InfoLevel},
		{"warn level", "WARN", zapcore.WarnLevel},
		{"error level", "error", zapcore.ErrorLevel},
		{"invalid level", "invalid", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseLevel(tt.level); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestNewWritesToFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "antnotes.log")

	log := New("info", path)
	log.Debug(ctx, "debug message")
	log.Info(ctx, "formatted message: %s %d", "test", 123)

	impl := log.(*implLogger)
	_ = impl.sugar.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "formatted message: test 123") {
		t.Errorf("log file missing info line: %s", data)
	}
	if strings.Contains(string(data), "debug message") {
		t.Error("debug line should be filtered at info level")
	}
}

func TestNopLogger(t *testing.T) {
	ctx := context.Background()
	log := NewNop()

	// These should not panic
	log.Debug(ctx, "debug message")
	log.Info(ctx, "info message")
	log.Warn(ctx, "warn message")
	log.Error(ctx, "error message")
}
