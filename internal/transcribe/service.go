// Package transcribe turns recordings into transcript files.
package transcribe

import (
	"context"
	"fmt"
	"os"

	"github.com/jwulff/antnotes/internal/logger"
	"github.com/jwulff/antnotes/internal/store"
)

// Service writes one transcript per recording.
type Service struct {
	engine Engine
	store  *store.Store
	logger logger.Logger
}

func NewService(engine Engine, st *store.Store, log logger.Logger) *Service {
	return &Service{engine: engine, store: st, logger: log}
}

// Transcribe runs the engine on recordingPath and writes
// Transcripts/<base>_transcript.txt, replacing any previous transcript.
func (s *Service) Transcribe(ctx context.Context, recordingPath string) (string, error) {
	if _, err := os.Stat(recordingPath); err != nil {
		return "", fmt.Errorf("recording: %w", err)
	}

	text, err := s.engine.Transcribe(ctx, recordingPath)
	if err != nil {
		return "", fmt.Errorf("%s: %w", s.engine.Name(), err)
	}

	transcriptPath := s.store.Path(store.Transcripts, store.TranscriptName(recordingPath))
	if err := os.WriteFile(transcriptPath, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("write transcript: %w", err)
	}

	s.logger.Info(ctx, "Transcript saved: %s", transcriptPath)
	return transcriptPath, nil
}
