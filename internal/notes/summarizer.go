// Package notes turns transcripts into study notes and answers questions
// about those notes.
package notes

import (
	"context"
	"fmt"
	"os"

	"github.com/jwulff/antnotes/internal/llm"
	"github.com/jwulff/antnotes/internal/logger"
	"github.com/jwulff/antnotes/internal/store"
)

// Summarizer writes Notes/<base>_notes.txt for a transcript.
type Summarizer struct {
	chat   llm.Client
	model  string
	store  *store.Store
	logger logger.Logger
}

func NewSummarizer(chat llm.Client, model string, st *store.Store, log logger.Logger) *Summarizer {
	return &Summarizer{chat: chat, model: model, store: st, logger: log}
}

// MakeNotes sends the whole transcript to the summary model and saves the
// reply, replacing earlier notes for the same transcript.
func (s *Summarizer) MakeNotes(ctx context.Context, transcriptPath string) (string, error) {
	content, err := os.ReadFile(transcriptPath)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}

	s.logger.Info(ctx, "Summarizing %s with %s", transcriptPath, s.model)
	reply, err := s.chat.Chat(ctx, s.model, fmt.Sprintf(summaryPrompt, content))
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}

	notesPath := s.store.Path(store.Notes, store.NotesName(transcriptPath))
	if err := os.WriteFile(notesPath, []byte(reply), 0o644); err != nil {
		return "", fmt.Errorf("write notes: %w", err)
	}

	s.logger.Info(ctx, "Notes saved: %s", notesPath)
	return notesPath, nil
}
