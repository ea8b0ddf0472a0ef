package notes

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jwulff/antnotes/internal/llm"
	"github.com/jwulff/antnotes/internal/logger"
)

var ErrEmptyQuestion = errors.New("question is empty")

// Asker answers free-form questions grounded in a notes file. Answers are
// never written to disk.
type Asker struct {
	chat   llm.Client
	model  string
	logger logger.Logger
}

func NewAsker(chat llm.Client, model string, log logger.Logger) *Asker {
	return &Asker{chat: chat, model: model, logger: log}
}

func (a *Asker) Ask(ctx context.Context, notesPath, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", ErrEmptyQuestion
	}

	content, err := os.ReadFile(notesPath)
	if err != nil {
		return "", fmt.Errorf("read notes: %w", err)
	}

	a.logger.Debug(ctx, "Asking %s about %s", a.model, notesPath)
	answer, err := a.chat.Chat(ctx, a.model, fmt.Sprintf(questionPrompt, content, question))
	if err != nil {
		return "", fmt.Errorf("ask: %w", err)
	}
	return answer, nil
}
