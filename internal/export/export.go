// Package export renders notes files as Word documents.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/jwulff/antnotes/internal/logger"
	"github.com/jwulff/antnotes/internal/store"
)

// Dir holds exported documents. It is created on first export and is not
// one of the browsed folders.
const Dir = "Exports"

const (
	fontName = "Calibri"
	fontSize = 11
	color    = "000000"
)

type Exporter struct {
	dir    string
	logger logger.Logger
}

func New(st *store.Store, log logger.Logger) *Exporter {
	return &Exporter{dir: filepath.Join(st.Root(), Dir), logger: log}
}

// Export writes Exports/<base>.docx for notesPath and returns its path.
func (e *Exporter) Export(ctx context.Context, notesPath string) (string, error) {
	content, err := os.ReadFile(notesPath)
	if err != nil {
		return "", fmt.Errorf("read notes: %w", err)
	}
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", Dir, err)
	}

	base := store.BaseName(notesPath)
	outPath := filepath.Join(e.dir, base+".docx")
	if err := writeDocx(base, string(content), outPath); err != nil {
		return "", fmt.Errorf("write docx: %w", err)
	}

	e.logger.Info(ctx, "Exported %s to %s", notesPath, outPath)
	return outPath, nil
}

func writeDocx(title, markdown, outPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addRun(doc.AddParagraph(""), span{text: title, bold: true}, 18)

	for _, b := range parseMarkdown(markdown) {
		p := doc.AddParagraph("")
		switch b.kind {
		case blockHeading:
			addRun(p, span{text: cleanInline(b.text), bold: true}, headingSize(b.level))
		case blockBullet:
			addRun(p, span{text: "• "}, fontSize)
			addSpans(p, b.text)
		default:
			addSpans(p, b.text)
		}
	}

	return doc.SaveTo(outPath)
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 14
	case 3:
		return 12
	default:
		return fontSize
	}
}

func addSpans(p *docx.Paragraph, text string) {
	for _, s := range spans(text) {
		addRun(p, s, fontSize)
	}
}

func addRun(p *docx.Paragraph, s span, size uint64) {
	run := p.AddText(s.text).Font(fontName).Size(size).Color(color)
	if s.bold {
		run.Bold(true)
	}
}
