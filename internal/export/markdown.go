package export

import (
	"regexp"
	"strings"
)

type blockKind int

const (
	blockText blockKind = iota
	blockHeading
	blockBullet
	blockNumbered
)

// block is one paragraph of the notes after markdown markers are stripped.
type block struct {
	kind  blockKind
	level int
	text  string
}

// span is a run of text inside a block, bold or plain.
type span struct {
	text string
	bold bool
}

var (
	reHeading  = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBullet   = regexp.MustCompile(`^[\-\*+]\s+(.+)$`)
	reNumbered = regexp.MustCompile(`^\d+[.)]\s+.+$`)
	reBold     = regexp.MustCompile(`\*\*(.+?)\*\*`)
)

func parseMarkdown(markdown string) []block {
	var blocks []block
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "", trimmed == "---", trimmed == "***":
		case reHeading.MatchString(trimmed):
			m := reHeading.FindStringSubmatch(trimmed)
			blocks = append(blocks, block{kind: blockHeading, level: len(m[1]), text: m[2]})
		case reBullet.MatchString(trimmed):
			m := reBullet.FindStringSubmatch(trimmed)
			blocks = append(blocks, block{kind: blockBullet, text: m[1]})
		case reNumbered.MatchString(trimmed):
			blocks = append(blocks, block{kind: blockNumbered, text: trimmed})
		default:
			blocks = append(blocks, block{kind: blockText, text: trimmed})
		}
	}
	return blocks
}

// spans splits text on **bold** markers.
func spans(text string) []span {
	var out []span
	last := 0
	for _, loc := range reBold.FindAllStringSubmatchIndex(text, -1) {
		if plain := cleanInline(text[last:loc[0]]); plain != "" {
			out = append(out, span{text: plain})
		}
		out = append(out, span{text: cleanInline(text[loc[2]:loc[3]]), bold: true})
		last = loc[1]
	}
	if plain := cleanInline(text[last:]); plain != "" {
		out = append(out, span{text: plain})
	}
	return out
}

func cleanInline(s string) string {
	return strings.NewReplacer("**", "", "__", "", "`", "").Replace(s)
}
