package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jwulff/antnotes/internal/store"
	"github.com/jwulff/antnotes/internal/ui"
)

const appTitle = "A.N.T AI NOTE TAKER"

// View renders the full TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	if m.dialog != nil || m.prompt != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderModal(),
			lipgloss.WithWhitespaceBackground(ui.PaletteFor(m.theme).Background))
	}

	divider := m.styles.Divider.Render(strings.Repeat("─", m.width))

	sections := []string{
		m.renderHeader(),
		m.renderButtons(),
		divider,
		m.renderPanels(),
		divider,
		m.renderStatus(),
		m.renderFooter(),
	}
	return strings.Join(sections, "\n")
}

func (m Model) renderHeader() string {
	title := m.styles.Title.Render(appTitle)
	if m.isRecording() {
		return title + "  " + m.styles.RecordingDot.Render("● REC")
	}
	return title
}

func (m Model) renderButtons() string {
	record := ui.Button("Record [Space]", ui.ColorGreen)
	if m.isRecording() {
		record = ui.Button("Stop [Space]", ui.ColorRed)
	}

	themeLabel := "Dark Mode [m]"
	if m.theme == ui.ThemeDark {
		themeLabel = "Light Mode [m]"
	}

	buttons := []string{
		record,
		m.actionButton("Transcribe [t]", ui.ColorBlue, store.Recordings),
		m.actionButton("Make Notes [n]", ui.ColorOrange, store.Transcripts),
		m.actionButton("Ask [a]", ui.ColorPurple, store.Notes),
		m.actionButton("Export [e]", ui.ColorBlue, store.Notes),
		ui.Button("Refresh [F5]", ui.ColorGray),
		ui.Button("Delete [x]", ui.ColorRed),
		ui.Button(themeLabel, ui.ColorGray),
	}
	return strings.Join(buttons, " ")
}

// actionButton greys out a button whose source panel has no selection.
func (m Model) actionButton(label string, color lipgloss.Color, source store.Folder) string {
	if _, ok := m.panels[source].selectedName(); !ok || m.busy != "" {
		return ui.DisabledButton(label)
	}
	return ui.Button(label, color)
}

func (m Model) panelWidth() int {
	return max(16, (m.width-2)/len(m.panels))
}

func (m Model) panelHeight() int {
	// header, buttons, two dividers, status, footer
	reserved := 6
	return max(3, m.height-reserved)
}

func (m Model) renderPanels() string {
	width := m.panelWidth()
	height := m.panelHeight()

	columns := make([][]string, len(store.Folders))
	for i, f := range store.Folders {
		columns[i] = strings.Split(m.renderPanel(f, width, height), "\n")
	}

	divider := m.styles.Divider.Render("│")
	rows := make([]string, 0, height)
	for row := 0; row < height; row++ {
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i] = col[row]
		}
		rows = append(rows, strings.Join(cells, divider))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderPanel(f store.Folder, width, height int) string {
	p := m.panels[f]
	focused := f == m.focusedPanel

	title := fmt.Sprintf("%d %s (%d)", int(f)+1, strings.ToUpper(f.Dir()), len(p.entries))
	var header string
	if focused {
		header = m.styles.PanelTitleActive.Render(title)
	} else {
		header = m.styles.PanelTitle.Render(title)
	}

	lines := []string{header}

	if len(p.entries) == 0 {
		lines = append(lines, m.styles.Dim.Render("  (empty)"))
	} else {
		rows := height - 1
		start := 0
		if p.selected >= rows {
			start = p.selected - rows + 1
		}
		for i := start; i < len(p.entries) && i < start+rows; i++ {
			name := truncateToWidth(p.entries[i].Name, width-2)
			switch {
			case i == p.selected && focused:
				lines = append(lines, m.styles.Selected.Render("> "+name))
			case i == p.selected:
				lines = append(lines, m.styles.Item.Render("> "+name))
			default:
				lines = append(lines, m.styles.Item.Render("  "+name))
			}
		}
	}

	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, l := range lines {
		lines[i] = m.padRight(l, width)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderStatus() string {
	var parts []string
	if m.busy != "" {
		parts = append(parts, "⟳ "+m.busy)
	}
	if m.saving > 0 {
		parts = append(parts, "⟳ Saving recording...")
	}
	if m.isRecording() {
		parts = append(parts, "Recording from the default microphone...")
	}
	if len(parts) == 0 {
		parts = append(parts, "Ready")
	}
	return m.styles.Status.Render(strings.Join(parts, "  "))
}

func (m Model) renderFooter() string {
	keys := [][2]string{
		{"Space", " Record"},
		{"Tab/1-3", " Focus"},
		{"j/k", " Select"},
		{"Esc", " Clear"},
		{"Enter", " Open"},
		{"F5", " Refresh"},
		{"q", " Quit"},
	}
	if m.isRecording() {
		keys[0][1] = " Stop"
	}

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, m.styles.FooterKey.Render(k[0])+m.styles.FooterDesc.Render(k[1]))
	}
	return strings.Join(parts, "  ")
}

func (m Model) modalWidth() int {
	return min(max(30, m.width-10), 80)
}

// dialogRows is how many body lines fit in a dialog.
func (m Model) dialogRows() int {
	return max(3, m.height-10)
}

func (m Model) dialogLines(body string) []string {
	return wrapText(body, m.modalWidth()-6)
}

func (m Model) renderModal() string {
	width := m.modalWidth()
	bodyWidth := width - 6

	// a dialog sits above a prompt and takes keys first
	var lines []string
	switch {
	case m.dialog != nil:
		if m.dialog.isError {
			lines = append(lines, m.styles.ErrorTitle.Render(m.dialog.title), "")
		} else {
			lines = append(lines, m.styles.DialogTitle.Render(m.dialog.title), "")
		}
		body := m.dialogLines(m.dialog.body)
		rows := m.dialogRows()
		if len(body) <= rows {
			lines = append(lines, body...)
			lines = append(lines, "", m.styles.Dim.Render("Enter to close"))
			break
		}
		start := min(m.dialog.offset, len(body)-rows)
		lines = append(lines, body[start:start+rows]...)
		lines = append(lines, "", m.styles.Dim.Render(fmt.Sprintf(
			"Lines %d-%d of %d. ↑/↓ PgUp/PgDn to scroll, Enter to close",
			start+1, start+rows, len(body))))
	case m.prompt != nil:
		lines = append(lines, m.styles.DialogTitle.Render(m.prompt.title), "")
		lines = append(lines, wrapText(m.prompt.label, bodyWidth)...)
		lines = append(lines, m.styles.Input.Render(m.prompt.input+"▌"), "")
		lines = append(lines, m.styles.Dim.Render("Enter to confirm, Esc to cancel"))
	}

	return m.styles.Dialog.Width(width).Render(strings.Join(lines, "\n"))
}

// Helpers

// padRight fills s to width with the theme background.
func (m Model) padRight(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + m.styles.Base.Render(strings.Repeat(" ", width-visible))
}

func truncateToWidth(s string, width int) string {
	runes := []rune(s)
	if width <= 1 || len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}

func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		var current string
		for _, word := range strings.Fields(paragraph) {
			if current == "" {
				current = word
			} else if len(current)+1+len(word) <= width {
				current += " " + word
			} else {
				lines = append(lines, current)
				current = word
			}
		}
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
