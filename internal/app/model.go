package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jwulff/antnotes/internal/audio"
	"github.com/jwulff/antnotes/internal/logger"
	"github.com/jwulff/antnotes/internal/notes"
	"github.com/jwulff/antnotes/internal/opener"
	"github.com/jwulff/antnotes/internal/store"
	"github.com/jwulff/antnotes/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// Recorder controls the microphone capture session.
type Recorder interface {
	Start(ctx context.Context) error
	Stop() (audio.Capture, error)
	Recording() bool
}

type Encoder interface {
	Save(ctx context.Context, c audio.Capture, name string) (string, error)
}

type Transcriber interface {
	Transcribe(ctx context.Context, recordingPath string) (string, error)
}

type NoteMaker interface {
	MakeNotes(ctx context.Context, transcriptPath string) (string, error)
}

type Asker interface {
	Ask(ctx context.Context, notesPath, question string) (string, error)
}

type Exporter interface {
	Export(ctx context.Context, notesPath string) (string, error)
}

type Opener interface {
	Open(ctx context.Context, path string) error
}

// Deps are the services the UI drives. Changes may be nil when folder
// watching is unavailable.
type Deps struct {
	Store       *store.Store
	Recorder    Recorder
	Encoder     Encoder
	Transcriber Transcriber
	Notes       NoteMaker
	Asker       Asker
	Exporter    Exporter
	Opener      Opener
	Changes     <-chan struct{}
	Logger      logger.Logger
	Theme       string
}

// panel is one folder list. selected is -1 when nothing is selected.
type panel struct {
	entries  []store.Entry
	selected int
}

func (p panel) selectedName() (string, bool) {
	if p.selected < 0 || p.selected >= len(p.entries) {
		return "", false
	}
	return p.entries[p.selected].Name, true
}

type promptKind int

const (
	promptRecordingName promptKind = iota
	promptQuestion
)

// prompt is a modal single-line text input.
type prompt struct {
	kind   promptKind
	title  string
	label  string
	input  string
	target string
}

// dialog is a modal message the user dismisses. offset is the first body
// line shown when the body is taller than the dialog.
type dialog struct {
	title   string
	body    string
	isError bool
	offset  int
}

// Model is the root bubbletea model for the note taker.
type Model struct {
	ctx  context.Context
	deps Deps

	// Library
	panels       [3]panel
	focusedPanel store.Folder

	// Recording state
	recordGen      int
	pendingCapture *audio.Capture
	saving         int

	// Modals
	prompt *prompt
	dialog *dialog

	// In-flight adapter call, empty when idle
	busy string

	// UI state
	theme  string
	styles ui.Styles
	width  int
	height int
}

// New creates a Model. ctx is handed to every adapter call and is
// cancelled by the caller when the program exits.
func New(ctx context.Context, deps Deps) Model {
	if deps.Logger == nil {
		deps.Logger = logger.NewNop()
	}
	theme := deps.Theme
	if theme != ui.ThemeDark {
		theme = ui.ThemeLight
	}

	m := Model{
		ctx:          ctx,
		deps:         deps,
		focusedPanel: store.Recordings,
		theme:        theme,
		styles:       ui.NewStyles(ui.PaletteFor(theme)),
	}
	for i := range m.panels {
		m.panels[i].selected = -1
	}
	return m
}

type refreshMsg struct{}

// recordPollInterval is how often a running capture is checked for a
// stream that stopped on its own.
const recordPollInterval = 250 * time.Millisecond

type recordTickMsg struct{ gen int }

func recordTickCmd(gen int) tea.Cmd {
	return tea.Tick(recordPollInterval, func(time.Time) tea.Msg {
		return recordTickMsg{gen: gen}
	})
}

// Init lists the folders and starts listening for watcher notifications.
func (m Model) Init() tea.Cmd {
	initial := func() tea.Msg { return refreshMsg{} }
	if m.deps.Changes == nil {
		return initial
	}
	return tea.Batch(initial, waitForChangeCmd(m.deps.Changes))
}

// waitForChangeCmd blocks until the watcher reports activity.
func waitForChangeCmd(changes <-chan struct{}) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return FoldersChangedMsg{}
	}
}

func saveRecordingCmd(ctx context.Context, enc Encoder, c audio.Capture, name string) tea.Cmd {
	return func() tea.Msg {
		path, err := enc.Save(ctx, c, name)
		return RecordingSavedMsg{Path: path, Err: err}
	}
}

func transcribeCmd(ctx context.Context, t Transcriber, recordingPath string) tea.Cmd {
	return func() tea.Msg {
		path, err := t.Transcribe(ctx, recordingPath)
		return TranscribedMsg{Path: path, Err: err}
	}
}

func makeNotesCmd(ctx context.Context, n NoteMaker, transcriptPath string) tea.Cmd {
	return func() tea.Msg {
		path, err := n.MakeNotes(ctx, transcriptPath)
		return NotesMadeMsg{Path: path, Err: err}
	}
}

func askCmd(ctx context.Context, a Asker, notesPath, question string) tea.Cmd {
	return func() tea.Msg {
		answer, err := a.Ask(ctx, notesPath, question)
		return AnswerMsg{Answer: answer, Err: err}
	}
}

func exportCmd(ctx context.Context, e Exporter, notesPath string) tea.Cmd {
	return func() tea.Msg {
		path, err := e.Export(ctx, notesPath)
		return ExportedMsg{Path: path, Err: err}
	}
}

func openCmd(ctx context.Context, o Opener, path string) tea.Cmd {
	return func() tea.Msg {
		return OpenedMsg{Path: path, Err: o.Open(ctx, path)}
	}
}

// Update processes messages and returns the updated model and any commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case refreshMsg:
		m.refreshOrReport()
		return m, nil

	case FoldersChangedMsg:
		m.refreshOrReport()
		return m, waitForChangeCmd(m.deps.Changes)

	case recordTickMsg:
		if msg.gen != m.recordGen {
			return m, nil
		}
		if m.isRecording() || m.prompt != nil {
			return m, recordTickCmd(msg.gen)
		}
		m.finishRecording()
		return m, nil

	case RecordingSavedMsg:
		if m.saving > 0 {
			m.saving--
		}
		if msg.Err != nil {
			m.showError("save recording", msg.Err)
			return m, nil
		}
		m.refreshOrReport()
		m.showInfo("Saved", "Recording saved as "+msg.Path)
		return m, nil

	case TranscribedMsg:
		m.busy = ""
		if msg.Err != nil {
			m.showError("transcribe", msg.Err)
			return m, nil
		}
		m.refreshOrReport()
		m.showInfo("Success", "Transcript saved as "+msg.Path)
		return m, nil

	case NotesMadeMsg:
		m.busy = ""
		if msg.Err != nil {
			m.showError("make notes", msg.Err)
			return m, nil
		}
		m.refreshOrReport()
		m.showInfo("Success", "Notes saved as "+msg.Path)
		return m, nil

	case AnswerMsg:
		m.busy = ""
		if errors.Is(msg.Err, notes.ErrEmptyQuestion) {
			return m, nil
		}
		if msg.Err != nil {
			m.showError("ask", msg.Err)
			return m, nil
		}
		m.showInfo("Answer", msg.Answer)
		return m, nil

	case ExportedMsg:
		m.busy = ""
		if msg.Err != nil {
			m.showError("export", msg.Err)
			return m, nil
		}
		m.showInfo("Success", "Exported to "+msg.Path)
		return m, nil

	case OpenedMsg:
		switch {
		case errors.Is(msg.Err, opener.ErrNotFound):
			m.showErrorText("File not found: " + msg.Path)
		case msg.Err != nil:
			m.showErrorText("Failed to open file: " + msg.Err.Error())
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes key presses. Open modals take every key but ctrl+c.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if msg.Type == tea.KeySpace {
		key = KeySpace
	}

	if key == KeyCtrlC {
		return m.quit()
	}
	if m.dialog != nil {
		return m.handleDialogKey(key)
	}
	if m.prompt != nil {
		return m.handlePromptKey(msg)
	}

	switch key {
	case KeyQuit:
		return m.quit()

	case KeySpace, KeyRecord:
		cmd := m.toggleRecording()
		return m, cmd

	case KeyTranscribe:
		path, ok := m.selectedPath(store.Recordings)
		if !ok || m.busy != "" || m.deps.Transcriber == nil {
			return m, nil
		}
		m.busy = "Transcribing " + store.BaseName(path) + "..."
		return m, transcribeCmd(m.ctx, m.deps.Transcriber, path)

	case KeyMakeNotes:
		path, ok := m.selectedPath(store.Transcripts)
		if !ok || m.busy != "" || m.deps.Notes == nil {
			return m, nil
		}
		m.busy = "Making notes from " + store.BaseName(path) + "..."
		return m, makeNotesCmd(m.ctx, m.deps.Notes, path)

	case KeyAsk:
		path, ok := m.selectedPath(store.Notes)
		if !ok || m.busy != "" || m.deps.Asker == nil {
			return m, nil
		}
		m.prompt = &prompt{
			kind:   promptQuestion,
			title:  "Ask Question",
			label:  "Enter your question:",
			target: path,
		}
		return m, nil

	case KeyExport:
		path, ok := m.selectedPath(store.Notes)
		if !ok || m.busy != "" || m.deps.Exporter == nil {
			return m, nil
		}
		m.busy = "Exporting " + store.BaseName(path) + "..."
		return m, exportCmd(m.ctx, m.deps.Exporter, path)

	case KeyEnter, KeyOpen:
		path, ok := m.selectedPath(m.focusedPanel)
		if !ok || m.deps.Opener == nil {
			return m, nil
		}
		return m, openCmd(m.ctx, m.deps.Opener, path)

	case KeyDelete, KeyDeleteAlt:
		m.deleteSelected()
		return m, nil

	case KeyRefresh, KeyRefreshAlt:
		m.refreshOrReport()
		return m, nil

	case KeyTheme:
		m.theme = ui.Toggle(m.theme)
		m.styles = ui.NewStyles(ui.PaletteFor(m.theme))
		return m, nil

	case KeyTab:
		m.focusedPanel = (m.focusedPanel + 1) % store.Folder(len(m.panels))
		return m, nil

	case KeyShiftTab:
		m.focusedPanel = (m.focusedPanel + store.Folder(len(m.panels)) - 1) % store.Folder(len(m.panels))
		return m, nil

	case KeyRecordings:
		m.focusedPanel = store.Recordings
		return m, nil

	case KeyTranscripts:
		m.focusedPanel = store.Transcripts
		return m, nil

	case KeyNotes:
		m.focusedPanel = store.Notes
		return m, nil

	case KeyJ, KeyDown:
		p := &m.panels[m.focusedPanel]
		if p.selected < len(p.entries)-1 {
			p.selected++
		}
		return m, nil

	case KeyK, KeyUp:
		p := &m.panels[m.focusedPanel]
		if p.selected > 0 {
			p.selected--
		} else if len(p.entries) > 0 {
			p.selected = 0
		}
		return m, nil

	case KeyEsc:
		m.panels[m.focusedPanel].selected = -1
		return m, nil
	}

	return m, nil
}

// handleDialogKey scrolls a tall dialog body or dismisses the dialog.
func (m Model) handleDialogKey(key string) (tea.Model, tea.Cmd) {
	d := *m.dialog
	rows := m.dialogRows()
	last := max(0, len(m.dialogLines(d.body))-rows)

	switch key {
	case KeyEnter, KeyEsc, KeySpace, KeyQuit:
		m.dialog = nil
		return m, nil
	case KeyDown, KeyJ:
		d.offset++
	case KeyUp, KeyK:
		d.offset--
	case KeyPgDown:
		d.offset += rows
	case KeyPgUp:
		d.offset -= rows
	case KeyHome:
		d.offset = 0
	case KeyEnd:
		d.offset = last
	}
	d.offset = min(max(d.offset, 0), last)
	m.dialog = &d
	return m, nil
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := *m.prompt

	switch msg.Type {
	case tea.KeyEnter:
		return m.submitPrompt()

	case tea.KeyEsc:
		m.prompt = nil
		m.pendingCapture = nil
		return m, nil

	case tea.KeyBackspace:
		if r := []rune(p.input); len(r) > 0 {
			p.input = string(r[:len(r)-1])
		}

	case tea.KeySpace:
		p.input += " "

	case tea.KeyRunes:
		p.input += string(msg.Runes)
	}

	m.prompt = &p
	return m, nil
}

func (m Model) submitPrompt() (tea.Model, tea.Cmd) {
	p := m.prompt
	m.prompt = nil
	input := strings.TrimSpace(p.input)

	switch p.kind {
	case promptRecordingName:
		capture := m.pendingCapture
		m.pendingCapture = nil
		if input == "" || capture == nil || m.deps.Encoder == nil {
			m.deps.Logger.Info(m.ctx, "Recording discarded")
			return m, nil
		}
		m.saving++
		return m, saveRecordingCmd(m.ctx, m.deps.Encoder, *capture, input)

	case promptQuestion:
		if input == "" {
			return m, nil
		}
		m.busy = "Thinking..."
		return m, askCmd(m.ctx, m.deps.Asker, p.target, input)
	}
	return m, nil
}

// isRecording reports whether the microphone is still capturing.
func (m Model) isRecording() bool {
	return m.deps.Recorder != nil && m.deps.Recorder.Recording()
}

// toggleRecording starts a capture or stops it and asks for a name.
func (m *Model) toggleRecording() tea.Cmd {
	if m.deps.Recorder == nil {
		return nil
	}

	if m.isRecording() {
		m.finishRecording()
		return nil
	}

	err := m.deps.Recorder.Start(m.ctx)
	if errors.Is(err, audio.ErrRecording) {
		// the stream died before the poll noticed; collect what it captured
		m.finishRecording()
		return nil
	}
	if err != nil {
		m.showError("start recording", err)
		return nil
	}
	m.recordGen++
	m.deps.Logger.Info(m.ctx, "Recording started")
	return recordTickCmd(m.recordGen)
}

// finishRecording collects the capture and asks for a name. Samples read
// before a stream failure are still offered for saving.
func (m *Model) finishRecording() {
	capture, err := m.deps.Recorder.Stop()
	if errors.Is(err, audio.ErrIdle) {
		return
	}
	if err != nil && capture.Empty() {
		m.showError("stop recording", err)
		return
	}
	if capture.Empty() {
		return
	}

	m.pendingCapture = &capture
	m.prompt = &prompt{
		kind:  promptRecordingName,
		title: "Save",
		label: "Enter recording name:",
	}
	if err != nil {
		m.showError("record", err)
	}
}

func (m *Model) deleteSelected() {
	f := m.focusedPanel
	name, ok := m.panels[f].selectedName()
	if !ok {
		return
	}
	path := m.deps.Store.Path(f, name)
	if err := m.deps.Store.Delete(f, name); err != nil {
		m.deps.Logger.Error(m.ctx, "Delete failed: %v", err)
		m.showErrorText("Failed to delete file: " + err.Error())
		return
	}
	m.deps.Logger.Info(m.ctx, "Deleted %s", path)
	m.refreshOrReport()
	m.showInfo("Success", "File deleted: "+path)
}

// selectedPath returns the full path of the selection in folder f.
func (m Model) selectedPath(f store.Folder) (string, bool) {
	name, ok := m.panels[f].selectedName()
	if !ok {
		return "", false
	}
	return m.deps.Store.Path(f, name), true
}

// refresh re-lists every folder. A selection survives only if its file is
// still listed.
func (m *Model) refresh() error {
	for _, f := range store.Folders {
		entries, err := m.deps.Store.List(f)
		if err != nil {
			return err
		}
		p := &m.panels[f]
		name, had := p.selectedName()
		p.entries = entries
		p.selected = -1
		if !had {
			continue
		}
		for i, e := range entries {
			if e.Name == name {
				p.selected = i
				break
			}
		}
	}
	return nil
}

func (m *Model) refreshOrReport() {
	if err := m.refresh(); err != nil {
		m.showError("refresh", err)
	}
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	if m.deps.Recorder != nil {
		_, err := m.deps.Recorder.Stop()
		switch {
		case errors.Is(err, audio.ErrIdle):
		case err != nil:
			m.deps.Logger.Warn(m.ctx, "Stop on quit: %v", err)
		default:
			m.deps.Logger.Info(m.ctx, "Recording discarded on quit")
		}
	}
	return *m, tea.Quit
}

func (m *Model) showInfo(title, body string) {
	m.dialog = &dialog{title: title, body: body}
}

func (m *Model) showError(action string, err error) {
	m.deps.Logger.Error(m.ctx, "Failed to %s: %v", action, err)
	m.showErrorText(err.Error())
}

func (m *Model) showErrorText(body string) {
	m.dialog = &dialog{title: "Error", body: body, isError: true}
}
