package app

// RecordingSavedMsg is sent when a named capture has been encoded.
type RecordingSavedMsg struct {
	Path string
	Err  error
}

// TranscribedMsg carries the result of transcribing a recording.
type TranscribedMsg struct {
	Path string
	Err  error
}

// NotesMadeMsg carries the result of summarizing a transcript.
type NotesMadeMsg struct {
	Path string
	Err  error
}

// AnswerMsg carries the model's answer to a question about a notes file.
type AnswerMsg struct {
	Answer string
	Err    error
}

// ExportedMsg carries the result of exporting notes to a document.
type ExportedMsg struct {
	Path string
	Err  error
}

// OpenedMsg is sent after the platform handler was asked to open a file.
type OpenedMsg struct {
	Path string
	Err  error
}

// FoldersChangedMsg is sent when the folder watcher reports activity.
type FoldersChangedMsg struct{}
