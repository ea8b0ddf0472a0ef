package store

import (
	"path/filepath"
	"strings"
)

const (
	RecordingExt     = ".mp3"
	TranscriptSuffix = "_transcript"
	NotesSuffix      = "_notes"
	TextExt          = ".txt"
)

// BaseName strips the directory and extension from path.
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// RecordingName is the file name for a recording saved under name.
func RecordingName(name string) string {
	return name + RecordingExt
}

// TranscriptName derives the transcript file name from a recording path.
func TranscriptName(recordingPath string) string {
	return BaseName(recordingPath) + TranscriptSuffix + TextExt
}

// NotesName derives the notes file name from a transcript path.
func NotesName(transcriptPath string) string {
	return BaseName(transcriptPath) + NotesSuffix + TextExt
}
