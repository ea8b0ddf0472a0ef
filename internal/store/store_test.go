package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func createTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return s
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestOpenCreatesFolders(t *testing.T) {
	root := t.TempDir()

	if _, err := Open(root); err != nil {
		t.Fatalf("Open: %v", err)
	}
	for _, dir := range []string{"Recordings", "Transcripts", "Notes"} {
		info, err := os.Stat(filepath.Join(root, dir))
		if err != nil {
			t.Fatalf("stat %s: %v", dir, err)
		}
		if !info.IsDir() {
			t.Errorf("%s should be a directory", dir)
		}
	}

	// Second open on an existing layout is a no-op.
	writeFile(t, filepath.Join(root, "Notes", "keep.txt"))
	if _, err := Open(root); err != nil {
		t.Fatalf("second Open: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "Notes", "keep.txt")); err != nil {
		t.Errorf("existing file should survive re-open: %v", err)
	}
}

func TestListSortedByName(t *testing.T) {
	s := createTestStore(t)

	for _, name := range []string{"lec2.mp3", "a.mp3", "lec10.mp3"} {
		writeFile(t, s.Path(Recordings, name))
	}

	entries, err := s.List(Recordings)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	want := []string{"a.mp3", "lec10.mp3", "lec2.mp3"}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i, w := range want {
		if entries[i].Name != w {
			t.Errorf("entries[%d] = %q, want %q", i, entries[i].Name, w)
		}
	}
	if entries[0].Size != 1 {
		t.Errorf("size = %d, want 1", entries[0].Size)
	}
}

func TestListEmpty(t *testing.T) {
	s := createTestStore(t)

	entries, err := s.List(Notes)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}
}

func TestDeleteOnlyTouchesOneFolder(t *testing.T) {
	s := createTestStore(t)

	writeFile(t, s.Path(Recordings, "lec1.mp3"))
	writeFile(t, s.Path(Transcripts, "lec1.mp3"))
	writeFile(t, s.Path(Notes, "lec1.mp3"))

	if err := s.Delete(Recordings, "lec1.mp3"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	recs, _ := s.List(Recordings)
	if len(recs) != 0 {
		t.Errorf("recordings = %d, want 0", len(recs))
	}
	for _, f := range []Folder{Transcripts, Notes} {
		entries, _ := s.List(f)
		if len(entries) != 1 {
			t.Errorf("%s = %d entries, want 1", f, len(entries))
		}
	}
}

func TestDeleteMissingFile(t *testing.T) {
	s := createTestStore(t)

	err := s.Delete(Notes, "ghost.txt")
	if err == nil {
		t.Fatal("expected error deleting a missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want ErrNotExist", err)
	}
}

func TestDeleteRejectsTraversal(t *testing.T) {
	s := createTestStore(t)

	for _, name := range []string{"", "..", "../Notes/x.txt", "a/b"} {
		if err := s.Delete(Recordings, name); !errors.Is(err, ErrInvalidName) {
			t.Errorf("Delete(%q) = %v, want ErrInvalidName", name, err)
		}
	}
}

func TestNaming(t *testing.T) {
	if got := RecordingName("lec1"); got != "lec1.mp3" {
		t.Errorf("RecordingName = %q", got)
	}
	if got := TranscriptName("Recordings/lec1.mp3"); got != "lec1_transcript.txt" {
		t.Errorf("TranscriptName = %q", got)
	}
	if got := NotesName("Transcripts/lec1_transcript.txt"); got != "lec1_transcript_notes.txt" {
		t.Errorf("NotesName = %q", got)
	}
}

func TestNamingComposes(t *testing.T) {
	for _, base := range []string{"lec1", "week 3 lab", "a.b"} {
		transcript := filepath.Join("Transcripts", TranscriptName(filepath.Join("Recordings", RecordingName(base))))
		got := NotesName(transcript)
		want := base + "_transcript_notes.txt"
		if got != want {
			t.Errorf("NotesName(TranscriptName(%q)) = %q, want %q", base, got, want)
		}
	}
}

func TestFolderDir(t *testing.T) {
	tests := []struct {
		folder Folder
		want   string
	}{
		{Recordings, "Recordings"},
		{Transcripts, "Transcripts"},
		{Notes, "Notes"},
	}
	for _, tt := range tests {
		if got := tt.folder.Dir(); got != tt.want {
			t.Errorf("Dir() = %q, want %q", got, tt.want)
		}
	}
}
