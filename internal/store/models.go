// Package store provides the on-disk library of recordings, transcripts
// and notes. The directory listing is the only index.
package store

import "time"

// Folder identifies one of the three library folders.
type Folder int

const (
	Recordings Folder = iota
	Transcripts
	Notes
)

// Folders lists every library folder in display order.
var Folders = []Folder{Recordings, Transcripts, Notes}

// Dir returns the folder name relative to the library root.
func (f Folder) Dir() string {
	switch f {
	case Recordings:
		return "Recordings"
	case Transcripts:
		return "Transcripts"
	case Notes:
		return "Notes"
	default:
		return ""
	}
}

func (f Folder) String() string { return f.Dir() }

// Entry is one directory entry of a library folder.
type Entry struct {
	Name    string
	Size    int64
	ModTime time.Time
}
