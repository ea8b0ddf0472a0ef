package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrInvalidName is returned for names that are empty or not a plain file name.
var ErrInvalidName = errors.New("invalid file name")

// Store provides access to the library folders under a root directory.
type Store struct {
	root string
}

// Open ensures the three library folders exist under root and returns a Store.
// It is safe to call on an existing layout.
func Open(root string) (*Store, error) {
	s := &Store{root: root}
	for _, f := range Folders {
		if err := os.MkdirAll(s.Dir(f), 0o755); err != nil {
			return nil, fmt.Errorf("create folder %s: %w", f.Dir(), err)
		}
	}
	return s, nil
}

// Root returns the library root directory.
func (s *Store) Root() string {
	return s.root
}

// Dir returns the absolute-or-relative directory of a folder.
func (s *Store) Dir(f Folder) string {
	return filepath.Join(s.root, f.Dir())
}

// Path joins a folder and a file name.
func (s *Store) Path(f Folder, name string) string {
	return filepath.Join(s.Dir(f), name)
}

// List returns the current entries of a folder, sorted by name.
// Nothing is cached; every call reads the directory.
func (s *Store) List(f Folder) ([]Entry, error) {
	dirEntries, err := os.ReadDir(s.Dir(f))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", f.Dir(), err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		e := Entry{Name: de.Name()}
		if info, err := de.Info(); err == nil {
			e.Size = info.Size()
			e.ModTime = info.ModTime()
		}
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

// Delete removes one file from a folder.
func (s *Store) Delete(f Folder, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := os.Remove(s.Path(f, name)); err != nil {
		return fmt.Errorf("delete %s: %w", s.Path(f, name), err)
	}
	return nil
}

// ValidateName rejects names that would escape a folder.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" || name == "." || name == ".." {
		return ErrInvalidName
	}
	if strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
