// Package editor hands the listing to the user's text editor through a
// scratch file and reads the result back.
package editor

import (
	"fmt"
	"os"
)

// Scratch is a temporary file holding the listing while it is edited.
type Scratch struct {
	path string
}

// NewScratch creates a temporary file in dir (the system temp directory
// when empty) and writes content to it verbatim.
func NewScratch(dir string, content []byte) (*Scratch, error) {
	f, err := os.CreateTemp(dir, "editdir-*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %w", err)
	}
	s := &Scratch{path: f.Name()}

	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		_ = s.Close()
		return nil, fmt.Errorf("failed to write to temporary file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("failed to write to temporary file: %w", err)
	}
	return s, nil
}

// Path returns the location of the scratch file.
func (s *Scratch) Path() string {
	return s.path
}

// Read returns the file's current content as raw bytes.
func (s *Scratch) Read() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read temporary file: %w", err)
	}
	return data, nil
}

// Close removes the scratch file. Removing an already missing file is not
// an error.
func (s *Scratch) Close() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// EditBytes writes content to a scratch file in dir, lets ed modify it and
// returns the file's content afterwards. The scratch file is always removed.
func EditBytes(ed Editor, dir string, content []byte) ([]byte, error) {
	scratch, err := NewScratch(dir, content)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = scratch.Close()
	}()

	if err := ed.Edit(scratch.Path()); err != nil {
		return nil, err
	}
	return scratch.Read()
}
