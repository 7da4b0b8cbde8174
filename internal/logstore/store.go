// Package logstore persists the ordering of hidden windows as plain-text
// log files, one opaque window identifier per line, oldest first.
//
// Each Push or Pop is a single atomic transition from one on-disk state to
// the next: Pop rewrites the file through a temporary file in the same
// directory followed by a rename, so a reader always sees either the
// pre-pop or post-pop state. There is no file locking — concurrent
// invocations racing on the same log can interleave at the filesystem
// level, and that limitation is accepted rather than patched over.
package logstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrEmptyLog is returned by Pop when the log has no entries.
var ErrEmptyLog = errors.New("log has no entries")

// Mode tags a failed operation as a read or a write of the log. It exists
// only to pick the diagnostic message template; it is never persisted.
type Mode int

const (
	Read Mode = iota
	Write
)

func (m Mode) String() string {
	if m == Write {
		return "write"
	}
	return "read"
}

// OpError records a failed log operation, the path it targeted, and whether
// it was reading or writing at the time.
type OpError struct {
	Mode Mode
	Path string
	Err  error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s log %s: %v", e.Mode, e.Path, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// Push appends id as the new final entry of the log at path, creating the
// file if it does not exist. Existing entries are never truncated or
// reordered. Entries are joined with a single newline and no trailing
// terminator is written after the last one.
func Push(path, id string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return &OpError{Mode: Write, Path: path, Err: err}
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return &OpError{Mode: Write, Path: path, Err: err}
	}

	entry := id
	if info.Size() > 0 {
		entry = "\n" + id
	}
	if _, err := f.WriteString(entry); err != nil {
		f.Close()
		return &OpError{Mode: Write, Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &OpError{Mode: Write, Path: path, Err: err}
	}
	return nil
}

// Pop removes and returns the most recently pushed entry. A missing or
// zero-length file fails with ErrEmptyLog. The replacement log (all entries
// but the last) is written to a fresh temporary file next to the original
// and renamed over it; on any failure after the temporary file is created
// it is removed, so no stray file is ever left behind. A log holding a
// single entry becomes a zero-length file.
func Pop(path string) (string, error) {
	entries, err := Entries(path)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", &OpError{Mode: Read, Path: path, Err: ErrEmptyLog}
	}

	last := entries[len(entries)-1]
	remaining := strings.Join(entries[:len(entries)-1], "\n")

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return "", &OpError{Mode: Write, Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(remaining); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", &OpError{Mode: Write, Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", &OpError{Mode: Write, Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return "", &OpError{Mode: Write, Path: path, Err: err}
	}
	return last, nil
}

// Entries returns a snapshot of the log's entries in push order (oldest
// first). A missing file is an empty log. A single trailing newline is
// tolerated so a hand-edited file does not yield a phantom empty entry;
// Push never writes one.
func Entries(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &OpError{Mode: Read, Path: path, Err: err}
	}
	content := strings.TrimSuffix(string(data), "\n")
	if content == "" {
		return nil, nil
	}
	return strings.Split(content, "\n"), nil
}
