// Package stack names the two hidden-window stacks and maps each to its
// backing log file.
package stack

import (
	"fmt"
	"os"
	"path/filepath"
)

// Name identifies one of the two stacks. The set is closed: hide/show use
// Normal, deshide/desshow use Priority.
type Name int

const (
	Normal Name = iota
	Priority
)

func (n Name) String() string {
	if n == Priority {
		return "priority"
	}
	return "normal"
}

// LogFile returns the fixed filename backing the stack.
func (n Name) LogFile() string {
	if n == Priority {
		return "desproidlog"
	}
	return "proidlog"
}

// ParseName converts a string to a Name.
func ParseName(s string) (Name, error) {
	switch s {
	case "normal", "":
		return Normal, nil
	case "priority":
		return Priority, nil
	default:
		return Normal, fmt.Errorf("unknown stack: %q (expected normal or priority)", s)
	}
}

// Paths maps stack names to log paths under a directory resolved once at
// construction. Pure lookup, no side effects.
type Paths struct {
	dir string
}

// NewPaths roots the log files at dir.
func NewPaths(dir string) Paths {
	return Paths{dir: dir}
}

// DefaultPaths roots the log files in the platform temp directory.
func DefaultPaths() Paths {
	return NewPaths(os.TempDir())
}

// LogPath returns the full path of the log backing the named stack.
func (p Paths) LogPath(n Name) string {
	return filepath.Join(p.dir, n.LogFile())
}
