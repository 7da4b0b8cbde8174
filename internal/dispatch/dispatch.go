// Package dispatch routes a single validated action to a push or pop on the
// chosen stack and the matching window-control call.
package dispatch

import (
	"github.com/rs/zerolog"

	"winstash/internal/logstore"
	"winstash/internal/stack"
	"winstash/internal/wctl"
)

// Dispatcher performs one action per invocation; it holds no state beyond
// its collaborators.
type Dispatcher struct {
	paths   stack.Paths
	control wctl.Controller
	log     zerolog.Logger
}

func New(paths stack.Paths, control wctl.Controller, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{paths: paths, control: control, log: log}
}

// Hide records the active window on the named stack and unmaps it. The
// identifier is recorded before the unmap on purpose: if the order were
// reversed, a failed record would lose track of a window that is already
// invisible. The flip side — a recorded entry whose unmap failed — is an
// accepted inconsistency.
func (d *Dispatcher) Hide(name stack.Name) (string, error) {
	id, err := d.control.ActiveWindow()
	if err != nil {
		return "", err
	}

	path := d.paths.LogPath(name)
	if err := logstore.Push(path, id); err != nil {
		return "", err
	}
	d.log.Debug().Str("stack", name.String()).Str("window", id).Msg("recorded window")

	if err := d.control.Hide(id); err != nil {
		return "", err
	}
	d.log.Debug().Str("stack", name.String()).Str("window", id).Msg("window hidden")
	return id, nil
}

// Show pops the most recently hidden window off the named stack and maps
// it. The log entry is gone once the pop succeeds; a failing map call is
// surfaced as-is, without re-pushing the identifier.
func (d *Dispatcher) Show(name stack.Name) (string, error) {
	id, err := logstore.Pop(d.paths.LogPath(name))
	if err != nil {
		return "", err
	}
	d.log.Debug().Str("stack", name.String()).Str("window", id).Msg("popped window")

	if err := d.control.Show(id); err != nil {
		return "", err
	}
	d.log.Debug().Str("stack", name.String()).Str("window", id).Msg("window shown")
	return id, nil
}

// StackStatus describes one stack's current content.
type StackStatus struct {
	Stack   string   `yaml:"stack"             json:"stack"`
	File    string   `yaml:"file"              json:"file"`
	Depth   int      `yaml:"depth"             json:"depth"`
	Windows []string `yaml:"windows,omitempty" json:"windows,omitempty"`
}

// Status reports both stacks without mutating either.
func (d *Dispatcher) Status() ([]StackStatus, error) {
	statuses := make([]StackStatus, 0, 2)
	for _, name := range []stack.Name{stack.Normal, stack.Priority} {
		path := d.paths.LogPath(name)
		entries, err := logstore.Entries(path)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, StackStatus{
			Stack:   name.String(),
			File:    path,
			Depth:   len(entries),
			Windows: entries,
		})
	}
	return statuses, nil
}
