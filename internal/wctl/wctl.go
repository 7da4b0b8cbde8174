// Package wctl is the boundary to the external window-control tool. Window
// identifiers are opaque strings produced by the tool and replayed to it
// verbatim; nothing here parses or validates them.
package wctl

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrToolUnavailable is returned when the window-control executable cannot
// be invoked at all. It is reported as one generic diagnostic regardless of
// which operation was attempted.
var ErrToolUnavailable = errors.New("window-control tool unavailable")

// Controller is the window-control surface the dispatcher depends on.
type Controller interface {
	// ActiveWindow returns the identifier of the currently focused window.
	ActiveWindow() (string, error)
	// Hide unmaps the given window.
	Hide(id string) error
	// Show maps the given window.
	Show(id string) error
}

const toolName = "xdotool"

// Xdotool drives windows through the xdotool executable.
type Xdotool struct{}

// NewXdotool verifies the executable is on PATH before returning a
// controller, so a missing installation surfaces once, up front.
func NewXdotool() (*Xdotool, error) {
	if _, err := exec.LookPath(toolName); err != nil {
		return nil, fmt.Errorf("%w: %s not found in PATH", ErrToolUnavailable, toolName)
	}
	return &Xdotool{}, nil
}

func (x *Xdotool) ActiveWindow() (string, error) {
	out, err := exec.Command(toolName, "getactivewindow").Output()
	if err != nil {
		return "", fmt.Errorf("query active window: %w", err)
	}
	id := strings.TrimSpace(string(out))
	if id == "" {
		return "", fmt.Errorf("query active window: %s returned no identifier", toolName)
	}
	return id, nil
}

func (x *Xdotool) Hide(id string) error {
	if err := exec.Command(toolName, "windowunmap", id).Run(); err != nil {
		return fmt.Errorf("hide window %s: %w", id, err)
	}
	return nil
}

func (x *Xdotool) Show(id string) error {
	if err := exec.Command(toolName, "windowmap", id).Run(); err != nil {
		return fmt.Errorf("show window %s: %w", id, err)
	}
	return nil
}
