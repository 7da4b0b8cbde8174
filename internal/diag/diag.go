// Package diag turns an internal error into the single human-readable line
// the user sees on stderr. Every error is terminal; there is no retrying
// and no structured error output.
package diag

import (
	"errors"
	"fmt"
	"io/fs"

	"winstash/internal/logstore"
	"winstash/internal/wctl"
)

// Message classifies err into a user-facing diagnostic.
func Message(err error) string {
	if errors.Is(err, logstore.ErrEmptyLog) {
		return "no window to show"
	}
	if errors.Is(err, wctl.ErrToolUnavailable) {
		return "xdotool is required but could not be run (is it installed?)"
	}

	var opErr *logstore.OpError
	if errors.As(err, &opErr) {
		if errors.Is(opErr.Err, fs.ErrPermission) {
			return fmt.Sprintf("cannot %s log file %s: permission denied", opErr.Mode, opErr.Path)
		}
		return fmt.Sprintf("cannot %s log file %s: %v", opErr.Mode, opErr.Path, opErr.Err)
	}

	return err.Error()
}
