package wctl

import (
	"errors"
	"testing"
)

func TestNewXdotoolMissingBinary(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := NewXdotool()
	if !errors.Is(err, ErrToolUnavailable) {
		t.Errorf("err = %v, want ErrToolUnavailable", err)
	}
}
