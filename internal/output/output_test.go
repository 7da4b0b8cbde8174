package output

import (
	"bytes"
	"strings"
	"testing"
)

type sample struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
}

func capture(t *testing.T, format Format, pretty bool, v interface{}) string {
	t.Helper()
	var buf bytes.Buffer
	oldWriter, oldFormat, oldPretty := Writer, OutputFormat, PrettyOutput
	Writer, OutputFormat, PrettyOutput = &buf, format, pretty
	defer func() {
		Writer, OutputFormat, PrettyOutput = oldWriter, oldFormat, oldPretty
	}()

	if err := Print(v); err != nil {
		t.Fatalf("print: %v", err)
	}
	return buf.String()
}

func TestPrintYAML(t *testing.T) {
	got := capture(t, FormatYAML, false, sample{OK: true, Action: "hide"})
	if !strings.Contains(got, "ok: true") || !strings.Contains(got, "action: hide") {
		t.Errorf("yaml output = %q", got)
	}
}

func TestPrintJSON(t *testing.T) {
	got := capture(t, FormatJSON, false, sample{OK: true, Action: "show"})
	want := `{"ok":true,"action":"show"}` + "\n"
	if got != want {
		t.Errorf("json output = %q, want %q", got, want)
	}
}

func TestPrintPrettyJSON(t *testing.T) {
	got := capture(t, FormatJSON, true, sample{OK: true, Action: "show"})
	if !strings.Contains(got, "\n  \"ok\": true") {
		t.Errorf("pretty json output = %q", got)
	}
}
