package cmd

import (
	"testing"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	expected := []string{"hide", "show", "deshide", "desshow", "status", "serve"}
	commands := rootCmd.Commands()

	found := make(map[string]bool)
	for _, c := range commands {
		found[c.Name()] = true
	}

	for _, name := range expected {
		if !found[name] {
			t.Errorf("expected subcommand %q not found", name)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	if rootCmd.Version == "" {
		t.Error("root command version should be set")
	}
}

func TestActionCommands_RejectArguments(t *testing.T) {
	for _, name := range []string{"hide", "show", "deshide", "desshow"} {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil {
			t.Fatalf("find %s: %v", name, err)
		}
		if err := cmd.Args(cmd, []string{"extra"}); err == nil {
			t.Errorf("%s accepted a positional argument", name)
		}
	}
}

func TestStringParam(t *testing.T) {
	params := map[string]interface{}{"stack": "priority", "empty": ""}
	if got := stringParam(params, "stack", "normal"); got != "priority" {
		t.Errorf("stringParam(stack) = %q", got)
	}
	if got := stringParam(params, "empty", "normal"); got != "normal" {
		t.Errorf("stringParam(empty) = %q, want default", got)
	}
	if got := stringParam(params, "missing", "normal"); got != "normal" {
		t.Errorf("stringParam(missing) = %q, want default", got)
	}
}
