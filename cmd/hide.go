package cmd

import (
	"github.com/spf13/cobra"

	"winstash/internal/output"
	"winstash/internal/stack"
)

// ActionResult is the output of a successful hide or show.
type ActionResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
	Stack  string `yaml:"stack"  json:"stack"`
	Window string `yaml:"window" json:"window"`
}

var hideCmd = &cobra.Command{
	Use:   "hide",
	Short: "Hide the active window onto the normal stack",
	Args:  cobra.NoArgs,
	RunE:  runHide("hide", stack.Normal),
}

var deshideCmd = &cobra.Command{
	Use:   "deshide",
	Short: "Hide the active window onto the priority stack",
	Args:  cobra.NoArgs,
	RunE:  runHide("deshide", stack.Priority),
}

func init() {
	rootCmd.AddCommand(hideCmd, deshideCmd)
}

func runHide(action string, name stack.Name) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		d, err := newDispatcher()
		if err != nil {
			return err
		}
		id, err := d.Hide(name)
		if err != nil {
			return err
		}
		return output.Print(ActionResult{
			OK:     true,
			Action: action,
			Stack:  name.String(),
			Window: id,
		})
	}
}
