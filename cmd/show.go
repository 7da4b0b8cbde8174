package cmd

import (
	"github.com/spf13/cobra"

	"winstash/internal/output"
	"winstash/internal/stack"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Restore the most recently hidden window from the normal stack",
	Args:  cobra.NoArgs,
	RunE:  runShow("show", stack.Normal),
}

var desshowCmd = &cobra.Command{
	Use:   "desshow",
	Short: "Restore the most recently hidden window from the priority stack",
	Args:  cobra.NoArgs,
	RunE:  runShow("desshow", stack.Priority),
}

func init() {
	rootCmd.AddCommand(showCmd, desshowCmd)
}

func runShow(action string, name stack.Name) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		d, err := newDispatcher()
		if err != nil {
			return err
		}
		id, err := d.Show(name)
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
