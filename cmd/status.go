package cmd

import (
	"github.com/spf13/cobra"

	"winstash/internal/dispatch"
	"winstash/internal/logging"
	"winstash/internal/output"
	"winstash/internal/stack"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "List both stacks and the windows recorded on them",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	// Read-only: no window-control tool needed, so xdotool being absent
	// must not stop a status query.
	d := dispatch.New(stack.DefaultPaths(), nil, logging.New(debugMode))

	statuses, err := d.Status()
	if err != nil {
		return err
	}
	return output.Print(statuses)
}
