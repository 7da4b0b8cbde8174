package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"winstash/internal/diag"
	"winstash/internal/dispatch"
	"winstash/internal/logging"
	"winstash/internal/output"
	"winstash/internal/stack"
	"winstash/internal/version"
	"winstash/internal/wctl"
)

var rootCmd = &cobra.Command{
	Use:   "winstash",
	Short: "Hide and restore desktop windows in stack order",
	Long: `A CLI tool that hides the active window and restores hidden windows
last-in-first-out, keeping two independent stacks ("normal" and "priority")
so two hide/show sequences can be interleaved. Window manipulation is
delegated to xdotool; the stacks persist as small log files in the temp
directory.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return fmt.Errorf("missing command: expected hide, show, deshide, or desshow (see --help)")
	},
}

// debugMode mirrors the --debug persistent flag; set in PersistentPreRunE.
var debugMode bool

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error: "+diag.Message(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().Bool("debug", false, "Write debug traces to stderr")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		debugMode, _ = rootCmd.PersistentFlags().GetBool("debug")

		pretty, _ := rootCmd.PersistentFlags().GetBool("pretty")
		output.PrettyOutput = pretty

		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		return nil
	}
}

// newDispatcher wires the dispatcher against the real window-control tool.
// The temp directory is resolved once here and passed down.
func newDispatcher() (*dispatch.Dispatcher, error) {
	control, err := wctl.NewXdotool()
	if err != nil {
		return nil, err
	}
	return dispatch.New(stack.DefaultPaths(), control, logging.New(debugMode)), nil
}
