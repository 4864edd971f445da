package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Exit codes for the clonecap CLI
const (
	// ExitSuccess indicates a clean run
	ExitSuccess = 0

	// ExitChanged indicates files changed or would change (--check, -l)
	ExitChanged = 1

	// ExitDiagnostics indicates directive problems were reported
	ExitDiagnostics = 2

	// ExitIOError indicates a file could not be read, parsed, or written
	ExitIOError = 3

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)

var exitcodesCmd = &cobra.Command{
	Use:    "exitcodes",
	Short:  "Print the exit code table",
	Hidden: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%d  success\n", ExitSuccess)
		fmt.Fprintf(cmd.OutOrStdout(), "%d  files changed or would change (--check, -l)\n", ExitChanged)
		fmt.Fprintf(cmd.OutOrStdout(), "%d  directive diagnostics reported\n", ExitDiagnostics)
		fmt.Fprintf(cmd.OutOrStdout(), "%d  file could not be read, parsed, or written\n", ExitIOError)
		fmt.Fprintf(cmd.OutOrStdout(), "%d  invalid usage\n", ExitUsageError)
	},
}

func init() {
	rootCmd.AddCommand(exitcodesCmd)
}
