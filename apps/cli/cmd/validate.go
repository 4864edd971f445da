package cmd

import (
	"fmt"
	"os"

	"github.com/clonecap/clonecap/packages/core/config"
	"github.com/clonecap/clonecap/packages/core/rewrite"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file|directory>...",
	Short: "Validate clone directives without rewriting",
	Long: `Validate checks every //clonecap:clone directive for a well-formed
capture list and legal placement, without touching any file.

Diagnostics are printed one per line in file:line:column form, the
same positions the compiler reports.

Examples:
  clonecap validate main.go
  clonecap validate ./internal/`,
	Args: cobra.MinimumNArgs(1),
	RunE: validateCommand,
}

func validateCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig("")
	if err != nil {
		return err
	}

	files, err := collectGoFiles(args, cfg)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no Go files found")
	}

	opts := rewrite.Options{Method: cfg.GetMethod()}

	ioErrors := 0
	diagnostics := 0

	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error in %s: %v\n", file, err)
			ioErrors++
			continue
		}

		directives, diags, err := rewrite.Scan(file, src, opts)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error in %s: %v\n", file, err)
			ioErrors++
			continue
		}

		if len(diags) > 0 {
			for _, d := range diags {
				fmt.Fprintln(cmd.ErrOrStderr(), d.String())
			}
			diagnostics += len(diags)
			continue
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Valid: %s (%d directives)\n", file, len(directives))
	}

	switch {
	case ioErrors > 0:
		os.Exit(ExitIOError)
	case diagnostics > 0:
		os.Exit(ExitDiagnostics)
	}
	return nil
}
