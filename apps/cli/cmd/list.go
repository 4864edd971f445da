package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/clonecap/clonecap/packages/core/config"
	"github.com/clonecap/clonecap/packages/core/rewrite"
	"github.com/clonecap/clonecap/packages/output"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <file|directory>...",
	Short: "List clone directives in Go files",
	Long: `List every //clonecap:clone directive with its position and capture
list. Directives whose generated bindings are missing or out of date
are marked stale.

Examples:
  clonecap list main.go
  clonecap list ./internal/
  clonecap list --json .`,
	Args: cobra.MinimumNArgs(1),
	RunE: listCommand,
}

var listJSONFlag bool

func init() {
	listCmd.Flags().BoolVar(&listJSONFlag, "json", false, "Emit the directive inventory as JSON")
}

func listCommand(cmd *cobra.Command, args []string) error {
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

	var jsonFormatter *output.JSONFormatter
	if listJSONFlag {
		jsonFormatter = output.NewJSONFormatter(output.JSONWithWriter(cmd.OutOrStdout()))
	}

	start := time.Now()
	ioErrors := 0

	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", file, err)
			ioErrors++
			continue
		}

		directives, diags, err := rewrite.Scan(file, src, opts)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error parsing %s: %v\n", file, err)
			ioErrors++
			continue
		}

		if listJSONFlag {
			res := &rewrite.Result{Path: file, Directives: directives, Diagnostics: diags}
			jsonFormatter.FormatResult(output.NewFileResult(res, false, 0))
			continue
		}

		if len(directives) == 0 && len(diags) == 0 {
			continue
		}

		fmt.Fprintf(cmd.OutOrStdout(), "\n%s:\n", file)
		for _, d := range directives {
			line := fmt.Sprintf("  - %d:%d %s", d.Line, d.Column, d.List.String())
			if d.Stale {
				line += " (stale)"
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		for _, d := range diags {
			fmt.Fprintf(cmd.OutOrStdout(), "  ! %d:%d %s\n", d.Line, d.Column, d.Message)
		}
	}

	if listJSONFlag {
		if err := jsonFormatter.Flush(time.Since(start)); err != nil {
			return fmt.Errorf("error writing output: %w", err)
		}
	}

	if ioErrors > 0 {
		os.Exit(ExitIOError)
	}
	return nil
}
