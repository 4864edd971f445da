package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "clonecap",
	Short: "Explicit capture cloning for Go closures. No magic.",
	Long: `clonecap expands //clonecap:clone directives into explicit duplicate
bindings, so goroutines and callbacks own their own copies instead of
sharing the enclosing function's variables. The generated code is plain
Go that reads like it was written by hand.`,
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitUsageError)
	}
}

func init() {
	rootCmd.AddCommand(expandCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(llmsCmd)
}
