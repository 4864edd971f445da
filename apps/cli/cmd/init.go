package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/clonecap/clonecap/packages/core/config"
	"github.com/spf13/cobra"
)

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize clonecap in the current directory",
	Long: `Initialize clonecap in the current directory.

This creates:
  - .clonecap.json        - Configuration file with defaults
  - _clonecap_example.go  - Example file showing the directive

The example file is underscore-prefixed so the Go toolchain ignores it.

Examples:
  clonecap init
  clonecap init --force`,
	RunE: initCommand,
}

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite existing files")
}

func initCommand(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	configFile := filepath.Join(cwd, ".clonecap.json")
	exampleFile := filepath.Join(cwd, "_clonecap_example.go")

	if !forceInit {
		for _, f := range []string{configFile, exampleFile} {
			if _, err := os.Stat(f); err == nil {
				return fmt.Errorf("file already exists: %s (use --force to overwrite)", f)
			}
		}
	}

	if err := config.DefaultConfig().SaveConfig(configFile); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", configFile)

	exampleContent := `package main

import "fmt"

// Job is handed to a goroutine, so each goroutine gets its own copy and
// later mutation of the original cannot race with it.
type Job struct {
	ID    int
	Steps []string
}

// Clone returns a deep copy of the job.
func (j Job) Clone() Job {
	out := j
	out.Steps = append([]string(nil), j.Steps...)
	return out
}

func main() {
	jobs := []Job{
		{ID: 1, Steps: []string{"fetch", "build"}},
		{ID: 2, Steps: []string{"fetch", "test"}},
	}

	for _, job := range jobs {
		//clonecap:clone job
		go func() {
			fmt.Println("working on", job.ID, job.Steps)
		}()
	}

	// The goroutines hold clones, so this mutation cannot race with them.
	jobs[0].Steps[0] = "rollback"
}
`

	if err := os.WriteFile(exampleFile, []byte(exampleContent), 0644); err != nil {
		return fmt.Errorf("failed to create example file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", exampleFile)

	fmt.Fprintf(cmd.OutOrStdout(), "\nclonecap project initialized!\n")
	fmt.Fprintf(cmd.OutOrStdout(), "Run 'clonecap expand %s' to see the directive expand.\n", filepath.Base(exampleFile))

	return nil
}
