// Package cmd implements the clonecap CLI commands using Cobra.
//
// Available commands:
//   - expand: Expand clone directives into duplicate bindings
//   - validate: Check directive syntax without rewriting
//   - list: Display all directives found in files
//   - init: Create a clonecap config with an example file
//   - version: Show clonecap version information
//
// The CLI supports various flags for in-place rewriting, diff and
// check modes, output formatting, and watch mode for development
// workflows.
package cmd
