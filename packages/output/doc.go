// Package output provides formatters for displaying expansion results.
//
// Supported output formats:
//   - Console: Human-readable colored terminal output
//   - JSON: Machine-readable JSON report
//
// Each formatter accumulates per-file results and emits a summary when
// flushed. Unified diffs between original and expanded source are rendered
// here as well.
package output
