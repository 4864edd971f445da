package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
)

type ConsoleFormatter struct {
	writer  io.Writer
	verbose bool
	noColor bool

	files       int
	changed     int
	diagnostics int
	errors      int
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.noColor {
		color.NoColor = true
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

func WithVerbose(v bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.verbose = v
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

func (f *ConsoleFormatter) FormatResult(result *FileResult) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	f.files++

	if result.Err != nil {
		f.errors++
		fmt.Fprintf(f.writer, "  %s %s %s\n", red("x"), result.Path, red(fmt.Sprintf("(%v)", result.Err)))
		return
	}

	if len(result.Diagnostics) > 0 {
		f.diagnostics += len(result.Diagnostics)
		fmt.Fprintf(f.writer, "  %s %s\n", red("✗"), result.Path)
		for _, d := range result.Diagnostics {
			fmt.Fprintf(f.writer, "    %s %d:%d: %s\n", red("→"), d.Line, d.Column, d.Message)
		}
		return
	}

	if result.Changed {
		f.changed++
		fmt.Fprintf(f.writer, "  %s %s %s\n", yellow("~"), result.Path, cyan(fmt.Sprintf("(%dms)", result.Duration.Milliseconds())))
	} else if f.verbose {
		fmt.Fprintf(f.writer, "  %s %s %s\n", green("✓"), result.Path, cyan(fmt.Sprintf("(%dms)", result.Duration.Milliseconds())))
	}

	if f.verbose && len(result.Directives) > 0 {
		for _, d := range result.Directives {
			fmt.Fprintf(f.writer, "    %d:%d %s\n", d.Line, d.Column, strings.Join(d.Entries, ", "))
		}
	}
}

func (f *ConsoleFormatter) FormatError(err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(f.writer, "%s %v\n", red("Error:"), err)
}

func (f *ConsoleFormatter) FormatHeader(version string) {
	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintf(f.writer, "%s %s\n", bold("clonecap"), version)
}

// Flush writes the run summary
func (f *ConsoleFormatter) Flush(totalDuration time.Duration) error {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	fmt.Fprintf(f.writer, "\n")
	fmt.Fprintf(f.writer, "Files: ")
	if f.changed > 0 {
		fmt.Fprintf(f.writer, "%s, ", yellow(fmt.Sprintf("%d changed", f.changed)))
	}
	if f.diagnostics > 0 {
		fmt.Fprintf(f.writer, "%s, ", red(fmt.Sprintf("%d diagnostics", f.diagnostics)))
	}
	if f.errors > 0 {
		fmt.Fprintf(f.writer, "%s, ", red(fmt.Sprintf("%d errors", f.errors)))
	}
	if f.changed == 0 && f.diagnostics == 0 && f.errors == 0 {
		fmt.Fprintf(f.writer, "%s, ", green("all clean"))
	}
	fmt.Fprintf(f.writer, "%d total\n", f.files)
	fmt.Fprintf(f.writer, "Time:  %dms\n", totalDuration.Milliseconds())
	return nil
}
