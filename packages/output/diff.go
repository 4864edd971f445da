package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"
)

// WriteDiff writes a unified diff from the original to the expanded contents
// of one file, gofmt-style (path.orig against path).
func WriteDiff(w io.Writer, path string, original, expanded []byte) error {
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(original)),
		B:        difflib.SplitLines(string(expanded)),
		FromFile: path + ".orig",
		ToFile:   path,
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return err
	}
	if text == "" {
		return nil
	}

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
			fmt.Fprintln(w, bold(line))
		case strings.HasPrefix(line, "@@"):
			fmt.Fprintln(w, cyan(line))
		case strings.HasPrefix(line, "+"):
			fmt.Fprintln(w, green(line))
		case strings.HasPrefix(line, "-"):
			fmt.Fprintln(w, red(line))
		default:
			fmt.Fprintln(w, line)
		}
	}
	return nil
}
