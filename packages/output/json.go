package output

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
)

// JSONOutput represents the complete JSON output structure
type JSONOutput struct {
	ID       string      `json:"id"`
	Summary  JSONSummary `json:"summary"`
	Files    []JSONFile  `json:"files"`
	Duration float64     `json:"duration"`
	Time     string      `json:"time"`
}

// JSONSummary represents the run summary
type JSONSummary struct {
	Total       int `json:"total"`
	Changed     int `json:"changed"`
	Diagnostics int `json:"diagnostics"`
	Errors      int `json:"errors"`
	Directives  int `json:"directives"`
}

// JSONFile represents a single processed file
type JSONFile struct {
	Path        string           `json:"path"`
	Changed     bool             `json:"changed,omitempty"`
	Written     bool             `json:"written,omitempty"`
	Directives  []JSONDirective  `json:"directives,omitempty"`
	Diagnostics []JSONDiagnostic `json:"diagnostics,omitempty"`
	Error       string           `json:"error,omitempty"`
	Duration    float64          `json:"duration"`
}

// JSONDirective represents one clone directive
type JSONDirective struct {
	Line    int      `json:"line"`
	Column  int      `json:"column"`
	Entries []string `json:"entries"`
	Mutable int      `json:"mutable,omitempty"`
	Stale   bool     `json:"stale,omitempty"`
}

// JSONDiagnostic represents a directive problem
type JSONDiagnostic struct {
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Message string `json:"message"`
}

// JSONFormatter formats file results as JSON
type JSONFormatter struct {
	writer io.Writer
	files  []JSONFile
}

type JSONOption func(*JSONFormatter)

func NewJSONFormatter(opts ...JSONOption) *JSONFormatter {
	f := &JSONFormatter{
		writer: os.Stdout,
		files:  make([]JSONFile, 0),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func JSONWithWriter(w io.Writer) JSONOption {
	return func(f *JSONFormatter) {
		f.writer = w
	}
}

func (f *JSONFormatter) FormatResult(result *FileResult) {
	file := JSONFile{
		Path:     result.Path,
		Changed:  result.Changed,
		Written:  result.Written,
		Duration: float64(result.Duration.Milliseconds()),
	}

	if result.Err != nil {
		file.Error = result.Err.Error()
	}

	for _, d := range result.Directives {
		file.Directives = append(file.Directives, JSONDirective{
			Line:    d.Line,
			Column:  d.Column,
			Entries: d.Entries,
			Mutable: d.Mutable,
			Stale:   d.Stale,
		})
	}

	for _, d := range result.Diagnostics {
		file.Diagnostics = append(file.Diagnostics, JSONDiagnostic{
			Line:    d.Line,
			Column:  d.Column,
			Message: d.Message,
		})
	}

	f.files = append(f.files, file)
}

func (f *JSONFormatter) FormatError(err error) {
	// Errors are included in individual file results
}

func (f *JSONFormatter) FormatHeader(version string) {
	// No header needed for JSON output
}

// Flush writes the accumulated JSON output
func (f *JSONFormatter) Flush(totalDuration time.Duration) error {
	var changed, diagnostics, errors, directives int
	for _, file := range f.files {
		if file.Changed {
			changed++
		}
		if file.Error != "" {
			errors++
		}
		diagnostics += len(file.Diagnostics)
		directives += len(file.Directives)
	}

	output := JSONOutput{
		ID: uuid.NewString(),
		Summary: JSONSummary{
			Total:       len(f.files),
			Changed:     changed,
			Diagnostics: diagnostics,
			Errors:      errors,
			Directives:  directives,
		},
		Files:    f.files,
		Duration: float64(totalDuration.Milliseconds()),
		Time:     time.Now().Format(time.RFC3339),
	}

	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
