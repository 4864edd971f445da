package output

import (
	"time"

	"github.com/clonecap/clonecap/packages/core/rewrite"
)

// FileResult is the per-file outcome handed to formatters.
type FileResult struct {
	Path        string
	Changed     bool
	Written     bool
	Directives  []DirectiveInfo
	Diagnostics []rewrite.Diagnostic
	Err         error
	Duration    time.Duration
}

// DirectiveInfo summarizes one directive for reporting.
type DirectiveInfo struct {
	Line    int
	Column  int
	Entries []string
	Mutable int
	Stale   bool
}

// NewFileResult converts a rewrite result into a reportable file result.
func NewFileResult(res *rewrite.Result, written bool, duration time.Duration) *FileResult {
	fr := &FileResult{
		Path:        res.Path,
		Changed:     res.Changed,
		Written:     written,
		Diagnostics: res.Diagnostics,
		Duration:    duration,
	}
	for _, d := range res.Directives {
		fr.Directives = append(fr.Directives, DirectiveInfo{
			Line:    d.Line,
			Column:  d.Column,
			Entries: d.List.Names(),
			Mutable: d.List.MutableCount(),
			Stale:   d.Stale,
		})
	}
	return fr
}

// ErrorResult wraps a file-level failure (unreadable, unparseable).
func ErrorResult(path string, err error, duration time.Duration) *FileResult {
	return &FileResult{
		Path:     path,
		Err:      err,
		Duration: duration,
	}
}
