package rewrite

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/clonecap/clonecap/packages/capture"
)

// Options controls directive processing.
type Options struct {
	// Method is the duplication method generated bindings call. Empty means
	// capture.DefaultMethod.
	Method string
}

func (o Options) method() string {
	if o.Method == "" {
		return capture.DefaultMethod
	}
	return o.Method
}

// Directive is one located clone directive together with its managed
// region. Offsets are byte offsets into the scanned source.
type Directive struct {
	List capture.List

	File   string
	Line   int
	Column int

	// CommentStart is the offset of the leading "//".
	CommentStart int

	// RegionStart is the offset of the first byte after the directive line;
	// RegionEnd is the offset of the first byte after the existing managed
	// region. They are equal when no region has been generated yet.
	RegionStart int
	RegionEnd   int

	Indent string
	EOL    string

	// Generated is the region text the capture list calls for.
	Generated []byte

	// Stale reports that the existing region differs from Generated. A
	// directive with no region yet is stale.
	Stale bool
}

// Diagnostic is a located problem with a directive. Offset is the byte
// offset of the reported location in the scanned source. Category is
// "malformed" for payload problems and "context" for placement problems;
// vet reporting passes it through.
type Diagnostic struct {
	File     string
	Line     int
	Column   int
	Offset   int
	Category string
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d: %s", d.File, d.Line, d.Column, d.Message)
}

// Result is the outcome of processing one file.
type Result struct {
	Path        string
	Output      []byte
	Changed     bool
	Directives  []Directive
	Diagnostics []Diagnostic
}

// Process scans src for clone directives and expands them. Directives with
// diagnostics are left untouched; the error is non-nil only when src is not
// parseable Go.
func Process(path string, src []byte, opts Options) (*Result, error) {
	directives, diags, err := Scan(path, src, opts)
	if err != nil {
		return nil, err
	}
	out := Expand(src, directives)
	return &Result{
		Path:        path,
		Output:      out,
		Changed:     !bytes.Equal(out, src),
		Directives:  directives,
		Diagnostics: diags,
	}, nil
}

// Expand splices each directive's generated region over its existing one.
// Edits are applied back to front so earlier offsets stay valid.
func Expand(src []byte, directives []Directive) []byte {
	if len(directives) == 0 {
		return src
	}

	sorted := make([]Directive, len(directives))
	copy(sorted, directives)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].RegionStart > sorted[j].RegionStart
	})

	out := src
	for _, d := range sorted {
		spliced := make([]byte, 0, len(out)-(d.RegionEnd-d.RegionStart)+len(d.Generated))
		spliced = append(spliced, out[:d.RegionStart]...)
		spliced = append(spliced, d.Generated...)
		spliced = append(spliced, out[d.RegionEnd:]...)
		out = spliced
	}
	return out
}
