package output

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/clonecap/clonecap/packages/capture"
	"github.com/clonecap/clonecap/packages/core/rewrite"
)

func plainColors(t *testing.T) {
	t.Helper()
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })
}

func sampleResult() *FileResult {
	res := &rewrite.Result{
		Path:    "demo/fanout.go",
		Changed: true,
		Directives: []rewrite.Directive{
			{
				List: capture.List{
					{Name: "tx", Line: 12, Column: 2},
					{Name: "counter", Mutable: true, Line: 12, Column: 2},
				},
				File:   "demo/fanout.go",
				Line:   12,
				Column: 2,
				Stale:  true,
			},
		},
	}
	return NewFileResult(res, false, 3*time.Millisecond)
}

func TestNewFileResult(t *testing.T) {
	fr := sampleResult()

	assert.Equal(t, "demo/fanout.go", fr.Path)
	assert.True(t, fr.Changed)
	require.Len(t, fr.Directives, 1)
	assert.Equal(t, []string{"tx", "counter"}, fr.Directives[0].Entries)
	assert.Equal(t, 1, fr.Directives[0].Mutable)
	assert.True(t, fr.Directives[0].Stale)
}

func TestConsoleFormatter_Changed(t *testing.T) {
	plainColors(t)
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true))

	f.FormatResult(sampleResult())
	require.NoError(t, f.Flush(10*time.Millisecond))

	out := buf.String()
	assert.Contains(t, out, "~ demo/fanout.go")
	assert.Contains(t, out, "Files: 1 changed, 1 total")
	assert.Contains(t, out, "Time:  10ms")
}

func TestConsoleFormatter_Diagnostics(t *testing.T) {
	plainColors(t)
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true))

	f.FormatResult(&FileResult{
		Path: "demo/bad.go",
		Diagnostics: []rewrite.Diagnostic{
			{File: "demo/bad.go", Line: 4, Column: 2, Message: "empty capture list"},
		},
	})
	require.NoError(t, f.Flush(time.Millisecond))

	out := buf.String()
	assert.Contains(t, out, "✗ demo/bad.go")
	assert.Contains(t, out, "→ 4:2: empty capture list")
	assert.Contains(t, out, "1 diagnostics")
}

func TestConsoleFormatter_Verbose(t *testing.T) {
	plainColors(t)
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true), WithVerbose(true))

	clean := sampleResult()
	clean.Changed = false
	f.FormatResult(clean)

	out := buf.String()
	assert.Contains(t, out, "✓ demo/fanout.go")
	assert.Contains(t, out, "12:2 tx, counter")
}

func TestConsoleFormatter_QuietWhenClean(t *testing.T) {
	plainColors(t)
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true))

	clean := sampleResult()
	clean.Changed = false
	clean.Directives = nil
	f.FormatResult(clean)
	require.NoError(t, f.Flush(time.Millisecond))

	out := buf.String()
	assert.NotContains(t, out, "fanout.go")
	assert.Contains(t, out, "all clean, 1 total")
}

func TestConsoleFormatter_Error(t *testing.T) {
	plainColors(t)
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true))

	f.FormatResult(ErrorResult("demo/gone.go", errors.New("no such file"), 0))
	require.NoError(t, f.Flush(time.Millisecond))

	out := buf.String()
	assert.Contains(t, out, "x demo/gone.go (no such file)")
	assert.Contains(t, out, "1 errors")
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(JSONWithWriter(&buf))

	f.FormatResult(sampleResult())
	f.FormatResult(&FileResult{
		Path: "demo/bad.go",
		Diagnostics: []rewrite.Diagnostic{
			{File: "demo/bad.go", Line: 7, Column: 3, Message: "expected identifier after mut"},
		},
		Duration: time.Millisecond,
	})
	require.NoError(t, f.Flush(25*time.Millisecond))

	out := buf.String()
	assert.NotEmpty(t, gjson.Get(out, "id").String())
	assert.Equal(t, int64(2), gjson.Get(out, "summary.total").Int())
	assert.Equal(t, int64(1), gjson.Get(out, "summary.changed").Int())
	assert.Equal(t, int64(1), gjson.Get(out, "summary.diagnostics").Int())
	assert.Equal(t, int64(1), gjson.Get(out, "summary.directives").Int())
	assert.Equal(t, float64(25), gjson.Get(out, "duration").Float())

	assert.Equal(t, "demo/fanout.go", gjson.Get(out, "files.0.path").String())
	entries := gjson.Get(out, "files.0.directives.0.entries").Array()
	require.Len(t, entries, 2)
	assert.Equal(t, "tx", entries[0].String())
	assert.Equal(t, "counter", entries[1].String())
	assert.Equal(t, int64(1), gjson.Get(out, "files.0.directives.0.mutable").Int())

	assert.Equal(t, "expected identifier after mut", gjson.Get(out, "files.1.diagnostics.0.message").String())
	assert.Equal(t, int64(7), gjson.Get(out, "files.1.diagnostics.0.line").Int())
}

func TestWriteDiff(t *testing.T) {
	plainColors(t)
	original := "package demo\n\nvar tx *Tx\n\nfunc f() {\n\t//clonecap:clone tx\n\tgo func() { tx.Commit() }()\n}\n"
	expanded := "package demo\n\nvar tx *Tx\n\nfunc f() {\n\t//clonecap:clone tx\n\ttx := tx.Clone()\n\tgo func() { tx.Commit() }()\n}\n"

	var buf bytes.Buffer
	require.NoError(t, WriteDiff(&buf, "demo/main.go", []byte(original), []byte(expanded)))

	out := buf.String()
	assert.Contains(t, out, "--- demo/main.go.orig")
	assert.Contains(t, out, "+++ demo/main.go")
	assert.Contains(t, out, "+\ttx := tx.Clone()")
}

func TestWriteDiff_NoChange(t *testing.T) {
	var buf bytes.Buffer
	src := []byte("package demo\n")
	require.NoError(t, WriteDiff(&buf, "demo/main.go", src, src))
	assert.Zero(t, buf.Len())
}
