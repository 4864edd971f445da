package analyzer

import (
	"bytes"
	"fmt"
	"go/token"
	"strings"

	"golang.org/x/tools/go/analysis"

	"github.com/clonecap/clonecap/packages/capture"
	"github.com/clonecap/clonecap/packages/core/rewrite"
)

// Flag variables bound to the analyzer's flag set. The framework parses
// them before Run is called; newRunConfig snapshots them per run.
var (
	methodFlag      string
	checkUnusedFlag bool
	checkMethodFlag bool
)

// Analyzer reports clone directives whose generated bindings are missing,
// stale, malformed, or unused. Wire it into singlechecker, multichecker,
// or go vet -vettool.
var Analyzer = &analysis.Analyzer{
	Name: "clonecap",
	Doc:  "report clone directives whose generated bindings are missing, stale, malformed, or unused",
	URL:  "https://github.com/clonecap/clonecap",
	Run:  run,
}

func init() {
	Analyzer.Flags.StringVar(&methodFlag, "method", "",
		"duplication method generated bindings call (default "+capture.DefaultMethod+")")
	Analyzer.Flags.BoolVar(&checkUnusedFlag, "checkunused", true,
		"report directives no closure, go, or defer statement follows")
	Analyzer.Flags.BoolVar(&checkMethodFlag, "checkmethod", false,
		"report captured names the expanded bindings could not compile against")
}

// runConfig is the effective configuration for one run.
type runConfig struct {
	method      string
	checkUnused bool
	checkMethod bool
}

func newRunConfig() runConfig {
	rc := runConfig{
		method:      methodFlag,
		checkUnused: checkUnusedFlag,
		checkMethod: checkMethodFlag,
	}
	if rc.method == "" {
		rc.method = capture.DefaultMethod
	}
	return rc
}

func run(pass *analysis.Pass) (any, error) {
	rc := newRunConfig()
	opts := rewrite.Options{Method: rc.method}

	for _, file := range pass.Files {
		tf := pass.Fset.File(file.Pos())
		if tf == nil || !strings.HasSuffix(tf.Name(), ".go") {
			continue
		}

		// The scan works on raw bytes, so generated files without
		// source on disk are skipped rather than failed.
		src, err := pass.ReadFile(tf.Name())
		if err != nil {
			continue
		}
		if !bytes.Contains(src, []byte("clonecap:")) {
			continue
		}

		directives, diags, err := rewrite.Scan(tf.Name(), src, opts)
		if err != nil {
			continue
		}

		for _, d := range diags {
			pass.Report(analysis.Diagnostic{
				Pos:      tf.Pos(d.Offset),
				Category: d.Category,
				Message:  d.Message,
			})
		}

		for _, d := range directives {
			reportDuplicates(pass, tf, d)

			switch {
			case d.RegionStart == d.RegionEnd:
				pass.Report(analysis.Diagnostic{
					Pos:      tf.Pos(d.CommentStart),
					Category: "expand",
					Message:  "clone directive is not expanded (run 'clonecap expand -w')",
				})
			case d.Stale:
				pass.Report(analysis.Diagnostic{
					Pos:      tf.Pos(d.CommentStart),
					Category: "expand",
					Message:  "expanded bindings do not match the capture list (run 'clonecap expand -w')",
				})
			}

			if !rc.checkUnused && !rc.checkMethod {
				continue
			}
			ctx := contextAt(file, tf.Pos(d.CommentStart))
			if ctx == nil {
				continue
			}
			if rc.checkUnused {
				checkUnused(pass, ctx, tf, d)
			}
			if rc.checkMethod {
				checkMethod(pass, ctx, tf, d, rc.method)
			}
		}
	}

	return nil, nil
}

// reportDuplicates flags every repeated name in a capture list. The
// expansion emits both bindings mechanically and the second one cannot
// compile, so the report points at the entry that has to go.
func reportDuplicates(pass *analysis.Pass, tf *token.File, d rewrite.Directive) {
	seen := make(map[string]bool, len(d.List))
	for _, spec := range d.List {
		if seen[spec.Name] {
			pass.Report(analysis.Diagnostic{
				Pos:      specPos(tf, spec),
				Category: "duplicate",
				Message:  fmt.Sprintf("duplicate capture %q in clone list", spec.Name),
			})
			continue
		}
		seen[spec.Name] = true
	}
}

// specPos converts an entry's line and column into a token position.
func specPos(tf *token.File, spec capture.Specifier) token.Pos {
	return tf.LineStart(spec.Line) + token.Pos(spec.Column-1)
}
