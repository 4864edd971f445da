package analyzer

import (
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/analysis"

	"github.com/clonecap/clonecap/packages/core/rewrite"
)

// checkUnused reports a directive when the statement after its region
// cannot carry the duplicated bindings into separately running code. The
// clones shadow until end of block either way, but a clone nothing
// captures usually means the directive drifted away from its closure.
func checkUnused(pass *analysis.Pass, ctx *directiveContext, tf *token.File, d rewrite.Directive) {
	end := tf.Pos(d.RegionEnd)
	var next ast.Stmt
	for _, s := range ctx.stmts {
		if s.Pos() >= end {
			next = s
			break
		}
	}

	if next != nil && capturesBindings(next) {
		return
	}
	pass.Report(analysis.Diagnostic{
		Pos:      tf.Pos(d.CommentStart),
		Category: "unused",
		Message:  "no closure follows the clone directive; the duplicated bindings protect nothing",
	})
}

// capturesBindings reports whether stmt hands bindings to separately
// running code: a go or defer statement, or any statement containing a
// function literal.
func capturesBindings(stmt ast.Stmt) bool {
	switch stmt.(type) {
	case *ast.GoStmt, *ast.DeferStmt:
		return true
	}

	found := false
	ast.Inspect(stmt, func(n ast.Node) bool {
		if found {
			return false
		}
		if _, ok := n.(*ast.FuncLit); ok {
			found = true
			return false
		}
		return true
	})
	return found
}
