package analyzer

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"

	"github.com/clonecap/clonecap/packages/core/rewrite"
)

// checkMethod front-runs the compile errors the expanded bindings would
// hit: unresolved names, originals the := binding cannot redeclare, and
// types without the duplication method. Each entry is checked on its own
// and reported at its position in the capture list.
func checkMethod(pass *analysis.Pass, ctx *directiveContext, tf *token.File, d rewrite.Directive, method string) {
	for _, spec := range d.List {
		pos := specPos(tf, spec)

		at := pass.Pkg.Scope().Innermost(pos)
		if at == nil {
			continue
		}
		// Lookup at the directive's position, so the original is found
		// rather than the generated binding below it.
		declScope, obj := at.LookupParent(spec.Name, pos)
		if obj == nil {
			pass.Report(analysis.Diagnostic{
				Pos:      pos,
				Category: "resolve",
				Message:  fmt.Sprintf("cannot resolve captured identifier %q", spec.Name),
			})
			continue
		}

		v, ok := obj.(*types.Var)
		if !ok {
			pass.Report(analysis.Diagnostic{
				Pos:      pos,
				Category: "resolve",
				Message:  fmt.Sprintf("captured %q is not a variable", spec.Name),
			})
			continue
		}

		if declaredInDirectiveBlock(ctx, at, declScope, v) {
			pass.Report(analysis.Diagnostic{
				Pos:      pos,
				Category: "shadow",
				Message: fmt.Sprintf("%s is declared in the directive's own block; the generated %s := %s.%s() cannot redeclare it",
					spec.Name, spec.Name, spec.Name, method),
			})
			continue
		}

		m, _, _ := types.LookupFieldOrMethod(v.Type(), true, pass.Pkg, method)
		fn, ok := m.(*types.Func)
		if !ok {
			pass.Report(analysis.Diagnostic{
				Pos:      pos,
				Category: "method",
				Message: fmt.Sprintf("captured %s (type %s) has no %s method",
					spec.Name, types.TypeString(v.Type(), types.RelativeTo(pass.Pkg)), method),
			})
			continue
		}

		sig := fn.Type().(*types.Signature)
		if sig.Params().Len() != 0 || sig.Results().Len() != 1 {
			pass.Report(analysis.Diagnostic{
				Pos:      pos,
				Category: "method",
				Message:  fmt.Sprintf("%s method of captured %s must take no arguments and return one value", method, spec.Name),
			})
		}
	}
}

// declaredInDirectiveBlock reports whether the original binding lives in
// the very block the directive sits in, where the generated := line would
// redeclare it instead of shadowing it. Parameters, receivers, and named
// results share the body block for redeclaration purposes, so a directive
// at body top level cannot clone them either.
func declaredInDirectiveBlock(ctx *directiveContext, at, declScope *types.Scope, v *types.Var) bool {
	if declScope == at {
		return true
	}

	fn, body := ctx.enclosingFunc()
	if fn == nil || body == nil || ctx.owner != ast.Node(body) {
		return false
	}
	// The directive sits at body top level here, so anything declared
	// between the func keyword and the opening brace is same-block.
	return v.Pos() >= fn.Pos() && v.Pos() < body.Pos()
}
