package analyzer

import (
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/ast/astutil"
)

// directiveContext is the lexical setting of one directive: the statement
// list it sits in, the node owning that list, and the enclosing node path
// from innermost to outermost.
type directiveContext struct {
	stmts []ast.Stmt
	owner ast.Node
	path  []ast.Node
}

// contextAt locates the innermost block, case clause, or comm clause
// containing pos. Directives outside any of those have already been
// reported by the scan and return nil here.
func contextAt(file *ast.File, pos token.Pos) *directiveContext {
	path, _ := astutil.PathEnclosingInterval(file, pos, pos)
	for _, n := range path {
		switch o := n.(type) {
		case *ast.BlockStmt:
			return &directiveContext{stmts: o.List, owner: o, path: path}
		case *ast.CaseClause:
			return &directiveContext{stmts: o.Body, owner: o, path: path}
		case *ast.CommClause:
			return &directiveContext{stmts: o.Body, owner: o, path: path}
		}
	}
	return nil
}

// enclosingFunc returns the innermost function declaration or literal on
// the path, along with its body.
func (c *directiveContext) enclosingFunc() (ast.Node, *ast.BlockStmt) {
	for _, n := range c.path {
		switch fn := n.(type) {
		case *ast.FuncDecl:
			return fn, fn.Body
		case *ast.FuncLit:
			return fn, fn.Body
		}
	}
	return nil, nil
}
