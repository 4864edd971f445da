package rewrite

import (
	"bytes"
	"fmt"
	"go/ast"
	goparser "go/parser"
	"go/token"
	"strings"

	"golang.org/x/tools/go/ast/astutil"

	"github.com/clonecap/clonecap/packages/capture"
	"github.com/clonecap/clonecap/packages/core/parser"
)

// Scan locates clone directives in src. Directive problems come back as
// diagnostics; the error is non-nil only when src is not parseable Go.
func Scan(path string, src []byte, opts Options) ([]Directive, []Diagnostic, error) {
	fset := token.NewFileSet()
	file, err := goparser.ParseFile(fset, path, src, goparser.ParseComments)
	if err != nil {
		return nil, nil, err
	}

	method := opts.method()

	var directives []Directive
	var diags []Diagnostic

	for _, group := range file.Comments {
		for _, c := range group.List {
			text := strings.TrimSuffix(c.Text, "\r")
			verb, payload, payloadOffset, ok := parser.MatchDirective(text)
			pos := fset.Position(c.Pos())
			if !ok {
				if spacedDirective(text) {
					diags = append(diags, Diagnostic{
						File:     path,
						Line:     pos.Line,
						Column:   pos.Column,
						Offset:   pos.Offset,
						Category: "malformed",
						Message:  "space before clonecap: makes this a plain comment (write //clonecap: with no space)",
					})
				}
				continue
			}

			if verb != parser.VerbClone {
				diags = append(diags, Diagnostic{
					File:     path,
					Line:     pos.Line,
					Column:   pos.Column,
					Offset:   pos.Offset,
					Category: "malformed",
					Message:  fmt.Sprintf("unknown clonecap directive %q", verb),
				})
				continue
			}

			lineStart := pos.Offset - (pos.Column - 1)
			indent := string(src[lineStart:pos.Offset])
			if strings.TrimLeft(indent, " \t") != "" {
				diags = append(diags, Diagnostic{
					File:     path,
					Line:     pos.Line,
					Column:   pos.Column,
					Offset:   pos.Offset,
					Category: "context",
					Message:  "clone directive must be on its own line",
				})
				continue
			}

			if !statementContext(file, c) {
				diags = append(diags, Diagnostic{
					File:     path,
					Line:     pos.Line,
					Column:   pos.Column,
					Offset:   pos.Offset,
					Category: "context",
					Message:  "clone directive must sit at statement level inside a function body",
				})
				continue
			}

			list, err := parser.ParseDirective(payload, path, parser.Position{
				Line:   pos.Line,
				Column: pos.Column + payloadOffset,
			})
			if err != nil {
				pe := err.(*parser.ParseError)
				diags = append(diags, Diagnostic{
					File:     pe.File,
					Line:     pe.Line,
					Column:   pe.Column,
					Offset:   pos.Offset + (pe.Column - pos.Column),
					Category: "malformed",
					Message:  pe.Message,
				})
				continue
			}

			endOffset := fset.Position(c.End()).Offset
			directives = append(directives, locate(src, endOffset, list, path, pos, indent, method))
		}
	}

	return directives, diags, nil
}

// spacedDirective spots "// clonecap:" comments, which the toolchain treats
// as plain comments. Almost always a typo for the directive form.
func spacedDirective(text string) bool {
	if !strings.HasPrefix(text, "//") {
		return false
	}
	trimmed := strings.TrimLeft(text[2:], " \t")
	return trimmed != text[2:] && strings.HasPrefix(trimmed, "clonecap:")
}

// statementContext reports whether the comment sits where a statement can
// be spliced: between statements in a function body, or inside a switch or
// select after some clause's colon, where the parser folds the spliced
// line into that clause's body. The braces of a switch or select enclose
// clauses, not statements, so positions before the first case (or between
// a case keyword and its colon) have no statement slot.
func statementContext(file *ast.File, c *ast.Comment) bool {
	path, _ := astutil.PathEnclosingInterval(file, c.Pos(), c.End())
	if len(path) == 0 {
		return false
	}
	switch n := path[0].(type) {
	case *ast.BlockStmt:
		if len(path) > 1 {
			switch path[1].(type) {
			case *ast.SwitchStmt, *ast.TypeSwitchStmt, *ast.SelectStmt:
				return afterClauseColon(n.List, c.Pos())
			}
		}
		return true
	case *ast.CaseClause:
		return n.Colon < c.Pos()
	case *ast.CommClause:
		return n.Colon < c.Pos()
	}
	return false
}

// afterClauseColon reports whether pos trails at least one clause colon in
// a switch or select body. A comment there follows some clause's last
// statement, so a line spliced at pos still belongs to that clause.
func afterClauseColon(clauses []ast.Stmt, pos token.Pos) bool {
	for _, s := range clauses {
		switch cl := s.(type) {
		case *ast.CaseClause:
			if cl.Colon < pos {
				return true
			}
		case *ast.CommClause:
			if cl.Colon < pos {
				return true
			}
		}
	}
	return false
}

func locate(src []byte, commentEnd int, list capture.List, path string, pos token.Position, indent, method string) Directive {
	eol := "\n"
	i := commentEnd
	if i < len(src) && src[i] == '\r' {
		eol = "\r\n"
		i++
	}
	if i < len(src) && src[i] == '\n' {
		i++
	}
	regionStart := i

	regionEnd := regionStart
	for regionEnd < len(src) {
		line := src[regionEnd:]
		next := len(src)
		if nl := bytes.IndexByte(line, '\n'); nl >= 0 {
			line = line[:nl]
			next = regionEnd + nl + 1
		}
		line = bytes.TrimSuffix(line, []byte("\r"))
		if !matchesBinding(string(line), indent, method) {
			break
		}
		regionEnd = next
	}

	var buf bytes.Buffer
	for _, b := range list.Bindings(method) {
		buf.WriteString(indent)
		buf.WriteString(b.String())
		buf.WriteString(eol)
	}
	generated := buf.Bytes()

	return Directive{
		List:         list,
		File:         path,
		Line:         pos.Line,
		Column:       pos.Column,
		CommentStart: pos.Offset,
		RegionStart:  regionStart,
		RegionEnd:    regionEnd,
		Indent:       indent,
		EOL:          eol,
		Generated:    generated,
		Stale:        !bytes.Equal(src[regionStart:regionEnd], generated),
	}
}

// matchesBinding reports whether a line has the generated-binding shape at
// the directive's indentation: name := name.Method(), with an optional
// trailing mut marker.
func matchesBinding(line, indent, method string) bool {
	rest, ok := strings.CutPrefix(line, indent)
	if !ok {
		return false
	}
	rest = strings.TrimSuffix(rest, " "+capture.MutMarker)
	name, call, found := strings.Cut(rest, " := ")
	if !found || !token.IsIdentifier(name) {
		return false
	}
	return call == name+"."+method+"()"
}
