// clonecapcheck reports clone directives whose generated bindings are
// missing, stale, malformed, or unused. It is the go/analysis front end
// for the clonecap expander and also works via go vet -vettool.
//
// Usage:
//
//	clonecapcheck ./...
//	clonecapcheck -checkmethod ./...
//	clonecapcheck -checkunused=false -method=Copy ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/clonecap/clonecap/packages/analyzer"
)

func main() {
	singlechecker.Main(analyzer.Analyzer)
}
