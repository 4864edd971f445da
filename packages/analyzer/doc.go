// Package analyzer implements a go/analysis pass for clone directives.
//
// The pass re-runs the same scan the clonecap CLI uses and reports, at
// vet time:
//
//   - directives whose generated bindings are missing or out of date
//   - malformed or misplaced directives, with the CLI's messages
//   - duplicate names within one capture list
//   - directives no closure, go, or defer statement follows
//     (disable with -checkunused=false)
//   - with -checkmethod, captured names the expansion cannot compile:
//     unresolved identifiers, originals declared in the directive's own
//     block, and types lacking the duplication method
//
// Use it with singlechecker (apps/clonecapcheck), multichecker, or
// go vet -vettool.
package analyzer
