// Package rewrite expands clone directives in Go source files.
//
// A clone directive names bindings to duplicate before a closure captures
// them. Expansion inserts one generated binding per entry directly below
// the directive line:
//
//	//clonecap:clone tx, mut counter
//	tx := tx.Clone()
//	counter := counter.Clone() // mut
//	go func() { ... }()
//
// Generated bindings redeclare the captured names with :=, so a directive
// belongs in a block nested inside the originals' scope, a loop body
// cloning the range variable being the common case. Cloning a name
// declared in the directive's own block fails to compile, exactly as the
// hand-written binding would. Inside a switch or select body a directive
// must follow some clause's colon; between the opening brace and the
// first case there is no statement slot to splice into.
//
// The directive line stays in place and anchors a managed region: the run
// of generated-shape bindings directly below it. Re-running expansion
// regenerates the region from the current capture list, so editing the
// list and re-running keeps the bindings in sync. One consequence is that
// hand-written statements of the exact generated shape placed directly
// below a directive are absorbed into its region on the next run.
//
// Scanning uses the Go AST for discovery and context checks; expansion
// splices byte ranges, so everything outside managed regions is preserved
// byte for byte and output stays stable under repeated runs.
package rewrite
