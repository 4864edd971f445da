// Package capture models the capture lists written in clone directives.
//
// A capture list is an ordered sequence of specifiers, each naming a binding
// to duplicate before a closure takes it. A specifier may carry the mut
// qualifier:
//
//	tx, mut counter, logger
//
// Each specifier turns into one generated binding that calls the duplication
// method and shadows the outer name. Order is preserved, duplicates are
// kept, and a trailing comma in the written list changes nothing.
package capture
