// Package parser recognizes and parses clonecap directive comments.
//
// A directive is a single comment line, written in Go directive style with
// no space after the slashes:
//
//	//clonecap:clone tx, mut counter, logger
//
// The payload after the verb is a capture list:
//   - entries are comma-separated, a trailing comma is allowed
//   - an entry is an identifier, optionally preceded by the mut qualifier
//   - the whole list may be wrapped in parentheses
//   - text after an embedded // is a trailing comment and is ignored
//
// Because mut is the qualifier keyword, a variable actually named mut
// cannot be captured.
//
// Parsing is total: any payload yields either a capture.List or a
// ParseError pointing at the offending byte in the host file.
package parser
