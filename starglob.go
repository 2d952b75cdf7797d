// Package starglob implements wildcard matching of strings, where the only
// wildcard is *, matching zero or more characters.
//
// A pattern is compiled once into a Pattern, then matched any number of
// times:
//
//	p, err := starglob.Compile("*.test.cs", starglob.CaseInsensitive(true))
//	if err != nil {
//		return err
//	}
//	p.Match("startling.magic.TEST.CS") // true
//
// There are no character classes, no ?, no escaping, and no special
// treatment of path separators. Two adjacent wildcards (**) fail to compile.
//
// Patterns with two or more wildcards are matched in a single left-to-right
// scan. Each literal between wildcards is matched at its leftmost occurrence
// after the previous one, and the scan never backtracks.
package starglob
