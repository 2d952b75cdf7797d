package starglob

import (
	"errors"
	"fmt"
)

// ErrAdjacentWildcards is reported when a pattern contains ** (two
// wildcards with an empty literal between them).
var ErrAdjacentWildcards = errors.New("adjacent wildcards")

// CompileError describes why a pattern could not be compiled.
type CompileError struct {
	// Pattern is the pattern as passed to Compile.
	Pattern string

	// Offset is the byte offset of the wildcard that closed the empty
	// literal.
	Offset int

	// Err is the underlying reason, currently always ErrAdjacentWildcards.
	Err error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compiling pattern %q: %v at offset %d", e.Pattern, e.Err, e.Offset)
}

func (e *CompileError) Unwrap() error { return e.Err }
