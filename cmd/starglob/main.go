// The starglob command filters lines of input against wildcard patterns,
// where * matches zero or more characters.
//
// Example:
//
//	$ ls | starglob match -i '*_TEST.go' 'seg*'
//	list_test.go
//	match_test.go
//	segment.go
//
//	$ starglob explain '*val*brawl*'
//	"*val*brawl*"	Multipart[AnyUntil("val") AnyUntil("brawl") AnyEnd]
package main

import (
	"errors"
	"fmt"
	"os"
)

// errNoMatch is returned by match when no line was printed. It produces
// exit status 1, like grep.
var errNoMatch = errors.New("no lines matched")

func main() {
	err := newRootCmd().Execute()
	switch {
	case err == nil:
		return
	case errors.Is(err, errNoMatch):
		os.Exit(1)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}
