package starglob

import "fmt"

// Segment is one piece of a Multipart pattern. The implementations are
// ExactStart, AnyUntil, AnyUntilExactEnd and AnyEnd.
type Segment interface{ segmentTag() }

type (
	// ExactStart requires the subject to begin with the literal. Only ever
	// the first segment.
	ExactStart string

	// AnyUntil skips ahead to the first occurrence of the literal at or
	// after the cursor. The literal is never empty.
	AnyUntil string

	// AnyUntilExactEnd is like AnyUntil, but the occurrence must end at the
	// end of the subject. Only ever the last segment.
	AnyUntilExactEnd string

	// AnyEnd accepts whatever remains of the subject. Only ever the last
	// segment.
	AnyEnd struct{}
)

func (ExactStart) segmentTag()       {}
func (AnyUntil) segmentTag()         {}
func (AnyUntilExactEnd) segmentTag() {}
func (AnyEnd) segmentTag()           {}

func (s ExactStart) String() string       { return fmt.Sprintf("ExactStart(%q)", string(s)) }
func (s AnyUntil) String() string         { return fmt.Sprintf("AnyUntil(%q)", string(s)) }
func (s AnyUntilExactEnd) String() string { return fmt.Sprintf("AnyUntilExactEnd(%q)", string(s)) }
func (AnyEnd) String() string             { return "AnyEnd" }

// literalOf returns the literal held by a segment ("" for AnyEnd).
func literalOf(s Segment) string {
	switch s := s.(type) {
	case ExactStart:
		return string(s)
	case AnyUntil:
		return string(s)
	case AnyUntilExactEnd:
		return string(s)
	}
	return ""
}
