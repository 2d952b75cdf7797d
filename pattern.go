package starglob

import (
	"errors"
	"fmt"
	"io"
	"slices"
)

// Kind says which shape a compiled pattern has.
type Kind int

const (
	// MatchAny is the pattern "*".
	MatchAny Kind = iota

	// MatchFull is a pattern without wildcards.
	MatchFull

	// MatchStart is a pattern of the form "prefix*".
	MatchStart

	// MatchEnd is a pattern of the form "*suffix".
	MatchEnd

	// MatchBothEnds is a pattern of the form "prefix*suffix".
	MatchBothEnds

	// Multipart is any pattern with two or more wildcards.
	Multipart
)

func (k Kind) String() string {
	switch k {
	case MatchAny:
		return "MatchAny"
	case MatchFull:
		return "MatchFull"
	case MatchStart:
		return "MatchStart"
	case MatchEnd:
		return "MatchEnd"
	case MatchBothEnds:
		return "MatchBothEnds"
	case Multipart:
		return "Multipart"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Pattern is a compiled glob pattern. It is immutable, and safe to share
// between goroutines.
type Pattern struct {
	kind Kind

	// prefix holds the literal for MatchFull, MatchStart and MatchBothEnds.
	prefix string

	// suffix holds the literal for MatchEnd and MatchBothEnds.
	suffix string

	// segments is non-empty only for Multipart.
	segments []Segment

	// source is the pattern as given to Compile, before folding.
	source string

	// fold is applied to each subject. nil when case-sensitive.
	fold func(string) string
}

// Compile compiles a pattern. The only wildcard is *, which matches zero or
// more characters. Every other character matches itself.
func Compile(pattern string, opts ...CompileOption) (*Pattern, error) {
	cfg := defaultCompileConfig
	for _, o := range opts {
		if o == nil {
			continue
		}
		o(&cfg)
	}

	fold := cfg.fold()
	folded := pattern
	if fold != nil {
		folded = fold(pattern)
	}

	p, err := compile(folded)
	if err != nil {
		var cerr *CompileError
		if errors.As(err, &cerr) {
			// Report what the caller wrote, not the folded form.
			cerr.Pattern = pattern
		}
		cfg.logf("compile %q: %v\n", pattern, err)
		return nil, err
	}
	p.source = pattern
	p.fold = fold

	cfg.logf("compile %q: %v\n", pattern, p.Describe())
	return p, nil
}

// MustCompile calls Compile, and panics if unable to compile the pattern.
func MustCompile(pattern string, opts ...CompileOption) *Pattern {
	p, err := Compile(pattern, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// CompileAndMatch compiles the pattern and matches it once against subject.
func CompileAndMatch(pattern, subject string, caseSensitive bool) (bool, error) {
	p, err := Compile(pattern, CaseInsensitive(!caseSensitive))
	if err != nil {
		return false, err
	}
	return p.Match(subject), nil
}

// Kind returns the shape of the pattern.
func (p *Pattern) Kind() Kind { return p.kind }

// Prefix returns the leading literal of MatchFull, MatchStart and
// MatchBothEnds patterns (folded, if the pattern is case-insensitive).
func (p *Pattern) Prefix() string { return p.prefix }

// Suffix returns the trailing literal of MatchEnd and MatchBothEnds
// patterns.
func (p *Pattern) Suffix() string { return p.suffix }

// Segments returns a copy of the segments of a Multipart pattern.
func (p *Pattern) Segments() []Segment { return slices.Clone(p.segments) }

// CaseInsensitive reports whether the pattern ignores case.
func (p *Pattern) CaseInsensitive() bool { return p.fold != nil }

// String returns the pattern as originally written.
func (p *Pattern) String() string { return p.source }

// Equal reports whether two patterns have the same structure. The source
// text and the folding function are not compared, only whether folding
// happens.
func (p *Pattern) Equal(q *Pattern) bool {
	if p == nil || q == nil {
		return p == q
	}
	return p.kind == q.kind &&
		p.prefix == q.prefix &&
		p.suffix == q.suffix &&
		slices.Equal(p.segments, q.segments) &&
		(p.fold == nil) == (q.fold == nil)
}

// Describe returns a one-line summary of the compiled structure, such as
// `Multipart[AnyUntil("val") AnyEnd]`.
func (p *Pattern) Describe() string {
	switch p.kind {
	case MatchAny:
		return "MatchAny"
	case MatchFull, MatchStart:
		return fmt.Sprintf("%v(%q)", p.kind, p.prefix)
	case MatchEnd:
		return fmt.Sprintf("%v(%q)", p.kind, p.suffix)
	case MatchBothEnds:
		return fmt.Sprintf("%v(%q, %q)", p.kind, p.prefix, p.suffix)
	}
	return fmt.Sprintf("%v%v", p.kind, p.segments)
}

// requiredLiteral returns the longest literal every matching subject must
// contain, or "" if there is none.
func (p *Pattern) requiredLiteral() string {
	switch p.kind {
	case MatchFull, MatchStart:
		return p.prefix
	case MatchEnd:
		return p.suffix
	case MatchBothEnds:
		if len(p.suffix) > len(p.prefix) {
			return p.suffix
		}
		return p.prefix
	case Multipart:
		var longest string
		for _, s := range p.segments {
			if l := literalOf(s); len(l) > len(longest) {
				longest = l
			}
		}
		return longest
	}
	return ""
}

// WriteDot writes a digraph representing the pattern to the writer
// (in GraphViz syntax). States entered through a wildcard get a self-loop.
func (p *Pattern) WriteDot(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "digraph {\n\trankdir=LR;"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "\tinitial [label=\"\", style=invis];"); err != nil {
		return err
	}

	// Each step is a literal to consume and whether a wildcard may skip
	// characters before it.
	type step struct {
		literal string
		star    bool
	}
	var steps []step
	starEnd := false
	switch p.kind {
	case MatchAny:
		starEnd = true
	case MatchFull:
		steps = []step{{literal: p.prefix}}
	case MatchStart:
		steps = []step{{literal: p.prefix}}
		starEnd = true
	case MatchEnd:
		steps = []step{{literal: p.suffix, star: true}}
	case MatchBothEnds:
		steps = []step{{literal: p.prefix}, {literal: p.suffix, star: true}}
	case Multipart:
		for _, s := range p.segments {
			switch s := s.(type) {
			case ExactStart:
				steps = append(steps, step{literal: string(s)})
			case AnyUntil:
				steps = append(steps, step{literal: string(s), star: true})
			case AnyUntilExactEnd:
				steps = append(steps, step{literal: string(s), star: true})
			case AnyEnd:
				starEnd = true
			}
		}
	}

	if _, err := fmt.Fprintln(w, "\tinitial -> state_0;"); err != nil {
		return err
	}

	// state_i is reached after consuming i steps. A star before step i is
	// drawn as a loop on state_i.
	for i := 0; i <= len(steps); i++ {
		shape := "circle"
		if i == len(steps) {
			shape = "doublecircle"
		}
		if _, err := fmt.Fprintf(w, "\tstate_%d [label=\"\", shape=%s];\n", i, shape); err != nil {
			return err
		}
		loop := (i < len(steps) && steps[i].star) || (i == len(steps) && starEnd)
		if loop {
			if _, err := fmt.Fprintf(w, "\tstate_%d -> state_%d [label=\"*\"];\n", i, i); err != nil {
				return err
			}
		}
		if i < len(steps) {
			if _, err := fmt.Fprintf(w, "\tstate_%d -> state_%d [label=%q];\n", i, i+1, steps[i].literal); err != nil {
				return err
			}
		}
	}
	if _, err := fmt.Fprintln(w, "}"); err != nil {
		return err
	}
	return nil
}
