package starglob

import "github.com/coregx/ahocorasick"

// Buckets smaller than this are scanned pattern by pattern; building an
// automaton does not pay off.
const prefilterThreshold = 8

// prefilter rejects subjects that cannot match any pattern of a bucket,
// because they contain none of the literals the patterns require.
type prefilter struct {
	auto *ahocorasick.Automaton
}

// newPrefilter returns nil if the patterns are too few, or if any of them
// requires no literal (such as "*" or "a*" with an empty prefix).
func newPrefilter(patterns []*Pattern) *prefilter {
	if len(patterns) < prefilterThreshold {
		return nil
	}
	builder := ahocorasick.NewBuilder()
	for _, p := range patterns {
		lit := p.requiredLiteral()
		if lit == "" {
			return nil
		}
		builder.AddPattern([]byte(lit))
	}
	auto, err := builder.Build()
	if err != nil {
		// Matching still works without it.
		return nil
	}
	return &prefilter{auto: auto}
}

// mayMatch reports whether the (folded) subject contains at least one
// required literal. A nil prefilter lets everything through.
func (f *prefilter) mayMatch(subject string) bool {
	if f == nil {
		return true
	}
	return f.auto.IsMatch([]byte(subject))
}
