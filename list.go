package starglob

import "fmt"

// List is an ordered collection of compiled patterns, held in two buckets:
// case-sensitive and case-insensitive. It is immutable once built, and safe
// to share between goroutines.
type List struct {
	sensitive   []*Pattern
	insensitive []*Pattern

	// fold folds subjects for the insensitive bucket.
	fold func(string) string

	sensitiveFilter   *prefilter
	insensitiveFilter *prefilter
}

// BuildList compiles every pattern into a List. All patterns share the same
// case sensitivity.
func BuildList(patterns []string, caseSensitive bool, opts ...CompileOption) (*List, error) {
	if caseSensitive {
		return NewList(patterns, nil, opts...)
	}
	return NewList(nil, patterns, opts...)
}

// NewList compiles a List from case-sensitive and case-insensitive
// patterns. Any CaseInsensitive option in opts is overridden per bucket.
// If any pattern fails to compile, no List is returned.
func NewList(sensitive, insensitive []string, opts ...CompileOption) (*List, error) {
	cfg := defaultCompileConfig
	for _, o := range opts {
		if o == nil {
			continue
		}
		o(&cfg)
	}

	l := &List{}
	var err error
	l.sensitive, err = compileAll("case-sensitive", sensitive, append(opts[:len(opts):len(opts)], CaseInsensitive(false)))
	if err != nil {
		return nil, err
	}
	l.insensitive, err = compileAll("case-insensitive", insensitive, append(opts[:len(opts):len(opts)], CaseInsensitive(true)))
	if err != nil {
		return nil, err
	}
	if len(l.insensitive) > 0 {
		// Every pattern in the bucket was compiled with the same folder.
		l.fold = l.insensitive[0].fold
	}

	l.sensitiveFilter = newPrefilter(l.sensitive)
	l.insensitiveFilter = newPrefilter(l.insensitive)
	cfg.logf("list: %d case-sensitive (prefilter %t), %d case-insensitive (prefilter %t)\n",
		len(l.sensitive), l.sensitiveFilter != nil,
		len(l.insensitive), l.insensitiveFilter != nil)
	return l, nil
}

func compileAll(bucket string, patterns []string, opts []CompileOption) ([]*Pattern, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	out := make([]*Pattern, 0, len(patterns))
	for i, patt := range patterns {
		p, err := Compile(patt, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s pattern %d: %w", bucket, i, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// Len returns the number of patterns in the list.
func (l *List) Len() int { return len(l.sensitive) + len(l.insensitive) }

// Patterns returns the patterns in the list, case-sensitive ones first.
func (l *List) Patterns() []*Pattern {
	out := make([]*Pattern, 0, l.Len())
	out = append(out, l.sensitive...)
	return append(out, l.insensitive...)
}

// AnyMatch reports whether at least one pattern matches the subject. An
// empty list matches nothing.
func (l *List) AnyMatch(subject string) bool {
	if l.sensitiveFilter.mayMatch(subject) {
		for _, p := range l.sensitive {
			if p.matchFolded(subject) {
				return true
			}
		}
	}

	if len(l.insensitive) == 0 {
		return false
	}
	folded := l.fold(subject)
	if !l.insensitiveFilter.mayMatch(folded) {
		return false
	}
	for _, p := range l.insensitive {
		if p.matchFolded(folded) {
			return true
		}
	}
	return false
}

// AllMatch reports whether every pattern matches the subject. An empty list
// matches everything.
func (l *List) AllMatch(subject string) bool {
	for _, p := range l.sensitive {
		if !p.matchFolded(subject) {
			return false
		}
	}

	if len(l.insensitive) == 0 {
		return true
	}
	folded := l.fold(subject)
	for _, p := range l.insensitive {
		if !p.matchFolded(folded) {
			return false
		}
	}
	return true
}

// MatchingIndexes returns the indexes, in the order of Patterns, of every
// pattern that matches the subject.
func (l *List) MatchingIndexes(subject string) []int {
	var idx []int
	for i, p := range l.sensitive {
		if p.matchFolded(subject) {
			idx = append(idx, i)
		}
	}

	if len(l.insensitive) == 0 {
		return idx
	}
	folded := l.fold(subject)
	for i, p := range l.insensitive {
		if p.matchFolded(folded) {
			idx = append(idx, len(l.sensitive)+i)
		}
	}
	return idx
}
