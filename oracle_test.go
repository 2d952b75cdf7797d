package starglob

import (
	"strings"
	"testing"

	"github.com/coregx/coregex"
	"github.com/gobwas/glob"
)

// refMatch is a straightforward dynamic-programming wildcard matcher, used
// as a reference. cur[j] reports whether p[:i+1] matches s[:j].
func refMatch(p, s string) bool {
	prev := make([]bool, len(s)+1)
	prev[0] = true
	for i := 0; i < len(p); i++ {
		cur := make([]bool, len(s)+1)
		if p[i] == '*' {
			cur[0] = prev[0]
			for j := 1; j <= len(s); j++ {
				cur[j] = prev[j] || cur[j-1]
			}
		} else {
			for j := 1; j <= len(s); j++ {
				cur[j] = prev[j-1] && s[j-1] == p[i]
			}
		}
		prev = cur
	}
	return prev[len(s)]
}

// refGlob is refMatch, except that a pattern with one wildcard only checks
// its literals as a prefix and a suffix, which may overlap.
func refGlob(p, s string) bool {
	if before, after, ok := strings.Cut(p, "*"); ok && !strings.Contains(after, "*") {
		return strings.HasPrefix(s, before) && strings.HasSuffix(s, after)
	}
	return refMatch(p, s)
}

// allStrings returns every string over the alphabet up to length n.
func allStrings(alphabet string, n int) []string {
	out := []string{""}
	level := []string{""}
	for range n {
		var next []string
		for _, prefix := range level {
			for _, c := range alphabet {
				next = append(next, prefix+string(c))
			}
		}
		out = append(out, next...)
		level = next
	}
	return out
}

// Leftmost-first matching of each literal never loses a match that some
// other assignment of the wildcards would find.
func TestMatch_AgreesWithReference(t *testing.T) {
	patterns := allStrings("ab*", 6)
	subjects := allStrings("ab", 7)

	for _, patt := range patterns {
		p, err := Compile(patt)
		if strings.Contains(patt, "**") {
			if err == nil {
				t.Errorf("Compile(%q) error = nil, want ErrAdjacentWildcards", patt)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Compile(%q) error = %v", patt, err)
		}
		for _, subject := range subjects {
			if got, want := p.Match(subject), refGlob(patt, subject); got != want {
				t.Errorf("(%q).Match(%q) = %v, want %v", patt, subject, got, want)
			}
		}
	}
}

// globToRegexp converts a wildcard pattern into an anchored regular
// expression.
func globToRegexp(pattern string) string {
	parts := strings.Split(pattern, "*")
	for i, part := range parts {
		parts[i] = coregex.QuoteMeta(part)
	}
	return "^" + strings.Join(parts, ".*") + "$"
}

func TestMatch_AgreesWithOtherEngines(t *testing.T) {
	tests := []struct {
		pattern, subject string
		want             bool
	}{
		{"*", "", true},
		{"*", "abc", true},
		{"abc", "abc", true},
		{"abc", "abd", false},
		{"ab*ba", "aba", true},
		{"ab*ba", "ab", false},
		{"ab*ba", "abxba", true},
		{"*.un~", "test.dots.un~.un~", true},
		{"*.un~", "test.dots.un~.un", false},
		{"*.un~", "test.un", false},
		{"*val*", "val", true},
		{"*val*", "xvalx", true},
		{"*val*", "valval", true},
		{"*val*", "va", false},
		{"*val*brawl*", "xvalxbrawlxxxx", true},
		{"*val*brawl*", "xbrawlxvalx", false},
		{"*val*brawl*crawl", "val_brawl_crawl_crawl", true},
		{"val*whale*value", "val_whale_value", true},
		{"val*whale*value", "val_whale_values", false},
		{"*.*.test.cs", "startling.magic.test.cs", true},
		{"*aa", "aaa", true},
		{"*ab*", "aab", true},
		{"*x*aba", "xababa", true},
		{"*x*aba", "xabab", false},
	}

	for _, test := range tests {
		got := MustCompile(test.pattern).Match(test.subject)
		if got != test.want {
			t.Errorf("(%q).Match(%q) = %v, want %v", test.pattern, test.subject, got, test.want)
		}

		g, err := glob.Compile(test.pattern)
		if err != nil {
			t.Fatalf("glob.Compile(%q) error = %v", test.pattern, err)
		}
		if other := g.Match(test.subject); other != got {
			t.Errorf("(%q).Match(%q) = %v, but gobwas/glob says %v", test.pattern, test.subject, got, other)
		}

		expr := globToRegexp(test.pattern)
		re, err := coregex.Compile(expr)
		if err != nil {
			t.Fatalf("coregex.Compile(%q) error = %v", expr, err)
		}
		// A regular expression never lets the prefix and suffix overlap.
		wantRE := refMatch(test.pattern, test.subject)
		if other := re.MatchString(test.subject); other != wantRE {
			t.Errorf("coregex %q MatchString(%q) = %v, want %v", expr, test.subject, other, wantRE)
		}
	}
}

func FuzzMatch(f *testing.F) {
	seeds := []struct{ pattern, subject string }{
		{"*", ""},
		{"*val*", "xvalx"},
		{"*.un~", "test.dots.un~.un~"},
		{"val*whale*value", "valwhalevalue"},
		{"*x*aba", "xababa"},
		{"ab*ba", "aba"},
		{"**", "a"},
	}
	for _, s := range seeds {
		f.Add(s.pattern, s.subject)
	}

	f.Fuzz(func(t *testing.T, pattern, subject string) {
		p, err := Compile(pattern)
		if strings.Contains(pattern, "**") {
			if err == nil {
				t.Fatalf("Compile(%q) error = nil, want ErrAdjacentWildcards", pattern)
			}
			return
		}
		if err != nil {
			t.Fatalf("Compile(%q) error = %v", pattern, err)
		}
		if got, want := p.Match(subject), refGlob(pattern, subject); got != want {
			t.Errorf("(%q).Match(%q) = %v, want %v", pattern, subject, got, want)
		}
	})
}
