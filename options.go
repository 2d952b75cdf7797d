package starglob

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var defaultCompileConfig = compileConfig{
	caseInsensitive: false,
	folder:          upper,
}

type compileConfig struct {
	caseInsensitive bool
	folder          func(string) string
	traceLogger     io.Writer
}

// fold returns the folding function a compiled pattern should carry, or nil
// for case-sensitive patterns.
func (cfg *compileConfig) fold() func(string) string {
	if !cfg.caseInsensitive {
		return nil
	}
	return cfg.folder
}

func (cfg *compileConfig) logf(f string, v ...any) {
	if cfg.traceLogger == nil {
		return
	}
	fmt.Fprintf(cfg.traceLogger, f, v...)
}

// CompileOption functions optionally alter how patterns are compiled.
type CompileOption = func(*compileConfig)

// CaseInsensitive changes whether case is ignored. If enabled, the pattern is
// folded once when compiled, and every subject is folded before matching.
// The default folding uppercases each rune and leaves bytes that are not
// valid UTF-8 as they are, so "\xff" and "\xfe" still differ.
// Disabled by default.
func CaseInsensitive(enable bool) CompileOption {
	return func(cfg *compileConfig) {
		cfg.caseInsensitive = enable
	}
}

// WithFolder replaces the function used to fold patterns and subjects when
// CaseInsensitive is enabled. The default uppercases as strings.ToUpper
// does, but keeps invalid UTF-8 bytes unchanged. The function
// must be safe to call concurrently, and must never introduce or remove a *.
// A nil f restores the default.
func WithFolder(f func(string) string) CompileOption {
	if f == nil {
		f = upper
	}
	return func(cfg *compileConfig) {
		cfg.folder = f
	}
}

// FoldLanguage folds using the uppercasing rules of a particular language
// (for example, Turkish dotted and dotless i). It applies only if
// CaseInsensitive is enabled.
func FoldLanguage(tag language.Tag) CompileOption {
	// A Caser holds state and must not be shared between goroutines.
	casers := &sync.Pool{
		New: func() any {
			c := cases.Upper(tag)
			return &c
		},
	}
	return WithFolder(func(s string) string {
		c := casers.Get().(*cases.Caser)
		defer casers.Put(c)
		return foldValid(c.String, s)
	})
}

// upper uppercases s rune by rune, keeping invalid UTF-8 bytes.
func upper(s string) string {
	return foldValid(strings.ToUpper, s)
}

// foldValid applies f to each run of valid UTF-8 in s and copies every
// invalid byte through unchanged.
func foldValid(f func(string) string, s string) string {
	if utf8.ValidString(s) {
		return f(s)
	}
	var b strings.Builder
	b.Grow(len(s))
	start := 0
	for i := 0; i < len(s); {
		r, n := utf8.DecodeRuneInString(s[i:])
		if r != utf8.RuneError || n > 1 {
			i += n
			continue
		}
		b.WriteString(f(s[start:i]))
		b.WriteByte(s[i])
		i++
		start = i
	}
	b.WriteString(f(s[start:]))
	return b.String()
}

// WithTraceLogs logs debugging information about compilation to the
// provided writer. Disabled by default.
func WithTraceLogs(out io.Writer) CompileOption {
	return func(cfg *compileConfig) {
		cfg.traceLogger = out
	}
}
