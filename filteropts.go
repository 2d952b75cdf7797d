package starglob

import (
	"fmt"
	"io"
)

// FilterOption functions optionally alter how Filter operates.
type FilterOption = func(*filterConfig)

type filterConfig struct {
	goroutines  int
	chunkSize   int
	requireAll  bool
	invert      bool
	traceLogger io.Writer
}

func (cfg *filterConfig) logf(f string, v ...any) {
	if cfg.traceLogger == nil {
		return
	}
	fmt.Fprintf(cfg.traceLogger, f, v...)
}

// GoroutineLimit sets the maximum number of goroutines matching subjects at
// once. Values below 1 mean runtime.GOMAXPROCS(0), which is the default.
func GoroutineLimit(n int) FilterOption {
	return func(cfg *filterConfig) {
		cfg.goroutines = n
	}
}

// ChunkSize sets how many consecutive subjects each unit of work covers.
// Values below 1 mean the default (1024).
func ChunkSize(n int) FilterOption {
	return func(cfg *filterConfig) {
		cfg.chunkSize = n
	}
}

// RequireAll changes whether a subject must match every pattern in the list
// (List.AllMatch) rather than at least one (List.AnyMatch). Disabled by
// default.
func RequireAll(enable bool) FilterOption {
	return func(cfg *filterConfig) {
		cfg.requireAll = enable
	}
}

// Invert changes whether Filter keeps the subjects that are rejected,
// instead of those that are accepted. Disabled by default.
func Invert(enable bool) FilterOption {
	return func(cfg *filterConfig) {
		cfg.invert = enable
	}
}

// WithFilterTraceLogs logs debugging information for debugging Filter itself
// to the provided writer, which must be safe for concurrent writes.
// Disabled by default.
func WithFilterTraceLogs(out io.Writer) FilterOption {
	return func(cfg *filterConfig) {
		cfg.traceLogger = out
	}
}
