package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/DrJosh9000/starglob"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	slogcontext "github.com/veqryn/slog-context"
	"golang.org/x/text/language"
)

type matchOptions struct {
	ignoreCase bool
	all        bool
	invert     bool
	lang       string
	jobs       int
	file       string
}

func (o *matchOptions) addFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&o.ignoreCase, "ignore-case", "i", false, "ignore case when matching")
	fs.BoolVar(&o.all, "all", false, "require every pattern to match, instead of any")
	fs.BoolVar(&o.invert, "invert", false, "print the lines that do not match")
	fs.StringVar(&o.lang, "lang", "", "BCP 47 language tag whose casing rules are used (requires --ignore-case)")
	fs.IntVarP(&o.jobs, "jobs", "j", 0, "number of goroutines matching lines (default GOMAXPROCS)")
	fs.StringVarP(&o.file, "file", "f", "", "read lines from this file instead of stdin")
}

// compileOptions converts the flags into options for the library.
func (o *matchOptions) compileOptions() ([]starglob.CompileOption, error) {
	if o.lang == "" {
		return nil, nil
	}
	if !o.ignoreCase {
		return nil, fmt.Errorf("--lang %q requires --ignore-case", o.lang)
	}
	tag, err := language.Parse(o.lang)
	if err != nil {
		return nil, fmt.Errorf("invalid --lang %q: %w", o.lang, err)
	}
	return []starglob.CompileOption{starglob.FoldLanguage(tag)}, nil
}

func newMatchCmd() *cobra.Command {
	opts := &matchOptions{}
	cmd := &cobra.Command{
		Use:   "match [flags] PATTERN...",
		Short: "Print the input lines matching any of the patterns",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(cmd, opts, args)
		},
	}
	opts.addFlags(cmd.Flags())
	return cmd
}

func runMatch(cmd *cobra.Command, opts *matchOptions, patterns []string) error {
	ctx := cmd.Context()
	logger := slogcontext.FromCtx(ctx)

	copts, err := opts.compileOptions()
	if err != nil {
		return err
	}
	list, err := starglob.BuildList(patterns, !opts.ignoreCase, copts...)
	if err != nil {
		return err
	}
	for _, p := range list.Patterns() {
		logger.DebugContext(ctx, "compiled pattern",
			slog.String("pattern", p.String()),
			slog.String("structure", p.Describe()),
		)
	}

	in := cmd.InOrStdin()
	if opts.file != "" {
		f, err := os.Open(opts.file)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	lines, err := readLines(in)
	if err != nil {
		return err
	}

	matched, err := list.Filter(ctx, lines,
		starglob.GoroutineLimit(opts.jobs),
		starglob.RequireAll(opts.all),
		starglob.Invert(opts.invert),
	)
	if err != nil {
		return err
	}
	logger.DebugContext(ctx, "filtered input",
		slog.Int("lines", len(lines)),
		slog.Int("printed", len(matched)),
	)

	w := bufio.NewWriter(cmd.OutOrStdout())
	for _, line := range matched {
		fmt.Fprintln(w, line)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if len(matched) == 0 {
		return errNoMatch
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	// Allow long lines.
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
