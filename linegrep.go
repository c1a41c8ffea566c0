// Package linegrep searches text line by line for one or more patterns and
// formats the result the way the linegrep command prints it.
//
// # Basic Usage
//
// Build a searcher from a pattern argument and option tokens, then search
// one or more sources:
//
//	searcher, err := linegrep.NewSearcher("/error/i /panic/", []string{"-c"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	src, err := linegrep.ReadFile("server.log")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := searcher.Search(os.Stdout, src); err != nil {
//	    log.Fatal(err)
//	}
//
// # Lines
//
// Lines returns the output as a sequence, which can be stopped early:
//
//	for line := range searcher.Lines(linegrep.MemorySource{Name: "mem", Items: lines}) {
//	    fmt.Println(line)
//	}
package linegrep

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"time"

	"github.com/rs/zerolog"

	"github.com/praetorian-inc/linegrep/pkg/matcher"
	"github.com/praetorian-inc/linegrep/pkg/option"
	"github.com/praetorian-inc/linegrep/pkg/output"
	"github.com/praetorian-inc/linegrep/pkg/pattern"
	"github.com/praetorian-inc/linegrep/pkg/types"
)

// Re-export commonly used types for convenience.
type (
	// Source is an ordered list of lines with a path.
	Source = types.Source

	// FileSource is a file read into memory.
	FileSource = types.FileSource

	// MemorySource is a named list of lines.
	MemorySource = types.MemorySource

	// Line is one output line.
	Line = matcher.Line

	// Strategy is a resolved option combination.
	Strategy = option.Strategy
)

// Searcher runs one strategy with one pattern set. It is safe for
// concurrent use.
type Searcher struct {
	matcher *matcher.Matcher
	config  *searcherConfig
}

type searcherConfig struct {
	logger       zerolog.Logger
	matchTimeout time.Duration
	color        bool
}

// Option configures a Searcher.
type Option func(*searcherConfig)

// WithLogger sets the logger for match timeouts and per-source debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *searcherConfig) {
		c.logger = logger
	}
}

// WithMatchTimeout bounds the time spent matching a single line.
// Default is 5 seconds.
func WithMatchTimeout(d time.Duration) Option {
	return func(c *searcherConfig) {
		c.matchTimeout = d
	}
}

// WithColor makes Search write colored output.
func WithColor() Option {
	return func(c *searcherConfig) {
		c.color = true
	}
}

// NewSearcher parses the pattern argument and option tokens.
//
// patterns uses the command-line form: space-separated /regex/ tokens with
// optional i, m and x flags. Unlike the command, any token that does not
// parse is an error. options are tokens such as "-v", "-A_2" or
// "--context=1"; their combination must be one the command accepts.
func NewSearcher(patterns string, options []string, opts ...Option) (*Searcher, error) {
	cfg := &searcherConfig{
		logger:       zerolog.Nop(),
		matchTimeout: pattern.DefaultMatchTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	flags := option.NewFlags()
	for _, token := range options {
		if err := flags.Add(token); err != nil {
			return nil, err
		}
	}
	strategy, err := option.Resolve(flags)
	if err != nil {
		return nil, err
	}

	parsed, errs := pattern.ParseList(patterns)
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	mode := pattern.ModeRegex
	if strategy.FixedStrings() {
		mode = pattern.ModeFixed
	}
	set, err := pattern.NewSet(parsed, mode,
		pattern.WithLogger(cfg.logger),
		pattern.WithMatchTimeout(cfg.matchTimeout),
	)
	if err != nil {
		return nil, err
	}

	m, err := matcher.New(matcher.Config{
		Patterns: set,
		Strategy: strategy,
		Logger:   &cfg.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating matcher: %w", err)
	}

	return &Searcher{matcher: m, config: cfg}, nil
}

// Strategy returns the strategy the option tokens resolved to.
func (s *Searcher) Strategy() Strategy {
	return s.matcher.Strategy()
}

// Lines yields the output lines for sources in order. Content lines are
// prefixed with "<path>: " when more than one source is given.
func (s *Searcher) Lines(sources ...Source) iter.Seq[Line] {
	return s.matcher.Run(sources)
}

// Search writes the output for sources to w, one line each.
func (s *Searcher) Search(w io.Writer, sources ...Source) error {
	printer := output.NewPrinter(w, s.config.color)
	_, err := printer.PrintAll(s.Lines(sources...))
	return err
}

// ReadFile reads a file into a Source.
func ReadFile(path string) (*FileSource, error) {
	return types.ReadFileSource(path)
}
