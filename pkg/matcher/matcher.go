// Package matcher applies one strategy to a list of sources and yields the
// output lines in order.
package matcher

import (
	"errors"
	"fmt"
	"iter"

	"github.com/praetorian-inc/linegrep/pkg/option"
	"github.com/praetorian-inc/linegrep/pkg/pattern"
	"github.com/praetorian-inc/linegrep/pkg/types"
	"github.com/rs/zerolog"
)

// ErrModeMismatch is returned when a fixed-string strategy is paired with a
// regex pattern set, or the other way round.
var ErrModeMismatch = errors.New("pattern mode does not match strategy")

// Config for matcher initialization.
type Config struct {
	// Patterns queried for every line
	Patterns *pattern.Set

	// Strategy resolved from the active flags
	Strategy option.Strategy

	// Logger receives per-source debug records (zero value = disabled)
	Logger *zerolog.Logger
}

// Matcher runs one strategy over a list of sources. It holds no state
// between runs.
type Matcher struct {
	set      *pattern.Set
	strategy option.Strategy
	logger   zerolog.Logger
}

// New validates cfg and returns a Matcher.
func New(cfg Config) (*Matcher, error) {
	if cfg.Patterns == nil {
		return nil, pattern.ErrNoPatterns
	}
	fixed := cfg.Patterns.Mode() == pattern.ModeFixed
	if fixed != cfg.Strategy.FixedStrings() {
		return nil, fmt.Errorf("%w: %s strategy with %s patterns", ErrModeMismatch, cfg.Strategy, cfg.Patterns.Mode())
	}
	if cfg.Strategy.Window < 0 {
		return nil, fmt.Errorf("negative context size %d", cfg.Strategy.Window)
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	return &Matcher{
		set:      cfg.Patterns,
		strategy: cfg.Strategy,
		logger:   logger.With().Str("component", "matcher").Str("strategy", cfg.Strategy.String()).Logger(),
	}, nil
}

// Strategy returns the strategy this matcher runs.
func (m *Matcher) Strategy() option.Strategy {
	return m.strategy
}

// Prefix returns the text put in front of content lines: nothing when a
// single source is searched, "<path>: " otherwise.
func Prefix(src types.Source, total int) string {
	if total <= 1 {
		return ""
	}
	return src.Path() + ": "
}

// Run yields the output lines for all sources. Each source is finished
// before the next one starts; an empty list yields nothing.
func (m *Matcher) Run(sources []types.Source) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for _, src := range sources {
			stat := SourceStat{Path: src.Path(), Lines: len(src.Lines())}
			for line := range m.Source(src, Prefix(src, len(sources))) {
				stat.count(line)
				if !yield(line) {
					return
				}
			}
			m.logger.Debug().
				Str("source", stat.Path).
				Int("lines", stat.Lines).
				Int("selected", stat.Selected).
				Int("emitted", stat.Emitted).
				Msg("source searched")
		}
	}
}

// Source yields the output lines for a single source using prefix.
func (m *Matcher) Source(src types.Source, prefix string) iter.Seq[Line] {
	switch m.strategy.Kind {
	case option.KindDefault, option.KindFixed:
		return m.selectLines(src, prefix, false, renderLine)
	case option.KindInvert, option.KindFixedInvert:
		return m.selectLines(src, prefix, true, renderLine)
	case option.KindCount, option.KindFixedCount:
		return m.selectLines(src, prefix, false, renderIndex)
	case option.KindCountInvert, option.KindFixedCountInvert:
		return m.selectLines(src, prefix, true, renderIndex)
	case option.KindOnlyMatching, option.KindFixedOnlyMatching:
		return m.onlyMatching(src, prefix)
	case option.KindFilesWithMatches:
		return m.fileName(src, true)
	case option.KindFilesWithoutMatch:
		return m.fileName(src, false)
	case option.KindAfter:
		return m.window(src, prefix, windowSpec{after: m.strategy.Window})
	case option.KindAfterInvert:
		return m.window(src, prefix, windowSpec{after: m.strategy.Window, invert: true})
	case option.KindBefore:
		return m.window(src, prefix, windowSpec{before: m.strategy.Window})
	case option.KindBeforeInvert:
		return m.window(src, prefix, windowSpec{before: m.strategy.Window, invert: true})
	case option.KindContext:
		return m.window(src, prefix, windowSpec{before: m.strategy.Window, after: m.strategy.Window})
	case option.KindContextInvert:
		return m.window(src, prefix, windowSpec{before: m.strategy.Window, after: m.strategy.Window, invert: true})
	default:
		panic(fmt.Sprintf("matcher: unhandled strategy %s", m.strategy.Kind))
	}
}
