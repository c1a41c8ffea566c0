package pattern

import (
	"fmt"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/rs/zerolog"

	"github.com/praetorian-inc/linegrep/pkg/prefilter"
)

// Mode selects how a Set matches lines.
type Mode int

const (
	// ModeRegex ORs the patterns into one regular expression.
	ModeRegex Mode = iota
	// ModeFixed treats every pattern token as a literal substring.
	ModeFixed
)

func (m Mode) String() string {
	if m == ModeFixed {
		return "fixed"
	}
	return "regex"
}

// DefaultMatchTimeout bounds a single line match against the union regex.
const DefaultMatchTimeout = 5 * time.Second

// Set is an ordered collection of patterns queried as a logical OR.
//
// In regex mode all patterns are compiled into a single alternation. In fixed
// mode each token is kept verbatim as a literal; an Aho-Corasick automaton
// rejects lines containing none of them, and survivors are checked literal by
// literal so every literal reports its own text.
type Set struct {
	mode      Mode
	patterns  []Pattern
	re        *regexp2.Regexp
	literals  []string
	prefilter *prefilter.Prefilter
	logger    zerolog.Logger
}

type setConfig struct {
	logger       zerolog.Logger
	matchTimeout time.Duration
}

// SetOption configures a Set.
type SetOption func(*setConfig)

// WithLogger attaches a logger for match timeouts and errors.
func WithLogger(logger zerolog.Logger) SetOption {
	return func(c *setConfig) {
		c.logger = logger
	}
}

// WithMatchTimeout overrides DefaultMatchTimeout.
func WithMatchTimeout(d time.Duration) SetOption {
	return func(c *setConfig) {
		c.matchTimeout = d
	}
}

// NewSet builds a Set from parsed patterns.
func NewSet(patterns []Pattern, mode Mode, opts ...SetOption) (*Set, error) {
	if len(patterns) == 0 {
		return nil, ErrNoPatterns
	}

	cfg := &setConfig{
		logger:       zerolog.Nop(),
		matchTimeout: DefaultMatchTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	s := &Set{
		mode:     mode,
		patterns: patterns,
		logger:   cfg.logger.With().Str("component", "pattern").Str("mode", mode.String()).Logger(),
	}

	switch mode {
	case ModeFixed:
		s.literals = make([]string, len(patterns))
		for i, p := range patterns {
			s.literals[i] = p.Token
		}
		s.prefilter = prefilter.New(s.literals)
	default:
		exprs := make([]string, len(patterns))
		for i, p := range patterns {
			exprs[i] = p.expr()
		}
		re, err := compile(strings.Join(exprs, "|"), regexp2.None)
		if err != nil {
			return nil, fmt.Errorf("compiling pattern union: %w", err)
		}
		re.MatchTimeout = cfg.matchTimeout
		s.re = re
	}

	s.logger.Debug().Int("patterns", len(patterns)).Msg("pattern set compiled")
	return s, nil
}

// Mode returns the matching mode.
func (s *Set) Mode() Mode {
	return s.mode
}

// Patterns returns the patterns in their original order.
func (s *Set) Patterns() []Pattern {
	return s.patterns
}

// MatchesLine reports whether any pattern matches line.
func (s *Set) MatchesLine(line string) bool {
	if s.mode == ModeFixed {
		if !s.mayContain(line) {
			return false
		}
		for _, lit := range s.literals {
			if strings.Contains(line, lit) {
				return true
			}
		}
		return false
	}

	ok, err := s.re.MatchString(line)
	if err != nil {
		s.warn(err, line)
		return false
	}
	return ok
}

// MatchedSubstring returns the text reported by only-matching output.
// Regex mode yields the first match of the union. Fixed mode yields every
// literal contained in line, concatenated in pattern order.
func (s *Set) MatchedSubstring(line string) (string, bool) {
	if s.mode == ModeFixed {
		found := s.MatchingLiterals(line)
		if len(found) == 0 {
			return "", false
		}
		return strings.Join(found, ""), true
	}

	m, err := s.re.FindStringMatch(line)
	if err != nil {
		s.warn(err, line)
		return "", false
	}
	if m == nil {
		return "", false
	}
	return m.String(), true
}

// MatchingLiterals returns the literals contained in line, in pattern order.
// A literal listed twice is returned twice. Regex sets return nil.
func (s *Set) MatchingLiterals(line string) []string {
	if s.mode != ModeFixed || !s.mayContain(line) {
		return nil
	}
	var found []string
	for _, lit := range s.literals {
		if strings.Contains(line, lit) {
			found = append(found, lit)
		}
	}
	return found
}

func (s *Set) mayContain(line string) bool {
	return s.prefilter.MayContain(line)
}

func (s *Set) warn(err error, line string) {
	s.logger.Warn().Err(err).Int("line_bytes", len(line)).Msg("regex failed on line (treated as no match)")
}
