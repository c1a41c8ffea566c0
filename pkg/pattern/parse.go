package pattern

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"
)

var (
	// ErrInvalidPattern is wrapped by every per-token parse failure.
	ErrInvalidPattern = errors.New("cannot parse regex")

	// ErrNoPatterns means nothing usable was supplied.
	ErrNoPatterns = errors.New("no patterns are provided as arguments.")
)

// tokenRe is the pattern-token grammar: /body/ followed by optional flag
// letters and an optional numeric modifier. The body is greedy so it may
// contain slashes.
var tokenRe = regexp.MustCompile(`^/(.*)/([imx]*)(\d*)$`)

// Pattern is one parsed pattern token.
type Pattern struct {
	Token string // verbatim token, delimiters included
	Body  string // text between the delimiters
	Flags string // subset of "imx"
}

// TokenError reports a token that could not be turned into a matcher.
type TokenError struct {
	Token string
	Err   error
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("Error: cannot parse regex %s", e.Token)
}

func (e *TokenError) Unwrap() error {
	return ErrInvalidPattern
}

// Parse parses a single pattern token and checks that it compiles.
func Parse(token string) (Pattern, error) {
	m := tokenRe.FindStringSubmatch(token)
	if m == nil {
		return Pattern{}, &TokenError{Token: token}
	}

	p := Pattern{Token: token, Body: m[1], Flags: m[2]}
	// The bare body is checked on its own; once wrapped in a group an
	// unbalanced ')' could close that group and still compile.
	if _, err := compile(p.Body, p.options()); err != nil {
		return Pattern{}, &TokenError{Token: token, Err: err}
	}
	return p, nil
}

// ParseList splits a pattern argument on whitespace and parses every token.
// Invalid tokens are dropped and reported; the remaining patterns keep their
// order.
func ParseList(arg string) ([]Pattern, []error) {
	var patterns []Pattern
	var errs []error
	for _, token := range strings.Fields(arg) {
		p, err := Parse(token)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		patterns = append(patterns, p)
	}
	return patterns, errs
}

// options maps the token's flag letters to regexp2 options.
func (p Pattern) options() regexp2.RegexOptions {
	var opts regexp2.RegexOptions
	for _, f := range p.Flags {
		switch f {
		case 'i':
			opts |= regexp2.IgnoreCase
		case 'm':
			// dot matches newline
			opts |= regexp2.Singleline
		case 'x':
			opts |= regexp2.IgnorePatternWhitespace
		}
	}
	return opts
}

// expr renders the pattern as a self-contained group carrying its own
// options, so patterns with different flags can share one alternation.
// In x mode the group is closed on a new line so a trailing # comment
// cannot swallow the ')'.
func (p Pattern) expr() string {
	var flags strings.Builder
	closing := ")"
	for _, f := range p.Flags {
		switch f {
		case 'i':
			flags.WriteByte('i')
		case 'm':
			flags.WriteByte('s')
		case 'x':
			flags.WriteByte('x')
			closing = "\n)"
		}
	}
	return "(?" + flags.String() + ":" + p.Body + closing
}

// compile tries RE2 mode first, then falls back to the default
// Perl-compatible mode for constructs RE2 rejects.
func compile(expr string, opts regexp2.RegexOptions) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(expr, opts|regexp2.RE2)
	if err != nil {
		re, err = regexp2.Compile(expr, opts)
		if err != nil {
			return nil, err
		}
	}
	return re, nil
}
