// Package args classifies command-line tokens into option flags, the
// pattern argument, file tokens and run settings.
package args

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/praetorian-inc/linegrep/pkg/config"
	"github.com/praetorian-inc/linegrep/pkg/option"
	"github.com/praetorian-inc/linegrep/pkg/pattern"
)

var (
	ErrTooFewArguments       = errors.New("less than 2 arguments.")
	ErrPatternsNotContiguous = errors.New("patterns are not contiguously placed.")
	ErrUnsupportedArgument   = errors.New("not support arg")
	ErrInvalidSetting        = errors.New("invalid setting")
)

var (
	fileTokenRe    = regexp.MustCompile(`\.\w+$`)
	patternTokenRe = regexp.MustCompile(`^/.*/[imx]*\d*$`)
)

// settings are long options that configure the run without taking part in
// the flag combination.
var settings = map[string]bool{
	"--color":     true,
	"--jobs":      true,
	"--config":    true,
	"--log-file":  true,
	"--log-level": true,
}

// Invocation is a fully classified command line.
type Invocation struct {
	Flags    *option.Flags
	Strategy option.Strategy

	// PatternArg is the raw pattern argument; Patterns are its valid tokens.
	PatternArg    string
	Patterns      []pattern.Pattern
	PatternErrors []error

	// FileTokens are paths or globs in the order given.
	FileTokens []string

	Overrides config.Overrides
	Help      bool
}

// Mode returns the pattern mode the strategy needs.
func (inv *Invocation) Mode() pattern.Mode {
	if inv.Strategy.FixedStrings() {
		return pattern.ModeFixed
	}
	return pattern.ModeRegex
}

// Parse classifies argv. Options may appear anywhere. Per-pattern errors
// are collected in PatternErrors even when Parse fails, so they can be
// reported before the fatal error.
func Parse(argv []string) (*Invocation, error) {
	inv := &Invocation{Flags: option.NewFlags()}

	var rest []string
	for _, arg := range argv {
		switch {
		case arg == "-h" || arg == "--help":
			inv.Help = true
			return inv, nil
		case isSetting(arg):
			if err := inv.setSetting(arg); err != nil {
				return inv, err
			}
		default:
			rest = append(rest, arg)
		}
	}

	if len(rest) < 2 {
		return inv, ErrTooFewArguments
	}

	seenPattern := false
	for _, arg := range rest {
		switch {
		case strings.HasPrefix(arg, "-"):
			if err := inv.Flags.Add(arg); err != nil {
				return inv, err
			}
		case isPatternArg(arg):
			if seenPattern {
				return inv, ErrPatternsNotContiguous
			}
			seenPattern = true
			inv.PatternArg = arg
			inv.Patterns, inv.PatternErrors = pattern.ParseList(arg)
		case isFileToken(arg):
			inv.FileTokens = append(inv.FileTokens, arg)
		default:
			return inv, fmt.Errorf("%w %s", ErrUnsupportedArgument, arg)
		}
	}

	if len(inv.Patterns) == 0 {
		return inv, pattern.ErrNoPatterns
	}

	strategy, err := option.Resolve(inv.Flags)
	if err != nil {
		return inv, err
	}
	inv.Strategy = strategy
	return inv, nil
}

// isPatternArg reports whether a token is the pattern argument. Tokens
// starting with '/' are patterns unless they look like an absolute file
// path: a single token outside the pattern grammar that ends in an
// extension.
func isPatternArg(arg string) bool {
	if !strings.HasPrefix(arg, "/") {
		return false
	}
	if strings.ContainsAny(arg, " \t") || patternTokenRe.MatchString(arg) {
		return true
	}
	return !isFileToken(arg)
}

func isFileToken(arg string) bool {
	return fileTokenRe.MatchString(arg) || strings.ContainsAny(arg, "*?[{")
}

func isSetting(arg string) bool {
	name, _, _ := strings.Cut(arg, "=")
	return settings[name]
}

func (inv *Invocation) setSetting(arg string) error {
	name, value, ok := strings.Cut(arg, "=")
	if !ok || value == "" {
		return fmt.Errorf("%w %s: expected %s=VALUE", ErrInvalidSetting, arg, name)
	}

	switch name {
	case "--color":
		inv.Overrides.Color = value
	case "--jobs":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("%w %s: jobs must be a positive integer", ErrInvalidSetting, arg)
		}
		inv.Overrides.Jobs = n
	case "--config":
		inv.Overrides.ConfigPath = value
	case "--log-file":
		inv.Overrides.LogFile = value
	case "--log-level":
		inv.Overrides.LogLevel = value
	}
	return nil
}
