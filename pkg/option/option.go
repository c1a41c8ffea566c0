// Package option turns option tokens into a validated flag combination and
// resolves that combination to exactly one matching strategy.
package option

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrInvalidName is returned for a token that names no known flag.
	ErrInvalidName = errors.New("invalid option names")

	// ErrInvalidNumber is returned when a numeric suffix does not fit an int.
	ErrInvalidNumber = errors.New("invalid numeric argument")

	// ErrInvalidCombination is returned for an unsupported set of flags.
	ErrInvalidCombination = errors.New("invalid option combinations.")
)

// Flag is a behaviour flag, identified by its short letter.
type Flag byte

const (
	FlagInvert            Flag = 'v'
	FlagCount             Flag = 'c'
	FlagFilesWithMatches  Flag = 'l'
	FlagFilesWithoutMatch Flag = 'L'
	FlagOnlyMatching      Flag = 'o'
	FlagFixedStrings      Flag = 'F'
	FlagAfter             Flag = 'A'
	FlagBefore            Flag = 'B'
	FlagContext           Flag = 'C'
)

// longNames maps long option names to their short flag.
var longNames = map[string]Flag{
	"--invert-match":        FlagInvert,
	"--count":               FlagCount,
	"--files-with-matches":  FlagFilesWithMatches,
	"--files-without-match": FlagFilesWithoutMatch,
	"--only-matching":       FlagOnlyMatching,
	"--fixed-strings":       FlagFixedStrings,
	"--after-context":       FlagAfter,
	"--before-context":      FlagBefore,
	"--context":             FlagContext,
}

var (
	numericSuffixRe = regexp.MustCompile(`[=_]\d+`)
	digitsRe        = regexp.MustCompile(`\d+`)
)

// Value is the argument carried by a flag occurrence.
type Value struct {
	Num    int
	HasNum bool
}

// ParseToken normalizes one option token. Both "-A_3" and
// "--after-context=3" yield FlagAfter with Num 3. The first run of digits in
// the token is taken as the number, whether or not the flag uses one.
func ParseToken(arg string) (Flag, Value, error) {
	name := numericSuffixRe.ReplaceAllString(arg, "")

	flag, ok := longNames[name]
	if !ok {
		if len(name) != 2 || name[0] != '-' || !isShortFlag(Flag(name[1])) {
			return 0, Value{}, fmt.Errorf("%w %s", ErrInvalidName, arg)
		}
		flag = Flag(name[1])
	}

	var val Value
	if digits := digitsRe.FindString(arg); digits != "" {
		n, err := strconv.Atoi(digits)
		if err != nil {
			return 0, Value{}, fmt.Errorf("%w %s: %v", ErrInvalidNumber, arg, err)
		}
		val = Value{Num: n, HasNum: true}
	}
	return flag, val, nil
}

func isShortFlag(f Flag) bool {
	for _, known := range longNames {
		if known == f {
			return true
		}
	}
	return false
}

// Flags is the set of active flags. A flag given twice keeps its last value.
type Flags struct {
	values map[Flag]Value
}

// NewFlags returns an empty flag set.
func NewFlags() *Flags {
	return &Flags{values: make(map[Flag]Value)}
}

// Set activates flag with val, overwriting any earlier occurrence.
func (f *Flags) Set(flag Flag, val Value) {
	f.values[flag] = val
}

// Add parses token and records it.
func (f *Flags) Add(token string) error {
	flag, val, err := ParseToken(token)
	if err != nil {
		return err
	}
	f.Set(flag, val)
	return nil
}

// Has reports whether flag is active.
func (f *Flags) Has(flag Flag) bool {
	_, ok := f.values[flag]
	return ok
}

// Get returns the value recorded for flag.
func (f *Flags) Get(flag Flag) (Value, bool) {
	v, ok := f.values[flag]
	return v, ok
}

// Len returns the number of active flags.
func (f *Flags) Len() int {
	return len(f.values)
}

// Key is the canonical combination key: active flag letters sorted by byte
// value, so upper case sorts first ("Fcv", "Av", "co").
func (f *Flags) Key() string {
	letters := make([]byte, 0, len(f.values))
	for flag := range f.values {
		letters = append(letters, byte(flag))
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return string(letters)
}

func (f *Flags) String() string {
	var parts []string
	key := f.Key()
	for i := 0; i < len(key); i++ {
		v := f.values[Flag(key[i])]
		if v.HasNum {
			parts = append(parts, fmt.Sprintf("-%c_%d", key[i], v.Num))
		} else {
			parts = append(parts, fmt.Sprintf("-%c", key[i]))
		}
	}
	return strings.Join(parts, " ")
}
