package option

import "fmt"

// Kind identifies one supported matching strategy.
type Kind int

const (
	KindDefault Kind = iota
	KindInvert
	KindCount
	KindCountInvert
	KindFilesWithMatches
	KindFilesWithoutMatch
	KindOnlyMatching
	KindFixed
	KindFixedCount
	KindFixedOnlyMatching
	KindFixedInvert
	KindFixedCountInvert
	KindAfter
	KindAfterInvert
	KindBefore
	KindBeforeInvert
	KindContext
	KindContextInvert
)

var kindNames = map[Kind]string{
	KindDefault:           "default",
	KindInvert:            "v",
	KindCount:             "c",
	KindCountInvert:       "cv",
	KindFilesWithMatches:  "l",
	KindFilesWithoutMatch: "L",
	KindOnlyMatching:      "o",
	KindFixed:             "F",
	KindFixedCount:        "Fc",
	KindFixedOnlyMatching: "Fo",
	KindFixedInvert:       "Fv",
	KindFixedCountInvert:  "Fcv",
	KindAfter:             "A",
	KindAfterInvert:       "Av",
	KindBefore:            "B",
	KindBeforeInvert:      "Bv",
	KindContext:           "C",
	KindContextInvert:     "Cv",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Strategy is a resolved flag combination. Window is the context size and is
// only meaningful for the after/before/context kinds.
type Strategy struct {
	Kind   Kind
	Window int
}

// FixedStrings reports whether patterns must be treated as literals.
func (s Strategy) FixedStrings() bool {
	switch s.Kind {
	case KindFixed, KindFixedCount, KindFixedOnlyMatching, KindFixedInvert, KindFixedCountInvert:
		return true
	}
	return false
}

// Inverted reports whether the strategy selects non-matching lines.
func (s Strategy) Inverted() bool {
	switch s.Kind {
	case KindInvert, KindCountInvert, KindFixedInvert, KindFixedCountInvert,
		KindAfterInvert, KindBeforeInvert, KindContextInvert:
		return true
	}
	return false
}

// Windowed reports whether the strategy emits context windows.
func (s Strategy) Windowed() bool {
	return s.Kind >= KindAfter && s.Kind <= KindContextInvert
}

func (s Strategy) String() string {
	if s.Windowed() {
		return fmt.Sprintf("%s(%d)", s.Kind, s.Window)
	}
	return s.Kind.String()
}

// Combination is one supported flag combination.
type Combination struct {
	Key         string // canonical key, see Flags.Key
	Kind        Kind
	Window      Flag // flag carrying the context size, 0 if none
	Description string
}

var supported = []Combination{
	{Key: "", Kind: KindDefault, Description: "print matching lines"},
	{Key: "v", Kind: KindInvert, Description: "print non-matching lines"},
	{Key: "c", Kind: KindCount, Description: "print the line number of each matching line"},
	{Key: "co", Kind: KindCount, Description: "same as -c"},
	{Key: "cv", Kind: KindCountInvert, Description: "print the line number of each non-matching line"},
	{Key: "l", Kind: KindFilesWithMatches, Description: "print the path of each file with a match"},
	{Key: "L", Kind: KindFilesWithoutMatch, Description: "print the path of each file without a match"},
	{Key: "o", Kind: KindOnlyMatching, Description: "print only the matched text"},
	{Key: "F", Kind: KindFixed, Description: "match literal strings, print matching lines"},
	{Key: "Fc", Kind: KindFixedCount, Description: "match literal strings, print line numbers"},
	{Key: "Fo", Kind: KindFixedOnlyMatching, Description: "match literal strings, print the literals found"},
	{Key: "Fv", Kind: KindFixedInvert, Description: "print lines containing none of the literals"},
	{Key: "Fcv", Kind: KindFixedCountInvert, Description: "print line numbers of lines containing none of the literals"},
	{Key: "A", Kind: KindAfter, Window: FlagAfter, Description: "print each match and the line N below it"},
	{Key: "Av", Kind: KindAfterInvert, Window: FlagAfter, Description: "as -A, for non-matching lines"},
	{Key: "B", Kind: KindBefore, Window: FlagBefore, Description: "print each match and the line N above it"},
	{Key: "Bv", Kind: KindBeforeInvert, Window: FlagBefore, Description: "as -B, for non-matching lines"},
	{Key: "C", Kind: KindContext, Window: FlagContext, Description: "print each match and the lines N above and below it"},
	{Key: "Cv", Kind: KindContextInvert, Window: FlagContext, Description: "as -C, for non-matching lines"},
}

// Supported returns every accepted combination in display order.
func Supported() []Combination {
	out := make([]Combination, len(supported))
	copy(out, supported)
	return out
}

// Resolve maps flags to their strategy. Combinations outside the supported
// set are rejected, never downgraded to the default behaviour.
func Resolve(f *Flags) (Strategy, error) {
	key := f.Key()
	for _, c := range supported {
		if c.Key != key {
			continue
		}
		if c.Window == 0 {
			return Strategy{Kind: c.Kind}, nil
		}
		v, _ := f.Get(c.Window)
		if !v.HasNum {
			return Strategy{}, fmt.Errorf("%w (-%c needs a line count, e.g. -%c_1)", ErrInvalidCombination, c.Window, c.Window)
		}
		return Strategy{Kind: c.Kind, Window: v.Num}, nil
	}
	return Strategy{}, ErrInvalidCombination
}
