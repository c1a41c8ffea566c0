package matcher

// Separator is printed between two groups of context output.
const Separator = "--"

// LineKind classifies an output line.
type LineKind int

const (
	// LineMatch is a whole input line selected by the predicate.
	LineMatch LineKind = iota
	// LineContext is an input line emitted as context of a trigger line.
	LineContext
	// LineIndex is the 1-based number of a selected line.
	LineIndex
	// LineSubstring is the matched text extracted from a line.
	LineSubstring
	// LineSeparator separates context groups. Never prefixed.
	LineSeparator
	// LineFileName is a bare source path from -l/-L. Never prefixed.
	LineFileName
)

// Line is one line of output.
type Line struct {
	Kind   LineKind
	Prefix string
	Text   string
}

// String renders the line without a terminator.
func (l Line) String() string {
	switch l.Kind {
	case LineSeparator:
		return Separator
	case LineFileName:
		return l.Text
	default:
		return l.Prefix + l.Text
	}
}
