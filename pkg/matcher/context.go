package matcher

import (
	"iter"

	"github.com/praetorian-inc/linegrep/pkg/types"
)

// windowSpec parameterizes the context strategies. A zero offset disables
// that side of the window.
type windowSpec struct {
	before int
	after  int
	invert bool
}

// window emits, for every trigger line, a separator (except before the
// first trigger of the source), the trigger itself, then the single line
// `before` lines above it, then the single line `after` lines below it.
// Lines outside the source are skipped. Windows of nearby triggers are not
// merged, so lines and separators can repeat.
func (m *Matcher) window(src types.Source, prefix string, w windowSpec) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		lines := src.Lines()
		first := true
		for i, line := range lines {
			if m.set.MatchesLine(line) == w.invert {
				continue
			}

			if !first {
				if !yield(Line{Kind: LineSeparator}) {
					return
				}
			}
			first = false

			if !yield(Line{Kind: LineMatch, Prefix: prefix, Text: line}) {
				return
			}
			if w.before > 0 && w.before <= i {
				if !yield(Line{Kind: LineContext, Prefix: prefix, Text: lines[i-w.before]}) {
					return
				}
			}
			// len(lines)-i cannot overflow; i+w.after can
			if w.after > 0 && w.after < len(lines)-i {
				if !yield(Line{Kind: LineContext, Prefix: prefix, Text: lines[i+w.after]}) {
					return
				}
			}
		}
	}
}
