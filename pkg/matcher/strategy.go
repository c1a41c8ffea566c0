package matcher

import (
	"iter"
	"strconv"

	"github.com/praetorian-inc/linegrep/pkg/types"
)

// render turns the selected line at index i into an output line.
type render func(prefix string, i int, line string) Line

func renderLine(prefix string, _ int, line string) Line {
	return Line{Kind: LineMatch, Prefix: prefix, Text: line}
}

// renderIndex emits the 1-based line number in place of the content. This
// is what -c prints: one number per selected line, not a total.
func renderIndex(prefix string, i int, _ string) Line {
	return Line{Kind: LineIndex, Prefix: prefix, Text: strconv.Itoa(i + 1)}
}

// selectLines walks the source once and renders every line whose match
// result differs from invert.
func (m *Matcher) selectLines(src types.Source, prefix string, invert bool, r render) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i, line := range src.Lines() {
			if m.set.MatchesLine(line) == invert {
				continue
			}
			if !yield(r(prefix, i, line)) {
				return
			}
		}
	}
}

// onlyMatching emits the matched text of every matching line.
func (m *Matcher) onlyMatching(src types.Source, prefix string) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for _, line := range src.Lines() {
			text, ok := m.set.MatchedSubstring(line)
			if !ok {
				continue
			}
			if !yield(Line{Kind: LineSubstring, Prefix: prefix, Text: text}) {
				return
			}
		}
	}
}

// fileName emits the source path once when the source has a matching line
// (want=true) or has none (want=false).
func (m *Matcher) fileName(src types.Source, want bool) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		found := false
		for _, line := range src.Lines() {
			if m.set.MatchesLine(line) {
				found = true
				break
			}
		}
		if found == want {
			yield(Line{Kind: LineFileName, Text: src.Path()})
		}
	}
}
