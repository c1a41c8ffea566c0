package matcher

// SourceStat counts what a run did with one source.
type SourceStat struct {
	Path     string // source identifier
	Lines    int    // lines in the source
	Selected int    // selected lines, or 1 when -l/-L printed the path
	Emitted  int    // output lines produced, separators and context included
}

func (s *SourceStat) count(l Line) {
	s.Emitted++
	switch l.Kind {
	case LineMatch, LineIndex, LineSubstring, LineFileName:
		s.Selected++
	}
}
