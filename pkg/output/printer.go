// Package output renders matcher lines to a writer.
package output

import (
	"bufio"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/praetorian-inc/linegrep/pkg/config"
	"github.com/praetorian-inc/linegrep/pkg/matcher"
	"golang.org/x/term"
)

// styles holds color formatters for each kind of output.
type styles struct {
	prefix    *color.Color
	fileName  *color.Color
	separator *color.Color
	substring *color.Color
}

func newStyles(enabled bool) *styles {
	s := &styles{
		prefix:    color.New(color.FgMagenta),
		fileName:  color.New(color.FgMagenta),
		separator: color.New(color.FgCyan),
		substring: color.New(color.Bold, color.FgRed),
	}

	for _, c := range []*color.Color{s.prefix, s.fileName, s.separator, s.substring} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// Printer writes one line of text per matcher line.
type Printer struct {
	w      *bufio.Writer
	styles *styles
}

// NewPrinter creates a printer. With colors off the output is exactly
// Line.String() followed by a newline.
func NewPrinter(w io.Writer, colors bool) *Printer {
	return &Printer{
		w:      bufio.NewWriter(w),
		styles: newStyles(colors),
	}
}

// Print writes a single line.
func (p *Printer) Print(l matcher.Line) error {
	var text string
	switch l.Kind {
	case matcher.LineSeparator:
		text = p.styles.separator.Sprint(matcher.Separator)
	case matcher.LineFileName:
		text = p.styles.fileName.Sprint(l.Text)
	case matcher.LineSubstring:
		text = p.colorPrefix(l.Prefix) + p.styles.substring.Sprint(l.Text)
	default:
		text = p.colorPrefix(l.Prefix) + l.Text
	}
	if _, err := p.w.WriteString(text); err != nil {
		return err
	}
	return p.w.WriteByte('\n')
}

// PrintAll writes every line of seq and flushes. It returns the number of
// lines written.
func (p *Printer) PrintAll(seq iter.Seq[matcher.Line]) (int, error) {
	n := 0
	for l := range seq {
		if err := p.Print(l); err != nil {
			return n, err
		}
		n++
	}
	return n, p.Flush()
}

// Flush writes buffered output.
func (p *Printer) Flush() error {
	return p.w.Flush()
}

func (p *Printer) colorPrefix(prefix string) string {
	if prefix == "" {
		return ""
	}
	// color the path, not the ": " after it
	path := strings.TrimSuffix(prefix, ": ")
	return p.styles.prefix.Sprint(path) + prefix[len(path):]
}

// ColorEnabled decides whether to color output for mode. In auto mode
// colors are used only when out is a terminal and NO_COLOR is unset.
func ColorEnabled(mode string, out io.Writer) bool {
	switch strings.ToLower(mode) {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
