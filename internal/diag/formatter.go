package diag

import (
	"fmt"
	"io"
	"strings"
)

// Formatter renders diagnostics to a terminal. Every diagnostic begins with
// the canonical "line:column: message" line; when source text is attached the
// offending line is echoed beneath it with a caret underline.
type Formatter struct {
	out          io.Writer
	source       []string // source split into lines, nil when unavailable
	color        bool
	contextLines int
	maxErrors    int // 0 = unlimited
}

// FormatterOption configures a Formatter.
type FormatterOption func(*Formatter)

// WithColor enables or disables ANSI styling.
func WithColor(on bool) FormatterOption {
	return func(f *Formatter) { f.color = on }
}

// WithContextLines sets how many surrounding source lines each snippet shows.
func WithContextLines(n int) FormatterOption {
	return func(f *Formatter) {
		if n >= 0 {
			f.contextLines = n
		}
	}
}

// WithMaxErrors caps how many diagnostics are rendered; 0 means unlimited.
func WithMaxErrors(n int) FormatterOption {
	return func(f *Formatter) {
		if n >= 0 {
			f.maxErrors = n
		}
	}
}

// NewFormatter creates a formatter writing to out.
func NewFormatter(out io.Writer, opts ...FormatterOption) *Formatter {
	f := &Formatter{out: out}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SetSource attaches the source text used for snippet rendering.
func (f *Formatter) SetSource(src string) {
	f.source = strings.Split(src, "\n")
}

// Print renders the diagnostics in order and returns how many were shown.
// Ordering is the caller's: diagnostics are never reordered or deduplicated.
func (f *Formatter) Print(diags []Diagnostic) int {
	shown := 0
	for _, d := range diags {
		if f.maxErrors > 0 && shown == f.maxErrors {
			fmt.Fprintf(f.out, "... and %d more errors\n", len(diags)-shown)
			return shown
		}
		f.Format(d)
		shown++
	}
	return shown
}

// Format renders a single diagnostic.
func (f *Formatter) Format(d Diagnostic) {
	f.printHeader(d)
	f.printSnippet(d)
}

func (f *Formatter) printHeader(d Diagnostic) {
	loc := fmt.Sprintf("%d:%d:", d.Span.Line, d.Span.Column)
	msg := d.Message
	if f.color {
		loc = SpanStyle.Render(loc)
		msg = severityStyle(d.Severity).Render(msg)
	}
	fmt.Fprintf(f.out, "%s %s\n", loc, msg)
}

func (f *Formatter) printSnippet(d Diagnostic) {
	if f.source == nil || !d.Span.IsValid() || d.Span.Line > len(f.source) {
		return
	}

	first := d.Span.Line - f.contextLines
	if first < 1 {
		first = 1
	}
	last := d.Span.Line + f.contextLines
	if last > len(f.source) {
		last = len(f.source)
	}
	gutterWidth := len(fmt.Sprintf("%d", last))

	for lineNum := first; lineNum <= last; lineNum++ {
		gutter := fmt.Sprintf(" %*d |", gutterWidth, lineNum)
		if f.color {
			gutter = GutterStyle.Render(gutter)
		}
		fmt.Fprintf(f.out, "%s %s\n", gutter, f.source[lineNum-1])

		if lineNum == d.Span.Line {
			f.printCaret(gutterWidth, d.Span)
		}
	}
}

func (f *Formatter) printCaret(gutterWidth int, span Span) {
	width := span.End - span.Start
	if width < 1 {
		width = 1
	}
	lineLen := len([]rune(f.source[span.Line-1]))
	if span.Column-1+width > lineLen {
		width = lineLen - (span.Column - 1)
		if width < 1 {
			width = 1
		}
	}

	gutter := fmt.Sprintf(" %s |", strings.Repeat(" ", gutterWidth))
	caret := strings.Repeat("^", width)
	if f.color {
		gutter = GutterStyle.Render(gutter)
		caret = CaretStyle.Render(caret)
	}
	fmt.Fprintf(f.out, "%s %s%s\n", gutter, strings.Repeat(" ", span.Column-1), caret)
}
