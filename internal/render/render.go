// Package render produces the non-interactive output path: the rendered
// content with an optional line-number gutter, ANSI-highlighted when the
// terminal supports color and the size guard allows it.
package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/textpeek/textpeek/internal/highlight"
	"github.com/textpeek/textpeek/internal/viewer"
)

// Options configure plain rendering.
type Options struct {
	Color bool   // emit ANSI colors
	Theme string // chroma style name, e.g. "monokai"
}

// Plain renders v for non-TUI output. The returned notice is non-empty when
// syntax highlighting was suppressed by the size guard; callers print it to
// stderr so piped output stays clean.
func Plain(v *viewer.Viewer, opts Options) (out, notice string) {
	text := v.Rendered()

	switch {
	case !v.HighlightingEnabled():
		notice = v.SizeNotice()
	case opts.Color:
		if lang := highlight.Language(v.DetectedFormat()); lang != "" {
			if colored := highlight.ANSI(lang, text, opts.Theme); colored != "" {
				text = colored
			}
		}
	}

	if v.Options().ShowLineNumbers {
		text = NumberLines(text)
	}
	return text, notice
}

// NumberLines prefixes each line with a right-aligned line number gutter.
func NumberLines(text string) string {
	lines := strings.Split(text, "\n")
	gutter := runewidth.StringWidth(fmt.Sprintf("%d", len(lines)))

	var b strings.Builder
	for i, line := range lines {
		fmt.Fprintf(&b, "%*d │ %s", gutter, i+1, line)
		if i < len(lines)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
