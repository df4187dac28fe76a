package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/muesli/termenv"
	"github.com/rivo/tview"

	"github.com/textpeek/textpeek/internal/content"
)

// Language maps a detected content format to a chroma lexer name. An empty
// result means the format has no highlighter (plain text).
func Language(format string) string {
	switch format {
	case content.FormatJSON:
		return "json"
	case content.FormatXML, content.FormatSOAP:
		return "xml"
	case content.FormatYAML:
		return "yaml"
	case content.FormatSQL:
		return "sql"
	case content.FormatJavaScript:
		return "javascript"
	case content.FormatTypeScript:
		return "typescript"
	case content.FormatCSS:
		return "css"
	case content.FormatHTML:
		return "html"
	}
	return ""
}

// GetLanguage reports whether a lexer is registered for name.
func GetLanguage(name string) bool {
	return name != "" && lexers.Get(name) != nil
}

// Tview highlights code and emits tview color tags for display in a
// TextView with dynamic colors enabled. Returns "" when no lexer exists for
// language or tokenising fails, so callers can fall back to escaped plain
// text.
func Tview(language, code string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		return ""
	}
	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return ""
	}

	var b strings.Builder
	for token := iterator(); token != chroma.EOF; token = iterator() {
		tag := tviewTag(token.Type)
		if tag == "" {
			b.WriteString(tview.Escape(token.Value))
			continue
		}
		b.WriteString(tag)
		b.WriteString(tview.Escape(token.Value))
		b.WriteString("[-]")
	}
	return b.String()
}

// ANSI highlights code with terminal escape sequences for non-TUI output.
// The formatter is picked from the terminal's color profile; a monochrome
// terminal gets "" back and the caller prints the code as-is.
func ANSI(language, code, style string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		return ""
	}

	var name string
	switch termenv.EnvColorProfile() {
	case termenv.TrueColor:
		name = "terminal16m"
	case termenv.ANSI256:
		name = "terminal256"
	case termenv.ANSI:
		name = "terminal16"
	default:
		return ""
	}

	formatter := formatters.Get(name)
	if formatter == nil {
		return ""
	}
	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return ""
	}

	var b strings.Builder
	if err := formatter.Format(&b, styles.Get(style), iterator); err != nil {
		return ""
	}
	return b.String()
}

// tviewTag maps chroma token categories onto the small tview palette the
// rest of the UI uses.
func tviewTag(t chroma.TokenType) string {
	switch {
	case t.InCategory(chroma.Keyword):
		return "[magenta]"
	case t.InSubCategory(chroma.String):
		return "[green]"
	case t.InSubCategory(chroma.Number):
		return "[yellow]"
	case t.InCategory(chroma.Comment):
		return "[gray]"
	case t.InCategory(chroma.Operator), t.InCategory(chroma.Punctuation):
		return "[blue]"
	case t.InCategory(chroma.Name):
		switch t {
		case chroma.NameTag, chroma.NameBuiltin, chroma.NameClass:
			return "[blue]"
		case chroma.NameAttribute, chroma.NameFunction:
			return "[cyan]"
		}
		return ""
	}
	return ""
}
