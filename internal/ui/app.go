package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"

	"github.com/textpeek/textpeek/internal/content"
	"github.com/textpeek/textpeek/internal/highlight"
	"github.com/textpeek/textpeek/internal/viewer"
	"github.com/textpeek/textpeek/pkg/clipboard"
)

// Application is the interactive viewer shell around a single Viewer
// instance.
type Application struct {
	filename string // "" when reading from stdin
	viewer   *viewer.Viewer
	app      *tview.Application

	// UI state
	animationFrame int
	lastCopied     int // bytes, 0 until the first copy

	// Confirmation/status messages
	confirmationMessage string
	confirmationEnd     time.Time

	// UI components
	topBar      *tview.TextView
	contentView *tview.TextView
	bottomBar   *tview.TextView
	layout      *tview.Flex
}

// NewApplication creates the TUI around opts. filename is shown in the top
// bar and enables the reload key; pass "" for stdin input.
func NewApplication(opts viewer.Options, filename string) *Application {
	app := &Application{
		filename: filename,
		app:      tview.NewApplication(),
	}
	app.viewer = viewer.New(opts, &statusNotifier{app: app}, clipboard.Copy)
	app.viewer.OnCopy(func(text string) {
		app.lastCopied = len(text)
	})
	return app
}

// Run starts the TUI application.
func (app *Application) Run() error {
	app.setupUI()
	app.app.SetInputCapture(app.handleInput)
	app.startAnimationLoop()

	app.updateContent()

	return app.app.SetRoot(app.layout, true).Run()
}

// setupUI creates and configures all UI components
func (app *Application) setupUI() {
	// Configure tview for transparent background
	tview.Styles.PrimitiveBackgroundColor = tcell.ColorDefault
	tview.Styles.ContrastBackgroundColor = tcell.ColorDefault

	app.topBar = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)

	app.contentView = tview.NewTextView().SetDynamicColors(true).SetWrap(true).SetWordWrap(false)
	app.contentView.SetBorder(true).SetTitleAlign(tview.AlignCenter).SetBorderColor(tcell.ColorTeal)

	app.bottomBar = tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignLeft)

	rows := app.contentRows()
	proportion := 1
	if rows > 0 {
		proportion = 0
	}
	app.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(app.topBar, 1, 0, false).
		AddItem(app.contentView, rows, proportion, true).
		AddItem(app.bottomBar, 1, 0, false)
}

// contentRows returns the fixed row count for the content view, or 0 for a
// proportional full-height layout.
func (app *Application) contentRows() int {
	opts := app.viewer.Options()
	rows := opts.MaxHeight
	if rows > 0 && opts.MinHeight > rows {
		rows = opts.MinHeight
	}
	return rows
}

// updateContent re-renders the viewer into the content view and refreshes
// the surrounding bars.
func (app *Application) updateContent() {
	text := app.viewer.Rendered()

	body := ""
	if app.viewer.HighlightingEnabled() {
		if lang := highlight.Language(app.viewer.DetectedFormat()); lang != "" {
			body = highlight.Tview(lang, text)
		}
	}
	if body == "" {
		body = tview.Escape(text)
	}
	if app.viewer.Options().ShowLineNumbers {
		body = numberTaggedLines(body)
	}

	app.contentView.SetText(body)
	app.updateTitle()
	app.updateTopBar()
	app.updateBottomBar()
}

// updateTitle sets the content border title from the detected format.
func (app *Application) updateTitle() {
	format := strings.ToUpper(app.viewer.DetectedFormat())
	if app.viewer.CanToggleFormat() && !app.viewer.FormatEnabled() {
		app.contentView.SetTitle(fmt.Sprintf(" 📄 %s (raw) ", format))
	} else {
		app.contentView.SetTitle(fmt.Sprintf(" 📄 %s ", format))
	}
}

// updateTopBar updates the header line.
func (app *Application) updateTopBar() {
	name := app.filename
	if name == "" {
		name = "(stdin)"
	}
	name = runewidth.Truncate(name, 60, "…")
	app.topBar.SetText(fmt.Sprintf("[::b][yellow] 👁 textpeek — %s [white]— Press ? for Help", name))
}

// updateBottomBar updates the status/bottom bar
func (app *Application) updateBottomBar() {
	var statusText strings.Builder

	// Check if we have an active confirmation message
	if time.Now().Before(app.confirmationEnd) && app.confirmationMessage != "" {
		pulse := []string{"●", "◐", "◑", "◒", "◓", "○"}
		pulseFrame := (app.animationFrame / 2) % len(pulse)

		statusText.WriteString(fmt.Sprintf(" [yellow]%s [white]%s", pulse[pulseFrame], app.confirmationMessage))
	} else {
		app.confirmationMessage = ""
		statusText.WriteString(fmt.Sprintf("%s │ %s",
			app.viewer.DetectedFormat(), content.HumanSize(app.viewer.ByteSize())))

		if notice := app.viewer.SizeNotice(); notice != "" {
			statusText.WriteString(fmt.Sprintf(" │ [yellow]%s[white]", notice))
		}
		if app.lastCopied > 0 {
			statusText.WriteString(fmt.Sprintf(" │ last copy: %s", content.HumanSize(app.lastCopied)))
		}
		if app.viewer.CanToggleFormat() {
			if app.viewer.FormatEnabled() {
				statusText.WriteString(" │ [green]formatted[white]")
			} else {
				statusText.WriteString(" │ raw")
			}
		}
	}

	app.bottomBar.SetText(" " + statusText.String() + " ")
}

// startAnimationLoop drives the status message pulse.
func (app *Application) startAnimationLoop() {
	go func() {
		for {
			time.Sleep(500 * time.Millisecond)
			app.animationFrame++
			app.app.QueueUpdateDraw(func() {
				app.updateBottomBar()
			})
		}
	}()
}

// showStatusMessage shows a temporary status message
func (app *Application) showStatusMessage(msg string) {
	app.confirmationMessage = msg
	app.confirmationEnd = time.Now().Add(5 * time.Second)
	app.updateBottomBar()
}

// statusNotifier routes viewer notifications onto the status bar.
type statusNotifier struct {
	app *Application
}

func (n *statusNotifier) Info(msg string)  { n.app.showStatusMessage(msg) }
func (n *statusNotifier) Warn(msg string)  { n.app.showStatusMessage("[yellow]" + msg + "[white]") }
func (n *statusNotifier) Error(msg string) { n.app.showStatusMessage("[red]" + msg + "[white]") }

// numberTaggedLines prefixes each line of tview-tagged text with a line
// number gutter.
func numberTaggedLines(body string) string {
	lines := strings.Split(body, "\n")
	gutter := len(fmt.Sprintf("%d", len(lines)))

	var b strings.Builder
	for i, line := range lines {
		fmt.Fprintf(&b, "[gray]%*d[-] │ %s", gutter, i+1, line)
		if i < len(lines)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
