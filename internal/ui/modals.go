package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// showHelpModal displays the help modal
func (app *Application) showHelpModal() {
	helpText := `[yellow]👁 textpeek - Command Help[white]

[yellow]Navigation:[white]
  [cyan]j/k[white]          Scroll down/up
  [cyan]g/G[white]          Go to top/bottom
  [cyan]Ctrl+D/U[white]     Page down/up

[yellow]Actions:[white]
  [cyan]f[white]            Toggle formatted/original content (JSON, XML, SOAP)
  [cyan]n[white]            Toggle line numbers
  [cyan]y[white]            Copy rendered content to clipboard
  [cyan]r[white]            Reload file from disk
  [cyan]q[white]            Quit`

	helpView := tview.NewTextView()
	helpView.SetDynamicColors(true)
	helpView.SetText(helpText)
	helpView.SetTextAlign(tview.AlignLeft)
	helpView.SetBorder(true)
	helpView.SetTitle(" 🆘 Help ")
	helpView.SetTitleAlign(tview.AlignCenter)
	helpView.SetBorderColor(tcell.ColorYellow)

	// Create a flex container for centering
	helpContainer := tview.NewFlex().SetDirection(tview.FlexRow)
	helpContainer.AddItem(nil, 0, 1, false) // Top spacer
	helpContainer.AddItem(
		tview.NewFlex().
			AddItem(nil, 0, 1, false).     // Left spacer
			AddItem(helpView, 0, 2, true). // Help content (wider)
			AddItem(nil, 0, 1, false),     // Right spacer
		0, 2, true)
	helpContainer.AddItem(nil, 0, 1, false) // Bottom spacer

	helpContainer.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Rune() == 'q' || event.Key() == tcell.KeyEscape || event.Rune() == '?' {
			app.app.SetRoot(app.layout, true)
			return nil
		}
		return event
	})

	app.app.SetFocus(helpContainer)
	app.app.SetRoot(helpContainer, true)
}
