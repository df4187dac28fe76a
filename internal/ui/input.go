package ui

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
)

// handleInput handles all keyboard input for the application
func (app *Application) handleInput(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyCtrlD:
		row, _ := app.contentView.GetScrollOffset()
		app.contentView.ScrollTo(row+10, 0)
		return nil
	case tcell.KeyCtrlU:
		row, _ := app.contentView.GetScrollOffset()
		if row >= 10 {
			app.contentView.ScrollTo(row-10, 0)
		} else {
			app.contentView.ScrollTo(0, 0)
		}
		return nil
	}

	switch event.Rune() {
	case '?':
		app.showHelpModal()
		return nil
	case 'q':
		app.app.Stop()
		return nil
	case 'j':
		row, _ := app.contentView.GetScrollOffset()
		app.contentView.ScrollTo(row+1, 0)
		return nil
	case 'k':
		row, _ := app.contentView.GetScrollOffset()
		if row > 0 {
			app.contentView.ScrollTo(row-1, 0)
		}
		return nil
	case 'g':
		app.contentView.ScrollToBeginning()
		return nil
	case 'G':
		app.contentView.ScrollToEnd()
		return nil
	case 'f': // Toggle between formatted and original content
		app.viewer.ToggleFormat()
		app.updateContent()
		return nil
	case 'n': // Toggle line number gutter
		app.viewer.SetShowLineNumbers(!app.viewer.Options().ShowLineNumbers)
		app.updateContent()
		return nil
	case 'y': // Copy rendered content to clipboard (yank)
		if !app.viewer.Options().ShowCopyButton {
			app.showStatusMessage("[yellow]Copy is disabled[white]")
			return nil
		}
		app.viewer.Copy()
		return nil
	case 'r': // Re-read the file; any manual format toggle is discarded
		if app.filename == "" {
			app.showStatusMessage("[yellow]Nothing to reload (reading from stdin)[white]")
			return nil
		}
		data, err := os.ReadFile(app.filename)
		if err != nil {
			app.showStatusMessage(fmt.Sprintf("[red]Error reloading: %v[white]", err))
			return nil
		}
		app.viewer.SetContent(string(data))
		app.updateContent()
		app.showStatusMessage(fmt.Sprintf("Reloaded %s", app.filename))
		return nil
	}
	return event
}
