package clipboard

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
)

// Copy copies text to the system clipboard, trying local clipboard
// utilities first and falling back to an OSC52 escape sequence so copying
// still works over SSH or inside terminals without a clipboard tool.
func Copy(text string) error {
	commands := [][]string{
		{"xclip", "-selection", "clipboard"},
		{"xsel", "--clipboard", "--input"},
		{"pbcopy"}, // macOS
		{"clip"},   // Windows
	}

	for _, cmdArgs := range commands {
		cmd := exec.Command(cmdArgs[0], cmdArgs[1:]...)
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}

	// OSC52: hand the text to the terminal emulator itself. Written to
	// stderr so it reaches the terminal even when stdout is redirected.
	if _, err := osc52.New(text).WriteTo(os.Stderr); err == nil {
		return nil
	}

	return fmt.Errorf("no clipboard available (tried xclip, xsel, pbcopy, clip, OSC52)")
}
