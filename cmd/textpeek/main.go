// textpeek - adaptive terminal viewer for text blobs.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/textpeek/textpeek/internal/content"
	"github.com/textpeek/textpeek/internal/render"
	"github.com/textpeek/textpeek/internal/ui"
	"github.com/textpeek/textpeek/internal/viewer"
	"github.com/textpeek/textpeek/pkg/clipboard"
)

var (
	formatFlag   string
	lineNumbers  bool
	noAutoFormat bool
	noCopy       bool
	plainFlag    bool
	heightFlag   int
	minHeight    int
	themeFlag    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "textpeek [file]",
	Short: "Adaptive viewer for JSON, XML, YAML, SQL, code and plain text",
	Long: `textpeek - adaptive terminal viewer for text blobs.

Detects the content format (JSON, XML, SOAP, YAML, SQL, JavaScript,
TypeScript, CSS, HTML or plain text), pretty-prints it where supported,
and syntax highlights it unless the content is too large. Reads from a
file argument or from stdin.

Interactive mode runs when stdout is a terminal; otherwise the rendered
content is written straight to stdout for piping.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&formatFlag, "format", "f", content.FormatAuto,
		"Format hint (auto, json, xml, soap, yaml, sql, javascript, typescript, css, html, txt)")
	rootCmd.Flags().BoolVarP(&lineNumbers, "line-numbers", "n", false, "Show line numbers")
	rootCmd.Flags().BoolVar(&noAutoFormat, "no-auto-format", false, "Do not pretty-print content by default")
	rootCmd.Flags().BoolVar(&noCopy, "no-copy", false, "Disable the clipboard copy action")
	rootCmd.Flags().BoolVarP(&plainFlag, "plain", "p", false, "Print rendered content to stdout instead of the TUI")
	rootCmd.Flags().IntVar(&heightFlag, "height", 0, "Maximum content height in rows (TUI mode)")
	rootCmd.Flags().IntVar(&minHeight, "min-height", 0, "Minimum content height in rows (TUI mode)")
	rootCmd.Flags().StringVar(&themeFlag, "theme", "monokai", "Highlight style for plain output")
}

func run(cmd *cobra.Command, args []string) error {
	if !content.IsKnownFormat(formatFlag) {
		return fmt.Errorf("unknown format %q", formatFlag)
	}

	filename, data, err := readInput(args)
	if err != nil {
		return err
	}

	opts := viewer.DefaultOptions()
	opts.Content = string(data)
	opts.Format = formatFlag
	opts.ShowLineNumbers = lineNumbers
	opts.ShowCopyButton = !noCopy
	opts.AutoFormat = !noAutoFormat
	opts.MaxHeight = heightFlag
	opts.MinHeight = minHeight

	tty := term.IsTerminal(int(os.Stdout.Fd()))
	if plainFlag || !tty {
		v := viewer.New(opts, stderrNotifier{}, clipboard.Copy)
		out, notice := render.Plain(v, render.Options{Color: tty, Theme: themeFlag})
		if notice != "" {
			fmt.Fprintln(os.Stderr, notice)
		}
		fmt.Println(out)
		return nil
	}

	return ui.NewApplication(opts, filename).Run()
}

// readInput loads the file argument, or stdin when absent or "-". The
// returned filename is "" for stdin.
func readInput(args []string) (string, []byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", nil, fmt.Errorf("reading stdin: %w", err)
		}
		return "", data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", nil, err
	}
	return args[0], data, nil
}

// stderrNotifier reports viewer notifications on stderr in plain mode.
type stderrNotifier struct{}

func (stderrNotifier) Info(msg string)  { fmt.Fprintln(os.Stderr, msg) }
func (stderrNotifier) Warn(msg string)  { fmt.Fprintln(os.Stderr, "warning: "+msg) }
func (stderrNotifier) Error(msg string) { fmt.Fprintln(os.Stderr, "error: "+msg) }
