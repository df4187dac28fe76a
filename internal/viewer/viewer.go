// Package viewer implements the adaptive content viewer: given a text blob
// and an optional format hint it decides how the blob should be rendered,
// guards against pathological input sizes, and carries the copy and
// format-toggle actions. It is UI-agnostic; the TUI and the plain renderer
// both sit on top of it.
package viewer

import (
	"fmt"
	"log"

	"github.com/textpeek/textpeek/internal/content"
)

// Notifier is the notification surface the viewer reports through. The TUI
// backs it with the status bar; plain mode with stderr.
type Notifier interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

// Clipboard writes text to the system clipboard.
type Clipboard func(text string) error

// Options configure a Viewer. The zero value is not useful; start from
// DefaultOptions.
type Options struct {
	Content         string
	Format          string // explicit format hint, or FormatAuto to sniff
	ShowLineNumbers bool
	ShowCopyButton  bool
	AutoFormat      bool
	MaxHeight       int // rows, 0 = no limit
	MinHeight       int // rows, 0 = no minimum
}

// DefaultOptions returns the documented defaults: auto-detected format,
// auto-formatting on, copy available, no line numbers.
func DefaultOptions() Options {
	return Options{
		Format:         content.FormatAuto,
		ShowCopyButton: true,
		AutoFormat:     true,
	}
}

// Viewer holds the per-content display state. Everything derived (detected
// format, rendered text, highlight eligibility) is recomputed on demand;
// the only mutable state is the content itself and the manual format
// override.
type Viewer struct {
	opts     Options
	override *bool // nil = unset, follow AutoFormat

	notifier  Notifier
	clipboard Clipboard
	onCopy    func(text string)
}

// New creates a viewer over opts. notifier and clipboard may not be nil.
func New(opts Options, notifier Notifier, clipboard Clipboard) *Viewer {
	if opts.Format == "" {
		opts.Format = content.FormatAuto
	}
	return &Viewer{
		opts:      opts,
		notifier:  notifier,
		clipboard: clipboard,
	}
}

// OnCopy registers a callback fired with the copied text after a successful
// copy.
func (v *Viewer) OnCopy(fn func(text string)) {
	v.onCopy = fn
}

// Options returns the viewer's current options.
func (v *Viewer) Options() Options {
	return v.opts
}

// Content returns the raw content.
func (v *Viewer) Content() string {
	return v.opts.Content
}

// SetContent replaces the content. A manual format override never carries
// across a new input, so the effective format flag reverts to AutoFormat.
func (v *Viewer) SetContent(c string) {
	v.opts.Content = c
	v.override = nil
}

// SetShowLineNumbers flips the line-number gutter.
func (v *Viewer) SetShowLineNumbers(show bool) {
	v.opts.ShowLineNumbers = show
}

// ByteSize returns the content size in bytes.
func (v *Viewer) ByteSize() int {
	return len(v.opts.Content)
}

// DetectedFormat returns the explicit hint when one was given, otherwise
// the sniffed format.
func (v *Viewer) DetectedFormat() string {
	if v.opts.Format != content.FormatAuto {
		return v.opts.Format
	}
	return content.Detect(v.opts.Content)
}

// HighlightingEnabled reports whether the content is small enough to syntax
// highlight. This is a hard performance guard; no option re-enables it for
// oversized content.
func (v *Viewer) HighlightingEnabled() bool {
	return content.ShouldHighlight(v.ByteSize())
}

// FormatEnabled resolves the effective format flag: the manual override if
// the user toggled, else the AutoFormat option.
func (v *Viewer) FormatEnabled() bool {
	if v.override != nil {
		return *v.override
	}
	return v.opts.AutoFormat
}

// Rendered returns the string currently on display: the content, pretty
// printed when its format supports it and the effective format flag is on.
// Recomputed from scratch on every call; it stays cheap because the pretty
// printer refuses oversized input.
func (v *Viewer) Rendered() string {
	return content.MaybePrettyPrint(v.opts.Content, v.DetectedFormat(), v.FormatEnabled())
}

// CanToggleFormat reports whether the toggle-format action applies to the
// detected format.
func (v *Viewer) CanToggleFormat() bool {
	switch v.DetectedFormat() {
	case content.FormatJSON, content.FormatXML, content.FormatSOAP:
		return true
	}
	return false
}

// ToggleFormat flips the manual format override and reports the resulting
// state. Formats without a pretty printer get a warning and no state
// change.
func (v *Viewer) ToggleFormat() {
	if !v.CanToggleFormat() {
		v.notifier.Warn(fmt.Sprintf("Formatting not supported for %s content", v.DetectedFormat()))
		return
	}
	next := !v.FormatEnabled()
	v.override = &next
	if next {
		v.notifier.Info("Content formatted")
	} else {
		v.notifier.Info("Showing original content")
	}
}

// Copy writes the currently rendered string to the clipboard and reports
// the outcome. A clipboard failure is reported and logged, never returned.
func (v *Viewer) Copy() {
	text := v.Rendered()
	if err := v.clipboard(text); err != nil {
		log.Printf("clipboard write failed: %v", err)
		v.notifier.Error(fmt.Sprintf("Clipboard error: %v", err))
		return
	}
	v.notifier.Info(fmt.Sprintf("Copied %s to clipboard", content.HumanSize(len(text))))
	if v.onCopy != nil {
		v.onCopy(text)
	}
}

// SizeNotice returns the notice shown when highlighting is disabled, or ""
// when it is active.
func (v *Viewer) SizeNotice() string {
	if v.HighlightingEnabled() {
		return ""
	}
	return fmt.Sprintf("Syntax highlighting disabled for performance (%s)", content.HumanSize(v.ByteSize()))
}
