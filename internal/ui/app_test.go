package ui

import (
	"testing"

	"github.com/textpeek/textpeek/internal/viewer"
)

func viewerOptions(max, min int) viewer.Options {
	opts := viewer.DefaultOptions()
	opts.MaxHeight = max
	opts.MinHeight = min
	return opts
}

func TestNumberTaggedLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single line",
			input:    "[green]hi[-]",
			expected: "[gray]1[-] │ [green]hi[-]",
		},
		{
			name:     "two lines",
			input:    "a\nb",
			expected: "[gray]1[-] │ a\n[gray]2[-] │ b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := numberTaggedLines(tt.input); got != tt.expected {
				t.Errorf("numberTaggedLines() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestContentRows(t *testing.T) {
	tests := []struct {
		name     string
		max, min int
		expected int
	}{
		{"unbounded", 0, 0, 0},
		{"max only", 20, 0, 20},
		{"min raises max", 10, 15, 15},
		{"min without max keeps flex", 0, 15, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := NewApplication(viewerOptions(tt.max, tt.min), "x.json")
			if got := app.contentRows(); got != tt.expected {
				t.Errorf("contentRows() = %d, want %d", got, tt.expected)
			}
		})
	}
}
