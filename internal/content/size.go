package content

import "fmt"

const (
	// HighlightLimit is the largest content size, in bytes, that still gets
	// syntax highlighting. Tokenising anything bigger makes scrolling crawl.
	HighlightLimit = 512 * 1024

	// FormatLimit bounds pretty-printing and full-path detection. Above it
	// content is passed through unmodified.
	FormatLimit = 2 * 1024 * 1024
)

// ShouldHighlight reports whether a blob of size bytes is small enough to
// syntax highlight.
func ShouldHighlight(size int) bool {
	return size <= HighlightLimit
}

// HumanSize renders a byte count for status bars: "500B", "2.00KB", "3.00MB".
func HumanSize(size int) string {
	switch {
	case size < 1024:
		return fmt.Sprintf("%dB", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.2fKB", float64(size)/1024)
	default:
		return fmt.Sprintf("%.2fMB", float64(size)/(1024*1024))
	}
}
