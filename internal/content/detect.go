package content

import (
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

// Format identifies how a blob of text should be interpreted for display.
const (
	FormatAuto       = "auto"
	FormatJSON       = "json"
	FormatXML        = "xml"
	FormatSOAP       = "soap"
	FormatYAML       = "yaml"
	FormatSQL        = "sql"
	FormatJavaScript = "javascript"
	FormatTypeScript = "typescript"
	FormatCSS        = "css"
	FormatHTML       = "html"
	FormatText       = "txt"
)

var sqlPattern = regexp.MustCompile(`(?i)^\s*(SELECT|INSERT|UPDATE|DELETE|CREATE|ALTER|DROP)\s+`)

// Formats returns the formats a caller may pass as an explicit hint.
func Formats() []string {
	return []string{
		FormatAuto, FormatJSON, FormatXML, FormatSOAP, FormatYAML, FormatSQL,
		FormatJavaScript, FormatTypeScript, FormatCSS, FormatHTML, FormatText,
	}
}

// IsKnownFormat reports whether name is a valid format hint.
func IsKnownFormat(name string) bool {
	for _, f := range Formats() {
		if f == name {
			return true
		}
	}
	return false
}

// Detect sniffs the format of content. It is a best-effort heuristic, not a
// parser: rules are checked in order and the first match wins, so ambiguous
// inputs (a JSON string containing the word "function", YAML-looking prose)
// can and do misclassify. Callers treat the result as a display hint only.
func Detect(c string) string {
	trimmed := strings.TrimSpace(c)
	if trimmed == "" {
		return FormatText
	}

	// Very large blobs get a structural sniff only. Running validators or
	// regexes over multi-megabyte payloads stalls the UI thread.
	if len(c) > FormatLimit {
		switch {
		case strings.HasPrefix(trimmed, "{"), strings.HasPrefix(trimmed, "["):
			return FormatJSON
		case strings.HasPrefix(trimmed, "<?xml"), strings.HasPrefix(trimmed, "<"):
			return refineXML(trimmed)
		}
		return FormatText
	}

	// JSON with validation
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		if gjson.Valid(trimmed) {
			return FormatJSON
		}
	}

	// XML, refined to SOAP when an envelope is present
	if strings.HasPrefix(trimmed, "<?xml") || strings.HasPrefix(trimmed, "<") {
		return refineXML(trimmed)
	}

	if strings.Contains(trimmed, "---") ||
		(strings.Contains(trimmed, ":") && strings.Contains(trimmed, "\n")) {
		return FormatYAML
	}

	if sqlPattern.MatchString(trimmed) {
		return FormatSQL
	}

	lower := strings.ToLower(trimmed)
	if strings.Contains(lower, "<html") || strings.Contains(lower, "<body") || strings.Contains(lower, "<div") {
		return FormatHTML
	}

	if strings.Contains(trimmed, "function") || strings.Contains(trimmed, "const ") || strings.Contains(trimmed, "let ") {
		if strings.Contains(trimmed, ":") &&
			(strings.Contains(trimmed, "interface") || strings.Contains(trimmed, "type ")) {
			return FormatTypeScript
		}
		return FormatJavaScript
	}

	if strings.Contains(trimmed, "{") && strings.Contains(trimmed, "}") && strings.Contains(trimmed, ":") {
		return FormatCSS
	}

	return FormatText
}

func refineXML(trimmed string) string {
	if strings.Contains(trimmed, "soap:Envelope") || strings.Contains(trimmed, "soapenv:Envelope") {
		return FormatSOAP
	}
	return FormatXML
}
