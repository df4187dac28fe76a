package content

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestMaybePrettyPrint_JSON(t *testing.T) {
	input := `{"a":1}`
	want := "{\n  \"a\": 1\n}"

	got := MaybePrettyPrint(input, FormatJSON, true)
	if got != want {
		t.Errorf("MaybePrettyPrint() = %q, want %q", got, want)
	}

	// Pretty-printing must not change the parsed value, and re-applying
	// it must be a no-op.
	var original, formatted interface{}
	if err := json.Unmarshal([]byte(input), &original); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(got), &formatted); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(original, formatted) {
		t.Errorf("parsed value changed: %v != %v", original, formatted)
	}
	if again := MaybePrettyPrint(got, FormatJSON, true); again != got {
		t.Errorf("not idempotent: %q != %q", again, got)
	}
}

func TestMaybePrettyPrint_PassThrough(t *testing.T) {
	big := `["` + strings.Repeat("a", FormatLimit) + `"]`

	tests := []struct {
		name      string
		content   string
		format    string
		formatted bool
	}{
		{"flag off", `{"a":1}`, FormatJSON, false},
		{"invalid json", `{"a": oops}`, FormatJSON, true},
		{"format without printer", "key: value", FormatYAML, true},
		{"plain text", "hello", FormatText, true},
		{"over size budget", big, FormatJSON, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaybePrettyPrint(tt.content, tt.format, tt.formatted); got != tt.content {
				t.Errorf("expected pass-through, got %q", got)
			}
		})
	}
}

func TestMaybePrettyPrint_XML(t *testing.T) {
	got := MaybePrettyPrint("<a><b>c</b></a>", FormatXML, true)

	if strings.HasPrefix(got, "\r") || strings.HasPrefix(got, "\n") {
		t.Errorf("leading newline not trimmed: %q", got)
	}
	if !strings.HasPrefix(got, "<a>") {
		t.Errorf("unexpected output: %q", got)
	}
	if !strings.Contains(got, "  <b>") {
		t.Errorf("expected indented child element, got %q", got)
	}

	// SOAP uses the same printer
	soap := MaybePrettyPrint("<soap:Envelope><soap:Body/></soap:Envelope>", FormatSOAP, true)
	if !strings.Contains(soap, "  <soap:Body") {
		t.Errorf("expected indented SOAP body, got %q", soap)
	}
}

func TestMaybePrettyPrint_HTML(t *testing.T) {
	got := MaybePrettyPrint("<html><body><p>x</p></body></html>", FormatHTML, true)
	if !strings.Contains(got, "\n") {
		t.Errorf("expected multi-line output, got %q", got)
	}
	if !strings.Contains(got, "<body>") {
		t.Errorf("body element missing: %q", got)
	}
}
