package content

import (
	"strings"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "empty content",
			content:  "",
			expected: FormatText,
		},
		{
			name:     "whitespace only",
			content:  "   \n\t  ",
			expected: FormatText,
		},
		{
			name:     "json object",
			content:  `{"a":1}`,
			expected: FormatJSON,
		},
		{
			name:     "json array",
			content:  `[1, 2, 3]`,
			expected: FormatJSON,
		},
		{
			name:     "invalid json falls through to css",
			content:  `{"a": oops}`,
			expected: FormatCSS,
		},
		{
			name:     "self-closing xml",
			content:  "<a/>",
			expected: FormatXML,
		},
		{
			name:     "xml declaration",
			content:  `<?xml version="1.0"?><root/>`,
			expected: FormatXML,
		},
		{
			name:     "soap envelope",
			content:  "<soap:Envelope/>",
			expected: FormatSOAP,
		},
		{
			name:     "soapenv envelope",
			content:  `<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/"></soapenv:Envelope>`,
			expected: FormatSOAP,
		},
		{
			name:     "yaml document marker",
			content:  "---\nkey: value",
			expected: FormatYAML,
		},
		{
			name:     "yaml multi-line mapping",
			content:  "key: value\nother: 2",
			expected: FormatYAML,
		},
		{
			name:     "sql select",
			content:  "SELECT * FROM t",
			expected: FormatSQL,
		},
		{
			name:     "sql lowercase with leading space",
			content:  "  insert into users values (1)",
			expected: FormatSQL,
		},
		{
			name:     "html tag inside text",
			content:  "hello <div>world</div>",
			expected: FormatHTML,
		},
		{
			name:     "javascript function",
			content:  "function foo() { return 1 }",
			expected: FormatJavaScript,
		},
		{
			name:     "typescript single line",
			content:  "const x: number = 1; interface Foo { bar: number }",
			expected: FormatTypeScript,
		},
		{
			name:     "css rule",
			content:  ".a { color: red }",
			expected: FormatCSS,
		},
		{
			name:     "plain prose",
			content:  "just some words",
			expected: FormatText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.content); got != tt.expected {
				t.Errorf("Detect() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestDetect_LargeContentFastPath(t *testing.T) {
	filler := strings.Repeat("x", FormatLimit)

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			// No validation above the size budget: a leading brace wins
			// even though the blob is not valid JSON.
			name:     "brace prefix skips parsing",
			content:  "{" + filler,
			expected: FormatJSON,
		},
		{
			name:     "bracket prefix",
			content:  "[" + filler,
			expected: FormatJSON,
		},
		{
			name:     "angle bracket prefix",
			content:  "<root>" + filler + "</root>",
			expected: FormatXML,
		},
		{
			name:     "large soap envelope",
			content:  "<soap:Envelope>" + filler + "</soap:Envelope>",
			expected: FormatSOAP,
		},
		{
			name:     "no structural prefix",
			content:  "key: value\n" + filler,
			expected: FormatText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.content); got != tt.expected {
				t.Errorf("Detect() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsKnownFormat(t *testing.T) {
	for _, f := range Formats() {
		if !IsKnownFormat(f) {
			t.Errorf("IsKnownFormat(%q) = false, want true", f)
		}
	}
	if IsKnownFormat("markdown") {
		t.Error("IsKnownFormat(\"markdown\") = true, want false")
	}
}

func BenchmarkDetect(b *testing.B) {
	jsContent := `
		function fibonacci(n) {
			if (n <= 1) return n;
			return fibonacci(n - 1) + fibonacci(n - 2);
		}
	`
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Detect(jsContent)
	}
}
