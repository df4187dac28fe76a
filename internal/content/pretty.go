package content

import (
	"encoding/json"
	"strings"

	"github.com/go-xmlfmt/xmlfmt"
	"github.com/yosssi/gohtml"
)

// MaybePrettyPrint re-indents content when its format supports it and the
// effective format flag is on. Anything over FormatLimit is passed through
// unmodified to bound CPU cost, and parse failures fall back silently to the
// original text (detection only ever guessed the format in the first place).
func MaybePrettyPrint(c, format string, formatted bool) string {
	if !formatted || len(c) > FormatLimit {
		return c
	}

	switch format {
	case FormatJSON:
		return prettyJSON(c)
	case FormatXML, FormatSOAP:
		return prettyXML(c)
	case FormatHTML:
		return gohtml.Format(c)
	}
	return c
}

func prettyJSON(c string) string {
	var data interface{}
	if err := json.Unmarshal([]byte(c), &data); err != nil {
		return c
	}
	pretty, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return c
	}
	return string(pretty)
}

func prettyXML(c string) string {
	formatted := xmlfmt.FormatXML(c, "", "  ")
	// xmlfmt emits a leading CRLF before the first tag
	return strings.TrimLeft(formatted, "\r\n")
}
