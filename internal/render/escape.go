package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/ziadkadry99/resume-radar/internal/analysis"
)

// escaper rewrites the five HTML-sensitive characters to named entities.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#39;",
	"<", "&lt;",
	">", "&gt;",
)

// EscapeText converts a field value into display-safe text. Text input has
// every HTML-sensitive character replaced with its entity; numeric input is
// formatted as-is. Escaping happens exactly once, at render time. Stored
// data is never pre-escaped, so double-escaping here would be a caller bug.
func EscapeText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return escaper.Replace(t)
	case fmt.Stringer:
		return escaper.Replace(t.String())
	default:
		return fmt.Sprint(t)
	}
}

// FormatMultilineText renders narrative text as escaped lines joined with
// <br> markers. A string input is split on newlines; a sequence input is
// treated as pre-split lines with no further splitting. Anything that is
// neither text nor a sequence of text yields empty output.
func FormatMultilineText(v any) string {
	var lines []string
	switch t := v.(type) {
	case string:
		if t == "" {
			return ""
		}
		lines = strings.Split(t, "\n")
	case []string:
		lines = t
	case analysis.Lines:
		lines = t
	case []any:
		for _, e := range t {
			if s, ok := e.(string); ok {
				lines = append(lines, s)
			} else {
				lines = append(lines, fmt.Sprint(e))
			}
		}
	default:
		return ""
	}
	escaped := make([]string, len(lines))
	for i, line := range lines {
		escaped[i] = EscapeText(line)
	}
	return strings.Join(escaped, "<br>")
}

// timestampLayouts are the serialized forms the backend is known to emit.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// FormatTimestamp renders a serialized date/time as "Jan 2, 2006, 3:04 PM".
// Unparseable input is returned unchanged; empty input yields empty output.
func FormatTimestamp(s string) string {
	if s == "" {
		return ""
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("Jan 2, 2006, 3:04 PM")
		}
	}
	return s
}
