package tabconv

import (
	"fmt"
	"strings"
)

// Detect guesses the format of text. It reports false when no guess can be
// made. The guess is advisory: it is meant for warning about a likely
// mismatch, never for choosing a parser.
func Detect(text string) (Format, bool) {
	trimmed := strings.TrimSpace(text)
	switch {
	case strings.HasPrefix(trimmed, "{"), strings.HasPrefix(trimmed, "["):
		return JSON, true
	case strings.Contains(trimmed, "\t"):
		return TSV, true
	case strings.Contains(trimmed, ","):
		return CSV, true
	case strings.Contains(trimmed, ":") && strings.Contains(trimmed, "-"):
		return YAML, true
	default:
		return "", false
	}
}

// Mismatch returns a warning when text looks like a different format than
// assumed, or "" when the detected format matches or nothing was detected.
func Mismatch(text string, assumed Format) string {
	detected, ok := Detect(text)
	if !ok || detected == assumed {
		return ""
	}
	return fmt.Sprintf("input looks like %s but %s was selected", detected, assumed)
}
