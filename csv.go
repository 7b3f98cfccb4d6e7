package tabconv

import (
	"io"
	"strings"
)

// parseDelimited reads delimiter-separated text. Quoting is not recognized:
// a field containing the delimiter is read as several fields.
func parseDelimited(f Format, text, sep string) (*Table, error) {
	var lines []string
	for _, line := range splitLines(text) {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, formatError(f, "expected a header line")
	}
	header := strings.Split(lines[0], sep)
	rows := make([]Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		rows = append(rows, zipRow(header, strings.Split(line, sep)))
	}
	return NewTable(rows), nil
}

func parseCSV(_ Converter, text string) (*Table, error) {
	return parseDelimited(CSV, text, ",")
}

func writeCSV(_ Converter, w io.Writer, t *Table) error {
	if len(t.header) == 0 {
		return nil
	}
	lines := make([]string, 0, t.Len()+1)
	lines = append(lines, joinCSV(t.header))
	for _, rec := range t.Records() {
		lines = append(lines, joinCSV(rec))
	}
	return writeLines(w, lines)
}

func joinCSV(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = quoteCSV(f)
	}
	return strings.Join(quoted, ",")
}

// quoteCSV quotes a field if and only if it contains a comma, a double quote
// or a line break.
func quoteCSV(s string) string {
	if !strings.ContainsAny(s, ",\"\r\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
