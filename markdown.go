package tabconv

import (
	"io"
	"strings"
)

func parseMarkdown(_ Converter, text string) (*Table, error) {
	var lines []string
	for _, line := range splitLines(text) {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 3 {
		return nil, formatError(Markdown, "expected a header row, a separator row and at least one data row, got %d lines", len(lines))
	}
	header := splitMarkdownRow(lines[0])
	// lines[1] is the separator row and is not validated.
	rows := make([]Row, 0, len(lines)-2)
	for _, line := range lines[2:] {
		rows = append(rows, zipRow(header, splitMarkdownRow(line)))
	}
	return NewTable(rows), nil
}

func splitMarkdownRow(line string) []string {
	cells := strings.Split(strings.Trim(line, "| "), "|")
	for i, c := range cells {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}

func writeMarkdown(_ Converter, w io.Writer, t *Table) error {
	if len(t.header) == 0 {
		return nil
	}
	sep := make([]string, len(t.header))
	for i := range sep {
		sep[i] = "---"
	}
	lines := make([]string, 0, t.Len()+2)
	lines = append(lines, markdownRow(t.header), markdownRow(sep))
	for _, rec := range t.Records() {
		lines = append(lines, markdownRow(rec))
	}
	return writeLines(w, lines)
}

func markdownRow(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}
