package tabconv

import (
	"io"
	"strings"
)

func parseTSV(_ Converter, text string) (*Table, error) {
	return parseDelimited(TSV, text, "\t")
}

// writeTSV performs no escaping. A tab or newline inside a value corrupts
// the row when read back.
func writeTSV(_ Converter, w io.Writer, t *Table) error {
	if len(t.header) == 0 {
		return nil
	}
	lines := make([]string, 0, t.Len()+1)
	lines = append(lines, strings.Join(t.header, "\t"))
	for _, rec := range t.Records() {
		lines = append(lines, strings.Join(rec, "\t"))
	}
	return writeLines(w, lines)
}
