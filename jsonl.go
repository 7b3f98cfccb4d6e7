package tabconv

import (
	"bytes"
	"io"
	"strings"
)

func parseNDJSON(_ Converter, text string) (*Table, error) {
	var rows []Row
	for i, line := range splitLines(text) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		v, err := DecodeJSONValue([]byte(line))
		if err != nil {
			return nil, formatError(NDJSON, "line %d: expected a JSON object: %v", i+1, err)
		}
		row, ok := v.Row()
		if !ok {
			return nil, formatError(NDJSON, "line %d: expected a JSON object, got %s", i+1, v.Kind)
		}
		rows = append(rows, row)
	}
	return NewTable(rows), nil
}

func writeNDJSON(_ Converter, w io.Writer, t *Table) error {
	header := t.Header()
	lines := make([]string, 0, t.Len())
	for _, rec := range t.Records() {
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, v := range rec {
			if i > 0 {
				buf.WriteByte(',')
			}
			appendJSONString(&buf, header[i])
			buf.WriteByte(':')
			appendJSONString(&buf, v)
		}
		buf.WriteByte('}')
		lines = append(lines, buf.String())
	}
	return writeLines(w, lines)
}
