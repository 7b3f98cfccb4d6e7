package tabconv

import (
	"io"
	"strings"
)

// parseYAML reads a flat subset of YAML: a sequence of blocks introduced by
// "-", each holding "key: value" lines. Nested blocks, flow collections,
// multi-line scalars, anchors and tags are not supported.
func parseYAML(_ Converter, text string) (*Table, error) {
	var rows []Row
	current := Row{}
	flush := func() {
		if len(current) > 0 {
			rows = append(rows, current)
			current = Row{}
		}
	}
	for _, line := range splitLines(text) {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			continue
		}
		if rest, ok := strings.CutPrefix(line, "-"); ok {
			flush()
			line = strings.TrimSpace(rest)
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		current[key] = unquoteYAML(strings.TrimSpace(value))
	}
	flush()
	if len(rows) == 0 {
		return nil, formatError(YAML, `expected a sequence of "key: value" blocks`)
	}
	return NewTable(rows), nil
}

// unquoteYAML strips one layer of surrounding double quotes. Escapes inside
// the quotes are left as written.
func unquoteYAML(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

func writeYAML(_ Converter, w io.Writer, t *Table) error {
	lines := make([]string, 0, t.Len()*(len(t.header)+1))
	for _, rec := range t.Records() {
		lines = append(lines, "-")
		for i, v := range rec {
			lines = append(lines, "  "+t.header[i]+`: "`+v+`"`)
		}
	}
	return writeLines(w, lines)
}
