package tabconv

import (
	"html"
	"io"
)

func writeHTML(c Converter, w io.Writer, t *Table) error {
	rows := t.Records()
	aligns := numericAligns(len(t.header), rows)

	lines := []string{"<table>"}
	if c.Title != "" {
		lines = append(lines, "  <caption>"+html.EscapeString(c.Title)+"</caption>")
	}
	lines = append(lines, "  <thead>", "    <tr>")
	for _, col := range t.header {
		lines = append(lines, "      <th>"+html.EscapeString(col)+"</th>")
	}
	lines = append(lines, "    </tr>", "  </thead>", "  <tbody>")
	for _, row := range rows {
		lines = append(lines, "    <tr>")
		for i, cell := range row {
			lines = append(lines, "      <td"+alignStyle(aligns, i)+">"+html.EscapeString(cell)+"</td>")
		}
		lines = append(lines, "    </tr>")
	}
	lines = append(lines, "  </tbody>", "</table>")
	return writeLines(w, lines)
}

func alignStyle(aligns []alignment, col int) string {
	if col >= len(aligns) {
		return ""
	}
	switch aligns[col] {
	case alignRight:
		return ` style="text-align: right"`
	case alignCenter:
		return ` style="text-align: center"`
	default:
		return ""
	}
}
