package tabconv

import (
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// BorderStyle controls text table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

var borderNames = map[string]BorderStyle{
	"rounded": BorderRounded,
	"none":    BorderNone,
	"ascii":   BorderASCII,
	"heavy":   BorderHeavy,
	"double":  BorderDouble,
}

// ParseBorderStyle parses a border style name: rounded, none, ascii, heavy
// or double.
func ParseBorderStyle(s string) (BorderStyle, bool) {
	b, ok := borderNames[strings.ToLower(s)]
	return b, ok
}

// alignment controls column text alignment. Numeric columns are right
// aligned; everything else is left aligned.
type alignment int

const (
	alignLeft alignment = iota
	alignCenter
	alignRight
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

// writeTable renders a terminal table. Columns whose values are all numeric
// are right-aligned. Cells wider than MaxWidth are truncated with "...".
func writeTable(c Converter, w io.Writer, t *Table) error {
	if len(t.header) == 0 {
		return nil
	}
	header := t.Header()
	rows := t.Records()
	widths := computeWidths(header, rows)
	if c.MaxWidth > 0 {
		for i := range widths {
			widths[i] = min(widths[i], c.MaxWidth)
		}
	}
	aligns := numericAligns(len(header), rows)

	var lines []string
	if c.Border == BorderNone {
		lines = renderPlainTable(header, rows, widths, aligns)
	} else {
		bc, ok := borderSets[c.Border]
		if !ok {
			bc = borderSets[BorderRounded]
		}
		lines = renderBorderedTable(bc, c.Title, header, rows, widths, aligns)
	}
	return writeLines(w, lines)
}

func computeWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func numericAligns(numCols int, rows [][]string) []alignment {
	aligns := make([]alignment, numCols)
	if len(rows) == 0 {
		return aligns
	}
	for i := range aligns {
		numeric := true
		for _, row := range rows {
			if _, err := strconv.ParseFloat(row[i], 64); err != nil {
				numeric = false
				break
			}
		}
		if numeric {
			aligns[i] = alignRight
		}
	}
	return aligns
}

// --- Plain table (BorderNone) ---

func renderPlainTable(header []string, rows [][]string, widths []int, aligns []alignment) []string {
	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, plainRow(header, widths, make([]alignment, len(widths))), plainSep(widths))
	for _, row := range rows {
		lines = append(lines, plainRow(row, widths, aligns))
	}
	return lines
}

func plainSep(widths []int) string {
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	return strings.Join(sep, "  ")
}

func plainRow(cells []string, widths []int, aligns []alignment) string {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = formatTableCell(cells[i], width, aligns[i])
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}

// --- Bordered table ---

func renderBorderedTable(bc borderChars, title string, header []string, rows [][]string, widths []int, aligns []alignment) []string {
	var lines []string
	if title != "" {
		// Full-width top border (no column separators).
		lines = append(lines, hLine(widths, bc.topLeft, bc.horizontal, bc.horizontal, bc.topRight))
		inner := tableInnerWidth(widths) - 2 // subtract 1-space padding on each side
		lines = append(lines, bc.vertical+" "+alignCell(title, inner, alignCenter)+" "+bc.vertical)
		lines = append(lines, hLine(widths, bc.leftTee, bc.horizontal, bc.topTee, bc.rightTee))
	} else {
		lines = append(lines, hLine(widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight))
	}
	lines = append(lines,
		borderedRow(header, widths, make([]alignment, len(widths)), bc.vertical),
		hLine(widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee),
	)
	for _, row := range rows {
		lines = append(lines, borderedRow(row, widths, aligns, bc.vertical))
	}
	return append(lines, hLine(widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight))
}

// tableInnerWidth returns the total character width between the outer vertical
// borders of a bordered table. Each cell contributes its width plus 2 (one
// space of padding on each side), and cells are separated by a single vertical
// border character.
func tableInnerWidth(widths []int) int {
	n := 0
	for _, w := range widths {
		n += w + 2
	}
	if len(widths) > 1 {
		n += len(widths) - 1
	}
	return n
}

func hLine(widths []int, left, fill, mid, right string) string {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	return sb.String()
}

func borderedRow(cells []string, widths []int, aligns []alignment, vert string) string {
	var sb strings.Builder
	sb.WriteString(vert)
	for i, width := range widths {
		sb.WriteString(" ")
		sb.WriteString(formatTableCell(cells[i], width, aligns[i]))
		sb.WriteString(" ")
		if i < len(widths)-1 {
			sb.WriteString(vert)
		}
	}
	sb.WriteString(vert)
	return sb.String()
}

func formatTableCell(s string, width int, align alignment) string {
	if width > 0 && runewidth.StringWidth(s) > width {
		if width <= 3 {
			s = runewidth.Truncate(s, width, "")
		} else {
			s = runewidth.Truncate(s, width, "...")
		}
	}
	return alignCell(s, width, align)
}

func alignCell(s string, width int, align alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case alignRight:
		return strings.Repeat(" ", pad) + s
	case alignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
