package tabconv

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"unicode"
)

// parseXML flattens list-of-records XML. A row starts at an element named
// "item" or "row", or at the singular of its parent's name ("user" inside
// "users"). Other elements inside a row become columns holding their
// trimmed text. Deeper hierarchy is not preserved and repeated column
// elements overwrite each other.
func parseXML(_ Converter, src string) (*Table, error) {
	dec := xml.NewDecoder(strings.NewReader(src))
	var (
		rows     []Row
		current  Row
		stack    []string
		text     strings.Builder
		rowDepth int
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, formatError(XML, "malformed document: %v", err)
		}
		switch tok := tok.(type) {
		case xml.StartElement:
			name := tok.Name.Local
			if isRowElement(stack, name) {
				current = Row{}
				rowDepth = len(stack) + 1
			}
			stack = append(stack, name)
			text.Reset()
		case xml.CharData:
			text.Write(tok)
		case xml.EndElement:
			name := tok.Name.Local
			parents := stack[:len(stack)-1]
			switch {
			case isRowElement(parents, name):
				if len(current) > 0 {
					rows = append(rows, current)
				}
				// Columns after a nested row are collected into a fresh row.
				current = Row{}
				rowDepth = 0
			case current != nil && len(stack) >= 2 && len(stack) > rowDepth:
				if v := strings.TrimSpace(text.String()); v != "" {
					current[name] = v
				}
			}
			stack = parents
			text.Reset()
		}
	}
	if len(rows) == 0 {
		return nil, formatError(XML, "expected repeated record elements such as <item>, <row> or <user> inside <users>")
	}
	return NewTable(rows), nil
}

// isRowElement reports whether an element named name, opened below the
// elements in stack, begins a row. The document root never does.
func isRowElement(stack []string, name string) bool {
	if len(stack) == 0 {
		return false
	}
	if name == "item" || name == "row" {
		return true
	}
	parent := stack[len(stack)-1]
	singular, ok := strings.CutSuffix(parent, "s")
	return ok && name == singular
}

// xmlName turns a column name into an element name. Runes not allowed in
// a name become "_", and a name that cannot start an element gets a "_"
// prefix: "first name" becomes "first_name" and "2fa" becomes "_2fa".
func xmlName(col string) string {
	var sb strings.Builder
	for i, r := range col {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && (r == '-' || r == '.' || unicode.IsDigit(r)):
		case i == 0 && (r == '-' || r == '.' || unicode.IsDigit(r)):
			sb.WriteByte('_')
		default:
			r = '_'
		}
		sb.WriteRune(r)
	}
	if sb.Len() == 0 {
		return "_"
	}
	return sb.String()
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func writeXML(c Converter, w io.Writer, t *Table) error {
	root, item := c.RootName, c.ItemName
	if root == "" {
		root = "items"
	}
	if item == "" {
		item = "item"
	}
	lines := []string{"<" + root + ">"}
	for _, rec := range t.Records() {
		lines = append(lines, "  <"+item+">")
		for i, v := range rec {
			name := xmlName(t.header[i])
			lines = append(lines, "    <"+name+">"+xmlEscaper.Replace(v)+"</"+name+">")
		}
		lines = append(lines, "  </"+item+">")
	}
	lines = append(lines, "</"+root+">")
	return writeLines(w, lines)
}
