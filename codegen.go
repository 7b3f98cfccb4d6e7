package tabconv

import (
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Code-shape writers emit one string-typed field per header column. Their
// output is a declaration, not data, and cannot be parsed back.

// writeSwift emits a Codable struct. Column names that are not Swift
// identifiers get camel-cased property names and a CodingKeys enum mapping
// them back.
func writeSwift(c Converter, w io.Writer, t *Table) error {
	lines := []string{"struct " + c.typeName() + ": Codable {"}
	names := uniqueNames(t.header, swiftPropertyName)
	renamed := false
	for i, col := range t.header {
		lines = append(lines, "    let "+swiftQuote(names[i])+": String")
		renamed = renamed || names[i] != col
	}
	if renamed {
		lines = append(lines, "", "    enum CodingKeys: String, CodingKey {")
		for i, col := range t.header {
			key := "        case " + swiftQuote(names[i])
			if names[i] != col {
				key += " = " + strconv.Quote(col)
			}
			lines = append(lines, key)
		}
		lines = append(lines, "    }")
	}
	lines = append(lines, "}")
	return writeLines(w, lines)
}

func writeTypeScript(c Converter, w io.Writer, t *Table) error {
	lines := []string{"interface " + c.typeName() + " {"}
	for _, col := range t.header {
		name := col
		if !isIdentifier(col) {
			name = strconv.Quote(col)
		}
		lines = append(lines, "  "+name+": string;")
	}
	lines = append(lines, "}")
	return writeLines(w, lines)
}

func writeGoStruct(c Converter, w io.Writer, t *Table) error {
	lines := []string{"type " + c.typeName() + " struct {"}
	names := uniqueNames(t.header, goFieldName)
	for i, col := range t.header {
		lines = append(lines, "\t"+names[i]+" string `json:"+strconv.Quote(col)+"`")
	}
	lines = append(lines, "}")
	return writeLines(w, lines)
}

// uniqueNames maps each column through name, numbering repeats: a second
// "Name" becomes "Name2".
func uniqueNames(cols []string, name func(string) string) []string {
	out := make([]string, len(cols))
	used := make(map[string]int)
	for i, col := range cols {
		n := name(col)
		if k := used[n]; k > 0 {
			used[n]++
			n += strconv.Itoa(k + 1)
		} else {
			used[n] = 1
		}
		out[i] = n
	}
	return out
}

// goFieldName converts a column name into an exported Go identifier:
// "first_name" becomes "FirstName" and "2fa" becomes "F2fa".
func goFieldName(col string) string {
	parts := strings.FieldsFunc(col, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var sb strings.Builder
	for _, p := range parts {
		r := []rune(p)
		r[0] = unicode.ToUpper(r[0])
		sb.WriteString(string(r))
	}
	name := sb.String()
	if name == "" {
		return "Field"
	}
	if unicode.IsDigit([]rune(name)[0]) {
		name = "F" + name
	}
	return name
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || r == '$' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return true
}

// swiftPropertyName keeps Swift identifiers as they are and camel-cases
// anything else: "first name" becomes "firstName".
func swiftPropertyName(col string) string {
	if isIdentifier(col) && !strings.ContainsRune(col, '$') {
		return col
	}
	r := []rune(goFieldName(col))
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

var swiftKeywords = map[string]bool{
	"as": true, "associatedtype": true, "break": true, "case": true, "catch": true,
	"class": true, "continue": true, "default": true, "defer": true, "deinit": true,
	"do": true, "else": true, "enum": true, "extension": true, "fallthrough": true,
	"false": true, "fileprivate": true, "for": true, "func": true, "guard": true,
	"if": true, "import": true, "in": true, "init": true, "inout": true,
	"internal": true, "is": true, "let": true, "nil": true, "operator": true,
	"private": true, "protocol": true, "public": true, "repeat": true,
	"rethrows": true, "return": true, "self": true, "Self": true, "static": true,
	"struct": true, "subscript": true, "super": true, "switch": true, "throw": true,
	"throws": true, "true": true, "try": true, "typealias": true, "var": true,
	"where": true, "while": true,
}

// swiftQuote wraps reserved words in backticks.
func swiftQuote(name string) string {
	if swiftKeywords[name] {
		return "`" + name + "`"
	}
	return name
}
