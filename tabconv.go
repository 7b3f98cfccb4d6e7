package tabconv

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat     = errors.New("unsupported format")
	ErrUnsupportedConversion = errors.New("unsupported conversion")
	ErrFormat                = errors.New("format error")
	ErrEncoding              = errors.New("encoding error")
	ErrInvalidTemplate       = errors.New("invalid template")
)

// Format identifies a structural text format.
type Format string

const (
	CSV        Format = "csv"
	TSV        Format = "tsv"
	JSON       Format = "json"
	YAML       Format = "yaml"
	Markdown   Format = "markdown"
	XML        Format = "xml"
	NDJSON     Format = "ndjson"
	TextTable  Format = "table"
	HTML       Format = "html"
	XLSX       Format = "xlsx"
	Swift      Format = "swift"
	TypeScript Format = "typescript"
	GoStruct   Format = "go"
)

const goTemplatePrefix = "go-template="

var formats = []Format{CSV, TSV, JSON, YAML, Markdown, XML, NDJSON, TextTable, HTML, XLSX, Swift, TypeScript, GoStruct}

var aliases = map[string]Format{
	"md":    Markdown,
	"yml":   YAML,
	"jsonl": NDJSON,
	"ts":    TypeScript,
	"excel": XLSX,
}

var extensions = map[Format]string{
	CSV:        "csv",
	TSV:        "tsv",
	JSON:       "json",
	YAML:       "yaml",
	Markdown:   "md",
	XML:        "xml",
	NDJSON:     "ndjson",
	TextTable:  "txt",
	HTML:       "html",
	XLSX:       "xlsx",
	Swift:      "swift",
	TypeScript: "ts",
	GoStruct:   "go",
}

type (
	parseFunc func(c Converter, text string) (*Table, error)
	writeFunc func(c Converter, w io.Writer, t *Table) error
)

var parsers = map[Format]parseFunc{
	CSV:      parseCSV,
	TSV:      parseTSV,
	JSON:     parseJSON,
	YAML:     parseYAML,
	Markdown: parseMarkdown,
	XML:      parseXML,
	NDJSON:   parseNDJSON,
	XLSX:     parseXLSX,
}

var writers = map[Format]writeFunc{
	CSV:        writeCSV,
	TSV:        writeTSV,
	JSON:       writeJSON,
	YAML:       writeYAML,
	Markdown:   writeMarkdown,
	XML:        writeXML,
	NDJSON:     writeNDJSON,
	TextTable:  writeTable,
	HTML:       writeHTML,
	XLSX:       writeXLSX,
	Swift:      writeSwift,
	TypeScript: writeTypeScript,
	GoStruct:   writeGoStruct,
}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Extension returns the file extension, without a dot, used when saving
// output of this format. Unknown formats and go-templates map to "txt".
func (f Format) Extension() string {
	if ext, ok := extensions[f]; ok {
		return ext
	}
	return "txt"
}

// Binary reports whether the format's content is not text.
func (f Format) Binary() bool { return f == XLSX }

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders each row using a Go text/template.
// The template is executed against the row projected onto the header, as a
// map from column name to value.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format name. Recognizes all static formats, a few
// common aliases ("md", "yml", "jsonl", "ts", "excel") and go-template=<tmpl>
// strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	name := strings.ToLower(strings.TrimSpace(s))
	for _, f := range formats {
		if string(f) == name {
			return f, nil
		}
	}
	if f, ok := aliases[name]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// CanParse reports whether f can be used as a source format.
func CanParse(f Format) bool {
	_, ok := parsers[f]
	return ok
}

// CanWrite reports whether f can be used as a target format.
func CanWrite(f Format) bool {
	if strings.HasPrefix(string(f), goTemplatePrefix) {
		return true
	}
	_, ok := writers[f]
	return ok
}

// Converter converts between formats. The zero value is ready to use.
type Converter struct {
	// Indent is the JSON indentation. Default two spaces.
	Indent string
	// RootName and ItemName name the XML root and row elements.
	// Defaults "items" and "item".
	RootName string
	ItemName string
	// TypeName names the emitted struct or interface. Default "MyModel".
	TypeName string
	// Border selects the text table border style. Default BorderRounded.
	Border BorderStyle
	// Title is rendered above text tables and as the HTML table caption.
	Title string
	// MaxWidth truncates text table cells wider than this. Zero means no
	// limit.
	MaxWidth int
	// Sheet names the workbook sheet read and written for XLSX. Default
	// the first sheet on read and "Sheet1" on write.
	Sheet string
}

// Convert converts text from one format to another. When from equals to the
// text is returned unchanged without being parsed.
func (c Converter) Convert(text string, from, to Format) (string, error) {
	if from == to {
		return text, nil
	}
	if !CanWrite(to) {
		return "", fmt.Errorf("%w: %q cannot be used as a target format", ErrUnsupportedConversion, to)
	}
	t, err := c.Parse(text, from)
	if err != nil {
		return "", err
	}
	out, err := c.Marshal(to, t)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Parse parses text in format f into a Table.
func (c Converter) Parse(text string, f Format) (t *Table, err error) {
	parse, ok := parsers[f]
	if !ok {
		return nil, fmt.Errorf("%w: %q cannot be used as a source format", ErrUnsupportedConversion, f)
	}
	if !f.Binary() && !utf8.ValidString(text) {
		return nil, fmt.Errorf("%w: input is not valid UTF-8 text", ErrEncoding)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: %s: input is empty", ErrFormat, f)
	}
	defer func() {
		if r := recover(); r != nil {
			t, err = nil, fmt.Errorf("%w: %s: %v", ErrFormat, f, r)
		}
	}()
	return parse(c, text)
}

// Write serializes t in format f and writes it to w.
func (c Converter) Write(w io.Writer, f Format, t *Table) error {
	if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
		return writeGoTemplate(w, tmpl, t)
	}
	write, ok := writers[f]
	if !ok {
		return fmt.Errorf("%w: %q cannot be used as a target format", ErrUnsupportedConversion, f)
	}
	return write(c, w, t)
}

// Marshal serializes t in format f and returns the bytes.
func (c Converter) Marshal(f Format, t *Table) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Write(&buf, f, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Convert converts text using the default [Converter].
func Convert(text string, from, to Format) (string, error) {
	return Converter{}.Convert(text, from, to)
}

// Parse parses text using the default [Converter].
func Parse(text string, f Format) (*Table, error) {
	return Converter{}.Parse(text, f)
}

// Write writes t using the default [Converter].
func Write(w io.Writer, f Format, t *Table) error {
	return Converter{}.Write(w, f, t)
}

// Marshal serializes t using the default [Converter].
func Marshal(f Format, t *Table) ([]byte, error) {
	return Converter{}.Marshal(f, t)
}

// formatError wraps ErrFormat with the format name and a description of what
// was expected.
func formatError(f Format, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrFormat, f, fmt.Sprintf(format, args...))
}

// splitLines splits text on newlines, dropping a trailing carriage return
// from each line.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// writeLines writes lines joined by newlines, without a trailing newline.
func writeLines(w io.Writer, lines []string) error {
	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return err
}

func (c Converter) typeName() string {
	if c.TypeName == "" {
		return "MyModel"
	}
	return c.TypeName
}
