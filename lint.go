package tabconv

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// LintError reports a structural problem found by [Lint]. It wraps
// ErrFormat.
type LintError struct {
	Format Format
	// Msg describes the problem.
	Msg string
	// Lines lists offending 1-based line numbers, if known.
	Lines []int
}

func (e *LintError) Error() string {
	msg := fmt.Sprintf("%s: %s: %s", ErrFormat, e.Format, e.Msg)
	if len(e.Lines) == 0 {
		return msg
	}
	nums := make([]string, len(e.Lines))
	for i, n := range e.Lines {
		nums[i] = strconv.Itoa(n)
	}
	return msg + " (lines " + strings.Join(nums, ", ") + ")"
}

func (e *LintError) Unwrap() error { return ErrFormat }

// Lint checks that text is well formed for format f without converting it.
// CSV and TSV require every line to have as many fields as the first;
// Markdown tables require the same cell count on every row; JSON, NDJSON,
// YAML and XML require input their strict decoders accept.
func Lint(text string, f Format) error {
	if !utf8.ValidString(text) {
		return fmt.Errorf("%w: input is not valid UTF-8 text", ErrEncoding)
	}
	if strings.TrimSpace(text) == "" {
		return &LintError{Format: f, Msg: "no data to check"}
	}
	switch f {
	case CSV:
		return lintDelimited(f, text, ",")
	case TSV:
		return lintDelimited(f, text, "\t")
	case JSON:
		if _, err := DecodeJSONValue([]byte(text)); err != nil {
			return &LintError{Format: f, Msg: err.Error()}
		}
		return nil
	case NDJSON:
		return lintNDJSON(text)
	case YAML:
		return lintYAML(text)
	case XML:
		return lintXML(text)
	case Markdown:
		return lintMarkdown(text)
	default:
		return fmt.Errorf("%w: %q cannot be linted", ErrUnsupportedFormat, f)
	}
}

func lintDelimited(f Format, text, sep string) error {
	expected := -1
	var bad []int
	for i, line := range splitLines(text) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := strings.Count(line, sep) + 1
		if expected < 0 {
			expected = n
			continue
		}
		if n != expected {
			bad = append(bad, i+1)
		}
	}
	if len(bad) > 0 {
		return &LintError{Format: f, Msg: fmt.Sprintf("expected %d fields on every line", expected), Lines: bad}
	}
	return nil
}

func lintNDJSON(text string) error {
	var bad []int
	for i, line := range splitLines(text) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		v, err := DecodeJSONValue([]byte(line))
		if err != nil || v.Kind != KindObject {
			bad = append(bad, i+1)
		}
	}
	if len(bad) > 0 {
		return &LintError{Format: NDJSON, Msg: "expected one JSON object per line", Lines: bad}
	}
	return nil
}

// lintYAML parses with a full YAML decoder. When that fails, lines that are
// neither list items nor "key: value" pairs are reported as likely causes.
func lintYAML(text string) error {
	var doc yaml.Node
	err := yaml.Unmarshal([]byte(text), &doc)
	if err == nil {
		return nil
	}
	var bad []int
	for i, line := range splitLines(text) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || line == "-" || line == "---" {
			continue
		}
		if strings.HasPrefix(line, "- ") || strings.Contains(line, ": ") || strings.HasSuffix(line, ":") {
			continue
		}
		bad = append(bad, i+1)
	}
	return &LintError{Format: YAML, Msg: err.Error(), Lines: bad}
}

func lintXML(text string) error {
	dec := xml.NewDecoder(strings.NewReader(text))
	sawElement := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			lerr := &LintError{Format: XML, Msg: err.Error()}
			var syn *xml.SyntaxError
			if errors.As(err, &syn) {
				lerr.Msg = syn.Msg
				lerr.Lines = []int{syn.Line}
			}
			return lerr
		}
		if _, ok := tok.(xml.StartElement); ok {
			sawElement = true
		}
	}
	if !sawElement {
		return &LintError{Format: XML, Msg: "no root element"}
	}
	return nil
}

func lintMarkdown(text string) error {
	type numbered struct {
		n    int
		line string
	}
	var lines []numbered
	for i, line := range splitLines(text) {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, numbered{i + 1, line})
		}
	}
	if len(lines) < 3 {
		return &LintError{Format: Markdown, Msg: "expected a header row, a separator row and at least one data row"}
	}
	expected := len(splitMarkdownRow(lines[0].line))
	var bad []int
	for _, l := range lines[1:] {
		if len(splitMarkdownRow(l.line)) != expected {
			bad = append(bad, l.n)
		}
	}
	if len(bad) > 0 {
		return &LintError{Format: Markdown, Msg: fmt.Sprintf("expected %d cells on every row", expected), Lines: bad}
	}
	return nil
}
