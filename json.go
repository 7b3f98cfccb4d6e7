package tabconv

import (
	"bytes"
	"encoding/json"
	"io"
)

func parseJSON(_ Converter, text string) (*Table, error) {
	v, err := DecodeJSONValue([]byte(text))
	if err != nil {
		return nil, formatError(JSON, "expected an array of objects: %v", err)
	}
	if v.Kind != KindArray {
		return nil, formatError(JSON, "expected an array of objects, got %s", v.Kind)
	}
	rows := make([]Row, 0, len(v.Items))
	for i, item := range v.Items {
		row, ok := item.Row()
		if !ok {
			return nil, formatError(JSON, "expected an array of objects, element %d is %s", i, item.Kind)
		}
		rows = append(rows, row)
	}
	return NewTable(rows), nil
}

func writeJSON(c Converter, w io.Writer, t *Table) error {
	objs := make([]map[string]string, 0, t.Len())
	header := t.Header()
	for _, row := range t.rows {
		obj := make(map[string]string, len(header))
		for i, v := range Project(row, header) {
			obj[header[i]] = v
		}
		objs = append(objs, obj)
	}
	indent := c.Indent
	if indent == "" {
		indent = "  "
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(objs); err != nil {
		return err
	}
	_, err := w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	return err
}
