package tabconv

import (
	"fmt"
	"io"
	"text/template"
)

func writeGoTemplate(w io.Writer, tmplStr string, t *Table) error {
	tmpl, err := template.New("").Option("missingkey=zero").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	for i, rec := range t.Records() {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		data := make(map[string]string, len(rec))
		for j, v := range rec {
			data[t.header[j]] = v
		}
		if err := tmpl.Execute(w, data); err != nil {
			return err
		}
	}
	return nil
}
