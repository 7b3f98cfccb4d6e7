package tabconv

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// parseXLSX reads a workbook held in text. The first row of the sheet is the
// header; later rows are zipped against it like CSV.
func parseXLSX(c Converter, text string) (*Table, error) {
	f, err := excelize.OpenReader(strings.NewReader(text))
	if err != nil {
		return nil, formatError(XLSX, "expected a workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, formatError(XLSX, "workbook has no sheets")
	}
	sheet := sheets[0]
	if c.Sheet != "" {
		if !slices.Contains(sheets, c.Sheet) {
			return nil, formatError(XLSX, "sheet %q not found", c.Sheet)
		}
		sheet = c.Sheet
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, formatError(XLSX, "read sheet %q: %v", sheet, err)
	}
	if len(records) == 0 {
		return nil, formatError(XLSX, "sheet %q is empty, expected a header row", sheet)
	}
	header := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		rows = append(rows, zipRow(header, rec))
	}
	return NewTable(rows), nil
}

func writeXLSX(c Converter, w io.Writer, t *Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := defaultSheet
	if c.Sheet != "" && c.Sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, c.Sheet); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
		sheet = c.Sheet
	}

	records := append([][]string{t.Header()}, t.Records()...)
	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]any, len(rec))
		for j, v := range rec {
			values[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	return f.Write(w)
}
