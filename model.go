package tabconv

import (
	"iter"
	"maps"
	"slices"
)

// Row maps column names to cell values. Column order within a row is not
// observed; output order always follows the table [Table.Header].
type Row map[string]string

// Table is the flat intermediate representation shared by every parser and
// writer. A Table is immutable once built by [NewTable].
type Table struct {
	rows   []Row
	header []string
}

// NewTable copies rows and derives the header: the sorted, de-duplicated
// union of every column name in every row.
func NewTable(rows []Row) *Table {
	t := &Table{rows: make([]Row, len(rows))}
	seen := make(map[string]struct{})
	for i, row := range rows {
		t.rows[i] = maps.Clone(row)
		if t.rows[i] == nil {
			t.rows[i] = Row{}
		}
		for k := range row {
			seen[k] = struct{}{}
		}
	}
	t.header = slices.Sorted(maps.Keys(seen))
	return t
}

// Header returns a copy of the table's column names in output order.
func (t *Table) Header() []string {
	return slices.Clone(t.header)
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Rows returns a copy of the table's rows.
func (t *Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	for i, row := range t.rows {
		out[i] = maps.Clone(row)
	}
	return out
}

// All iterates rows in order. Yielded rows must not be modified.
func (t *Table) All() iter.Seq2[int, Row] {
	return func(yield func(int, Row) bool) {
		for i, row := range t.rows {
			if !yield(i, row) {
				return
			}
		}
	}
}

// Records returns every row projected against the header.
func (t *Table) Records() [][]string {
	out := make([][]string, len(t.rows))
	for i, row := range t.rows {
		out[i] = Project(row, t.header)
	}
	return out
}

// Project returns one value per header column, using "" for columns the row
// does not have.
func Project(row Row, header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		out[i] = row[h]
	}
	return out
}

// zipRow pairs cells with column names by position. Extra cells are
// dropped; missing cells leave the column absent.
func zipRow(header, cells []string) Row {
	row := make(Row, len(header))
	for i, name := range header {
		if i >= len(cells) {
			break
		}
		row[name] = cells[i]
	}
	return row
}
