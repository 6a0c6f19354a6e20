package dataset

import (
	"fmt"
	"sort"
)

// Table is an immutable snapshot of a tabular dataset. All cells are kept as
// raw strings; numeric coercion happens in the cleaning stages. Every
// transforming operation returns a new Table and leaves the receiver intact.
type Table struct {
	headers []string
	index   map[string]int
	rows    [][]string
}

// NewTable builds a table from a header row and data rows. Every row must
// have exactly one cell per header column.
func NewTable(headers []string, rows [][]string) (*Table, error) {
	if len(headers) == 0 {
		return nil, fmt.Errorf("table requires at least one column")
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		if _, dup := index[h]; dup {
			return nil, fmt.Errorf("duplicate column name %q", h)
		}
		index[h] = i
	}

	for i, row := range rows {
		if len(row) != len(headers) {
			return nil, fmt.Errorf("row %d has %d cells, expected %d", i, len(row), len(headers))
		}
	}

	return &Table{headers: headers, index: index, rows: rows}, nil
}

// Headers returns a copy of the column names in declaration order.
func (t *Table) Headers() []string {
	out := make([]string, len(t.headers))
	copy(out, t.headers)
	return out
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// MissingColumns returns, in sorted order, the names from the given contract
// that the table does not carry. An empty result means the header satisfies
// the contract.
func (t *Table) MissingColumns(contract []string) []string {
	var missing []string
	for _, name := range contract {
		if !t.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

// Column returns a copy of the named column's raw cells.
func (t *Table) Column(name string) ([]string, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("column %q not found", name)
	}
	out := make([]string, len(t.rows))
	for r, row := range t.rows {
		out[r] = row[i]
	}
	return out, nil
}

// Row returns a copy of the i-th data row.
func (t *Table) Row(i int) []string {
	out := make([]string, len(t.rows[i]))
	copy(out, t.rows[i])
	return out
}

// Select returns a new table restricted to the named columns, in the
// requested order.
func (t *Table) Select(names ...string) (*Table, error) {
	indices := make([]int, len(names))
	for j, name := range names {
		i, ok := t.index[name]
		if !ok {
			return nil, fmt.Errorf("column %q not found", name)
		}
		indices[j] = i
	}

	rows := make([][]string, len(t.rows))
	for r, row := range t.rows {
		sel := make([]string, len(indices))
		for j, i := range indices {
			sel[j] = row[i]
		}
		rows[r] = sel
	}

	headers := make([]string, len(names))
	copy(headers, names)
	return NewTable(headers, rows)
}

// Filter returns a new table containing only the rows where keep is true.
// The mask must cover every row.
func (t *Table) Filter(keep []bool) (*Table, error) {
	if len(keep) != len(t.rows) {
		return nil, fmt.Errorf("filter mask has %d entries, expected %d", len(keep), len(t.rows))
	}

	var rows [][]string
	for i, row := range t.rows {
		if keep[i] {
			rows = append(rows, row)
		}
	}

	headers := make([]string, len(t.headers))
	copy(headers, t.headers)
	return NewTable(headers, rows)
}

// WithColumn returns a new table where the named column is replaced by the
// given cells. The column must already exist and the replacement must have
// one cell per row.
func (t *Table) WithColumn(name string, cells []string) (*Table, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("column %q not found", name)
	}
	if len(cells) != len(t.rows) {
		return nil, fmt.Errorf("replacement column has %d cells, expected %d", len(cells), len(t.rows))
	}

	rows := make([][]string, len(t.rows))
	for r, row := range t.rows {
		cp := make([]string, len(row))
		copy(cp, row)
		cp[i] = cells[r]
		rows[r] = cp
	}

	headers := make([]string, len(t.headers))
	copy(headers, t.headers)
	return NewTable(headers, rows)
}
