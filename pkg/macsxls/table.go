package macsxls

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Row maps column name to a typed cell value.
type Row map[string]any

// Table is an ordered set of named columns holding rows of typed cell
// values.
type Table struct {
	columns []string
	rows    []Row
}

// NewTable creates an empty table with the given column names.
func NewTable(columns []string) *Table {
	return &Table{columns: append([]string(nil), columns...)}
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// HasColumn reports whether name is a known column.
func (t *Table) HasColumn(name string) bool {
	return lo.Contains(t.columns, name)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns the i-th row.
func (t *Table) Row(i int) Row {
	return t.rows[i]
}

// Value returns the cell at row i of the named column.
func (t *Table) Value(i int, column string) (any, error) {
	if !t.HasColumn(column) {
		return nil, fmt.Errorf("unknown column %q", column)
	}
	return t.rows[i][column], nil
}

// AppendLine splits a tab-delimited line into typed cells and appends it
// as a row. The field count must match the column count.
func (t *Table) AppendLine(line string) error {
	fields := strings.Split(line, "\t")
	if len(fields) != len(t.columns) {
		return fmt.Errorf("line has %d fields, want %d", len(fields), len(t.columns))
	}
	row := make(Row, len(fields))
	for i, f := range fields {
		row[t.columns[i]] = parseValue(f)
	}
	t.rows = append(t.rows, row)
	return nil
}

// Sort sorts the rows in place on the named column. The sort is stable,
// so rows with equal keys keep their relative order.
func (t *Table) Sort(column string, descending bool) error {
	if !t.HasColumn(column) {
		return fmt.Errorf("unknown column %q", column)
	}
	sort.SliceStable(t.rows, func(i, j int) bool {
		if descending {
			return lessValue(t.rows[j][column], t.rows[i][column])
		}
		return lessValue(t.rows[i][column], t.rows[j][column])
	})
	return nil
}

// parseValue attempts to parse a field as a number.
// Returns int for integers, float64 for decimals, or the original string.
func parseValue(s string) any {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// lessValue orders two cell values: numerically when both are numbers,
// otherwise by string form.
func lessValue(a, b any) bool {
	af, aok := asFloat(a)
	bf, bok := asFloat(b)
	if aok && bok {
		return af < bf
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}

func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}
