// Package sheet provides a small in-memory spreadsheet model: an ordered
// workbook of sparse worksheets addressed by column letter and 1-based
// row number, formula templates with a row placeholder, and serialization
// to .xlsx.
package sheet

import "fmt"

// Cell holds either a literal value or a formula template, with optional
// formatting.
type Cell struct {
	Value   any
	Formula Formula
	Style   *Style
}

// IsFormula reports whether the cell carries a formula template rather
// than a literal value.
func (c Cell) IsFormula() bool {
	return c.Formula != ""
}

// cellKey addresses a cell in the sparse grid, both indices 1-based.
type cellKey struct {
	row int
	col int
}

// Worksheet is a sparse grid of cells.
type Worksheet struct {
	Name string

	cells  map[cellKey]Cell
	maxRow int
	maxCol int
}

// Workbook is an ordered collection of worksheets. Sheet order is
// preserved through serialization.
type Workbook struct {
	sheets []*Worksheet
}

// NewWorkbook creates an empty workbook.
func NewWorkbook() *Workbook {
	return &Workbook{}
}

// AddSheet appends a new worksheet with the given name and returns it.
func (wb *Workbook) AddSheet(name string) *Worksheet {
	ws := &Worksheet{
		Name:  name,
		cells: make(map[cellKey]Cell),
	}
	wb.sheets = append(wb.sheets, ws)
	return ws
}

// Sheet returns the worksheet with the given name, or nil if absent.
func (wb *Workbook) Sheet(name string) *Worksheet {
	for _, ws := range wb.sheets {
		if ws.Name == name {
			return ws
		}
	}
	return nil
}

// Sheets returns the worksheets in workbook order.
func (wb *Workbook) Sheets() []*Worksheet {
	return wb.sheets
}

func (ws *Worksheet) set(col, row int, c Cell) {
	ws.cells[cellKey{row: row, col: col}] = c
	if row > ws.maxRow {
		ws.maxRow = row
	}
	if col > ws.maxCol {
		ws.maxCol = col
	}
}

// MaxRow returns the highest populated row number, 0 for an empty sheet.
func (ws *Worksheet) MaxRow() int {
	return ws.maxRow
}

// MaxColumn returns the highest populated column index, 0 for an empty
// sheet.
func (ws *Worksheet) MaxColumn() int {
	return ws.maxCol
}

// NextRow returns the row number below the last populated row.
func (ws *Worksheet) NextRow() int {
	return ws.maxRow + 1
}

// WriteCell stores a literal value at an "A1"-style reference.
func (ws *Worksheet) WriteCell(ref string, value any) error {
	col, row, err := ParseCellName(ref)
	if err != nil {
		return err
	}
	ws.set(col, row, Cell{Value: value})
	return nil
}

// WriteFormula stores a formula template at an "A1"-style reference.
func (ws *Worksheet) WriteFormula(ref string, f Formula) error {
	col, row, err := ParseCellName(ref)
	if err != nil {
		return err
	}
	ws.set(col, row, Cell{Formula: f})
	return nil
}

// Cell returns the cell at an "A1"-style reference. Unpopulated cells
// come back as the zero Cell.
func (ws *Worksheet) Cell(ref string) (Cell, error) {
	col, row, err := ParseCellName(ref)
	if err != nil {
		return Cell{}, err
	}
	return ws.cells[cellKey{row: row, col: col}], nil
}

// Value returns the literal value at an "A1"-style reference, nil for
// unpopulated or formula cells.
func (ws *Worksheet) Value(ref string) (any, error) {
	c, err := ws.Cell(ref)
	if err != nil {
		return nil, err
	}
	return c.Value, nil
}

// RenderCell returns the cell content as it will appear in the serialized
// sheet: formula cells with the row number substituted, literal cells via
// fmt, empty cells as "".
func (ws *Worksheet) RenderCell(ref string) (string, error) {
	col, row, err := ParseCellName(ref)
	if err != nil {
		return "", err
	}
	c, ok := ws.cells[cellKey{row: row, col: col}]
	if !ok {
		return "", nil
	}
	if c.IsFormula() {
		return c.Formula.Render(row), nil
	}
	return fmt.Sprint(c.Value), nil
}

// WriteRow writes values into the given row starting at column A. A
// non-nil style is applied to every written cell.
func (ws *Worksheet) WriteRow(row int, values []any, style *Style) error {
	if row < 1 {
		return fmt.Errorf("sheet: row %d out of range", row)
	}
	for i, v := range values {
		ws.set(i+1, row, Cell{Value: v, Style: style})
	}
	return nil
}

// AppendRow writes values into the row below the last populated row.
func (ws *Worksheet) AppendRow(values []any, style *Style) error {
	return ws.WriteRow(ws.NextRow(), values, style)
}

// WriteColumn writes values down the given column, one row per value,
// starting at fromRow.
func (ws *Worksheet) WriteColumn(col string, fromRow int, values []any) error {
	idx, err := ParseColumn(col)
	if err != nil {
		return err
	}
	for i, v := range values {
		ws.set(idx, fromRow+i, Cell{Value: v})
	}
	return nil
}

// FillColumn writes the formula template into every row of the given
// column from fromRow through the current last populated row.
func (ws *Worksheet) FillColumn(col string, fromRow int, f Formula) error {
	idx, err := ParseColumn(col)
	if err != nil {
		return err
	}
	for row := fromRow; row <= ws.maxRow; row++ {
		ws.set(idx, row, Cell{Formula: f})
	}
	return nil
}

// InsertColumn inserts an empty column at the given letter, shifting that
// column and everything right of it one position further right, then
// writes header into row 1 of the freed column. Formula templates move
// verbatim; they are not rewritten to track shifted targets.
func (ws *Worksheet) InsertColumn(col string, header any) error {
	idx, err := ParseColumn(col)
	if err != nil {
		return err
	}
	shifted := make(map[cellKey]Cell, len(ws.cells))
	for k, c := range ws.cells {
		if k.col >= idx {
			k.col++
		}
		shifted[k] = c
	}
	ws.cells = shifted
	if ws.maxCol >= idx {
		ws.maxCol++
	}
	ws.set(idx, 1, Cell{Value: header})
	return nil
}
