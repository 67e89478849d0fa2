package sheet

import "github.com/xuri/excelize/v2"

// CellName returns the "A1"-style reference for a 1-based (col, row) pair.
func CellName(col, row int) (string, error) {
	return excelize.CoordinatesToCellName(col, row)
}

// ParseCellName splits an "A1"-style reference into its 1-based column and
// row indices.
func ParseCellName(ref string) (col, row int, err error) {
	return excelize.CellNameToCoordinates(ref)
}

// ParseColumn converts a column letter ("A", "AB") to its 1-based index.
func ParseColumn(letter string) (int, error) {
	return excelize.ColumnNameToNumber(letter)
}

// ColumnName converts a 1-based column index to its letter form.
func ColumnName(col int) (string, error) {
	return excelize.ColumnNumberToName(col)
}
