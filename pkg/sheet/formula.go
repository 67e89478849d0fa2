package sheet

import (
	"strconv"
	"strings"
)

// RowPlaceholder is the character a formula template uses in place of a
// row number, so the same template can be filled down a column.
const RowPlaceholder = "?"

// Formula is a cell formula template, e.g. "=B?-100". Every
// RowPlaceholder is replaced with the owning cell's row number when the
// cell is rendered.
type Formula string

// Render substitutes row into the template and returns the concrete
// formula string.
func (f Formula) Render(row int) string {
	return strings.ReplaceAll(string(f), RowPlaceholder, strconv.Itoa(row))
}
