package sheet

// Style holds the subset of cell formatting the workbook model carries.
type Style struct {
	// Bold renders the cell text in a bold font.
	Bold bool
}
