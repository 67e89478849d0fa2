package macsxls

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/drabhishekkumar/macs2xlsx/pkg/sheet"
)

// Sheet names, in workbook order.
const (
	DataSheet    = "data"
	NotesSheet   = "notes"
	LegendsSheet = "legends"
)

// derivedColumn describes one formula column inserted into the data
// sheet: its header, the source column the per-row formula references,
// and an arithmetic suffix appended to the reference.
type derivedColumn struct {
	header string
	target string
	suffix string
}

// derivedColumns are inserted left to right starting at derivedInsertAt,
// shifting the original columns further right.
var derivedColumns = []derivedColumn{
	{header: "chr", target: "chr"},
	{header: "abs_summit-100", target: summitColumn, suffix: "-100"},
	{header: "abs_summit+100", target: summitColumn, suffix: "+100"},
	{header: "chr", target: "chr"},
	{header: "summit-1", target: summitColumn, suffix: "-1"},
	{header: "summit", target: summitColumn},
}

// derivedInsertAt is the column letter the first derived column lands on.
const derivedInsertAt = "E"

// BuildWorkbook converts a loaded peak file into a three-sheet workbook:
// the tabulated peaks plus derived summit formula columns, the run notes
// from the file header, and a legend describing each column. The peaks
// are sorted on the ranking column first, renumbering the OrderColumn.
//
// MACS 1.* output and broad-mode runs are rejected with an
// UnsupportedError before anything is built.
func BuildWorkbook(pf *PeakFile, opts Options) (*sheet.Workbook, error) {
	if strings.HasPrefix(pf.MacsVersion, "1.") {
		return nil, &UnsupportedError{
			Kind:   ErrUnsupportedVersion,
			Detail: fmt.Sprintf("MACS %s output, only 2.0* is handled", pf.MacsVersion),
		}
	}
	if pf.WithBroadOption() {
		return nil, &UnsupportedError{
			Kind:   ErrUnsupportedMode,
			Detail: "--broad output is not handled",
		}
	}
	if opts.RankColumn == "" {
		opts = DefaultOptions()
	}

	if err := pf.SortOn(opts.RankColumn, opts.Descending); err != nil {
		return nil, err
	}

	wb := sheet.NewWorkbook()

	data := wb.AddSheet(DataSheet)
	if err := data.WriteRow(1, lo.ToAnySlice(pf.ColumnsAsHeader()), nil); err != nil {
		return nil, err
	}
	columns := pf.Columns()
	for i := 0; i < pf.data.Len(); i++ {
		row := pf.data.Row(i)
		values := lo.Map(columns, func(col string, _ int) any { return row[col] })
		if err := data.AppendRow(values, nil); err != nil {
			return nil, err
		}
	}
	if err := insertDerivedColumns(data, columns); err != nil {
		return nil, err
	}

	bold := &sheet.Style{Bold: true}
	notes := wb.AddSheet(NotesSheet)
	if err := notes.AppendRow([]any{"MACS RUN NOTES:"}, bold); err != nil {
		return nil, err
	}
	if err := notes.WriteColumn("A", notes.NextRow(), lo.ToAnySlice(pf.Header)); err != nil {
		return nil, err
	}
	if err := notes.AppendRow([]any{"ADDITIONAL NOTES:"}, bold); err != nil {
		return nil, err
	}
	direction := "descending"
	if !opts.Descending {
		direction = "ascending"
	}
	note := fmt.Sprintf("By default regions are sorted by %s (in %s order)",
		strings.ReplaceAll(opts.RankColumn, "_", " "), direction)
	if err := notes.AppendRow([]any{note}, nil); err != nil {
		return nil, err
	}

	legends := wb.AddSheet(LegendsSheet)
	for _, e := range dataLegends {
		if err := legends.AppendRow([]any{e.Column, e.Description}, nil); err != nil {
			return nil, err
		}
	}

	return wb, nil
}

// insertDerivedColumns inserts the formula columns into the data sheet.
// Formula targets are resolved against the final column layout, after
// every insertion has shifted the original columns right, so each
// template references the correct same-row cell.
func insertDerivedColumns(data *sheet.Worksheet, columns []string) error {
	insertAt, err := sheet.ParseColumn(derivedInsertAt)
	if err != nil {
		return err
	}

	// Final layout: the original columns with the derived block spliced
	// in before the insertion point.
	final := make([]string, 0, len(columns)+len(derivedColumns))
	final = append(final, columns[:insertAt-1]...)
	for _, d := range derivedColumns {
		final = append(final, d.header)
	}
	final = append(final, columns[insertAt-1:]...)

	targetLetter := func(name string) (string, error) {
		idx := lo.IndexOf(final, name)
		if idx < 0 {
			return "", fmt.Errorf("data sheet has no %q column", name)
		}
		return sheet.ColumnName(idx + 1)
	}

	for i, d := range derivedColumns {
		col, err := sheet.ColumnName(insertAt + i)
		if err != nil {
			return err
		}
		if err := data.InsertColumn(col, d.header); err != nil {
			return err
		}
		target, err := targetLetter(d.target)
		if err != nil {
			return err
		}
		f := sheet.Formula("=" + target + sheet.RowPlaceholder + d.suffix)
		if err := data.FillColumn(col, 2, f); err != nil {
			return err
		}
	}
	return nil
}
