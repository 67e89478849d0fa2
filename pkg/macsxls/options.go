// Package macsxls reads output files from the MACS peak caller and
// converts them into multi-sheet spreadsheet workbooks.
package macsxls

// Options configures workbook emission.
type Options struct {
	// RankColumn is the column the data sheet is sorted on before
	// emission. An empty value falls back to DefaultOptions.
	RankColumn string
	// Descending selects the sort direction for RankColumn.
	Descending bool
}

// DefaultOptions returns the emission defaults: peaks sorted by fold
// enrichment, largest first.
func DefaultOptions() Options {
	return Options{
		RankColumn: "fold_enrichment",
		Descending: true,
	}
}
