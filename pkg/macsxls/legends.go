package macsxls

// legendEntry describes one data-sheet column on the legends sheet.
type legendEntry struct {
	Column      string
	Description string
}

// dataLegends is the static legend text for the data sheet, one entry per
// column in sheet order.
var dataLegends = []legendEntry{
	{"order", "Sorting order FE"},
	{"chr", "Chromosome location of binding region"},
	{"start", "Start coordinate of binding region"},
	{"end", "End coordinate of binding region"},
	{"summit-100", "Summit - 100bp"},
	{"summit+100", "Summit + 100bp"},
	{"summit-1", "Summit of binding region - 1"},
	{"summit", "Summit of binding region"},
	{"length", "Length of binding region"},
	{"abs_summit", "Coordinate of region summit"},
	{"pileup", "Number of non-degenerate and position corrected reads at summit"},
	{"-LOG10(pvalue)", "Transformed Pvalue -log10(Pvalue) for the binding region (e.g. if Pvalue=1e-10, then this value should be 10)"},
	{"fold_enrichment", "Fold enrichment for this region against random Poisson distribution with local lambda"},
	{"-LOG10(qvalue)", "Transformed Qvalue -log10(Pvalue) for the binding region (e.g. if Qvalue=0.05, then this value should be 1.3)"},
}
