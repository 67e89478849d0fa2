// Package main provides the CLI entry point for macs2xlsx.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/drabhishekkumar/macs2xlsx/pkg/macsxls"
)

const toolVersion = "0.3.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "macs2xlsx <MACS2_OUTPUT> [<XLSX_OUT>]",
		Short: "Convert MACS2 peak caller output to a spreadsheet",
		Long: `macs2xlsx converts the tab-delimited output of version 2.0* of the MACS
peak caller into an xlsx workbook with three sheets: the tabulated peaks
plus derived summit columns, the run notes from the file header, and a
legend describing each column.

If <XLSX_OUT> is omitted the workbook is written to
'XLS_<MACS2_OUTPUT>.xlsx' in the current directory.`,
		Args:         cobra.RangeArgs(1, 2),
		RunE:         run,
		Version:      toolVersion,
		SilenceUsage: true,
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	input := args[0]
	output := defaultOutput(input)
	if len(args) == 2 {
		output = args[1]
	}

	fmt.Printf("Input file: %s\n", input)
	fmt.Printf("Output workbook: %s\n", output)

	pf, err := macsxls.LoadFile(input)
	if err != nil {
		return err
	}
	fmt.Printf("Input file is from MACS %s\n", pf.MacsVersion)

	wb, err := macsxls.BuildWorkbook(pf, macsxls.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to convert: %w", err)
	}
	if err := wb.SaveAs(output); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	return nil
}

// defaultOutput derives the output name from the input file name. MACS
// output usually carries a misleading '.xls' extension already, so the
// stem is reused with an explicit '.xlsx'.
func defaultOutput(input string) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return "XLS_" + stem + ".xlsx"
}
