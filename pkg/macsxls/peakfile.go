package macsxls

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"
)

// Header-line prefixes recognized while scanning a MACS output file.
const (
	versionPrefix = "# This file is generated by MACS version "
	namePrefix    = "# name = "
	commandPrefix = "# Command line: "
)

// OrderColumn is the synthetic rank column prepended to the parsed peak
// table. Its values are a contiguous 1..N sequence following the current
// row order and are renumbered after every sort.
const OrderColumn = "order"

// summitColumn is the per-peak summit coordinate column. MACS2 omits it
// when run with --broad.
const summitColumn = "abs_summit"

// PeakFile is a parsed MACS peak-calling output file: the verbatim header
// comment lines, the metadata extracted from them, and the tabulated
// peaks.
type PeakFile struct {
	// MacsVersion is the version string from the generated-by header
	// line.
	MacsVersion string
	// Name is the run name from the "# name = " header line, if any.
	Name string
	// CommandLine is the invocation from the "# Command line: " header
	// line, if any. Older MACS releases did not record it.
	CommandLine string
	// Header holds every comment or blank line preceding the data, in
	// file order.
	Header []string

	data *Table
}

// LoadFile opens path and loads it as a MACS output file.
func LoadFile(path string) (*PeakFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pf, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pf, nil
}

// Load reads a MACS output file from r. Blank lines and lines starting
// with "#" form the header; the first remaining line names the columns
// and the rest are tab-delimited peaks. An OrderColumn is prepended to
// the columns and populated 1..N.
//
// Load fails with ErrNoVersion when the header carries no MACS version
// line; this is the only validation applied to the input.
func Load(r io.Reader) (*PeakFile, error) {
	pf := &PeakFile{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			pf.Header = append(pf.Header, line)
			switch {
			case strings.HasPrefix(line, versionPrefix):
				if fields := strings.Fields(line); len(fields) > 8 {
					pf.MacsVersion = fields[8]
				}
			case pf.Name == "" && strings.HasPrefix(line, namePrefix):
				pf.Name = line[len(namePrefix):]
			case strings.HasPrefix(line, commandPrefix):
				pf.CommandLine = line[len(commandPrefix):]
			}
			continue
		}
		if pf.data == nil {
			// First non-header line names the columns.
			columns := append([]string{OrderColumn}, strings.Split(line, "\t")...)
			pf.data = NewTable(columns)
			continue
		}
		// Leading tab supplies an empty OrderColumn field, filled in
		// by updateOrder below.
		if err := pf.data.AppendLine("\t" + line); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if pf.MacsVersion == "" {
		return nil, ErrNoVersion
	}
	if pf.data == nil {
		return nil, errors.New("no column name line found")
	}
	pf.updateOrder()
	return pf, nil
}

// Data returns the peak table.
func (pf *PeakFile) Data() *Table {
	return pf.data
}

// Columns returns the column names, OrderColumn first.
func (pf *PeakFile) Columns() []string {
	return pf.data.Columns()
}

// ColumnsAsHeader returns the column names with "#" prepended to the
// first, for use as a spreadsheet header row.
func (pf *PeakFile) ColumnsAsHeader() []string {
	cols := pf.data.Columns()
	cols[0] = "#" + cols[0]
	return cols
}

// SortOn sorts the peaks in place on the named column and renumbers the
// OrderColumn 1..N to match the new sequence.
func (pf *PeakFile) SortOn(column string, descending bool) error {
	if err := pf.data.Sort(column, descending); err != nil {
		return err
	}
	pf.updateOrder()
	return nil
}

func (pf *PeakFile) updateOrder() {
	for i := 0; i < pf.data.Len(); i++ {
		pf.data.Row(i)[OrderColumn] = i + 1
	}
}

// WithBroadOption reports whether the file looks like output from a MACS
// run with --broad. When a command line was captured the flag itself
// decides; without one the absence of the summit column is used as a
// best-effort fallback.
func (pf *PeakFile) WithBroadOption() bool {
	if strings.HasPrefix(pf.MacsVersion, "1.") {
		// Not an option in MACS 1.*.
		return false
	}
	if pf.CommandLine != "" {
		return lo.Contains(strings.Fields(pf.CommandLine), "--broad")
	}
	return !pf.data.HasColumn(summitColumn)
}
