package sheet

import (
	"errors"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"
)

// SaveAs serializes the workbook to an xlsx file at path. Sheets appear
// in the order they were added; the first sheet replaces the default one
// excelize seeds a new file with.
func (wb *Workbook) SaveAs(path string) error {
	if len(wb.sheets) == 0 {
		return errors.New("sheet: cannot save an empty workbook")
	}

	f := excelize.NewFile()
	defer f.Close()

	boldID := -1
	bold := func() (int, error) {
		if boldID < 0 {
			id, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
			if err != nil {
				return 0, err
			}
			boldID = id
		}
		return boldID, nil
	}

	for i, ws := range wb.sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), ws.Name); err != nil {
				return err
			}
		} else {
			if _, err := f.NewSheet(ws.Name); err != nil {
				return err
			}
		}
		if err := renderSheet(f, ws, bold); err != nil {
			return err
		}
	}

	f.SetActiveSheet(0)
	return f.SaveAs(path)
}

// renderSheet writes one worksheet's cells into the excelize file.
func renderSheet(f *excelize.File, ws *Worksheet, bold func() (int, error)) error {
	keys := make([]cellKey, 0, len(ws.cells))
	for k := range ws.cells {
		keys = append(keys, k)
	}
	// Deterministic output order, row-major.
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].row != keys[j].row {
			return keys[i].row < keys[j].row
		}
		return keys[i].col < keys[j].col
	})

	for _, k := range keys {
		c := ws.cells[k]
		ref, err := CellName(k.col, k.row)
		if err != nil {
			return err
		}
		if c.IsFormula() {
			// excelize stores formulas without the leading "=".
			formula := strings.TrimPrefix(c.Formula.Render(k.row), "=")
			if err := f.SetCellFormula(ws.Name, ref, formula); err != nil {
				return err
			}
		} else if err := f.SetCellValue(ws.Name, ref, c.Value); err != nil {
			return err
		}
		if c.Style != nil && c.Style.Bold {
			id, err := bold()
			if err != nil {
				return err
			}
			if err := f.SetCellStyle(ws.Name, ref, ref, id); err != nil {
				return err
			}
		}
	}
	return nil
}
