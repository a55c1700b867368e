package exporter

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// XLSXFile writes the table as a single-sheet workbook, mirroring the CSV
// output for spreadsheet apps that mangle CSV imports.
type XLSXFile struct {
	Path  string
	Sheet string // defaults to "Sheet1"
}

func (e *XLSXFile) Export(table *Table) error {
	sheet := e.Sheet
	if sheet == "" {
		sheet = "Sheet1"
	}

	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return fmt.Errorf("SetSheetName: %w", err)
		}
	}

	if err := writeRow(f, sheet, 1, table.Header, false); err != nil {
		return err
	}
	for i, row := range table.Rows {
		if err := writeRow(f, sheet, i+2, row, true); err != nil {
			return err
		}
	}

	if err := f.SaveAs(e.Path); err != nil {
		return fmt.Errorf("SaveAs: %w", err)
	}

	return nil
}

// writeRow writes one sheet row. Data cells holding plain numbers go in as
// numbers so the sheet can chart them without conversion.
func writeRow(f *excelize.File, sheet string, rowNum int, cells []string, numeric bool) error {
	for col, value := range cells {
		ref, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return fmt.Errorf("CoordinatesToCellName: %w", err)
		}

		var cell any = value
		if numeric {
			if n, err := strconv.ParseFloat(value, 64); err == nil && value != "" {
				cell = n
			}
		}

		if err := f.SetCellValue(sheet, ref, cell); err != nil {
			return fmt.Errorf("SetCellValue %s: %w", ref, err)
		}
	}
	return nil
}
