package exporter

import (
	"encoding/csv"
	"fmt"
	"os"
)

// CSVFile writes the table as a CSV file, header first.
type CSVFile struct {
	Path string
}

func (e *CSVFile) Export(table *Table) error {
	f, err := os.Create(e.Path)
	if err != nil {
		return fmt.Errorf("os.Create: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(table.Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range table.Rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}

	return nil
}
