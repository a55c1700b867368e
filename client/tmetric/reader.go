package tmetric

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Column names of the tmetric export that the parser consumes. Any other
// columns pass through untouched.
const (
	ColDay         = "Day"
	ColProject     = "Project"
	ColProjectCode = "Project Code"
	ColDuration    = "Duration"
	ColStartTime   = "Start Time"
	ColEndTime     = "End Time"
	ColWorkType    = "Work Type"
	ColTags        = "Tags"
)

// readRows reads a CSV export into a header slice plus one column map per
// data row, the way a dict reader would. Exports are often written with a
// UTF-8 byte order mark, which gets stripped from the first header cell.
func readRows(r io.Reader) (header []string, rows []map[string]string, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading csv: %w", err)
	}

	if len(records) == 0 {
		return nil, nil, nil
	}

	header = records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	rows = make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}

	return header, rows, nil
}
