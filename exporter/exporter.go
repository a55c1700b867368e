package exporter

// Table is the augmented row-per-activity output consumed by every
// rendering collaborator: a header and string cells, nothing more.
type Table struct {
	Header []string
	Rows   [][]string
}

// Exporter writes a finished table somewhere: a file, a spreadsheet, a
// remote sheet.
type Exporter interface {
	Export(table *Table) error
}
