package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// CSVExporter renders a Table as CSV bytes.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Render encodes the table, header row first.
func (e *CSVExporter) Render(table Table) ([]byte, error) {
	if len(table.Columns) == 0 {
		return nil, fmt.Errorf("csv export needs at least one column")
	}
	records := make([][]string, 0, len(table.Rows)+1)
	records = append(records, table.Columns)
	for _, row := range table.Rows {
		records = append(records, table.record(row))
	}

	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)
	if err := writer.WriteAll(records); err != nil {
		return nil, fmt.Errorf("encode csv: %w", err)
	}
	return buf.Bytes(), nil
}
