package export

// Table is column-ordered tabular content ready for rendering. Row cells are
// keyed by column name; missing cells render empty.
type Table struct {
	Columns []string
	Rows    []map[string]string
}

func (t Table) record(row map[string]string) []string {
	record := make([]string, len(t.Columns))
	for i, column := range t.Columns {
		record[i] = row[column]
	}
	return record
}
