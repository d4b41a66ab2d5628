package export

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCSVExporterRender(t *testing.T) {
	table := Table{
		Columns: []string{"Slot", "Client"},
		Rows: []map[string]string{
			{"Slot": "8:00 AM - 10:00 AM", "Client": "Avery Stone"},
			{"Slot": "10:00 AM - 12:00 PM"}, // missing cells render empty
		},
	}
	payload, err := NewCSVExporter().Render(table)
	require.NoError(t, err)
	require.Equal(t, "Slot,Client\n8:00 AM - 10:00 AM,Avery Stone\n10:00 AM - 12:00 PM,\n", string(payload))
}

func TestCSVExporterNeedsColumns(t *testing.T) {
	_, err := NewCSVExporter().Render(Table{})
	require.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	table := Table{
		Columns: []string{"Slot", "Client"},
		Rows:    []map[string]string{{"Slot": "8:00 AM - 10:00 AM", "Client": "Avery Stone"}},
	}
	payload, err := NewPDFExporter().Render(table, "Session plan 2025-03-10")
	require.NoError(t, err)
	require.True(t, len(payload) > 0)
	require.Equal(t, "%PDF", string(payload[:4]))
}
