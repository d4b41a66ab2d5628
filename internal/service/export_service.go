package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	appErrors "github.com/scottwatt/ITGportal-sub000/pkg/errors"
	"github.com/scottwatt/ITGportal-sub000/pkg/export"
)

// Export formats supported by the day-plan exporter.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

// ExportResult carries rendered bytes plus HTTP metadata.
type ExportResult struct {
	FileName    string
	ContentType string
	Payload     []byte
}

// ExportService renders one day's session plan as a downloadable table.
type ExportService struct {
	replicator *ReplicatorService
	csv        *export.CSVExporter
	pdf        *export.PDFExporter
	logger     *zap.Logger
}

// NewExportService wires the exporter. It reuses the replicator's day
// snapshot so exports and copies always agree on labels.
func NewExportService(replicator *ReplicatorService, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		replicator: replicator,
		csv:        export.NewCSVExporter(),
		pdf:        export.NewPDFExporter(),
		logger:     logger,
	}
}

// ExportDay renders the date's assignments in the requested format.
func (s *ExportService) ExportDay(ctx context.Context, date, format string) (*ExportResult, error) {
	copied, err := s.replicator.CopyDay(ctx, date)
	if err != nil {
		return nil, err
	}

	table := export.Table{
		Columns: []string{"Slot", "Client", "Coach", "Booked Via", "Justification"},
	}
	for _, assignment := range copied.Assignments {
		table.Rows = append(table.Rows, map[string]string{
			"Slot":          assignment.SlotLabel,
			"Client":        assignment.ClientName,
			"Coach":         assignment.CoachName,
			"Booked Via":    assignment.CreatedVia,
			"Justification": assignment.Justification,
		})
	}

	switch format {
	case ExportFormatCSV, "":
		payload, err := s.csv.Render(table)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv export")
		}
		return &ExportResult{
			FileName:    fmt.Sprintf("schedule-%s.csv", date),
			ContentType: "text/csv",
			Payload:     payload,
		}, nil
	case ExportFormatPDF:
		payload, err := s.pdf.Render(table, fmt.Sprintf("Session plan %s", date))
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf export")
		}
		return &ExportResult{
			FileName:    fmt.Sprintf("schedule-%s.pdf", date),
			ContentType: "application/pdf",
			Payload:     payload,
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}
