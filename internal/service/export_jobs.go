package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appErrors "github.com/scottwatt/ITGportal-sub000/pkg/errors"
	"github.com/scottwatt/ITGportal-sub000/pkg/jobs"
	"github.com/scottwatt/ITGportal-sub000/pkg/storage"
)

// Export job lifecycle states.
const (
	ExportJobPending   = "pending"
	ExportJobCompleted = "completed"
	ExportJobFailed    = "failed"
)

// ExportJob tracks one queued day-plan export.
type ExportJob struct {
	ID            string     `json:"id"`
	Date          string     `json:"date"`
	Format        string     `json:"format"`
	Status        string     `json:"status"`
	FileName      string     `json:"fileName,omitempty"`
	DownloadToken string     `json:"downloadToken,omitempty"`
	Error         string     `json:"error,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
}

type exportPayload struct {
	date   string
	format string
}

// ExportJobService renders day-plan exports in the background and hands out
// signed download tokens for the archived files. Job state is in-memory, so
// a restart forgets unfinished jobs; the archive itself survives.
type ExportJobService struct {
	exports *ExportService
	archive *storage.ExportArchive
	signer  *storage.DownloadSigner
	logger  *zap.Logger

	queue *jobs.Queue

	mu       sync.RWMutex
	registry map[string]*ExportJob
}

// NewExportJobService wires the background export pipeline.
func NewExportJobService(exports *ExportService, archive *storage.ExportArchive, signer *storage.DownloadSigner, opts jobs.Options, logger *zap.Logger) *ExportJobService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &ExportJobService{
		exports:  exports,
		archive:  archive,
		signer:   signer,
		logger:   logger,
		registry: make(map[string]*ExportJob),
	}
	s.queue = jobs.NewQueue("exports", s.process, opts, logger)
	return s
}

// Start launches the worker pool and sweeps stale archive files.
func (s *ExportJobService) Start(ctx context.Context, archiveTTL time.Duration) {
	s.queue.Start(ctx)
	if removed, err := s.archive.Sweep(archiveTTL); err != nil {
		s.logger.Sugar().Warnw("export archive sweep failed", "error", err)
	} else if len(removed) > 0 {
		s.logger.Sugar().Infow("swept stale exports", "count", len(removed))
	}
}

// Stop drains the worker pool.
func (s *ExportJobService) Stop() {
	s.queue.Stop()
}

// Enqueue registers a pending export job for the date and format.
func (s *ExportJobService) Enqueue(date, format string) (*ExportJob, error) {
	if _, err := Weekday(date); err != nil {
		return nil, err
	}
	switch format {
	case ExportFormatCSV, ExportFormatPDF:
	case "":
		format = ExportFormatCSV
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}

	job := &ExportJob{
		ID:        uuid.NewString(),
		Date:      date,
		Format:    format,
		Status:    ExportJobPending,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.registry[job.ID] = job
	s.mu.Unlock()

	err := s.queue.Enqueue(jobs.Job{
		ID:      job.ID,
		Kind:    "export-day",
		Payload: exportPayload{date: date, format: format},
	})
	if err != nil {
		s.mu.Lock()
		delete(s.registry, job.ID)
		s.mu.Unlock()
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to queue export")
	}

	return s.snapshot(job.ID), nil
}

// Status returns the current state of a job.
func (s *ExportJobService) Status(jobID string) (*ExportJob, error) {
	job := s.snapshot(jobID)
	if job == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "export job not found")
	}
	return job, nil
}

// Download verifies a signed token and returns the archived export.
func (s *ExportJobService) Download(token string) (*ExportResult, error) {
	jobID, fileName, err := s.signer.Verify(token)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid download token")
	}
	payload, err := s.archive.Read(fileName)
	if err != nil {
		s.logger.Sugar().Warnw("archived export missing", "job_id", jobID, "file", fileName, "error", err)
		return nil, appErrors.Clone(appErrors.ErrNotFound, "export no longer available")
	}
	return &ExportResult{
		FileName:    fileName,
		ContentType: contentTypeFor(fileName),
		Payload:     payload,
	}, nil
}

func (s *ExportJobService) process(ctx context.Context, job jobs.Job) error {
	payload, ok := job.Payload.(exportPayload)
	if !ok {
		s.fail(job.ID, "invalid job payload")
		return nil
	}

	result, err := s.exports.ExportDay(ctx, payload.date, payload.format)
	if err != nil {
		s.fail(job.ID, err.Error())
		return fmt.Errorf("render export %s: %w", job.ID, err)
	}

	name, err := s.archive.Save(result.FileName, result.Payload)
	if err != nil {
		s.fail(job.ID, "failed to archive export")
		return fmt.Errorf("archive export %s: %w", job.ID, err)
	}

	token, _, err := s.signer.Sign(job.ID, name)
	if err != nil {
		s.fail(job.ID, "failed to sign download token")
		return fmt.Errorf("sign export %s: %w", job.ID, err)
	}

	now := time.Now().UTC()
	s.mu.Lock()
	if rec, found := s.registry[job.ID]; found {
		rec.Status = ExportJobCompleted
		rec.FileName = name
		rec.DownloadToken = token
		rec.Error = ""
		rec.CompletedAt = &now
	}
	s.mu.Unlock()
	return nil
}

func (s *ExportJobService) fail(jobID, reason string) {
	now := time.Now().UTC()
	s.mu.Lock()
	if rec, found := s.registry[jobID]; found {
		rec.Status = ExportJobFailed
		rec.Error = reason
		rec.CompletedAt = &now
	}
	s.mu.Unlock()
}

func (s *ExportJobService) snapshot(jobID string) *ExportJob {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, found := s.registry[jobID]
	if !found {
		return nil
	}
	copied := *rec
	return &copied
}

func contentTypeFor(fileName string) string {
	if len(fileName) > 4 && fileName[len(fileName)-4:] == ".pdf" {
		return "application/pdf"
	}
	return "text/csv"
}
