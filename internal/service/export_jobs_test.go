package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/scottwatt/ITGportal-sub000/internal/models"
	appErrors "github.com/scottwatt/ITGportal-sub000/pkg/errors"
	"github.com/scottwatt/ITGportal-sub000/pkg/jobs"
	"github.com/scottwatt/ITGportal-sub000/pkg/storage"
)

func newExportJobFixture(t *testing.T, store *mockReplicatorStore) *ExportJobService {
	t.Helper()
	archive, err := storage.NewExportArchive(t.TempDir())
	require.NoError(t, err)
	signer := storage.NewDownloadSigner("test-secret", time.Hour)
	exports := NewExportService(newReplicatorFixture(store), zap.NewNop())
	svc := NewExportJobService(exports, archive, signer, jobs.Options{Workers: 1}, zap.NewNop())
	svc.Start(context.Background(), time.Hour)
	t.Cleanup(svc.Stop)
	return svc
}

func TestExportJobRoundTrip(t *testing.T) {
	svc := newExportJobFixture(t, &mockReplicatorStore{byDate: mondayPlan()})

	job, err := svc.Enqueue("2025-03-10", ExportFormatCSV)
	require.NoError(t, err)
	assert.Equal(t, ExportJobPending, job.Status)

	require.Eventually(t, func() bool {
		current, err := svc.Status(job.ID)
		return err == nil && current.Status == ExportJobCompleted
	}, 2*time.Second, 10*time.Millisecond)

	completed, err := svc.Status(job.ID)
	require.NoError(t, err)
	assert.Equal(t, "schedule-2025-03-10.csv", completed.FileName)
	require.NotEmpty(t, completed.DownloadToken)

	result, err := svc.Download(completed.DownloadToken)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
	payload := string(result.Payload)
	assert.True(t, strings.HasPrefix(payload, "Slot,Client,Coach,Booked Via,Justification"))
	assert.Contains(t, payload, "Jordan Price")
}

func TestExportJobFailsOnEmptyDay(t *testing.T) {
	svc := newExportJobFixture(t, &mockReplicatorStore{byDate: map[string][]models.Assignment{}})

	job, err := svc.Enqueue("2025-03-10", ExportFormatPDF)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		current, err := svc.Status(job.ID)
		return err == nil && current.Status == ExportJobFailed
	}, 2*time.Second, 10*time.Millisecond)

	failed, err := svc.Status(job.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, failed.Error)
	assert.Empty(t, failed.DownloadToken)
}

func TestExportJobEnqueueValidation(t *testing.T) {
	svc := newExportJobFixture(t, &mockReplicatorStore{byDate: mondayPlan()})

	_, err := svc.Enqueue("10-03-2025", ExportFormatCSV)
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))

	_, err = svc.Enqueue("2025-03-10", "xlsx")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
}

func TestExportJobStatusUnknownID(t *testing.T) {
	svc := newExportJobFixture(t, &mockReplicatorStore{byDate: mondayPlan()})

	_, err := svc.Status("nope")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}

func TestExportJobDownloadRejectsBadToken(t *testing.T) {
	svc := newExportJobFixture(t, &mockReplicatorStore{byDate: mondayPlan()})

	_, err := svc.Download("not.a.valid.token")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrUnauthorized))
}
