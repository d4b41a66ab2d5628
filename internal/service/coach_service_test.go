package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/scottwatt/ITGportal-sub000/internal/dto"
	"github.com/scottwatt/ITGportal-sub000/internal/models"
	appErrors "github.com/scottwatt/ITGportal-sub000/pkg/errors"
)

type mockCoachStore struct {
	coaches   []models.Coach
	upserted  []*models.CoachDayStatus
	listErr   error
	upsertErr error
}

func (m *mockCoachStore) ListActive(ctx context.Context) ([]models.Coach, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.coaches, nil
}

func (m *mockCoachStore) UpsertDayStatus(ctx context.Context, status *models.CoachDayStatus) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.upserted = append(m.upserted, status)
	return nil
}

func TestCoachServiceListActive(t *testing.T) {
	store := &mockCoachStore{coaches: []models.Coach{{ID: "coach-1", FullName: "Jordan Price"}}}
	svc := NewCoachService(store, nil, zap.NewNop())

	coaches, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, coaches, 1)
	assert.Equal(t, "Jordan Price", coaches[0].FullName)

	store.listErr = errors.New("db down")
	_, err = svc.ListActive(context.Background())
	assert.True(t, appErrors.Is(err, appErrors.ErrInternal))
}

func TestCoachServiceSetDayStatus(t *testing.T) {
	store := &mockCoachStore{}
	svc := NewCoachService(store, nil, zap.NewNop())

	status, err := svc.SetDayStatus(context.Background(), "coach-1", dto.SetCoachAvailabilityRequest{
		Date:   "2025-03-10",
		Status: models.CoachStatusUnavailable,
		Reason: "training day",
	})
	require.NoError(t, err)
	assert.Equal(t, "coach-1", status.CoachID)
	assert.Equal(t, "2025-03-10", status.Date)
	assert.False(t, status.Available())
	require.Len(t, store.upserted, 1)

	_, err = svc.SetDayStatus(context.Background(), "", dto.SetCoachAvailabilityRequest{
		Date:   "2025-03-10",
		Status: models.CoachStatusAvailable,
	})
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))

	_, err = svc.SetDayStatus(context.Background(), "coach-1", dto.SetCoachAvailabilityRequest{
		Date:   "not-a-date",
		Status: models.CoachStatusAvailable,
	})
	assert.Error(t, err)

	_, err = svc.SetDayStatus(context.Background(), "coach-1", dto.SetCoachAvailabilityRequest{
		Date:   "2025-03-10",
		Status: "vacationing",
	})
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))

	store.upsertErr = errors.New("db down")
	_, err = svc.SetDayStatus(context.Background(), "coach-1", dto.SetCoachAvailabilityRequest{
		Date:   "2025-03-10",
		Status: models.CoachStatusAvailable,
	})
	assert.True(t, appErrors.Is(err, appErrors.ErrInternal))
}
