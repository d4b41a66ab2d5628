package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/scottwatt/ITGportal-sub000/internal/models"
)

type mockClientLister struct {
	clients []models.Client
	err     error
	calls   int
}

func (m *mockClientLister) ListSchedulable(_ context.Context) ([]models.Client, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.clients, nil
}

type mockAssignmentLister struct {
	assignments []models.Assignment
	err         error
	calls       int
}

func (m *mockAssignmentLister) ListByDate(_ context.Context, _ string) ([]models.Assignment, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.assignments, nil
}

func weekdayClient(id string, days, slots []string) models.Client {
	return models.Client{
		ID:                 id,
		FullName:           "Client " + id,
		Program:            models.ProgramLimitless,
		WorkingDays:        days,
		AvailableTimeSlots: slots,
		Active:             true,
	}
}

func TestResolveAvailableClients(t *testing.T) {
	clients := []models.Client{
		weekdayClient("c1", []string{"MONDAY", "WEDNESDAY"}, []string{"8-10"}),
		weekdayClient("c2", []string{"TUESDAY"}, []string{"8-10"}),
		weekdayClient("c3", []string{"MONDAY"}, nil),
	}

	// 2025-03-10 is a Monday.
	available, err := ResolveAvailableClients(clients, "2025-03-10")
	require.NoError(t, err)
	require.Len(t, available, 2)
	assert.Equal(t, "c1", available[0].ID)
	assert.Equal(t, "c3", available[1].ID)

	_, err = ResolveAvailableClients(clients, "10/03/2025")
	assert.Error(t, err)
}

func TestComputeClientAvailability(t *testing.T) {
	client := weekdayClient("c1", []string{"MONDAY"}, []string{"8-10", "10-12", "13-15"})
	date := "2025-03-10"

	t.Run("partially scheduled", func(t *testing.T) {
		assignments := []models.Assignment{
			{ClientID: "c1", Date: date, TimeSlotID: "8-10"},
			{ClientID: "c2", Date: date, TimeSlotID: "10-12"},
		}
		avail := ComputeClientAvailability(client, assignments, date)
		assert.Equal(t, 3, avail.TotalSlots)
		assert.Equal(t, 1, avail.ScheduledSlots)
		assert.Equal(t, 2, avail.AvailableSlots)
		assert.False(t, avail.IsFullyScheduled)
	})

	t.Run("fully scheduled", func(t *testing.T) {
		assignments := []models.Assignment{
			{ClientID: "c1", Date: date, TimeSlotID: "8-10"},
			{ClientID: "c1", Date: date, TimeSlotID: "10-12"},
			{ClientID: "c1", Date: date, TimeSlotID: "13-15"},
		}
		avail := ComputeClientAvailability(client, assignments, date)
		assert.Equal(t, 0, avail.AvailableSlots)
		assert.True(t, avail.IsFullyScheduled)
	})

	t.Run("special assignments outside the envelope do not count", func(t *testing.T) {
		assignments := []models.Assignment{
			{ClientID: "c1", Date: date, TimeSlotID: "7-8"},
			{ClientID: "c1", Date: date, TimeSlotID: "17-19"},
		}
		avail := ComputeClientAvailability(client, assignments, date)
		assert.Equal(t, 0, avail.ScheduledSlots)
		assert.Equal(t, 3, avail.AvailableSlots)
		assert.False(t, avail.IsFullyScheduled)
	})

	t.Run("other dates do not count", func(t *testing.T) {
		assignments := []models.Assignment{
			{ClientID: "c1", Date: "2025-03-11", TimeSlotID: "8-10"},
		}
		avail := ComputeClientAvailability(client, assignments, date)
		assert.Equal(t, 0, avail.ScheduledSlots)
	})

	t.Run("no configured slots is never fully scheduled", func(t *testing.T) {
		empty := weekdayClient("c9", []string{"MONDAY"}, nil)
		avail := ComputeClientAvailability(empty, nil, date)
		assert.Equal(t, 0, avail.TotalSlots)
		assert.False(t, avail.IsFullyScheduled)
	})
}

func TestDayBoard(t *testing.T) {
	clients := &mockClientLister{clients: []models.Client{
		weekdayClient("c1", []string{"MONDAY"}, []string{"8-10", "10-12"}),
		weekdayClient("c2", []string{"FRIDAY"}, []string{"8-10"}),
	}}
	assignments := &mockAssignmentLister{assignments: []models.Assignment{
		{ID: "a1", ClientID: "c1", Date: "2025-03-10", TimeSlotID: "8-10"},
	}}
	svc := NewAvailabilityService(clients, assignments, nil, zap.NewNop())

	board, err := svc.DayBoard(context.Background(), "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", board.Date)
	assert.Equal(t, "MONDAY", board.Weekday)
	require.Len(t, board.Entries, 1)
	assert.Equal(t, "c1", board.Entries[0].Client.ID)
	assert.Equal(t, 1, board.Entries[0].Availability.ScheduledSlots)
	assert.Equal(t, 1, board.Entries[0].Availability.AvailableSlots)
	require.Len(t, board.Assignments, 1)
}

func TestDayBoardPropagatesLoadFailures(t *testing.T) {
	svc := NewAvailabilityService(
		&mockClientLister{err: errors.New("db down")},
		&mockAssignmentLister{},
		nil,
		zap.NewNop(),
	)
	_, err := svc.DayBoard(context.Background(), "2025-03-10")
	assert.Error(t, err)
}

func TestAssignmentsValidatesDate(t *testing.T) {
	svc := NewAvailabilityService(&mockClientLister{}, &mockAssignmentLister{}, nil, zap.NewNop())
	_, err := svc.Assignments(context.Background(), "bad-date")
	assert.Error(t, err)
}
