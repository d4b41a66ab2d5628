package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/scottwatt/ITGportal-sub000/internal/dto"
	"github.com/scottwatt/ITGportal-sub000/internal/models"
	appErrors "github.com/scottwatt/ITGportal-sub000/pkg/errors"
)

type availabilityClientLister interface {
	ListSchedulable(ctx context.Context) ([]models.Client, error)
}

type availabilityAssignmentLister interface {
	ListByDate(ctx context.Context, date string) ([]models.Assignment, error)
}

// AvailabilityService computes which clients can work a date and how much of
// their configured slot envelope remains open. The decision functions are
// pure over supplied snapshots; the service only orchestrates loading them.
type AvailabilityService struct {
	clients     availabilityClientLister
	assignments availabilityAssignmentLister
	cache       *CacheService
	logger      *zap.Logger
}

// NewAvailabilityService wires the availability resolver.
func NewAvailabilityService(clients availabilityClientLister, assignments availabilityAssignmentLister, cache *CacheService, logger *zap.Logger) *AvailabilityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AvailabilityService{clients: clients, assignments: assignments, cache: cache, logger: logger}
}

// ResolveAvailableClients filters to clients whose working days include the
// date's weekday.
func ResolveAvailableClients(clients []models.Client, date string) ([]models.Client, error) {
	weekday, err := Weekday(date)
	if err != nil {
		return nil, err
	}
	available := make([]models.Client, 0, len(clients))
	for _, client := range clients {
		if client.WorksOn(weekday) {
			available = append(available, client)
		}
	}
	return available, nil
}

// ComputeClientAvailability summarises a client's remaining capacity on a
// date given the current assignment snapshot. A client with no configured
// slots is never considered fully scheduled.
func ComputeClientAvailability(client models.Client, assignments []models.Assignment, date string) models.ClientAvailability {
	total := len(client.AvailableTimeSlots)
	scheduled := 0
	for _, assignment := range assignments {
		if assignment.ClientID != client.ID || assignment.Date != date {
			continue
		}
		if client.HasSlot(assignment.TimeSlotID) {
			scheduled++
		}
	}
	available := total - scheduled
	if available < 0 {
		available = 0
	}
	return models.ClientAvailability{
		ClientID:         client.ID,
		Date:             date,
		TotalSlots:       total,
		ScheduledSlots:   scheduled,
		AvailableSlots:   available,
		IsFullyScheduled: available == 0 && total > 0,
	}
}

// Assignments returns the raw assignment snapshot for one date.
func (s *AvailabilityService) Assignments(ctx context.Context, date string) ([]models.Assignment, error) {
	if _, err := Weekday(date); err != nil {
		return nil, err
	}
	assignments, err := s.assignments.ListByDate(ctx, date)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load assignments")
	}
	return assignments, nil
}

// DayBoard assembles the cached scheduling board for one date: the clients
// eligible to work it, their availability arithmetic, and the day's
// assignments.
func (s *AvailabilityService) DayBoard(ctx context.Context, date string) (*dto.DayBoardResponse, error) {
	weekday, err := Weekday(date)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		var cached dto.DayBoardResponse
		if hit, _ := s.cache.Get(ctx, BoardKey(date), &cached); hit {
			return &cached, nil
		}
	}

	clients, err := s.clients.ListSchedulable(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load clients")
	}
	assignments, err := s.assignments.ListByDate(ctx, date)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load assignments")
	}

	eligible, err := ResolveAvailableClients(clients, date)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.DayBoardEntry, 0, len(eligible))
	for _, client := range eligible {
		entries = append(entries, dto.DayBoardEntry{
			Client:       client,
			Availability: ComputeClientAvailability(client, assignments, date),
		})
	}

	board := &dto.DayBoardResponse{
		Date:        date,
		Weekday:     weekday,
		Entries:     entries,
		Assignments: assignments,
	}
	if s.cache != nil {
		s.cache.Set(ctx, BoardKey(date), board)
	}
	return board, nil
}
