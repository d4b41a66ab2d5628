package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/scottwatt/ITGportal-sub000/internal/models"
)

// ConflictSource is any booking collection that can veto a candidate
// (date, slot, client) tuple. Sources decide for themselves whether a foreign
// occupant blocks the whole slot or only a same-client double booking does.
type ConflictSource interface {
	Kind() models.ConflictSourceKind
	Query(ctx context.Context, date, timeSlotID, candidateClientID string) ([]models.Conflict, error)
}

// ConflictChecker queries every registered source and returns the union of
// their conflicts. It never short-circuits: a conflict from one source does
// not stop the others from being consulted.
type ConflictChecker struct {
	sources []ConflictSource
	logger  *zap.Logger
}

// NewConflictChecker registers the given sources.
func NewConflictChecker(logger *zap.Logger, sources ...ConflictSource) *ConflictChecker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConflictChecker{sources: sources, logger: logger}
}

// Check evaluates the candidate tuple against every source. A source whose
// query fails degrades to a "source unavailable" conflict instead of aborting
// the check, so the union semantics hold under partial outage.
func (c *ConflictChecker) Check(ctx context.Context, date, timeSlotID, candidateClientID string) (models.SlotCheck, error) {
	check := models.SlotCheck{Date: date, TimeSlotID: timeSlotID, Available: true}
	for _, source := range c.sources {
		conflicts, err := source.Query(ctx, date, timeSlotID, candidateClientID)
		if err != nil {
			c.logger.Error("conflict source query failed",
				zap.String("source", string(source.Kind())),
				zap.String("date", date),
				zap.String("time_slot_id", timeSlotID),
				zap.Error(err),
			)
			check.Conflicts = append(check.Conflicts, models.Conflict{
				SourceKind: source.Kind(),
				Reason:     fmt.Sprintf("%s booking source is unavailable, slot cannot be verified", source.Kind()),
			})
			continue
		}
		check.Conflicts = append(check.Conflicts, conflicts...)
	}
	check.Available = len(check.Conflicts) == 0
	return check, nil
}

type assignmentSlotLister interface {
	ListForSlot(ctx context.Context, date, timeSlotID string) ([]models.Assignment, error)
}

// AssignmentConflictSource reports a conflict only when the candidate client
// already occupies the slot. Other clients sharing a coach's slot are
// permitted.
type AssignmentConflictSource struct {
	assignments assignmentSlotLister
	slotLabels  *SlotCatalog
}

// NewAssignmentConflictSource builds the existing-assignments source.
func NewAssignmentConflictSource(assignments assignmentSlotLister, catalog *SlotCatalog) *AssignmentConflictSource {
	return &AssignmentConflictSource{assignments: assignments, slotLabels: catalog}
}

func (s *AssignmentConflictSource) Kind() models.ConflictSourceKind {
	return models.ConflictSourceAssignments
}

func (s *AssignmentConflictSource) Query(ctx context.Context, date, timeSlotID, candidateClientID string) ([]models.Conflict, error) {
	existing, err := s.assignments.ListForSlot(ctx, date, timeSlotID)
	if err != nil {
		return nil, err
	}
	var conflicts []models.Conflict
	for _, assignment := range existing {
		if assignment.ClientID == candidateClientID {
			conflicts = append(conflicts, models.Conflict{
				SourceKind: s.Kind(),
				Reason:     fmt.Sprintf("client is already scheduled for %s on %s", s.slotLabels.Label(timeSlotID), date),
			})
		}
	}
	return conflicts, nil
}

type trainingSlotLister interface {
	ListForSlot(ctx context.Context, date, timeSlotID string) ([]models.TrainingBooking, error)
}

// TrainingConflictSource blocks the whole slot for every client whenever a
// training or walkthrough occupies it.
type TrainingConflictSource struct {
	trainings trainingSlotLister
}

// NewTrainingConflictSource builds the trainings source.
func NewTrainingConflictSource(trainings trainingSlotLister) *TrainingConflictSource {
	return &TrainingConflictSource{trainings: trainings}
}

func (s *TrainingConflictSource) Kind() models.ConflictSourceKind {
	return models.ConflictSourceTrainings
}

func (s *TrainingConflictSource) Query(ctx context.Context, date, timeSlotID, candidateClientID string) ([]models.Conflict, error) {
	trainings, err := s.trainings.ListForSlot(ctx, date, timeSlotID)
	if err != nil {
		return nil, err
	}
	var conflicts []models.Conflict
	for _, training := range trainings {
		conflicts = append(conflicts, models.Conflict{
			SourceKind: s.Kind(),
			Reason:     fmt.Sprintf("training %q blocks this slot", training.Topic),
		})
	}
	return conflicts, nil
}

type requestSlotLister interface {
	ListActiveForSlot(ctx context.Context, date, timeSlotID, excludeClientID string) ([]models.SessionRequest, error)
}

// RequestConflictSource reports pending or approved session requests from
// other clients; the candidate's own requests never block them.
type RequestConflictSource struct {
	requests requestSlotLister
}

// NewRequestConflictSource builds the session-requests source.
func NewRequestConflictSource(requests requestSlotLister) *RequestConflictSource {
	return &RequestConflictSource{requests: requests}
}

func (s *RequestConflictSource) Kind() models.ConflictSourceKind {
	return models.ConflictSourceRequests
}

func (s *RequestConflictSource) Query(ctx context.Context, date, timeSlotID, candidateClientID string) ([]models.Conflict, error) {
	requests, err := s.requests.ListActiveForSlot(ctx, date, timeSlotID, candidateClientID)
	if err != nil {
		return nil, err
	}
	var conflicts []models.Conflict
	for _, request := range requests {
		conflicts = append(conflicts, models.Conflict{
			SourceKind: s.Kind(),
			Reason:     fmt.Sprintf("another client's %s session request holds this slot", request.Status),
		})
	}
	return conflicts, nil
}
