package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/scottwatt/ITGportal-sub000/internal/dto"
	"github.com/scottwatt/ITGportal-sub000/internal/models"
	appErrors "github.com/scottwatt/ITGportal-sub000/pkg/errors"
)

type replicatorAssignmentStore interface {
	ListByDate(ctx context.Context, date string) ([]models.Assignment, error)
	Create(ctx context.Context, assignment *models.Assignment) error
}

type replicatorClientSource interface {
	ListSchedulable(ctx context.Context) ([]models.Client, error)
	FindByID(ctx context.Context, id string) (*models.Client, error)
}

type replicatorCoachReader interface {
	FindByID(ctx context.Context, id string) (*models.Coach, error)
}

// ReplicatorService copies one day's session plan onto other days. Every
// snapshotted assignment is re-validated independently per target date, and
// the apply step tolerates partial failure without rolling anything back.
type ReplicatorService struct {
	assignments replicatorAssignmentStore
	clients     replicatorClientSource
	coaches     replicatorCoachReader
	gate        CoachAvailabilityGate
	catalog     *SlotCatalog
	validator   *validator.Validate
	cache       *CacheService
	metrics     *MetricsService
	logger      *zap.Logger
}

// NewReplicatorService wires the day replicator.
func NewReplicatorService(
	assignments replicatorAssignmentStore,
	clients replicatorClientSource,
	coaches replicatorCoachReader,
	gate CoachAvailabilityGate,
	catalog *SlotCatalog,
	validate *validator.Validate,
	cache *CacheService,
	metrics *MetricsService,
	logger *zap.Logger,
) *ReplicatorService {
	if validate == nil {
		validate = validator.New()
	}
	if catalog == nil {
		catalog = DefaultSlotCatalog()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReplicatorService{
		assignments: assignments,
		clients:     clients,
		coaches:     coaches,
		gate:        gate,
		catalog:     catalog,
		validator:   validate,
		cache:       cache,
		metrics:     metrics,
		logger:      logger,
	}
}

// CopyDay snapshots every assignment on the source date, denormalized with
// coach, client, and slot labels for display. Copying an empty day fails.
func (s *ReplicatorService) CopyDay(ctx context.Context, date string) (*models.CopiedSchedule, error) {
	if _, err := Weekday(date); err != nil {
		return nil, err
	}
	assignments, err := s.assignments.ListByDate(ctx, date)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load assignments")
	}
	if len(assignments) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNothingToCopy, fmt.Sprintf("no assignments exist on %s", date))
	}

	clientNames := map[string]string{}
	coachNames := map[string]string{}
	copied := &models.CopiedSchedule{SourceDate: date, CopiedAt: time.Now().UTC()}
	for _, assignment := range assignments {
		copied.Assignments = append(copied.Assignments, models.CopiedAssignment{
			AssignmentID:  assignment.ID,
			TimeSlotID:    assignment.TimeSlotID,
			SlotLabel:     s.catalog.Label(assignment.TimeSlotID),
			CoachID:       assignment.CoachID,
			CoachName:     s.coachName(ctx, coachNames, assignment.CoachID),
			ClientID:      assignment.ClientID,
			ClientName:    s.clientName(ctx, clientNames, assignment.ClientID),
			CreatedVia:    assignment.CreatedVia,
			Justification: assignment.Justification,
		})
	}
	return copied, nil
}

// BuildPastePreview re-validates every snapshotted assignment against each
// target date independently. Conflicts on one target date never affect
// another.
func (s *ReplicatorService) BuildPastePreview(ctx context.Context, req dto.PastePreviewRequest) ([]models.PastePreview, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid paste preview payload")
	}

	clients, err := s.clients.ListSchedulable(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load clients")
	}
	clientsByID := make(map[string]models.Client, len(clients))
	for _, client := range clients {
		clientsByID[client.ID] = client
	}

	previews := make([]models.PastePreview, 0, len(req.TargetDates))
	for _, targetDate := range req.TargetDates {
		preview, err := s.previewForDate(ctx, req.Copied, targetDate, clientsByID)
		if err != nil {
			return nil, err
		}
		previews = append(previews, preview)
	}
	return previews, nil
}

func (s *ReplicatorService) previewForDate(ctx context.Context, copied models.CopiedSchedule, targetDate string, clientsByID map[string]models.Client) (models.PastePreview, error) {
	preview := models.PastePreview{Date: targetDate}

	weekday, err := Weekday(targetDate)
	if err != nil {
		return preview, err
	}
	existing, err := s.assignments.ListByDate(ctx, targetDate)
	if err != nil {
		return preview, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load target date assignments")
	}
	occupied := make(map[string]bool, len(existing))
	for _, assignment := range existing {
		occupied[assignment.TimeSlotID+"|"+assignment.ClientID] = true
	}

	for _, snapshot := range copied.Assignments {
		client, ok := clientsByID[snapshot.ClientID]
		if !ok {
			preview.Conflicts = append(preview.Conflicts, models.PasteConflict{Assignment: snapshot, Reason: "client no longer exists"})
			continue
		}
		if !client.WorksOn(weekday) {
			preview.Conflicts = append(preview.Conflicts, models.PasteConflict{Assignment: snapshot, Reason: "client does not work that weekday"})
			continue
		}
		if !client.HasSlot(snapshot.TimeSlotID) {
			preview.Conflicts = append(preview.Conflicts, models.PasteConflict{Assignment: snapshot, Reason: "slot is not in the client's available time slots"})
			continue
		}
		available, err := s.gate.IsAvailable(ctx, snapshot.CoachID, targetDate)
		if err != nil {
			return preview, err
		}
		if !available {
			preview.Conflicts = append(preview.Conflicts, models.PasteConflict{Assignment: snapshot, Reason: "coach unavailable"})
			continue
		}
		if occupied[snapshot.TimeSlotID+"|"+snapshot.ClientID] {
			preview.Conflicts = append(preview.Conflicts, models.PasteConflict{Assignment: snapshot, Reason: "client already scheduled at this slot on the target date"})
			continue
		}
		preview.ValidAssignments = append(preview.ValidAssignments, snapshot)
	}
	return preview, nil
}

// ApplyPaste creates every valid assignment across every previewed date. The
// batch is not transactional: an individual creation failure is logged and
// counted as a skip, and prior successes stay committed. Context cancellation
// stops further creations; what was already created remains.
func (s *ReplicatorService) ApplyPaste(ctx context.Context, req dto.ApplyPasteRequest) (*models.PasteOutcome, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid paste payload")
	}

	outcome := &models.PasteOutcome{}
	for _, preview := range req.Previews {
		outcome.Skipped += len(preview.Conflicts)
		for _, snapshot := range preview.ValidAssignments {
			if ctx.Err() != nil {
				outcome.Skipped++
				s.logger.Warn("paste aborted by caller",
					zap.String("date", preview.Date),
					zap.String("client_id", snapshot.ClientID),
				)
				continue
			}
			assignment := &models.Assignment{
				Date:          preview.Date,
				TimeSlotID:    snapshot.TimeSlotID,
				CoachID:       snapshot.CoachID,
				ClientID:      snapshot.ClientID,
				CreatedVia:    snapshot.CreatedVia,
				Justification: snapshot.Justification,
			}
			if assignment.CreatedVia == "" {
				assignment.CreatedVia = models.CreatedViaNormal
			}
			if err := s.assignments.Create(ctx, assignment); err != nil {
				outcome.Skipped++
				if s.metrics != nil {
					s.metrics.CountPasteResult("skipped")
				}
				s.logger.Warn("paste creation failed",
					zap.String("date", preview.Date),
					zap.String("time_slot_id", snapshot.TimeSlotID),
					zap.String("client_id", snapshot.ClientID),
					zap.Error(err),
				)
				continue
			}
			outcome.Succeeded = append(outcome.Succeeded, *assignment)
			if s.metrics != nil {
				s.metrics.CountPasteResult("created")
			}
		}
		if s.cache != nil {
			s.cache.InvalidateBoard(ctx, preview.Date)
		}
	}
	return outcome, nil
}

func (s *ReplicatorService) clientName(ctx context.Context, cache map[string]string, id string) string {
	if name, ok := cache[id]; ok {
		return name
	}
	name := id
	client, err := s.clients.FindByID(ctx, id)
	if err == nil {
		name = client.FullName
	} else if !errors.Is(err, sql.ErrNoRows) {
		s.logger.Warn("failed to resolve client name", zap.String("client_id", id), zap.Error(err))
	}
	cache[id] = name
	return name
}

func (s *ReplicatorService) coachName(ctx context.Context, cache map[string]string, id string) string {
	if name, ok := cache[id]; ok {
		return name
	}
	name := id
	coach, err := s.coaches.FindByID(ctx, id)
	if err == nil {
		name = coach.FullName
	} else if !errors.Is(err, sql.ErrNoRows) {
		s.logger.Warn("failed to resolve coach name", zap.String("coach_id", id), zap.Error(err))
	}
	cache[id] = name
	return name
}
