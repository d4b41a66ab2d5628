package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/scottwatt/ITGportal-sub000/internal/dto"
	"github.com/scottwatt/ITGportal-sub000/internal/models"
	appErrors "github.com/scottwatt/ITGportal-sub000/pkg/errors"
)

type bookingClientReader interface {
	FindByID(ctx context.Context, id string) (*models.Client, error)
}

type bookingAssignmentStore interface {
	ExistsFor(ctx context.Context, date, timeSlotID, clientID string) (bool, error)
	Create(ctx context.Context, assignment *models.Assignment) error
	Delete(ctx context.Context, id string) error
}

type slotChecker interface {
	Check(ctx context.Context, date, timeSlotID, candidateClientID string) (models.SlotCheck, error)
}

// BookingService is the click-to-book engine: it validates a candidate
// booking against the slot catalog, the conflict checker, and the coach
// availability gate, then commits or rejects with a specific error kind.
type BookingService struct {
	clients     bookingClientReader
	assignments bookingAssignmentStore
	gate        CoachAvailabilityGate
	checker     slotChecker
	catalog     *SlotCatalog
	validator   *validator.Validate
	cache       *CacheService
	metrics     *MetricsService
	logger      *zap.Logger
}

// NewBookingService wires booking dependencies.
func NewBookingService(
	clients bookingClientReader,
	assignments bookingAssignmentStore,
	gate CoachAvailabilityGate,
	checker slotChecker,
	catalog *SlotCatalog,
	validate *validator.Validate,
	cache *CacheService,
	metrics *MetricsService,
	logger *zap.Logger,
) *BookingService {
	if validate == nil {
		validate = validator.New()
	}
	if catalog == nil {
		catalog = DefaultSlotCatalog()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BookingService{
		clients:     clients,
		assignments: assignments,
		gate:        gate,
		checker:     checker,
		catalog:     catalog,
		validator:   validate,
		cache:       cache,
		metrics:     metrics,
		logger:      logger,
	}
}

// Catalog exposes the slot catalog backing this engine.
func (s *BookingService) Catalog() *SlotCatalog {
	return s.catalog
}

// Classify previews how a candidate booking would be classified.
func (s *BookingService) Classify(ctx context.Context, query dto.ClassifyQuery) (*dto.ClassifyResponse, error) {
	if err := s.validator.Struct(query); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid classification query")
	}
	client, err := s.loadClient(ctx, query.ClientID)
	if err != nil {
		return nil, err
	}
	kind, err := Classify(s.catalog, query.Date, query.TimeSlotID, *client)
	if err != nil {
		return nil, err
	}
	return &dto.ClassifyResponse{Classification: kind, RequiresJustification: kind.Requires()}, nil
}

// BookSlot runs the full validation chain and creates the assignment. The
// rejection reasons stay distinguishable: wrong slot, missing justification,
// coach unavailable, duplicate booking, and blocked slot each carry their own
// error code.
func (s *BookingService) BookSlot(ctx context.Context, req dto.BookSlotRequest) (*dto.BookSlotResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid booking payload")
	}

	client, err := s.loadClient(ctx, req.ClientID)
	if err != nil {
		s.countRejection(appErrors.ErrClientNotFound.Code)
		return nil, err
	}

	kind, err := Classify(s.catalog, req.Date, req.TimeSlotID, *client)
	if err != nil {
		return nil, err
	}

	if kind == models.SpecialNone {
		if !client.HasSlot(req.TimeSlotID) {
			s.countRejection(appErrors.ErrSlotNotAvailable.Code)
			return nil, appErrors.Clone(appErrors.ErrSlotNotAvailable,
				fmt.Sprintf("%s is not in the client's available time slots", s.catalog.Label(req.TimeSlotID)))
		}
	} else if strings.TrimSpace(req.Justification) == "" {
		s.countRejection(appErrors.ErrMissingJustification.Code)
		return nil, appErrors.Clone(appErrors.ErrMissingJustification,
			fmt.Sprintf("%s scheduling requires a justification", kind))
	}

	status, err := s.gate.StatusAndReason(ctx, req.CoachID, req.Date)
	if err != nil {
		return nil, err
	}
	if !status.Available() {
		s.countRejection(appErrors.ErrCoachUnavailable.Code)
		message := "coach is unavailable on this date"
		if status.Reason != "" {
			message = fmt.Sprintf("coach is unavailable on this date: %s", status.Reason)
		}
		return nil, appErrors.Clone(appErrors.ErrCoachUnavailable, message)
	}

	exists, err := s.assignments.ExistsFor(ctx, req.Date, req.TimeSlotID, req.ClientID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check for duplicate assignment")
	}
	if exists {
		s.countRejection(appErrors.ErrDuplicateAssignment.Code)
		return nil, appErrors.ErrDuplicateAssignment
	}

	check, err := s.checker.Check(ctx, req.Date, req.TimeSlotID, req.ClientID)
	if err != nil {
		return nil, err
	}
	if !check.Available {
		s.countRejection(appErrors.ErrSlotBlocked.Code)
		reasons := make([]string, 0, len(check.Conflicts))
		for _, conflict := range check.Conflicts {
			reasons = append(reasons, conflict.Reason)
		}
		return nil, appErrors.Clone(appErrors.ErrSlotBlocked, strings.Join(reasons, "; "))
	}

	createdVia := models.CreatedViaNormal
	justification := ""
	if kind.Requires() {
		createdVia = models.CreatedViaSpecial
		justification = strings.TrimSpace(req.Justification)
	}
	assignment := &models.Assignment{
		Date:          req.Date,
		TimeSlotID:    req.TimeSlotID,
		CoachID:       req.CoachID,
		ClientID:      req.ClientID,
		CreatedVia:    createdVia,
		Justification: justification,
	}
	if err := s.assignments.Create(ctx, assignment); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create assignment")
	}

	if s.metrics != nil {
		s.metrics.CountAssignmentCreated(createdVia)
	}
	if s.cache != nil {
		s.cache.InvalidateBoard(ctx, req.Date)
	}
	s.logger.Info("assignment created",
		zap.String("assignment_id", assignment.ID),
		zap.String("date", assignment.Date),
		zap.String("time_slot_id", assignment.TimeSlotID),
		zap.String("client_id", assignment.ClientID),
		zap.String("coach_id", assignment.CoachID),
		zap.String("created_via", createdVia),
	)
	return &dto.BookSlotResponse{Assignment: *assignment, Classification: kind}, nil
}

// RemoveAssignment unconditionally removes an assignment. Removing an id
// that no longer exists succeeds; the operation is idempotent.
func (s *BookingService) RemoveAssignment(ctx context.Context, id string) error {
	if id == "" {
		return appErrors.Clone(appErrors.ErrValidation, "assignment id is required")
	}
	if err := s.assignments.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to remove assignment")
	}
	if s.cache != nil {
		s.cache.InvalidateAllBoards(ctx)
	}
	return nil
}

func (s *BookingService) loadClient(ctx context.Context, id string) (*models.Client, error) {
	client, err := s.clients.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrClientNotFound
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load client")
	}
	return client, nil
}

func (s *BookingService) countRejection(code string) {
	if s.metrics != nil {
		s.metrics.CountBookingRejected(code)
	}
}
