package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/scottwatt/ITGportal-sub000/internal/dto"
	"github.com/scottwatt/ITGportal-sub000/internal/models"
	appErrors "github.com/scottwatt/ITGportal-sub000/pkg/errors"
)

type coachStore interface {
	ListActive(ctx context.Context) ([]models.Coach, error)
	UpsertDayStatus(ctx context.Context, status *models.CoachDayStatus) error
}

// CoachService manages the per-date coach statuses consulted by the
// availability gate.
type CoachService struct {
	coaches coachStore
	cache   *CacheService
	logger  *zap.Logger
}

// NewCoachService wires the coach status manager.
func NewCoachService(coaches coachStore, cache *CacheService, logger *zap.Logger) *CoachService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CoachService{coaches: coaches, cache: cache, logger: logger}
}

// ListActive returns the bookable coach roster.
func (s *CoachService) ListActive(ctx context.Context) ([]models.Coach, error) {
	coaches, err := s.coaches.ListActive(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load coaches")
	}
	return coaches, nil
}

// SetDayStatus records a coach's availability for one date. Marking a date
// unavailable invalidates that date's cached board.
func (s *CoachService) SetDayStatus(ctx context.Context, coachID string, req dto.SetCoachAvailabilityRequest) (*models.CoachDayStatus, error) {
	if coachID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "coach id is required")
	}
	if _, err := Weekday(req.Date); err != nil {
		return nil, err
	}
	switch req.Status {
	case models.CoachStatusAvailable, models.CoachStatusUnavailable:
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown status %q", req.Status))
	}

	status := &models.CoachDayStatus{
		CoachID: coachID,
		Date:    req.Date,
		Status:  req.Status,
		Reason:  req.Reason,
	}
	if err := s.coaches.UpsertDayStatus(ctx, status); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store coach day status")
	}

	if s.cache != nil {
		s.cache.InvalidateBoard(ctx, req.Date)
	}
	s.logger.Info("coach day status updated",
		zap.String("coach_id", coachID),
		zap.String("date", req.Date),
		zap.String("status", req.Status),
	)
	return status, nil
}
