package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/scottwatt/ITGportal-sub000/internal/models"
	appErrors "github.com/scottwatt/ITGportal-sub000/pkg/errors"
)

// CoachAvailabilityGate answers whether a coach may be booked on a date. The
// engine treats the gate as authoritative; even special scheduling cannot
// override an unavailable coach.
type CoachAvailabilityGate interface {
	IsAvailable(ctx context.Context, coachID, date string) (bool, error)
	StatusAndReason(ctx context.Context, coachID, date string) (models.CoachDayStatus, error)
}

type coachStatusReader interface {
	FindDayStatus(ctx context.Context, coachID, date string) (*models.CoachDayStatus, error)
}

// CoachGate is the repository-backed gate. A date without a status record
// means the coach is available.
type CoachGate struct {
	statuses coachStatusReader
}

// NewCoachGate wires the gate to its status source.
func NewCoachGate(statuses coachStatusReader) *CoachGate {
	return &CoachGate{statuses: statuses}
}

// StatusAndReason returns the recorded status for the coach and date.
func (g *CoachGate) StatusAndReason(ctx context.Context, coachID, date string) (models.CoachDayStatus, error) {
	status, err := g.statuses.FindDayStatus(ctx, coachID, date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CoachDayStatus{CoachID: coachID, Date: date, Status: models.CoachStatusAvailable}, nil
		}
		return models.CoachDayStatus{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load coach day status")
	}
	return *status, nil
}

// IsAvailable reports whether the coach may be booked on the date.
func (g *CoachGate) IsAvailable(ctx context.Context, coachID, date string) (bool, error) {
	status, err := g.StatusAndReason(ctx, coachID, date)
	if err != nil {
		return false, err
	}
	return status.Available(), nil
}
