package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/scottwatt/ITGportal-sub000/internal/models"
)

// TrainingRepository reads training and walkthrough bookings.
type TrainingRepository struct {
	db *sqlx.DB
}

// NewTrainingRepository creates a new training repository.
func NewTrainingRepository(db *sqlx.DB) *TrainingRepository {
	return &TrainingRepository{db: db}
}

// ListForSlot returns trainings occupying a (date, slot) tuple.
func (r *TrainingRepository) ListForSlot(ctx context.Context, date, timeSlotID string) ([]models.TrainingBooking, error) {
	const query = `SELECT id, session_date, time_slot_id, coach_id, topic, created_at FROM training_bookings WHERE session_date = $1 AND time_slot_id = $2`
	var trainings []models.TrainingBooking
	if err := r.db.SelectContext(ctx, &trainings, query, date, timeSlotID); err != nil {
		return nil, fmt.Errorf("list trainings for slot: %w", err)
	}
	return trainings, nil
}

// SessionRequestRepository reads pending and approved session requests.
type SessionRequestRepository struct {
	db *sqlx.DB
}

// NewSessionRequestRepository creates a new session request repository.
func NewSessionRequestRepository(db *sqlx.DB) *SessionRequestRepository {
	return &SessionRequestRepository{db: db}
}

// ListActiveForSlot returns pending or approved requests for a (date, slot)
// tuple, excluding the candidate client's own requests when given.
func (r *SessionRequestRepository) ListActiveForSlot(ctx context.Context, date, timeSlotID, excludeClientID string) ([]models.SessionRequest, error) {
	query := `SELECT id, session_date, time_slot_id, client_id, status, note, created_at FROM session_requests
		WHERE session_date = $1 AND time_slot_id = $2 AND status IN ($3, $4)`
	args := []interface{}{date, timeSlotID, models.RequestStatusPending, models.RequestStatusApproved}
	if excludeClientID != "" {
		query += " AND client_id <> $5"
		args = append(args, excludeClientID)
	}
	var requests []models.SessionRequest
	if err := r.db.SelectContext(ctx, &requests, query, args...); err != nil {
		return nil, fmt.Errorf("list session requests for slot: %w", err)
	}
	return requests, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
