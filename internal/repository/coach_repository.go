package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/scottwatt/ITGportal-sub000/internal/models"
)

const coachColumns = "id, full_name, coach_type, active, created_at, updated_at"

// CoachRepository provides access to coaches and their per-date statuses.
type CoachRepository struct {
	db *sqlx.DB
}

// NewCoachRepository creates a new coach repository.
func NewCoachRepository(db *sqlx.DB) *CoachRepository {
	return &CoachRepository{db: db}
}

// ListActive returns active coaches ordered by name.
func (r *CoachRepository) ListActive(ctx context.Context) ([]models.Coach, error) {
	query := fmt.Sprintf("SELECT %s FROM coaches WHERE active = TRUE ORDER BY full_name ASC", coachColumns)
	var coaches []models.Coach
	if err := r.db.SelectContext(ctx, &coaches, query); err != nil {
		return nil, fmt.Errorf("list active coaches: %w", err)
	}
	return coaches, nil
}

// FindByID loads a coach by id.
func (r *CoachRepository) FindByID(ctx context.Context, id string) (*models.Coach, error) {
	query := fmt.Sprintf("SELECT %s FROM coaches WHERE id = $1", coachColumns)
	var coach models.Coach
	if err := r.db.GetContext(ctx, &coach, query, id); err != nil {
		return nil, err
	}
	return &coach, nil
}

// FindDayStatus returns the availability record for a coach on a date.
// Absence of a record (sql.ErrNoRows) means the coach is available.
func (r *CoachRepository) FindDayStatus(ctx context.Context, coachID, date string) (*models.CoachDayStatus, error) {
	const query = `SELECT id, coach_id, status_date, status, reason, created_at FROM coach_day_statuses WHERE coach_id = $1 AND status_date = $2`
	var status models.CoachDayStatus
	if err := r.db.GetContext(ctx, &status, query, coachID, date); err != nil {
		return nil, err
	}
	return &status, nil
}

// UpsertDayStatus records or replaces a coach's status for a date.
func (r *CoachRepository) UpsertDayStatus(ctx context.Context, status *models.CoachDayStatus) error {
	if status.ID == "" {
		status.ID = uuid.NewString()
	}
	status.CreatedAt = time.Now().UTC()
	const query = `INSERT INTO coach_day_statuses (id, coach_id, status_date, status, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (coach_id, status_date) DO UPDATE SET status = EXCLUDED.status, reason = EXCLUDED.reason`
	if _, err := r.db.ExecContext(ctx, query, status.ID, status.CoachID, status.Date, status.Status, status.Reason, status.CreatedAt); err != nil {
		return fmt.Errorf("upsert coach day status: %w", err)
	}
	return nil
}
