package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/scottwatt/ITGportal-sub000/internal/models"
)

const assignmentColumns = "id, session_date, time_slot_id, coach_id, client_id, created_via, justification, created_at"

// AssignmentRepository provides persistence for session assignments.
type AssignmentRepository struct {
	db *sqlx.DB
}

// NewAssignmentRepository creates a new assignment repository.
func NewAssignmentRepository(db *sqlx.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// List returns assignments matching the filter, ordered by slot then client.
func (r *AssignmentRepository) List(ctx context.Context, filter models.AssignmentFilter) ([]models.Assignment, error) {
	base := fmt.Sprintf("SELECT %s FROM assignments WHERE 1=1", assignmentColumns)
	var conditions []string
	var args []interface{}

	if filter.Date != "" {
		conditions = append(conditions, fmt.Sprintf("session_date = $%d", len(args)+1))
		args = append(args, filter.Date)
	}
	if filter.ClientID != "" {
		conditions = append(conditions, fmt.Sprintf("client_id = $%d", len(args)+1))
		args = append(args, filter.ClientID)
	}
	if filter.CoachID != "" {
		conditions = append(conditions, fmt.Sprintf("coach_id = $%d", len(args)+1))
		args = append(args, filter.CoachID)
	}
	if filter.TimeSlotID != "" {
		conditions = append(conditions, fmt.Sprintf("time_slot_id = $%d", len(args)+1))
		args = append(args, filter.TimeSlotID)
	}

	query := base
	if len(conditions) > 0 {
		query += " AND " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY time_slot_id ASC, client_id ASC"

	var assignments []models.Assignment
	if err := r.db.SelectContext(ctx, &assignments, query, args...); err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return assignments, nil
}

// ListByDate returns every assignment on a date.
func (r *AssignmentRepository) ListByDate(ctx context.Context, date string) ([]models.Assignment, error) {
	return r.List(ctx, models.AssignmentFilter{Date: date})
}

// ListForSlot returns assignments occupying a (date, slot) tuple.
func (r *AssignmentRepository) ListForSlot(ctx context.Context, date, timeSlotID string) ([]models.Assignment, error) {
	query := fmt.Sprintf("SELECT %s FROM assignments WHERE session_date = $1 AND time_slot_id = $2", assignmentColumns)
	var assignments []models.Assignment
	if err := r.db.SelectContext(ctx, &assignments, query, date, timeSlotID); err != nil {
		return nil, fmt.Errorf("list assignments for slot: %w", err)
	}
	return assignments, nil
}

// ExistsFor reports whether the client already holds the (date, slot) tuple.
func (r *AssignmentRepository) ExistsFor(ctx context.Context, date, timeSlotID, clientID string) (bool, error) {
	const query = `SELECT 1 FROM assignments WHERE session_date = $1 AND time_slot_id = $2 AND client_id = $3 LIMIT 1`
	var one int
	err := r.db.GetContext(ctx, &one, query, date, timeSlotID, clientID)
	if err != nil {
		if isNoRows(err) {
			return false, nil
		}
		return false, fmt.Errorf("check assignment existence: %w", err)
	}
	return true, nil
}

// Create inserts a new assignment, assigning id and timestamp.
func (r *AssignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	if assignment.ID == "" {
		assignment.ID = uuid.NewString()
	}
	assignment.CreatedAt = time.Now().UTC()
	const query = `INSERT INTO assignments (id, session_date, time_slot_id, coach_id, client_id, created_via, justification, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := r.db.ExecContext(ctx, query,
		assignment.ID,
		assignment.Date,
		assignment.TimeSlotID,
		assignment.CoachID,
		assignment.ClientID,
		assignment.CreatedVia,
		assignment.Justification,
		assignment.CreatedAt,
	); err != nil {
		return fmt.Errorf("create assignment: %w", err)
	}
	return nil
}

// Delete removes an assignment. Deleting a missing id is a no-op; the
// unassign operation is idempotent.
func (r *AssignmentRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM assignments WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}
	return nil
}
