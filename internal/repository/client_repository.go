package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/scottwatt/ITGportal-sub000/internal/models"
)

const clientColumns = "id, full_name, program, working_days, available_time_slots, active, created_at, updated_at"

// ClientRepository provides read access to schedulable client records.
type ClientRepository struct {
	db *sqlx.DB
}

// NewClientRepository creates a new client repository.
func NewClientRepository(db *sqlx.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// ListSchedulable returns active clients eligible for scheduling. Grace-program
// clients are filtered here so they never reach the engine.
func (r *ClientRepository) ListSchedulable(ctx context.Context) ([]models.Client, error) {
	query := fmt.Sprintf("SELECT %s FROM clients WHERE active = TRUE AND program <> $1 ORDER BY full_name ASC", clientColumns)
	var clients []models.Client
	if err := r.db.SelectContext(ctx, &clients, query, models.ProgramGrace); err != nil {
		return nil, fmt.Errorf("list schedulable clients: %w", err)
	}
	return clients, nil
}

// FindByID loads a client by id.
func (r *ClientRepository) FindByID(ctx context.Context, id string) (*models.Client, error) {
	query := fmt.Sprintf("SELECT %s FROM clients WHERE id = $1", clientColumns)
	var client models.Client
	if err := r.db.GetContext(ctx, &client, query, id); err != nil {
		return nil, err
	}
	return &client, nil
}
