package models

import "time"

// Coach is a staff member who holds one-on-one sessions with clients.
type Coach struct {
	ID        string    `db:"id" json:"id"`
	FullName  string    `db:"full_name" json:"full_name"`
	CoachType string    `db:"coach_type" json:"coach_type"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Coach day availability statuses.
const (
	CoachStatusAvailable   = "available"
	CoachStatusUnavailable = "unavailable"
)

// CoachDayStatus is the per-coach, per-date availability record consulted
// before any assignment. Dates without a record mean available.
type CoachDayStatus struct {
	ID        string    `db:"id" json:"id"`
	CoachID   string    `db:"coach_id" json:"coach_id"`
	Date      string    `db:"status_date" json:"date"`
	Status    string    `db:"status" json:"status"`
	Reason    string    `db:"reason" json:"reason,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Available reports whether the status permits booking.
func (s CoachDayStatus) Available() bool {
	return s.Status != CoachStatusUnavailable
}
