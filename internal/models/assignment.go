package models

import "time"

// CreatedVia distinguishes normal bookings from special-scheduling ones.
const (
	CreatedViaNormal  = "normal"
	CreatedViaSpecial = "special"
)

// SpecialKind classifies how a candidate booking relates to the client's
// normal availability envelope.
type SpecialKind string

const (
	SpecialNone     SpecialKind = "normal"
	SpecialOffDay   SpecialKind = "off-day"
	SpecialEarly    SpecialKind = "early"
	SpecialExtended SpecialKind = "extended"
	SpecialWeekend  SpecialKind = "weekend"
)

// Requires reports whether the classification demands a justification.
func (k SpecialKind) Requires() bool {
	return k != SpecialNone
}

// Assignment is a committed booking of one client to one coach in one slot on
// one date. No two assignments may share (date, time slot, client); a coach
// may hold several clients in the same slot.
type Assignment struct {
	ID            string    `db:"id" json:"id"`
	Date          string    `db:"session_date" json:"date"`
	TimeSlotID    string    `db:"time_slot_id" json:"time_slot_id"`
	CoachID       string    `db:"coach_id" json:"coach_id"`
	ClientID      string    `db:"client_id" json:"client_id"`
	CreatedVia    string    `db:"created_via" json:"created_via"`
	Justification string    `db:"justification" json:"justification,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// AssignmentFilter describes query params for listing assignments.
type AssignmentFilter struct {
	Date       string
	ClientID   string
	CoachID    string
	TimeSlotID string
}
