package models

import "time"

// Session request statuses. Pending and approved requests both veto a
// competing booking; denied ones do not.
const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusDenied   = "denied"
)

// SessionRequest is a client-initiated ask for a slot that has not yet been
// converted into an assignment.
type SessionRequest struct {
	ID         string    `db:"id" json:"id"`
	Date       string    `db:"session_date" json:"date"`
	TimeSlotID string    `db:"time_slot_id" json:"time_slot_id"`
	ClientID   string    `db:"client_id" json:"client_id"`
	Status     string    `db:"status" json:"status"`
	Note       string    `db:"note" json:"note,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
