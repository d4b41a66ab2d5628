package models

import "time"

// TrainingBooking is a training or walkthrough session occupying a whole time
// slot on a date. It blocks the slot for every client.
type TrainingBooking struct {
	ID         string    `db:"id" json:"id"`
	Date       string    `db:"session_date" json:"date"`
	TimeSlotID string    `db:"time_slot_id" json:"time_slot_id"`
	CoachID    string    `db:"coach_id" json:"coach_id"`
	Topic      string    `db:"topic" json:"topic"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
