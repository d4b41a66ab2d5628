package models

import (
	"time"

	"github.com/lib/pq"
)

// Program identifies which ITG program a client is enrolled in. Grace-program
// clients are not schedulable and never reach the engine.
const (
	ProgramLimitless = "limitless"
	ProgramNewOption = "new-options"
	ProgramBridges   = "bridges"
	ProgramGrace     = "grace"
)

// Client is a program participant with a normal availability envelope of
// working weekdays and bookable time slots.
type Client struct {
	ID                 string         `db:"id" json:"id"`
	FullName           string         `db:"full_name" json:"full_name"`
	Program            string         `db:"program" json:"program"`
	WorkingDays        pq.StringArray `db:"working_days" json:"working_days"`
	AvailableTimeSlots pq.StringArray `db:"available_time_slots" json:"available_time_slots"`
	Active             bool           `db:"active" json:"active"`
	CreatedAt          time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at" json:"updated_at"`
}

// WorksOn reports whether the weekday is part of the client's normal pattern.
func (c Client) WorksOn(weekday string) bool {
	for _, day := range c.WorkingDays {
		if day == weekday {
			return true
		}
	}
	return false
}

// HasSlot reports whether the slot belongs to the client's configured set.
func (c Client) HasSlot(timeSlotID string) bool {
	for _, id := range c.AvailableTimeSlots {
		if id == timeSlotID {
			return true
		}
	}
	return false
}

// ClientAvailability summarises how booked a client is on a given date.
type ClientAvailability struct {
	ClientID         string `json:"client_id"`
	Date             string `json:"date"`
	TotalSlots       int    `json:"total_slots"`
	ScheduledSlots   int    `json:"scheduled_slots"`
	AvailableSlots   int    `json:"available_slots"`
	IsFullyScheduled bool   `json:"is_fully_scheduled"`
}
