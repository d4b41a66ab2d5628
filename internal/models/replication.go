package models

import "time"

// CopiedAssignment is an assignment snapshot denormalized with display labels
// so the paste preview can be rendered without further lookups.
type CopiedAssignment struct {
	AssignmentID  string `json:"assignment_id"`
	TimeSlotID    string `json:"time_slot_id"`
	SlotLabel     string `json:"slot_label"`
	CoachID       string `json:"coach_id"`
	CoachName     string `json:"coach_name"`
	ClientID      string `json:"client_id"`
	ClientName    string `json:"client_name"`
	CreatedVia    string `json:"created_via"`
	Justification string `json:"justification,omitempty"`
}

// CopiedSchedule is the ephemeral snapshot of one day's assignments held for
// the duration of a copy/paste operation. It is never persisted.
type CopiedSchedule struct {
	SourceDate  string             `json:"source_date"`
	Assignments []CopiedAssignment `json:"assignments"`
	CopiedAt    time.Time          `json:"copied_at"`
}

// PasteConflict pairs a snapshotted assignment with the reason it cannot be
// recreated on the target date.
type PasteConflict struct {
	Assignment CopiedAssignment `json:"assignment"`
	Reason     string           `json:"reason"`
}

// PastePreview is the per-target-date validation result of a paste. Each
// target date is evaluated independently.
type PastePreview struct {
	Date             string             `json:"date"`
	ValidAssignments []CopiedAssignment `json:"valid_assignments"`
	Conflicts        []PasteConflict    `json:"conflicts"`
}

// PasteOutcome reports what a paste actually created. The operation is not
// transactional: failures are counted as skips and never roll back successes.
type PasteOutcome struct {
	Succeeded []Assignment `json:"succeeded"`
	Skipped   int          `json:"skipped"`
}
