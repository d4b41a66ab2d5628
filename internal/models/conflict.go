package models

// ConflictSourceKind names the booking collection a conflict came from.
type ConflictSourceKind string

const (
	ConflictSourceAssignments ConflictSourceKind = "assignments"
	ConflictSourceTrainings   ConflictSourceKind = "trainings"
	ConflictSourceRequests    ConflictSourceKind = "requests"
)

// Conflict describes why a candidate (date, slot, client) tuple cannot be
// booked, with a reason suitable for direct display.
type Conflict struct {
	SourceKind ConflictSourceKind `json:"source_kind"`
	Reason     string             `json:"reason"`
}

// SlotCheck is the aggregate answer of the conflict checker for one tuple.
type SlotCheck struct {
	Date       string     `json:"date"`
	TimeSlotID string     `json:"time_slot_id"`
	Available  bool       `json:"available"`
	Conflicts  []Conflict `json:"conflicts"`
}
