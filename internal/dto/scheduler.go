package dto

import "github.com/scottwatt/ITGportal-sub000/internal/models"

// BookSlotRequest asks the engine to create an assignment. Justification is
// only required when the booking classifies as special.
type BookSlotRequest struct {
	Date          string `json:"date" validate:"required,datetime=2006-01-02"`
	TimeSlotID    string `json:"timeSlotId" validate:"required"`
	CoachID       string `json:"coachId" validate:"required"`
	ClientID      string `json:"clientId" validate:"required"`
	Justification string `json:"justification"`
}

// BookSlotResponse returns the created assignment and how it was classified.
type BookSlotResponse struct {
	Assignment     models.Assignment  `json:"assignment"`
	Classification models.SpecialKind `json:"classification"`
}

// ClassifyQuery previews how a candidate booking would classify.
type ClassifyQuery struct {
	Date       string `form:"date" validate:"required,datetime=2006-01-02"`
	ClientID   string `form:"clientId" validate:"required"`
	TimeSlotID string `form:"slotId" validate:"required"`
}

// ClassifyResponse reports the classification for a candidate booking.
type ClassifyResponse struct {
	Classification        models.SpecialKind `json:"classification"`
	RequiresJustification bool               `json:"requires_justification"`
}

// DayBoardEntry is one client's availability line on the day board.
type DayBoardEntry struct {
	Client       models.Client             `json:"client"`
	Availability models.ClientAvailability `json:"availability"`
}

// DayBoardResponse is the computed scheduling board for one date.
type DayBoardResponse struct {
	Date        string              `json:"date"`
	Weekday     string              `json:"weekday"`
	Entries     []DayBoardEntry     `json:"entries"`
	Assignments []models.Assignment `json:"assignments"`
}

// PastePreviewRequest validates a copied day against target dates.
type PastePreviewRequest struct {
	Copied      models.CopiedSchedule `json:"copied" validate:"required"`
	TargetDates []string              `json:"targetDates" validate:"required,min=1,dive,datetime=2006-01-02"`
}

// ApplyPasteRequest applies previously previewed paste results.
type ApplyPasteRequest struct {
	Previews []models.PastePreview `json:"previews" validate:"required,min=1"`
}

// CreateExportJobRequest queues a background day-plan export.
type CreateExportJobRequest struct {
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Format string `json:"format" validate:"omitempty,oneof=csv pdf"`
}

// SetCoachAvailabilityRequest records a coach's status for a single date.
type SetCoachAvailabilityRequest struct {
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Status string `json:"status" validate:"required,oneof=available unavailable"`
	Reason string `json:"reason"`
}
