package models

// SlotCategory tags a time slot as part of the core bookable set or one of
// the special windows that require a justification to book.
type SlotCategory string

const (
	SlotCategoryCore     SlotCategory = "core"
	SlotCategoryEarly    SlotCategory = "early"
	SlotCategoryExtended SlotCategory = "extended"
	SlotCategoryWeekend  SlotCategory = "weekend"
	SlotCategoryCustom   SlotCategory = "custom"
)

// TimeSlot is an immutable catalog entry describing a bookable window.
type TimeSlot struct {
	ID        string       `json:"id"`
	Label     string       `json:"label"`
	StartTime string       `json:"start_time"`
	EndTime   string       `json:"end_time"`
	Category  SlotCategory `json:"category"`
}

// IsCore reports whether the slot belongs to the default bookable set.
func (s TimeSlot) IsCore() bool {
	return s.Category == SlotCategoryCore
}
