package service

import (
	"fmt"
	"time"

	"github.com/scottwatt/ITGportal-sub000/internal/models"
	appErrors "github.com/scottwatt/ITGportal-sub000/pkg/errors"
)

// DateLayout is the wire format for civil dates.
const DateLayout = "2006-01-02"

var weekdayNames = map[time.Weekday]string{
	time.Monday:    "MONDAY",
	time.Tuesday:   "TUESDAY",
	time.Wednesday: "WEDNESDAY",
	time.Thursday:  "THURSDAY",
	time.Friday:    "FRIDAY",
	time.Saturday:  "SATURDAY",
	time.Sunday:    "SUNDAY",
}

// Weekday derives the weekday name for a civil date. Every component that
// reasons about weekdays must go through this function: the date is parsed as
// a UTC civil date so the derivation can never drift with the host timezone.
func Weekday(date string) (string, error) {
	t, err := time.ParseInLocation(DateLayout, date, time.UTC)
	if err != nil {
		return "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date))
	}
	return weekdayNames[t.Weekday()], nil
}

// IsWeekendDay reports whether the weekday name is Saturday or Sunday.
func IsWeekendDay(weekday string) bool {
	return weekday == "SATURDAY" || weekday == "SUNDAY"
}

// SlotCatalog is the static set of bookable windows. Core slots form the
// default bookable set; every other category needs special scheduling.
type SlotCatalog struct {
	slots []models.TimeSlot
	byID  map[string]models.TimeSlot
}

// NewSlotCatalog builds a catalog from the given slots.
func NewSlotCatalog(slots []models.TimeSlot) *SlotCatalog {
	byID := make(map[string]models.TimeSlot, len(slots))
	for _, slot := range slots {
		byID[slot.ID] = slot
	}
	return &SlotCatalog{slots: slots, byID: byID}
}

// DefaultSlotCatalog returns the portal's fixed slot definitions.
func DefaultSlotCatalog() *SlotCatalog {
	return NewSlotCatalog([]models.TimeSlot{
		{ID: "8-10", Label: "8:00 AM - 10:00 AM", StartTime: "08:00", EndTime: "10:00", Category: models.SlotCategoryCore},
		{ID: "10-12", Label: "10:00 AM - 12:00 PM", StartTime: "10:00", EndTime: "12:00", Category: models.SlotCategoryCore},
		{ID: "13-15", Label: "1:00 PM - 3:00 PM", StartTime: "13:00", EndTime: "15:00", Category: models.SlotCategoryCore},
		{ID: "15-17", Label: "3:00 PM - 5:00 PM", StartTime: "15:00", EndTime: "17:00", Category: models.SlotCategoryCore},
		{ID: "7-8", Label: "7:00 AM - 8:00 AM (early)", StartTime: "07:00", EndTime: "08:00", Category: models.SlotCategoryEarly},
		{ID: "17-19", Label: "5:00 PM - 7:00 PM (extended)", StartTime: "17:00", EndTime: "19:00", Category: models.SlotCategoryExtended},
		{ID: "wk-9-12", Label: "9:00 AM - 12:00 PM (weekend)", StartTime: "09:00", EndTime: "12:00", Category: models.SlotCategoryWeekend},
		{ID: "wk-13-16", Label: "1:00 PM - 4:00 PM (weekend)", StartTime: "13:00", EndTime: "16:00", Category: models.SlotCategoryWeekend},
		{ID: "custom", Label: "Custom window", StartTime: "", EndTime: "", Category: models.SlotCategoryCustom},
	})
}

// Slots returns every catalog entry in declaration order.
func (c *SlotCatalog) Slots() []models.TimeSlot {
	out := make([]models.TimeSlot, len(c.slots))
	copy(out, c.slots)
	return out
}

// Find looks up a slot by id.
func (c *SlotCatalog) Find(id string) (models.TimeSlot, bool) {
	slot, ok := c.byID[id]
	return slot, ok
}

// Label returns the display label for a slot id, falling back to the id for
// unknown slots so denormalized snapshots stay renderable.
func (c *SlotCatalog) Label(id string) string {
	if slot, ok := c.byID[id]; ok {
		return slot.Label
	}
	return id
}

// CoreSlots returns the default bookable subset.
func (c *SlotCatalog) CoreSlots() []models.TimeSlot {
	var core []models.TimeSlot
	for _, slot := range c.slots {
		if slot.IsCore() {
			core = append(core, slot)
		}
	}
	return core
}
