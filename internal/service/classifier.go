package service

import (
	"fmt"

	"github.com/scottwatt/ITGportal-sub000/internal/models"
	appErrors "github.com/scottwatt/ITGportal-sub000/pkg/errors"
)

// Classify decides whether a candidate (date, slot, client) combination falls
// outside the client's normal pattern. Rules are evaluated in order; weekend
// dominates everything, including the client's working days. Any non-normal
// result requires a justification and relaxes only the slot-membership rule.
func Classify(catalog *SlotCatalog, date, timeSlotID string, client models.Client) (models.SpecialKind, error) {
	weekday, err := Weekday(date)
	if err != nil {
		return models.SpecialNone, err
	}
	slot, ok := catalog.Find(timeSlotID)
	if !ok {
		return models.SpecialNone, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown time slot %q", timeSlotID))
	}

	switch {
	case slot.Category == models.SlotCategoryWeekend || IsWeekendDay(weekday):
		return models.SpecialWeekend, nil
	case slot.Category == models.SlotCategoryEarly:
		return models.SpecialEarly, nil
	case slot.Category == models.SlotCategoryExtended:
		return models.SpecialExtended, nil
	case !client.WorksOn(weekday):
		return models.SpecialOffDay, nil
	default:
		return models.SpecialNone, nil
	}
}
