package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scottwatt/ITGportal-sub000/internal/models"
)

func TestWeekday(t *testing.T) {
	cases := []struct {
		date     string
		expected string
	}{
		{"2025-03-10", "MONDAY"},
		{"2025-03-14", "FRIDAY"},
		{"2025-03-15", "SATURDAY"},
		{"2025-03-16", "SUNDAY"},
		{"2024-02-29", "THURSDAY"},
	}
	for _, tc := range cases {
		weekday, err := Weekday(tc.date)
		require.NoError(t, err, tc.date)
		assert.Equal(t, tc.expected, weekday, tc.date)
	}
}

func TestWeekdayRejectsMalformedDates(t *testing.T) {
	for _, date := range []string{"", "15-03-2025", "2025-3-10", "2025-03-10T00:00:00Z", "not-a-date"} {
		_, err := Weekday(date)
		assert.Error(t, err, date)
	}
}

func TestIsWeekendDay(t *testing.T) {
	assert.True(t, IsWeekendDay("SATURDAY"))
	assert.True(t, IsWeekendDay("SUNDAY"))
	assert.False(t, IsWeekendDay("MONDAY"))
	assert.False(t, IsWeekendDay("saturday"))
}

func TestDefaultSlotCatalog(t *testing.T) {
	catalog := DefaultSlotCatalog()

	core := catalog.CoreSlots()
	require.Len(t, core, 4)
	for _, slot := range core {
		assert.Equal(t, models.SlotCategoryCore, slot.Category)
	}

	slot, ok := catalog.Find("7-8")
	require.True(t, ok)
	assert.Equal(t, models.SlotCategoryEarly, slot.Category)

	_, ok = catalog.Find("23-24")
	assert.False(t, ok)

	assert.Equal(t, "8:00 AM - 10:00 AM", catalog.Label("8-10"))
	// Unknown ids fall back to the raw id so messages stay renderable.
	assert.Equal(t, "23-24", catalog.Label("23-24"))
}
