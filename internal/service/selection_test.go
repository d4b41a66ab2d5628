package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotSelection(t *testing.T) {
	var sel SlotSelection
	assert.True(t, sel.IsIdle())

	sel = sel.Select("c1")
	assert.False(t, sel.IsIdle())
	assert.Equal(t, "c1", sel.ClientID)

	// Selecting the same client again toggles back to idle.
	sel = sel.Select("c1")
	assert.True(t, sel.IsIdle())

	// Selecting a different client switches without going through idle.
	sel = sel.Select("c1").Select("c2")
	assert.Equal(t, "c2", sel.ClientID)

	assert.True(t, sel.Clear().IsIdle())
}
