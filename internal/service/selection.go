package service

// SlotSelection is the explicit click-to-book state: idle, or one client
// selected. Callers pass the value between calls instead of keeping ambient
// UI state; the zero value is idle.
type SlotSelection struct {
	ClientID string `json:"client_id,omitempty"`
}

// IsIdle reports whether no client is selected.
func (s SlotSelection) IsIdle() bool {
	return s.ClientID == ""
}

// Select transitions the selection. Selecting the currently selected client
// toggles back to idle; selecting a different client switches the selection
// without booking anything.
func (s SlotSelection) Select(clientID string) SlotSelection {
	if s.ClientID == clientID {
		return SlotSelection{}
	}
	return SlotSelection{ClientID: clientID}
}

// Clear returns the idle state; booking attempts end here on both success and
// rejection.
func (s SlotSelection) Clear() SlotSelection {
	return SlotSelection{}
}
