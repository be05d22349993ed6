package state

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/weekboard/internal/models"
	"github.com/thenoetrevino/weekboard/internal/types"
)

// FormState holds the active huh form and the values its fields are bound to.
// Only one form or confirmation is open at a time.
type FormState struct {
	Form *huh.Form

	// Column form (add / rename)
	ColumnTitle     string
	EditingColumnID types.ColumnID

	// Card form
	CardContent string

	// Event form
	EventTitle       string
	EventDescription string
	EventType        models.EventType

	// Delete confirmations
	PendingColumn  types.ColumnID
	PendingCard    types.CardID
	PendingEventID types.EventID
}

// NewFormState creates an empty FormState
func NewFormState() *FormState {
	return &FormState{EventType: models.EventTypeEvent}
}

// Reset drops the form and clears every bound value
func (s *FormState) Reset() {
	*s = FormState{EventType: models.EventTypeEvent}
}
