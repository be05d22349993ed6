package cli

import (
	"fmt"

	"github.com/thenoetrevino/weekboard/internal/models"
)

// EventView is the JSON shape of an event in command output
type EventView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type"`
	Day         int    `json:"day"`
	DayName     string `json:"day_name"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	ColorClass  string `json:"color_class"`
}

// NewEventView converts an event for output
func NewEventView(e models.Event) EventView {
	return EventView{
		ID:          e.ID.String(),
		Title:       e.Title,
		Description: e.Description,
		Type:        string(e.Type),
		Day:         e.Day,
		DayName:     models.DayName(e.Day),
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		ColorClass:  models.ColorClassFor(e).String(),
	}
}

// GetID lets quiet mode print only the id
func (v EventView) GetID() string {
	return v.ID
}

func (v EventView) String() string {
	return fmt.Sprintf("%s %s-%s  %s [%s] (ID: %s)", v.DayName, v.StartTime, v.EndTime, v.Title, v.Type, v.ID)
}
