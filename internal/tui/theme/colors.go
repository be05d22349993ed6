package theme

import (
	"github.com/thenoetrevino/weekboard/internal/config/colors"
	"github.com/thenoetrevino/weekboard/internal/models"
)

// Colors holds the current theme colors, initialized by Init
var (
	Highlight        string
	Subtle           string
	Normal           string
	Title            string
	Create           string
	Edit             string
	Delete           string
	ColumnBg         string
	ColumnBorder     string
	CardBorder       string
	CardBg           string
	SelectedBorder   string
	SelectedBg       string
	DropTarget       string
	Lifted           string
	EventColor       string
	DayOff           string
	Weekend          string
	GridBorder       string
	InfoFg           string
	InfoBg           string
	WarningFg        string
	WarningBg        string
	ErrorFg          string
	ErrorBg          string
	StatusBarBg      string
	StatusBarText    string
	courses          map[string]string
	defaultCourseHex string
)

func init() {
	Init(*colors.Default())
}

// Init initializes the theme colors from the given color scheme
func Init(c colors.ColorScheme) {
	Highlight = c.Accent
	Subtle = c.Subtle
	Normal = c.Normal
	Title = c.Title
	Create = c.Create
	Edit = c.Edit
	Delete = c.Delete
	ColumnBg = c.ColumnBackground
	ColumnBorder = c.ColumnBorder
	CardBorder = c.CardBorder
	CardBg = c.CardBackground
	SelectedBorder = c.SelectedBorder
	SelectedBg = c.SelectedBg
	DropTarget = c.DropTarget
	Lifted = c.Lifted
	EventColor = c.EventColor
	DayOff = c.DayOff
	Weekend = c.Weekend
	GridBorder = c.GridBorder
	InfoFg = c.InfoFg
	InfoBg = c.InfoBg
	WarningFg = c.WarningFg
	WarningBg = c.WarningBg
	ErrorFg = c.ErrorFg
	ErrorBg = c.ErrorBg
	StatusBarBg = c.StatusBarBg
	StatusBarText = c.StatusBarText

	courses = make(map[string]string, len(c.Courses))
	for code, hex := range c.Courses {
		courses[code] = hex
	}
	defaultCourseHex = c.CourseColor("C2")
}

// EventHex returns the color of an event's display category
func EventHex(e models.Event) string {
	switch models.ColorClassFor(e) {
	case models.ColorEvent:
		return EventColor
	case models.ColorDayOff:
		return DayOff
	}
	if hex, ok := courses[string(models.CoursePrefix(e.Title))]; ok && hex != "" {
		return hex
	}
	return defaultCourseHex
}
