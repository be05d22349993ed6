package schedule

import (
	"fmt"

	"github.com/thenoetrevino/weekboard/internal/models"
)

// Filter narrows the visible events by type
type Filter string

const (
	FilterAll    Filter = "all"
	FilterCourse Filter = "course"
	FilterEvent  Filter = "event"
	FilterDayOff Filter = "dayoff"
)

// Filters lists the filters in cycling order
var Filters = []Filter{FilterAll, FilterCourse, FilterEvent, FilterDayOff}

// ParseFilter converts a flag value into a Filter; empty means all
func ParseFilter(s string) (Filter, error) {
	switch f := Filter(s); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterCourse, FilterEvent, FilterDayOff:
		return f, nil
	}
	return "", fmt.Errorf("unknown filter %q (want all, course, event or dayoff)", s)
}

// Matches reports whether e is visible under f
func (f Filter) Matches(e models.Event) bool {
	switch f {
	case FilterAll, "":
		return true
	case FilterCourse:
		return e.Type == models.EventTypeCourse
	case FilterEvent:
		return e.Type == models.EventTypeEvent
	case FilterDayOff:
		return e.Type == models.EventTypeDayOff
	}
	return false
}

// Next returns the following filter in cycling order
func (f Filter) Next() Filter {
	for i, candidate := range Filters {
		if candidate == f {
			return Filters[(i+1)%len(Filters)]
		}
	}
	return FilterAll
}

// Label is the human-readable filter name
func (f Filter) Label() string {
	switch f {
	case FilterCourse:
		return "Course only"
	case FilterEvent:
		return "Event only"
	case FilterDayOff:
		return "Day off only"
	}
	return "All"
}
