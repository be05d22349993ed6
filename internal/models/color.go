package models

import (
	"strings"
	"unicode"
)

// ColorClass is the display category of a schedule event
type ColorClass int

const (
	ColorCourseC2 ColorClass = iota
	ColorCourseL1
	ColorCourseL2
	ColorCourseL3
	ColorCourseL4
	ColorCourseL5
	ColorCourseL6
	ColorCourseL7
	ColorCourseL8
	ColorCourseL9
	ColorCourseL10
	ColorEvent
	ColorDayOff
)

// DefaultCourseColor is used for courses whose code is not in the catalog
const DefaultCourseColor = ColorCourseC2

// CourseCode is the prefix of a course title identifying its track (e.g. "L3")
type CourseCode string

// courseCodes is the known course catalog
var courseCodes = map[CourseCode]ColorClass{
	"C2":  ColorCourseC2,
	"L1":  ColorCourseL1,
	"L2":  ColorCourseL2,
	"L3":  ColorCourseL3,
	"L4":  ColorCourseL4,
	"L5":  ColorCourseL5,
	"L6":  ColorCourseL6,
	"L7":  ColorCourseL7,
	"L8":  ColorCourseL8,
	"L9":  ColorCourseL9,
	"L10": ColorCourseL10,
}

func (c ColorClass) String() string {
	switch c {
	case ColorEvent:
		return "event"
	case ColorDayOff:
		return "dayoff"
	}
	for code, class := range courseCodes {
		if class == c {
			return "course-" + string(code)
		}
	}
	return "unknown"
}

// CoursePrefix extracts the course code from a title: everything before the
// first ':' or whitespace.
func CoursePrefix(title string) CourseCode {
	title = strings.TrimSpace(title)
	if i := strings.IndexFunc(title, func(r rune) bool {
		return r == ':' || unicode.IsSpace(r)
	}); i >= 0 {
		title = title[:i]
	}
	return CourseCode(title)
}

// ColorClassFor maps an event to its display category
func ColorClassFor(e Event) ColorClass {
	switch e.Type {
	case EventTypeEvent:
		return ColorEvent
	case EventTypeDayOff:
		return ColorDayOff
	case EventTypeCourse:
		if class, ok := courseCodes[CoursePrefix(e.Title)]; ok {
			return class
		}
		return DefaultCourseColor
	}
	return DefaultCourseColor
}
