package models

// TimeSlot is one schedulable period of a day
type TimeSlot struct {
	StartTime string
	EndTime   string
	Label     string
}

// timeSlots is the fixed daily catalog. Not user-editable.
var timeSlots = [...]TimeSlot{
	{StartTime: "08:40", EndTime: "09:30", Label: "8:40 - 9:30"},
	{StartTime: "09:40", EndTime: "10:30", Label: "9:40 - 10:30"},
	{StartTime: "10:40", EndTime: "11:30", Label: "10:40 - 11:30"},
	{StartTime: "11:40", EndTime: "12:30", Label: "11:40 - 12:30"},
	{StartTime: "13:20", EndTime: "14:10", Label: "13:20 - 14:10"},
	{StartTime: "14:20", EndTime: "15:10", Label: "14:20 - 15:10"},
	{StartTime: "15:20", EndTime: "16:10", Label: "15:20 - 16:10"},
	{StartTime: "16:20", EndTime: "17:10", Label: "16:20 - 17:10"},
	{StartTime: "17:35", EndTime: "18:25", Label: "17:35 - 18:25"},
	{StartTime: "18:35", EndTime: "19:25", Label: "18:35 - 19:25"},
}

// TimeSlots returns a copy of the catalog in daily order
func TimeSlots() []TimeSlot {
	out := make([]TimeSlot, len(timeSlots))
	copy(out, timeSlots[:])
	return out
}

// SlotCount is the number of slots in a day
const SlotCount = len(timeSlots)

// SlotAt returns the slot at index i of the catalog
func SlotAt(i int) (TimeSlot, bool) {
	if i < 0 || i >= len(timeSlots) {
		return TimeSlot{}, false
	}
	return timeSlots[i], true
}

// SlotIndex returns the catalog index for the bounds, or -1 when they match no slot
func SlotIndex(startTime, endTime string) int {
	for i, s := range timeSlots {
		if s.StartTime == startTime && s.EndTime == endTime {
			return i
		}
	}
	return -1
}

// IsCatalogSlot reports whether slot is exactly one entry of the catalog
func IsCatalogSlot(slot TimeSlot) bool {
	return SlotIndex(slot.StartTime, slot.EndTime) >= 0
}

// ============================================================================
// DAYS
// ============================================================================

// DaysInWeek is the number of schedulable days, Monday first
const DaysInWeek = 7

var dayNames = [DaysInWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// DayName returns the short name of day (0 = Mon)
func DayName(day int) string {
	if !ValidDay(day) {
		return "?"
	}
	return dayNames[day]
}

// ValidDay reports whether day is within 0..6
func ValidDay(day int) bool {
	return day >= 0 && day < DaysInWeek
}

// IsWeekend reports whether day is Saturday or Sunday
func IsWeekend(day int) bool {
	return day >= 5 && day < DaysInWeek
}
