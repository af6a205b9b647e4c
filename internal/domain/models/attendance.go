package models

import (
	"fmt"
	"time"
)

// DateKeyLayout is the calendar key format used by the attendance history.
const DateKeyLayout = "2006-01-02"

// AttendanceEntry is one employee's recorded state for one day.
type AttendanceEntry struct {
	Status      AttendanceStatus `json:"status"`
	HoursWorked float64          `json:"hoursWorked"`
}

// AttendanceHistory maps a date key to the entries recorded that day, keyed by employee id.
type AttendanceHistory map[string]map[int]AttendanceEntry

// DateKey formats t as an attendance history key.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// DayKey builds the history key for a given day of a month.
func DayKey(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// Lookup returns the entry for an employee on a date, if any.
func (h AttendanceHistory) Lookup(dateKey string, employeeID int) (AttendanceEntry, bool) {
	day, ok := h[dateKey]
	if !ok {
		return AttendanceEntry{}, false
	}
	entry, ok := day[employeeID]
	return entry, ok
}

// Clone returns a deep copy of the history.
func (h AttendanceHistory) Clone() AttendanceHistory {
	out := make(AttendanceHistory, len(h))
	for key, day := range h {
		copied := make(map[int]AttendanceEntry, len(day))
		for id, entry := range day {
			copied[id] = entry
		}
		out[key] = copied
	}
	return out
}
