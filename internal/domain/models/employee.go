package models

import "github.com/shopspring/decimal"

// AttendanceStatus is the daily presence state of an employee.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
)

// FullDayHours is the number of hours credited when an employee is marked present.
const FullDayHours = 8

// Toggled returns the opposite status.
func (s AttendanceStatus) Toggled() AttendanceStatus {
	if s == StatusPresent {
		return StatusAbsent
	}
	return StatusPresent
}

// Employee is a worker on the site roster.
type Employee struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Role        string           `json:"role"`
	DailyRate   decimal.Decimal  `json:"dailyRate"`
	Status      AttendanceStatus `json:"status"`
	HoursWorked float64          `json:"hoursWorked"`
}

// Present reports whether the employee is marked present today.
func (e Employee) Present() bool { return e.Status == StatusPresent }

// EmployeeForm carries raw values from the add/edit employee form.
type EmployeeForm struct {
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	DailyRate   FormNumber `json:"dailyRate"`
	Status      string     `json:"status"`
	HoursWorked FormNumber `json:"hoursWorked"`
}
