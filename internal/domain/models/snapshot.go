package models

import "time"

// Snapshot is a point-in-time copy of the ledger used by read-side views.
type Snapshot struct {
	TakenAt      time.Time
	Employees    []Employee
	Materials    []Material
	Usage        []MaterialUsage
	Tasks        []Task
	LaborUpdates []LaborUpdate
	Attendance   AttendanceHistory
}

// EmployeeByID resolves an employee reference.
func (s Snapshot) EmployeeByID(id int) (Employee, bool) {
	for _, e := range s.Employees {
		if e.ID == id {
			return e, true
		}
	}
	return Employee{}, false
}

// TaskByID resolves a task reference.
func (s Snapshot) TaskByID(id int) (Task, bool) {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}
