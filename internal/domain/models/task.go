package models

import "time"

// TaskStatus enumerates the board columns.
type TaskStatus string

const (
	TaskNotStarted TaskStatus = "not-started"
	TaskInProgress TaskStatus = "in-progress"
	TaskOnHold     TaskStatus = "on-hold"
	TaskCompleted  TaskStatus = "completed"
)

// Valid reports whether s is one of the board columns.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskNotStarted, TaskInProgress, TaskOnHold, TaskCompleted:
		return true
	}
	return false
}

// Task is a unit of site work on the supervisor board. Progress and Status
// are independent.
type Task struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Project     string     `json:"project"`
	AssignedTo  int        `json:"assignedTo"`
	Status      TaskStatus `json:"status"`
	Progress    int        `json:"progress"`
	DueDate     string     `json:"dueDate"`
	Description string     `json:"description"`
}

// LaborUpdate is an append-only record of hours an employee spent on a task.
type LaborUpdate struct {
	EmployeeID  int       `json:"employeeId"`
	Hours       float64   `json:"hours"`
	TaskID      int       `json:"taskId"`
	Description string    `json:"description,omitempty"`
	RecordedAt  time.Time `json:"recordedAt"`
}

// LaborUpdateForm is the payload of the labor update dialog.
type LaborUpdateForm struct {
	EmployeeID  int     `json:"employeeId"`
	Hours       float64 `json:"hours"`
	TaskID      int     `json:"taskId"`
	Description string  `json:"description"`
}
