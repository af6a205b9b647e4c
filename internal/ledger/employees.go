package ledger

import (
	"strconv"
	"strings"

	"github.com/mamadbah2/buildtrack/internal/domain/models"
)

// AddEmployee validates the form and appends a new employee.
func (l *Ledger) AddEmployee(form models.EmployeeForm) (models.Employee, error) {
	emp, err := employeeFromForm(form)
	if err != nil {
		return models.Employee{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	emp.ID = nextID(l.employees, func(e models.Employee) int { return e.ID })
	l.employees = append(l.employees, emp)
	return emp, nil
}

// EditEmployee validates the form and replaces the mutable fields of the employee.
func (l *Ledger) EditEmployee(id int, form models.EmployeeForm) (models.Employee, error) {
	emp, err := employeeFromForm(form)
	if err != nil {
		return models.Employee{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.employeeIndex(id)
	if i < 0 {
		return models.Employee{}, ErrNotFound
	}
	emp.ID = id
	l.employees[i] = emp
	return emp, nil
}

// DeleteEmployee removes the employee if present. Tasks keep their reference.
func (l *Ledger) DeleteEmployee(id int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if i := l.employeeIndex(id); i >= 0 {
		l.employees = append(l.employees[:i], l.employees[i+1:]...)
	}
}

// ToggleAttendance flips the employee between present and absent and records
// the new state in today's attendance history entry.
func (l *Ledger) ToggleAttendance(id int) (models.Employee, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.employeeIndex(id)
	if i < 0 {
		return models.Employee{}, ErrNotFound
	}

	next := l.employees[i].Status.Toggled()
	hours := 0.0
	if next == models.StatusPresent {
		hours = models.FullDayHours
	}

	l.employees[i].Status = next
	l.employees[i].HoursWorked = hours

	key := models.DateKey(l.Today())
	if l.history[key] == nil {
		l.history[key] = make(map[int]models.AttendanceEntry)
	}
	l.history[key][id] = models.AttendanceEntry{Status: next, HoursWorked: hours}

	return l.employees[i], nil
}

func (l *Ledger) employeeIndex(id int) int {
	for i, e := range l.employees {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func employeeFromForm(form models.EmployeeForm) (models.Employee, error) {
	name, ok := required(form.Name)
	if !ok {
		return models.Employee{}, missing("name", msgRequiredFields)
	}
	role, ok := required(form.Role)
	if !ok {
		return models.Employee{}, missing("role", msgRequiredFields)
	}
	rate, err := parseMoney("dailyRate", form.DailyRate.String())
	if err != nil {
		return models.Employee{}, err
	}

	status := models.StatusPresent
	switch models.AttendanceStatus(strings.ToLower(strings.TrimSpace(form.Status))) {
	case "", models.StatusPresent:
	case models.StatusAbsent:
		status = models.StatusAbsent
	default:
		return models.Employee{}, &ValidationError{Field: "status", Message: "status must be present or absent"}
	}

	hours := float64(models.FullDayHours)
	if v, ok := required(form.HoursWorked.String()); ok {
		h, err := strconv.ParseFloat(v, 64)
		if err != nil || !finite(h) || h < 0 {
			return models.Employee{}, &ValidationError{Field: "hoursWorked", Message: "hoursWorked must be a non-negative number"}
		}
		hours = h
	}

	return models.Employee{
		Name:        name,
		Role:        role,
		DailyRate:   rate,
		Status:      status,
		HoursWorked: hours,
	}, nil
}
