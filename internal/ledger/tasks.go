package ledger

import "github.com/mamadbah2/buildtrack/internal/domain/models"

// SaveTask replaces the task with the same id, or appends it with a fresh id
// when no live task has that id. Fields are not required, but a non-empty
// status must name a board column.
func (l *Ledger) SaveTask(task models.Task) (models.Task, error) {
	task.Progress = clampProgress(task.Progress)
	if task.Status == "" {
		task.Status = models.TaskNotStarted
	}
	if !task.Status.Valid() {
		return models.Task{}, &ValidationError{
			Field:   "status",
			Message: "status must be one of not-started, in-progress, on-hold, completed",
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if i := l.taskIndex(task.ID); i >= 0 {
		l.tasks[i] = task
		return task, nil
	}

	task.ID = nextID(l.tasks, func(t models.Task) int { return t.ID })
	l.tasks = append(l.tasks, task)
	return task, nil
}

// UpdateTaskProgress sets a task's progress percentage.
func (l *Ledger) UpdateTaskProgress(id, progress int) (models.Task, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.taskIndex(id)
	if i < 0 {
		return models.Task{}, ErrNotFound
	}
	l.tasks[i].Progress = clampProgress(progress)
	return l.tasks[i], nil
}

// AssignTask points a task at an employee. The employee is not required to exist.
func (l *Ledger) AssignTask(id, employeeID int) (models.Task, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.taskIndex(id)
	if i < 0 {
		return models.Task{}, ErrNotFound
	}
	l.tasks[i].AssignedTo = employeeID
	return l.tasks[i], nil
}

// RecordLaborUpdate appends to the labor log unconditionally.
func (l *Ledger) RecordLaborUpdate(form models.LaborUpdateForm) models.LaborUpdate {
	l.mu.Lock()
	defer l.mu.Unlock()

	update := models.LaborUpdate{
		EmployeeID:  form.EmployeeID,
		Hours:       form.Hours,
		TaskID:      form.TaskID,
		Description: form.Description,
		RecordedAt:  l.Today(),
	}
	l.labor = append(l.labor, update)
	return update
}

func (l *Ledger) taskIndex(id int) int {
	for i, t := range l.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func clampProgress(p int) int {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return p
	}
}
