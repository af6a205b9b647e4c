package reporting

import (
	"github.com/shopspring/decimal"

	"github.com/mamadbah2/buildtrack/internal/domain/models"
)

const (
	// Unassigned is shown for tasks whose assignee is no longer on the roster.
	Unassigned = "Unassigned"

	unknownEmployee = "Unknown"
	unknownTask     = "Task"
	recentLaborSize = 3
)

// MaterialView is a material with its derived stock status.
type MaterialView struct {
	models.Material
	Status string `json:"status"`
}

// DashboardSummary backs the overview page.
type DashboardSummary struct {
	TotalEmployees    int               `json:"totalEmployees"`
	PresentEmployees  int               `json:"presentEmployees"`
	TotalDailyCost    decimal.Decimal   `json:"totalDailyCost"`
	LowStockMaterials int               `json:"lowStockMaterials"`
	Employees         []models.Employee `json:"employees"`
	Materials         []MaterialView    `json:"materials"`
}

// TaskView is a task with its assignee resolved.
type TaskView struct {
	models.Task
	AssigneeName string `json:"assigneeName"`
}

// LaborView is a labor update with its references resolved.
type LaborView struct {
	models.LaborUpdate
	EmployeeName string `json:"employeeName"`
	TaskTitle    string `json:"taskTitle"`
}

// SupervisorSummary backs the supervisor board.
type SupervisorSummary struct {
	ActiveTasks      int         `json:"activeTasks"`
	InProgressTasks  int         `json:"inProgressTasks"`
	PresentEmployees int         `json:"presentEmployees"`
	TotalLoggedHours float64     `json:"totalLoggedHours"`
	Tasks            []TaskView  `json:"tasks"`
	RecentLabor      []LaborView `json:"recentLabor"`
}

// Dashboard summarizes the roster and inventory.
func Dashboard(snap models.Snapshot) DashboardSummary {
	summary := DashboardSummary{
		TotalEmployees: len(snap.Employees),
		TotalDailyCost: decimal.Zero,
		Employees:      snap.Employees,
		Materials:      MaterialViews(snap.Materials),
	}

	for _, e := range snap.Employees {
		if e.Present() {
			summary.PresentEmployees++
			summary.TotalDailyCost = summary.TotalDailyCost.Add(e.DailyRate)
		}
	}
	for _, m := range snap.Materials {
		if m.LowStock() {
			summary.LowStockMaterials++
		}
	}

	return summary
}

// MaterialViews attaches derived stock status to each material.
func MaterialViews(materials []models.Material) []MaterialView {
	views := make([]MaterialView, 0, len(materials))
	for _, m := range materials {
		views = append(views, MaterialView{Material: m, Status: m.StockStatus()})
	}
	return views
}

// AssigneeName resolves a task's assignee, falling back to Unassigned.
func AssigneeName(snap models.Snapshot, task models.Task) string {
	if emp, ok := snap.EmployeeByID(task.AssignedTo); ok {
		return emp.Name
	}
	return Unassigned
}

// TaskViews resolves assignees for every task on the board.
func TaskViews(snap models.Snapshot) []TaskView {
	views := make([]TaskView, 0, len(snap.Tasks))
	for _, t := range snap.Tasks {
		views = append(views, TaskView{Task: t, AssigneeName: AssigneeName(snap, t)})
	}
	return views
}

// Supervisor computes the board counters and resolved views.
func Supervisor(snap models.Snapshot) SupervisorSummary {
	summary := SupervisorSummary{
		ActiveTasks: len(snap.Tasks),
		Tasks:       TaskViews(snap),
		RecentLabor: make([]LaborView, 0, recentLaborSize),
	}

	for _, t := range snap.Tasks {
		if t.Status == models.TaskInProgress {
			summary.InProgressTasks++
		}
	}
	for _, e := range snap.Employees {
		if e.Present() {
			summary.PresentEmployees++
		}
	}
	for i, u := range snap.LaborUpdates {
		summary.TotalLoggedHours += u.Hours
		if i >= recentLaborSize {
			continue
		}
		view := LaborView{LaborUpdate: u, EmployeeName: unknownEmployee, TaskTitle: unknownTask}
		if emp, ok := snap.EmployeeByID(u.EmployeeID); ok {
			view.EmployeeName = emp.Name
		}
		if task, ok := snap.TaskByID(u.TaskID); ok && task.Title != "" {
			view.TaskTitle = task.Title
		}
		summary.RecentLabor = append(summary.RecentLabor, view)
	}

	return summary
}
