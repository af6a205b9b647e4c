package ledger

import (
	"math/rand/v2"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/mamadbah2/buildtrack/internal/domain/models"
)

func sampleEmployees() []models.Employee {
	return []models.Employee{
		{ID: 1, Name: "John Smith", Role: "Foreman", DailyRate: decimal.NewFromInt(150), Status: models.StatusPresent, HoursWorked: 8},
		{ID: 2, Name: "Mike Johnson", Role: "Carpenter", DailyRate: decimal.NewFromInt(120), Status: models.StatusPresent, HoursWorked: 8},
		{ID: 3, Name: "David Brown", Role: "Laborer", DailyRate: decimal.NewFromInt(100), Status: models.StatusAbsent, HoursWorked: 0},
		{ID: 4, Name: "Chris Wilson", Role: "Electrician", DailyRate: decimal.NewFromInt(140), Status: models.StatusPresent, HoursWorked: 6},
	}
}

func sampleMaterials() []models.Material {
	return []models.Material{
		{ID: 1, Name: "Cement", Unit: "bags", Current: 45, Minimum: 20, Cost: decimal.RequireFromString("12.5")},
		{ID: 2, Name: "Sand", Unit: "cubic yards", Current: 8, Minimum: 5, Cost: decimal.NewFromInt(35)},
		{ID: 3, Name: "Gravel", Unit: "cubic yards", Current: 12, Minimum: 8, Cost: decimal.NewFromInt(28)},
		{ID: 4, Name: "Rock", Unit: "tons", Current: 3, Minimum: 2, Cost: decimal.NewFromInt(45)},
	}
}

func sampleTasks() []models.Task {
	return []models.Task{
		{ID: 1, Title: "Foundation Work", Project: "Residential Tower", AssignedTo: 1, Status: models.TaskInProgress, Progress: 65, DueDate: "2023-06-15", Description: "Complete concrete pouring and leveling for the foundation"},
		{ID: 2, Title: "Electrical Wiring", Project: "Office Complex", AssignedTo: 4, Status: models.TaskNotStarted, Progress: 0, DueDate: "2023-06-20", Description: "Install and test all electrical wiring on 3rd floor"},
		{ID: 3, Title: "Material Delivery", Project: "Shopping Mall", AssignedTo: 3, Status: models.TaskInProgress, Progress: 30, DueDate: "2023-06-12", Description: "Receive and verify construction materials delivery"},
	}
}

// Seed replaces the ledger contents with the sample site: four employees,
// four materials, three tasks and an attendance history covering the first
// day of the current month through today, where each employee is present on a
// given day with probability presentRate.
func (l *Ledger) Seed(presentRate float64, rng *rand.Rand) {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.employees = sampleEmployees()
	l.materials = sampleMaterials()
	l.tasks = sampleTasks()
	l.usage = nil
	l.labor = nil
	l.history = make(models.AttendanceHistory)

	today := l.Today()
	ids := make([]int, 0, len(l.employees))
	for _, e := range l.employees {
		ids = append(ids, e.ID)
	}
	slices.Sort(ids)

	for day := 1; day <= today.Day(); day++ {
		key := models.DayKey(today.Year(), today.Month(), day)
		entries := make(map[int]models.AttendanceEntry, len(ids))
		for _, id := range ids {
			if rng.Float64() < presentRate {
				entries[id] = models.AttendanceEntry{Status: models.StatusPresent, HoursWorked: models.FullDayHours}
			} else {
				entries[id] = models.AttendanceEntry{Status: models.StatusAbsent}
			}
		}
		l.history[key] = entries
	}
}
