package reporting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/buildtrack/internal/domain/models"
	"github.com/mamadbah2/buildtrack/internal/ledger"
)

var today = time.Date(2026, time.October, 17, 10, 0, 0, 0, time.UTC)

func employee(id int, rate int64, status models.AttendanceStatus) models.Employee {
	hours := 0.0
	if status == models.StatusPresent {
		hours = 8
	}
	return models.Employee{ID: id, Name: "worker", Role: "Laborer", DailyRate: decimal.NewFromInt(rate), Status: status, HoursWorked: hours}
}

type staticSource struct{ snap models.Snapshot }

func (s staticSource) Snapshot() models.Snapshot { return s.snap }

func TestPayrollScenario(t *testing.T) {
	summary := Payroll([]models.Employee{
		employee(1, 150, models.StatusPresent),
		employee(2, 100, models.StatusAbsent),
	})

	assert.True(t, decimal.NewFromInt(150).Equal(summary.TodayTotal), summary.TodayTotal.String())
	assert.True(t, decimal.NewFromInt(750).Equal(summary.WeeklyEstimate), summary.WeeklyEstimate.String())
	assert.True(t, decimal.NewFromInt(3300).Equal(summary.MonthlyEstimate), summary.MonthlyEstimate.String())
	require.Len(t, summary.Entries, 2)
	assert.True(t, decimal.NewFromInt(150).Equal(summary.Entries[0].Earnings))
	assert.True(t, summary.Entries[1].Earnings.IsZero())
}

func TestPayrollEmptyRoster(t *testing.T) {
	summary := Payroll(nil)

	assert.True(t, summary.TodayTotal.IsZero())
	assert.True(t, summary.MonthlyEstimate.IsZero())
	assert.Empty(t, summary.Entries)
}

func TestPayrollWorkbook(t *testing.T) {
	summary := Payroll([]models.Employee{
		{ID: 1, Name: "John Smith", Role: "Foreman", DailyRate: decimal.NewFromInt(150), Status: models.StatusPresent, HoursWorked: 8},
	})

	f, err := PayrollWorkbook(summary)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(payrollSheet)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 2)
	assert.Equal(t, "Employee", rows[0][0])
	assert.Equal(t, "John Smith", rows[1][0])
	assert.Equal(t, "150", rows[1][2])

	total, err := f.GetCellValue(payrollSheet, "B4")
	require.NoError(t, err)
	assert.Equal(t, "150", total)
}

func TestAttendanceRateZeroDays(t *testing.T) {
	assert.Equal(t, 0.0, AttendanceRate(0, 0))
	assert.Equal(t, 66.7, AttendanceRate(2, 1))
	assert.Equal(t, 100.0, AttendanceRate(3, 0))
}

func TestMonthlyAttendance(t *testing.T) {
	employees := []models.Employee{employee(1, 150, models.StatusPresent), employee(2, 100, models.StatusAbsent)}
	history := models.AttendanceHistory{
		"2026-10-01": {
			1: {Status: models.StatusPresent, HoursWorked: 8},
			2: {Status: models.StatusAbsent},
		},
		"2026-10-02": {
			1: {Status: models.StatusPresent, HoursWorked: 6},
		},
		"2026-10-17": {
			1: {Status: models.StatusAbsent},
		},
		"2026-09-30": {
			1: {Status: models.StatusPresent, HoursWorked: 8},
		},
	}

	report := MonthlyAttendance(employees, history, time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC), today)

	assert.Equal(t, "2026-10", report.Month)
	assert.Equal(t, "October 2026", report.MonthName)
	assert.Equal(t, "2026-09", report.PreviousMonth)
	assert.Equal(t, "2026-11", report.NextMonth)
	assert.Equal(t, 31, report.DaysInMonth)
	require.Len(t, report.Employees, 2)

	first := report.Employees[0]
	assert.Equal(t, 2, first.PresentDays)
	assert.Equal(t, 1, first.AbsentDays)
	assert.Equal(t, 14.0, first.TotalHours)
	assert.Equal(t, 66.7, first.AttendanceRate)
	require.Len(t, first.Days, 31)
	assert.Equal(t, DayPresent, first.Days[0].State)
	assert.Equal(t, DayNoData, first.Days[2].State)
	assert.Equal(t, DayAbsent, first.Days[16].State)
	assert.True(t, first.Days[16].IsToday)
	assert.False(t, first.Days[15].IsToday)

	second := report.Employees[1]
	assert.Equal(t, 0, second.PresentDays)
	assert.Equal(t, 1, second.AbsentDays)
	assert.Equal(t, 0.0, second.AttendanceRate)

	assert.InDelta(t, 33.4, report.TeamAverageRate, 0.06)
	assert.Equal(t, 14.0, report.TotalHours)
	assert.True(t, decimal.NewFromInt(300).Equal(report.TotalCost), report.TotalCost.String())
}

func TestMonthlyAttendanceWithoutData(t *testing.T) {
	employees := []models.Employee{employee(1, 150, models.StatusPresent)}

	report := MonthlyAttendance(employees, models.AttendanceHistory{}, time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC), today)

	assert.Equal(t, 29, report.DaysInMonth)
	assert.Equal(t, 0.0, report.Employees[0].AttendanceRate)
	assert.Equal(t, 0.0, report.TeamAverageRate)
	assert.True(t, report.TotalCost.IsZero())
	for _, d := range report.Employees[0].Days {
		assert.Equal(t, DayNoData, d.State)
		assert.False(t, d.IsToday)
	}
}

func TestMonthlyAttendanceNoEmployees(t *testing.T) {
	report := MonthlyAttendance(nil, nil, today, today)

	assert.Equal(t, 0.0, report.TeamAverageRate)
	assert.Empty(t, report.Employees)
}

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2025-02")
	require.NoError(t, err)
	assert.Equal(t, time.February, m.Month())
	assert.Equal(t, 2025, m.Year())

	m, err = ParseMonth("")
	require.NoError(t, err)
	assert.True(t, m.IsZero())

	_, err = ParseMonth("02/2025")
	assert.Error(t, err)
}

func TestDashboard(t *testing.T) {
	snap := models.Snapshot{
		Employees: []models.Employee{employee(1, 150, models.StatusPresent), employee(2, 100, models.StatusAbsent), employee(3, 120, models.StatusPresent)},
		Materials: []models.Material{
			{ID: 1, Name: "Sand", Current: 3, Minimum: 5},
			{ID: 2, Name: "Cement", Current: 45, Minimum: 20},
			{ID: 3, Name: "Rock", Current: 2, Minimum: 2},
		},
	}

	summary := Dashboard(snap)

	assert.Equal(t, 3, summary.TotalEmployees)
	assert.Equal(t, 2, summary.PresentEmployees)
	assert.True(t, decimal.NewFromInt(270).Equal(summary.TotalDailyCost))
	assert.Equal(t, 2, summary.LowStockMaterials)
	assert.Equal(t, models.StockLow, summary.Materials[0].Status)
	assert.Equal(t, models.StockOK, summary.Materials[1].Status)
	assert.Equal(t, models.StockLow, summary.Materials[2].Status)
}

func TestSupervisorResolvesDanglingReferences(t *testing.T) {
	snap := models.Snapshot{
		Employees: []models.Employee{employee(1, 150, models.StatusPresent)},
		Tasks: []models.Task{
			{ID: 1, Title: "Foundation Work", AssignedTo: 1, Status: models.TaskInProgress},
			{ID: 2, Title: "Material Delivery", AssignedTo: 3, Status: models.TaskInProgress},
			{ID: 3, Title: "Electrical Wiring", AssignedTo: 4, Status: models.TaskCompleted},
		},
		LaborUpdates: []models.LaborUpdate{
			{EmployeeID: 1, TaskID: 1, Hours: 4},
			{EmployeeID: 9, TaskID: 99, Hours: 2},
			{EmployeeID: 1, TaskID: 2, Hours: 1},
			{EmployeeID: 1, TaskID: 3, Hours: 3},
		},
	}

	summary := Supervisor(snap)

	assert.Equal(t, 3, summary.ActiveTasks)
	assert.Equal(t, 2, summary.InProgressTasks)
	assert.Equal(t, 1, summary.PresentEmployees)
	assert.Equal(t, 10.0, summary.TotalLoggedHours)

	require.Len(t, summary.Tasks, 3)
	assert.Equal(t, "worker", summary.Tasks[0].AssigneeName)
	assert.Equal(t, Unassigned, summary.Tasks[1].AssigneeName)

	require.Len(t, summary.RecentLabor, 3)
	assert.Equal(t, "Foundation Work", summary.RecentLabor[0].TaskTitle)
	assert.Equal(t, "Unknown", summary.RecentLabor[1].EmployeeName)
	assert.Equal(t, "Task", summary.RecentLabor[1].TaskTitle)
}

func TestBuildDailyReport(t *testing.T) {
	snap := models.Snapshot{
		TakenAt:   today,
		Employees: []models.Employee{employee(1, 150, models.StatusPresent), employee(2, 100, models.StatusAbsent)},
		Materials: []models.Material{
			{ID: 1, Name: "Cement", Current: 10, Minimum: 20, Cost: decimal.RequireFromString("12.5")},
			{ID: 2, Name: "Gravel", Current: 12, Minimum: 8, Cost: decimal.NewFromInt(28)},
		},
		Usage: []models.MaterialUsage{
			{ID: 1, MaterialID: 1, Quantity: 2, Date: "2026-10-17"},
			{ID: 2, MaterialID: 2, Quantity: 1, Date: "2026-10-16"},
			{ID: 3, MaterialID: 7, Quantity: 5, Date: "2026-10-17"},
		},
		Tasks: []models.Task{{ID: 1, Status: models.TaskCompleted}, {ID: 2, Status: models.TaskOnHold}},
		LaborUpdates: []models.LaborUpdate{
			{Hours: 3, RecordedAt: today},
			{Hours: 5, RecordedAt: today.AddDate(0, 0, -1)},
		},
	}

	report := BuildDailyReport(snap, today)

	assert.Equal(t, 1, report.PresentEmployees)
	assert.Equal(t, 1, report.AbsentEmployees)
	assert.Equal(t, 8.0, report.HoursWorked)
	assert.True(t, decimal.NewFromInt(150).Equal(report.LaborCost), report.LaborCost.String())
	assert.Equal(t, 2, report.UsageEntries)
	assert.True(t, decimal.NewFromInt(25).Equal(report.MaterialsCost), report.MaterialsCost.String())
	assert.Equal(t, []string{"Cement"}, report.LowStock)
	assert.Equal(t, 1, report.OpenTasks)
	assert.Equal(t, 1, report.CompletedTasks)
	assert.Equal(t, 3.0, report.LaborHoursLogged)

	text := FormatDailyReport(report)
	assert.Contains(t, text, "Site report 2026-10-17")
	assert.Contains(t, text, "1 present, 1 absent")
	assert.Contains(t, text, "Low stock: Cement.")
	assert.Contains(t, text, "Labor cost: 150.00. Materials used: 2 entries (25.00).")
}

func TestServiceTakesFreshSnapshots(t *testing.T) {
	src := &staticSource{snap: models.Snapshot{TakenAt: today, Employees: []models.Employee{employee(1, 150, models.StatusPresent)}}}
	svc := NewService(src, nil)

	assert.Equal(t, 1, svc.Dashboard().PresentEmployees)

	src.snap.Employees[0].Status = models.StatusAbsent
	assert.Equal(t, 0, svc.Dashboard().PresentEmployees)
	assert.True(t, svc.Payroll().TodayTotal.IsZero())
	assert.Equal(t, "2026-10", svc.MonthlyAttendance(time.Time{}).Month)
}

func TestDeletingOnlyAssigneeShowsUnassigned(t *testing.T) {
	l := ledger.New(ledger.WithClock(func() time.Time {
		return time.Date(2026, time.October, 17, 9, 0, 0, 0, time.UTC)
	}))
	emp, err := l.AddEmployee(models.EmployeeForm{Name: "Ana Lopez", Role: "Mason", DailyRate: "130"})
	require.NoError(t, err)
	task, err := l.SaveTask(models.Task{Title: "Pour slab", AssignedTo: emp.ID})
	require.NoError(t, err)
	l.RecordLaborUpdate(models.LaborUpdateForm{EmployeeID: emp.ID, Hours: 3, TaskID: task.ID})

	svc := NewService(l, nil)
	require.Equal(t, "Ana Lopez", svc.Tasks()[0].AssigneeName)

	l.DeleteEmployee(emp.ID)

	tasks := svc.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, Unassigned, tasks[0].AssigneeName)
	assert.Equal(t, emp.ID, tasks[0].AssignedTo)

	summary := svc.Supervisor()
	require.Len(t, summary.Tasks, 1)
	assert.Equal(t, Unassigned, summary.Tasks[0].AssigneeName)
	require.Len(t, summary.RecentLabor, 1)
	assert.Equal(t, "Unknown", summary.RecentLabor[0].EmployeeName)
	assert.Equal(t, "Pour slab", summary.RecentLabor[0].TaskTitle)
}
