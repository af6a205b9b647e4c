package reporting

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mamadbah2/buildtrack/internal/domain/models"
)

const monthLayout = "2006-01"

// DayState is the calendar cell state for one employee on one day.
type DayState string

const (
	DayPresent DayState = "present"
	DayAbsent  DayState = "absent"
	DayNoData  DayState = "no-data"
)

// CalendarDay is one cell of the monthly attendance grid.
type CalendarDay struct {
	Day     int      `json:"day"`
	Date    string   `json:"date"`
	State   DayState `json:"state"`
	IsToday bool     `json:"isToday"`
}

// EmployeeMonthlyStats aggregates one employee's month.
type EmployeeMonthlyStats struct {
	EmployeeID     int             `json:"employeeId"`
	Name           string          `json:"name"`
	Role           string          `json:"role"`
	DailyRate      decimal.Decimal `json:"dailyRate"`
	PresentDays    int             `json:"presentDays"`
	AbsentDays     int             `json:"absentDays"`
	TotalHours     float64         `json:"totalHours"`
	AttendanceRate float64         `json:"attendanceRate"`
	Days           []CalendarDay   `json:"days"`
}

// MonthlyAttendanceReport feeds the monthly overview cards, summary table and calendar.
type MonthlyAttendanceReport struct {
	Month           string                 `json:"month"`
	MonthName       string                 `json:"monthName"`
	PreviousMonth   string                 `json:"previousMonth"`
	NextMonth       string                 `json:"nextMonth"`
	DaysInMonth     int                    `json:"daysInMonth"`
	TeamAverageRate float64                `json:"teamAverageRate"`
	TotalHours      float64                `json:"totalHours"`
	TotalCost       decimal.Decimal        `json:"totalCost"`
	Employees       []EmployeeMonthlyStats `json:"employees"`
}

// ParseMonth parses a YYYY-MM month selector. An empty value yields the zero time.
func ParseMonth(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(monthLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("month must be formatted YYYY-MM: %w", err)
	}
	return t, nil
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AttendanceRate returns present/(present+absent)*100 rounded to one decimal,
// or 0 when no day was recorded.
func AttendanceRate(present, absent int) float64 {
	total := present + absent
	if total == 0 {
		return 0
	}
	return roundOne(float64(present) / float64(total) * 100)
}

// MonthlyAttendance aggregates history for every employee over the month containing month.
func MonthlyAttendance(employees []models.Employee, history models.AttendanceHistory, month, today time.Time) MonthlyAttendanceReport {
	year, mon := month.Year(), month.Month()
	days := DaysIn(year, mon)
	todayKey := models.DateKey(today)
	first := time.Date(year, mon, 1, 0, 0, 0, 0, time.UTC)

	report := MonthlyAttendanceReport{
		Month:         first.Format(monthLayout),
		MonthName:     first.Format("January 2006"),
		PreviousMonth: first.AddDate(0, -1, 0).Format(monthLayout),
		NextMonth:     first.AddDate(0, 1, 0).Format(monthLayout),
		DaysInMonth:   days,
		TotalCost:     decimal.Zero,
		Employees:     make([]EmployeeMonthlyStats, 0, len(employees)),
	}

	var rateSum float64
	for _, emp := range employees {
		stats := EmployeeMonthlyStats{
			EmployeeID: emp.ID,
			Name:       emp.Name,
			Role:       emp.Role,
			DailyRate:  emp.DailyRate,
			Days:       make([]CalendarDay, 0, days),
		}

		for day := 1; day <= days; day++ {
			key := models.DayKey(year, mon, day)
			cell := CalendarDay{Day: day, Date: key, State: DayNoData, IsToday: key == todayKey}

			if entry, ok := history.Lookup(key, emp.ID); ok {
				if entry.Status == models.StatusPresent {
					stats.PresentDays++
					stats.TotalHours += entry.HoursWorked
					cell.State = DayPresent
				} else {
					stats.AbsentDays++
					cell.State = DayAbsent
				}
			}
			stats.Days = append(stats.Days, cell)
		}

		stats.AttendanceRate = AttendanceRate(stats.PresentDays, stats.AbsentDays)
		rateSum += stats.AttendanceRate
		report.TotalHours += stats.TotalHours
		report.TotalCost = report.TotalCost.Add(emp.DailyRate.Mul(decimal.NewFromInt(int64(stats.PresentDays))))
		report.Employees = append(report.Employees, stats)
	}

	if len(report.Employees) > 0 {
		report.TeamAverageRate = roundOne(rateSum / float64(len(report.Employees)))
	}

	return report
}

func roundOne(v float64) float64 {
	return math.Round(v*10) / 10
}
