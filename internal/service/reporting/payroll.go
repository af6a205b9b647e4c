package reporting

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/mamadbah2/buildtrack/internal/domain/models"
)

// Fixed working-day assumptions for the estimates.
const (
	WorkDaysPerWeek  = 5
	WorkDaysPerMonth = 22

	payrollSheet = "Payroll"
)

// PayrollEntry is one row of the payroll table.
type PayrollEntry struct {
	EmployeeID  int                     `json:"employeeId"`
	Name        string                  `json:"name"`
	Role        string                  `json:"role"`
	DailyRate   decimal.Decimal         `json:"dailyRate"`
	HoursWorked float64                 `json:"hoursWorked"`
	Earnings    decimal.Decimal         `json:"earnings"`
	Status      models.AttendanceStatus `json:"status"`
}

// PayrollSummary is today's payroll with weekly and monthly projections.
type PayrollSummary struct {
	TodayTotal      decimal.Decimal `json:"todayTotal"`
	WeeklyEstimate  decimal.Decimal `json:"weeklyEstimate"`
	MonthlyEstimate decimal.Decimal `json:"monthlyEstimate"`
	Entries         []PayrollEntry  `json:"entries"`
}

// Payroll computes earnings from today's attendance: present employees earn
// their daily rate, absent employees earn nothing.
func Payroll(employees []models.Employee) PayrollSummary {
	summary := PayrollSummary{
		TodayTotal: decimal.Zero,
		Entries:    make([]PayrollEntry, 0, len(employees)),
	}

	for _, emp := range employees {
		earnings := decimal.Zero
		if emp.Present() {
			earnings = emp.DailyRate
		}
		summary.TodayTotal = summary.TodayTotal.Add(earnings)
		summary.Entries = append(summary.Entries, PayrollEntry{
			EmployeeID:  emp.ID,
			Name:        emp.Name,
			Role:        emp.Role,
			DailyRate:   emp.DailyRate,
			HoursWorked: emp.HoursWorked,
			Earnings:    earnings,
			Status:      emp.Status,
		})
	}

	summary.WeeklyEstimate = summary.TodayTotal.Mul(decimal.NewFromInt(WorkDaysPerWeek))
	summary.MonthlyEstimate = summary.TodayTotal.Mul(decimal.NewFromInt(WorkDaysPerMonth))
	return summary
}

// PayrollWorkbook renders the payroll table and totals into a spreadsheet.
// The caller owns the returned file and must Close it.
func PayrollWorkbook(summary PayrollSummary) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", payrollSheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := []any{"Employee", "Role", "Daily Rate", "Hours Worked", "Today's Earnings", "Status"}
	if err := f.SetSheetRow(payrollSheet, "A1", &header); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}

	row := 2
	for _, e := range summary.Entries {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		values := []any{e.Name, e.Role, e.DailyRate.InexactFloat64(), e.HoursWorked, e.Earnings.InexactFloat64(), string(e.Status)}
		if err := f.SetSheetRow(payrollSheet, cell, &values); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("write row %d: %w", row, err)
		}
		row++
	}

	totals := [][]any{
		{"Today's Total", summary.TodayTotal.InexactFloat64()},
		{"Weekly Estimate", summary.WeeklyEstimate.InexactFloat64()},
		{"Monthly Estimate", summary.MonthlyEstimate.InexactFloat64()},
	}
	row++
	for _, t := range totals {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(payrollSheet, cell, &t); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("write totals: %w", err)
		}
		row++
	}

	return f, nil
}
