package reporting

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mamadbah2/buildtrack/internal/domain/models"
)

// BuildDailyReport summarizes the site's state for the given day.
func BuildDailyReport(snap models.Snapshot, date time.Time) models.DailyReport {
	key := models.DateKey(date)
	report := models.DailyReport{
		Date:      time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		LowStock:  []string{},
		CreatedAt: snap.TakenAt,
	}

	laborCost := decimal.Zero
	for _, e := range snap.Employees {
		if e.Present() {
			report.PresentEmployees++
			report.HoursWorked += e.HoursWorked
			laborCost = laborCost.Add(e.DailyRate)
		} else {
			report.AbsentEmployees++
		}
	}
	report.LaborCost = laborCost

	costs := make(map[int]decimal.Decimal, len(snap.Materials))
	for _, m := range snap.Materials {
		costs[m.ID] = m.Cost
		if m.LowStock() {
			report.LowStock = append(report.LowStock, m.Name)
		}
	}

	materialsCost := decimal.Zero
	for _, u := range snap.Usage {
		if u.Date != key {
			continue
		}
		report.UsageEntries++
		// Usage of a deleted material has no cost to price against.
		if cost, ok := costs[u.MaterialID]; ok {
			materialsCost = materialsCost.Add(cost.Mul(decimal.NewFromFloat(u.Quantity)))
		}
	}
	report.MaterialsCost = materialsCost

	for _, t := range snap.Tasks {
		if t.Status == models.TaskCompleted {
			report.CompletedTasks++
		} else {
			report.OpenTasks++
		}
	}

	for _, u := range snap.LaborUpdates {
		if models.DateKey(u.RecordedAt) == key {
			report.LaborHoursLogged += u.Hours
		}
	}

	return report
}

// FormatDailyReport renders the report as a short text message.
func FormatDailyReport(r models.DailyReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Site report %s\n", r.Date.Format(models.DateKeyLayout))
	fmt.Fprintf(&b, "Crew: %d present, %d absent, %.1f hours.\n", r.PresentEmployees, r.AbsentEmployees, r.HoursWorked)
	fmt.Fprintf(&b, "Labor cost: %s. Materials used: %d entries (%s).\n", r.LaborCost.StringFixed(2), r.UsageEntries, r.MaterialsCost.StringFixed(2))
	fmt.Fprintf(&b, "Tasks: %d open, %d completed. Logged labor: %.1f hours.", r.OpenTasks, r.CompletedTasks, r.LaborHoursLogged)
	if len(r.LowStock) > 0 {
		fmt.Fprintf(&b, "\nLow stock: %s.", strings.Join(r.LowStock, ", "))
	}
	return b.String()
}

// FormatLowStockAlert renders the alert sent when a usage pushes a material to its threshold.
func FormatLowStockAlert(m models.Material) string {
	return fmt.Sprintf("Low stock: %s is at %g %s (minimum %g). Please reorder.", m.Name, m.Current, m.Unit, m.Minimum)
}
