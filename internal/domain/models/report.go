package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyReport is the end-of-day site summary archived to MongoDB and sent to the site manager.
// Money fields are stored as BSON Decimal128.
type DailyReport struct {
	Date             time.Time       `bson:"date" json:"date"`
	PresentEmployees int             `bson:"present_employees" json:"present_employees"`
	AbsentEmployees  int             `bson:"absent_employees" json:"absent_employees"`
	HoursWorked      float64         `bson:"hours_worked" json:"hours_worked"`
	LaborCost        decimal.Decimal `bson:"labor_cost" json:"labor_cost"`
	UsageEntries     int             `bson:"usage_entries" json:"usage_entries"`
	MaterialsCost    decimal.Decimal `bson:"materials_cost" json:"materials_cost"`
	LowStock         []string        `bson:"low_stock" json:"low_stock"`
	OpenTasks        int             `bson:"open_tasks" json:"open_tasks"`
	CompletedTasks   int             `bson:"completed_tasks" json:"completed_tasks"`
	LaborHoursLogged float64         `bson:"labor_hours_logged" json:"labor_hours_logged"`
	CreatedAt        time.Time       `bson:"created_at" json:"created_at"`
}
