// Package ledger holds the in-memory operational state of a construction site:
// employees, materials, the material usage log, tasks, labor updates and the
// attendance history. All mutations go through the methods in this package.
package ledger

import (
	"math"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mamadbah2/buildtrack/internal/domain/models"
)

// Ledger is safe for concurrent use. Every operation runs to completion under
// a single lock so readers never observe a half-applied mutation.
type Ledger struct {
	mu sync.RWMutex

	employees []models.Employee
	materials []models.Material
	usage     []models.MaterialUsage
	tasks     []models.Task
	labor     []models.LaborUpdate
	history   models.AttendanceHistory

	now func() time.Time
	loc *time.Location
}

// Option customizes a Ledger.
type Option func(*Ledger)

// WithClock overrides the time source used for date stamps.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		if now != nil {
			l.now = now
		}
	}
}

// WithLocation sets the site timezone used to compute "today".
func WithLocation(loc *time.Location) Option {
	return func(l *Ledger) {
		if loc != nil {
			l.loc = loc
		}
	}
}

// New constructs an empty ledger.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		history: make(models.AttendanceHistory),
		now:     time.Now,
		loc:     time.UTC,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Today returns the current time in the site timezone.
func (l *Ledger) Today() time.Time {
	return l.now().In(l.loc)
}

// Snapshot returns a deep copy of the ledger.
func (l *Ledger) Snapshot() models.Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return models.Snapshot{
		TakenAt:      l.Today(),
		Employees:    slices.Clone(l.employees),
		Materials:    slices.Clone(l.materials),
		Usage:        slices.Clone(l.usage),
		Tasks:        slices.Clone(l.tasks),
		LaborUpdates: slices.Clone(l.labor),
		Attendance:   l.history.Clone(),
	}
}

// Employees returns the live roster.
func (l *Ledger) Employees() []models.Employee {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.employees)
}

// Materials returns the live inventory.
func (l *Ledger) Materials() []models.Material {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.materials)
}

// Usage returns the material usage log in insertion order.
func (l *Ledger) Usage() []models.MaterialUsage {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.usage)
}

// Tasks returns the task board.
func (l *Ledger) Tasks() []models.Task {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.tasks)
}

// LaborUpdates returns the labor log in insertion order.
func (l *Ledger) LaborUpdates() []models.LaborUpdate {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.labor)
}

// nextID implements "max live id + 1"; ids of deleted records may be reused.
func nextID[T any](items []T, id func(T) int) int {
	maxID := 0
	for _, item := range items {
		if v := id(item); v > maxID {
			maxID = v
		}
	}
	return maxID + 1
}

func required(value string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	return trimmed, trimmed != ""
}

func parseNumber(field, value string) (float64, error) {
	v, ok := required(value)
	if !ok {
		return 0, missing(field, msgRequiredFields)
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil || !finite(n) {
		return 0, &ValidationError{Field: field, Message: field + " must be a number"}
	}
	return n, nil
}

// finite rejects the NaN and Inf spellings that strconv.ParseFloat accepts.
func finite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}

func parseMoney(field, value string) (decimal.Decimal, error) {
	v, ok := required(value)
	if !ok {
		return decimal.Zero, missing(field, msgRequiredFields)
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, &ValidationError{Field: field, Message: field + " must be a number"}
	}
	return d, nil
}
