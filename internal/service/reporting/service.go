package reporting

import (
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/buildtrack/internal/domain/models"
)

// Source provides ledger snapshots.
type Source interface {
	Snapshot() models.Snapshot
}

// Service exposes the read-side views over the ledger. Every call takes a
// fresh snapshot; nothing is cached between calls.
type Service struct {
	source Source
	logger *zap.Logger
}

// NewService wires a new reporting service instance.
func NewService(source Source, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{source: source, logger: logger}
}

// Dashboard returns the overview cards and lists.
func (s *Service) Dashboard() DashboardSummary {
	return Dashboard(s.source.Snapshot())
}

// Payroll returns today's payroll estimate.
func (s *Service) Payroll() PayrollSummary {
	return Payroll(s.source.Snapshot().Employees)
}

// Tasks returns the board with assignees resolved.
func (s *Service) Tasks() []TaskView {
	return TaskViews(s.source.Snapshot())
}

// Supervisor returns the task board summary.
func (s *Service) Supervisor() SupervisorSummary {
	return Supervisor(s.source.Snapshot())
}

// MonthlyAttendance aggregates the attendance history for the month containing month.
// A zero month means the current month.
func (s *Service) MonthlyAttendance(month time.Time) MonthlyAttendanceReport {
	snap := s.source.Snapshot()
	if month.IsZero() {
		month = snap.TakenAt
	}
	return MonthlyAttendance(snap.Employees, snap.Attendance, month, snap.TakenAt)
}

// DailyReport builds the end-of-day summary for today.
func (s *Service) DailyReport() models.DailyReport {
	snap := s.source.Snapshot()
	report := BuildDailyReport(snap, snap.TakenAt)
	s.logger.Debug("daily report built",
		zap.Int("present", report.PresentEmployees),
		zap.Int("usage_entries", report.UsageEntries),
		zap.Strings("low_stock", report.LowStock))
	return report
}
