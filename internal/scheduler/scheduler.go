package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/buildtrack/internal/domain/models"
	"github.com/mamadbah2/buildtrack/internal/service/notify"
)

const jobTimeout = 2 * time.Minute

// ReportBuilder produces the end-of-day report.
type ReportBuilder interface {
	DailyReport() models.DailyReport
}

// Archive stores end-of-day reports.
type Archive interface {
	SaveDailyReport(ctx context.Context, report models.DailyReport) error
}

// Scheduler runs the nightly site report job.
type Scheduler struct {
	cron     *cron.Cron
	spec     string
	reports  ReportBuilder
	archive  Archive
	notifier notify.Notifier
	delivers bool
	logger   *zap.Logger
}

// NewScheduler creates a scheduler that fires on spec (standard 5-field cron)
// in the site timezone. archive and notifier may be nil.
func NewScheduler(spec string, loc *time.Location, reports ReportBuilder, archive Archive, notifier notify.Notifier, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	delivers := archive != nil || notifier != nil
	if notifier == nil {
		notifier = notify.Nop{}
	}
	if loc == nil {
		loc = time.UTC
	}

	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		spec:     spec,
		reports:  reports,
		archive:  archive,
		notifier: notifier,
		delivers: delivers,
		logger:   logger,
	}
}

// Start registers the report job and starts the cron loop.
func (s *Scheduler) Start() error {
	s.logger.Info("starting scheduler", zap.String("schedule", s.spec))

	if _, err := s.cron.AddFunc(s.spec, s.runDailyReport); err != nil {
		return fmt.Errorf("schedule daily report %q: %w", s.spec, err)
	}

	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

// Delivers reports whether an archive or a notifier is attached, i.e. whether
// a report run has anywhere to go.
func (s *Scheduler) Delivers() bool { return s.delivers }

func (s *Scheduler) runDailyReport() {
	if !s.delivers {
		s.logger.Debug("no archive or notifier configured, skipping daily report")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if err := s.SendDailyReport(ctx); err != nil {
		s.logger.Error("daily report job failed", zap.Error(err))
	}
}

// SendDailyReport builds today's report, archives it and sends it to the site
// manager. Archive and delivery are attempted independently; the first error
// is returned.
func (s *Scheduler) SendDailyReport(ctx context.Context) error {
	s.logger.Info("generating daily report")
	report := s.reports.DailyReport()

	var firstErr error

	if s.archive != nil {
		if err := s.archive.SaveDailyReport(ctx, report); err != nil {
			s.logger.Error("failed to archive daily report", zap.Error(err))
			firstErr = err
		}
	}

	if err := s.notifier.DailyReport(ctx, report); err != nil {
		s.logger.Error("failed to send daily report", zap.Error(err))
		if firstErr == nil {
			firstErr = err
		}
	} else {
		s.logger.Info("daily report sent", zap.Time("date", report.Date))
	}

	return firstErr
}
