package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mamadbah2/buildtrack/internal/config"
	"github.com/mamadbah2/buildtrack/internal/ledger"
	"github.com/mamadbah2/buildtrack/internal/metrics"
	"github.com/mamadbah2/buildtrack/internal/repository/mongodb"
	"github.com/mamadbah2/buildtrack/internal/repository/sheets"
	"github.com/mamadbah2/buildtrack/internal/scheduler"
	"github.com/mamadbah2/buildtrack/internal/server/handlers"
	"github.com/mamadbah2/buildtrack/internal/server/router"
	inventorysvc "github.com/mamadbah2/buildtrack/internal/service/inventory"
	notifysvc "github.com/mamadbah2/buildtrack/internal/service/notify"
	reportingsvc "github.com/mamadbah2/buildtrack/internal/service/reporting"
	"github.com/mamadbah2/buildtrack/internal/service/session"
	whatsappclient "github.com/mamadbah2/buildtrack/pkg/clients/whatsapp"
	"github.com/mamadbah2/buildtrack/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Log.Level))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	// Money renders as JSON numbers, the way the dashboard expects it.
	decimal.MarshalJSONWithoutQuotes = true

	loc, err := cfg.Site.Location()
	if err != nil {
		baseLogger.Fatal("invalid site timezone", zap.Error(err))
	}

	site := ledger.New(ledger.WithLocation(loc))
	if cfg.Site.SeedSampleData {
		site.Seed(cfg.Site.SampleAttendanceRate, nil)
		baseLogger.Info("sample site data loaded", zap.Float64("attendance_rate", cfg.Site.SampleAttendanceRate))
	}

	// Integrations are optional sinks. Interface values stay nil unless enabled.
	var (
		archive       scheduler.Archive
		reportArchive handlers.ReportArchive
		usageMirror   inventorysvc.UsageMirror
		notifier      notifysvc.Notifier
	)

	if cfg.MongoDB.Enabled() {
		mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
		if err != nil {
			baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		archive = mongoRepo
		reportArchive = mongoRepo
		baseLogger.Info("daily report archive enabled", zap.String("db", cfg.MongoDB.DBName))
	} else {
		baseLogger.Warn("MONGODB_URI missing, daily reports will not be archived")
	}

	if cfg.Sheets.Enabled() {
		sheetsRepo, err := sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		usageMirror = sheetsRepo
		baseLogger.Info("usage mirror enabled")
	}

	if cfg.WhatsApp.Enabled() {
		whatsClient := whatsappclient.NewClient(cfg.WhatsApp)
		notifier = notifysvc.NewWhatsAppNotifier(whatsClient, cfg.WhatsApp.SiteManagerID, baseLogger.Named("svc.notify"))
		baseLogger.Info("whatsapp notifications enabled")
	} else {
		baseLogger.Warn("whatsapp token missing, site manager notifications disabled")
	}

	m := metrics.New(func() int {
		low := 0
		for _, mat := range site.Materials() {
			if mat.LowStock() {
				low++
			}
		}
		return low
	})

	reportingSvc := reportingsvc.NewService(site, baseLogger.Named("svc.reporting"))
	inventorySvc := inventorysvc.NewService(site, usageMirror, notifier, baseLogger.Named("svc.inventory"))
	gate := session.NewGate(cfg.Auth, baseLogger.Named("svc.session"))

	sched := scheduler.NewScheduler(cfg.Reporting.CronSchedule, loc, reportingSvc, archive, notifier, baseLogger.Named("scheduler"))
	if err := sched.Start(); err != nil {
		baseLogger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	// The manual trigger answers 503 unless a run has somewhere to go.
	var dispatcher handlers.ReportDispatcher
	if sched.Delivers() {
		dispatcher = sched
	} else {
		baseLogger.Warn("no archive or notifier configured, daily reports are disabled")
	}

	engine := router.New(router.Handlers{
		Auth:      handlers.NewAuthHandler(gate, baseLogger.Named("handlers.auth")),
		Employees: handlers.NewEmployeeHandler(site, m, baseLogger.Named("handlers.employees")),
		Materials: handlers.NewMaterialHandler(site, inventorySvc, m, baseLogger.Named("handlers.materials")),
		Tasks:     handlers.NewTaskHandler(site, m, baseLogger.Named("handlers.tasks")),
		Reports:   handlers.NewReportHandler(reportingSvc, reportArchive, dispatcher, baseLogger.Named("handlers.reports")),
	}, m, baseLogger.Named("router"))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
