package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/buildtrack/internal/domain/models"
	"github.com/mamadbah2/buildtrack/internal/service/reporting"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	recentReports   = 30
)

// ReportArchive lists archived daily reports.
type ReportArchive interface {
	RecentReports(ctx context.Context, limit int64) ([]models.DailyReport, error)
}

// ReportDispatcher archives and sends the daily report on demand.
type ReportDispatcher interface {
	SendDailyReport(ctx context.Context) error
}

// ReportHandler serves the read-side views and the report trigger.
type ReportHandler struct {
	reports    *reporting.Service
	archive    ReportArchive
	dispatcher ReportDispatcher
	logger     *zap.Logger
}

// NewReportHandler constructs the read-side endpoints. archive and dispatcher may be nil.
func NewReportHandler(reports *reporting.Service, archive ReportArchive, dispatcher ReportDispatcher, logger *zap.Logger) *ReportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportHandler{reports: reports, archive: archive, dispatcher: dispatcher, logger: logger}
}

// Dashboard returns the overview.
func (h *ReportHandler) Dashboard(c *gin.Context) {
	respond(c, http.StatusOK, nil, h.reports.Dashboard())
}

// MonthlyAttendance returns the monthly aggregates for ?month=YYYY-MM (default: current month).
func (h *ReportHandler) MonthlyAttendance(c *gin.Context) {
	month, err := reporting.ParseMonth(c.Query("month"))
	if err != nil {
		badRequest(c, "month must be formatted YYYY-MM")
		return
	}
	respond(c, http.StatusOK, nil, h.reports.MonthlyAttendance(month))
}

// Payroll returns today's payroll estimate.
func (h *ReportHandler) Payroll(c *gin.Context) {
	respond(c, http.StatusOK, nil, h.reports.Payroll())
}

// PayrollExport streams the payroll as an xlsx workbook.
func (h *ReportHandler) PayrollExport(c *gin.Context) {
	f, err := reporting.PayrollWorkbook(h.reports.Payroll())
	if err != nil {
		h.logger.Error("failed to build payroll workbook", zap.Error(err))
		respond(c, http.StatusInternalServerError, failure("Error", "Could not export payroll"), nil)
		return
	}
	defer func() { _ = f.Close() }()

	buf, err := f.WriteToBuffer()
	if err != nil {
		h.logger.Error("failed to encode payroll workbook", zap.Error(err))
		respond(c, http.StatusInternalServerError, failure("Error", "Could not export payroll"), nil)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="payroll.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// Tasks returns the task board.
func (h *ReportHandler) Tasks(c *gin.Context) {
	respond(c, http.StatusOK, nil, h.reports.Tasks())
}

// Supervisor returns the task board summary.
func (h *ReportHandler) Supervisor(c *gin.Context) {
	respond(c, http.StatusOK, nil, h.reports.Supervisor())
}

// DailyReport returns today's report as it would be sent tonight.
func (h *ReportHandler) DailyReport(c *gin.Context) {
	respond(c, http.StatusOK, nil, h.reports.DailyReport())
}

// ArchivedReports lists recent archived daily reports.
func (h *ReportHandler) ArchivedReports(c *gin.Context) {
	if h.archive == nil {
		respond(c, http.StatusOK, nil, []models.DailyReport{})
		return
	}

	reports, err := h.archive.RecentReports(c.Request.Context(), recentReports)
	if err != nil {
		h.logger.Error("failed to list archived reports", zap.Error(err))
		respond(c, http.StatusBadGateway, failure("Error", "Report archive unavailable"), nil)
		return
	}
	if reports == nil {
		reports = []models.DailyReport{}
	}
	respond(c, http.StatusOK, nil, reports)
}

// SendDailyReport runs the nightly report job immediately.
func (h *ReportHandler) SendDailyReport(c *gin.Context) {
	if h.dispatcher == nil {
		respond(c, http.StatusServiceUnavailable, failure("Error", "Report delivery is not configured"), nil)
		return
	}

	if err := h.dispatcher.SendDailyReport(c.Request.Context()); err != nil {
		h.logger.Error("manual daily report failed", zap.Error(err))
		respond(c, http.StatusBadGateway, failure("Error", "Could not send the daily report"), nil)
		return
	}
	respond(c, http.StatusAccepted, success("Daily report sent"), nil)
}
