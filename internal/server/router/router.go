package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/buildtrack/internal/metrics"
	"github.com/mamadbah2/buildtrack/internal/server/handlers"
)

// Handlers groups the HTTP adapters mounted by the router.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Employees *handlers.EmployeeHandler
	Materials *handlers.MaterialHandler
	Tasks     *handlers.TaskHandler
	Reports   *handlers.ReportHandler
}

// New wires the Gin engine with required routes and middlewares. m may be nil.
func New(h Handlers, m *metrics.Metrics, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))
	if m != nil {
		r.Use(metricsMiddleware(m))
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/logout", h.Auth.Logout)
	auth.GET("/status", h.Auth.Status)

	api := r.Group("/api", h.Auth.RequireLogin())

	api.GET("/dashboard", h.Reports.Dashboard)
	api.GET("/daily-report", h.Reports.DailyReport)
	api.POST("/daily-report/send", h.Reports.SendDailyReport)
	api.GET("/reports", h.Reports.ArchivedReports)

	api.GET("/employees", h.Employees.List)
	api.POST("/employees", h.Employees.Add)
	api.PUT("/employees/:id", h.Employees.Edit)
	api.DELETE("/employees/:id", h.Employees.Delete)
	api.POST("/employees/:id/attendance", h.Employees.ToggleAttendance)
	api.GET("/attendance/monthly", h.Reports.MonthlyAttendance)

	api.GET("/materials", h.Materials.List)
	api.POST("/materials", h.Materials.Add)
	api.GET("/materials/usage", h.Materials.UsageLog)
	api.POST("/materials/usage", h.Materials.RecordUsage)
	api.PUT("/materials/:id", h.Materials.Edit)
	api.DELETE("/materials/:id", h.Materials.Delete)

	api.GET("/payroll", h.Reports.Payroll)
	api.GET("/payroll/export", h.Reports.PayrollExport)

	api.GET("/tasks", h.Reports.Tasks)
	api.PUT("/tasks", h.Tasks.Save)
	api.PATCH("/tasks/:id/progress", h.Tasks.UpdateProgress)
	api.PATCH("/tasks/:id/assignee", h.Tasks.Assign)
	api.GET("/labor-updates", h.Tasks.LaborLog)
	api.POST("/labor-updates", h.Tasks.RecordLabor)
	api.GET("/supervisor", h.Reports.Supervisor)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}

// metricsMiddleware labels requests by route template so ids do not explode
// label cardinality.
func metricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
