package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/buildtrack/internal/domain/models"
	"github.com/mamadbah2/buildtrack/internal/ledger"
	"github.com/mamadbah2/buildtrack/internal/metrics"
)

// Response is the envelope returned by every API endpoint. Notice is set for
// user actions and mirrors the toast the dashboard shows.
type Response struct {
	Notice *models.Notice `json:"notice,omitempty"`
	Data   any            `json:"data,omitempty"`
}

// OperationRecorder counts ledger operation outcomes.
type OperationRecorder interface {
	RecordOperation(operation, outcome string)
}

type nopRecorder struct{}

func (nopRecorder) RecordOperation(string, string) {}

func recorderOrNop(r OperationRecorder) OperationRecorder {
	if r == nil {
		return nopRecorder{}
	}
	return r
}

func success(description string) *models.Notice {
	return &models.Notice{Title: "Success", Description: description, Variant: models.NoticeDefault}
}

func failure(title, description string) *models.Notice {
	return &models.Notice{Title: title, Description: description, Variant: models.NoticeDestructive}
}

func respond(c *gin.Context, status int, notice *models.Notice, data any) {
	c.JSON(status, Response{Notice: notice, Data: data})
}

func badRequest(c *gin.Context, description string) {
	respond(c, http.StatusBadRequest, failure("Error", description), nil)
}

// pathID parses the :id route parameter, answering 400 on failure.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}

// rejectOperation maps a ledger error to a status and notice. Rejections are
// an expected outcome of user input and are only logged at debug level.
func rejectOperation(c *gin.Context, logger *zap.Logger, rec OperationRecorder, op, entity string, err error) {
	var (
		validationErr *ledger.ValidationError
		stockErr      *ledger.InsufficientStockError
	)

	switch {
	case errors.As(err, &validationErr):
		rec.RecordOperation(op, metrics.OutcomeRejected)
		logger.Debug("operation rejected", zap.String("operation", op), zap.String("field", validationErr.Field), zap.Error(err))
		respond(c, http.StatusBadRequest, failure("Error", validationErr.Message), nil)
	case errors.As(err, &stockErr):
		rec.RecordOperation(op, metrics.OutcomeRejected)
		logger.Debug("operation rejected", zap.String("operation", op), zap.Error(err))
		respond(c, http.StatusConflict, failure("Error", "Not enough stock available"), nil)
	case errors.Is(err, ledger.ErrNotFound):
		rec.RecordOperation(op, metrics.OutcomeNotFound)
		respond(c, http.StatusNotFound, failure("Error", entity+" not found"), nil)
	default:
		logger.Error("operation failed", zap.String("operation", op), zap.Error(err))
		respond(c, http.StatusInternalServerError, failure("Error", "Something went wrong"), nil)
	}
}
