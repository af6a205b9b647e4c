package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/buildtrack/internal/domain/models"
	"github.com/mamadbah2/buildtrack/internal/service/reporting"
)

// MaterialStore is the inventory part of the ledger.
type MaterialStore interface {
	Materials() []models.Material
	Usage() []models.MaterialUsage
	AddMaterial(form models.MaterialForm) (models.Material, error)
	EditMaterial(id int, form models.MaterialForm) (models.Material, error)
	DeleteMaterial(id int)
}

// UsageRecorder records material usage.
type UsageRecorder interface {
	RecordUsage(ctx context.Context, form models.UsageForm) (models.MaterialUsage, models.Material, error)
}

// MaterialHandler serves the material inventory.
type MaterialHandler struct {
	store    MaterialStore
	usage    UsageRecorder
	recorder OperationRecorder
	logger   *zap.Logger
}

// NewMaterialHandler constructs the inventory endpoints.
func NewMaterialHandler(store MaterialStore, usage UsageRecorder, recorder OperationRecorder, logger *zap.Logger) *MaterialHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MaterialHandler{store: store, usage: usage, recorder: recorderOrNop(recorder), logger: logger}
}

// List returns materials with their stock status.
func (h *MaterialHandler) List(c *gin.Context) {
	respond(c, http.StatusOK, nil, reporting.MaterialViews(h.store.Materials()))
}

// Add creates a material from the form.
func (h *MaterialHandler) Add(c *gin.Context) {
	var form models.MaterialForm
	if err := c.ShouldBindJSON(&form); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	mat, err := h.store.AddMaterial(form)
	if err != nil {
		rejectOperation(c, h.logger, h.recorder, opAddMaterial, "Material", err)
		return
	}
	succeeded(c, h.recorder, opAddMaterial, http.StatusCreated, reporting.MaterialView{Material: mat, Status: mat.StockStatus()})
}

// Edit replaces a material's fields.
func (h *MaterialHandler) Edit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var form models.MaterialForm
	if err := c.ShouldBindJSON(&form); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	mat, err := h.store.EditMaterial(id, form)
	if err != nil {
		rejectOperation(c, h.logger, h.recorder, opEditMaterial, "Material", err)
		return
	}
	succeeded(c, h.recorder, opEditMaterial, http.StatusOK, reporting.MaterialView{Material: mat, Status: mat.StockStatus()})
}

// Delete removes a material. Deleting an unknown id succeeds.
func (h *MaterialHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	h.store.DeleteMaterial(id)
	succeeded(c, h.recorder, opDeleteMaterial, http.StatusOK, nil)
}

// UsageLog returns the usage log.
func (h *MaterialHandler) UsageLog(c *gin.Context) {
	respond(c, http.StatusOK, nil, h.store.Usage())
}

// RecordUsage draws stock for a usage entry.
func (h *MaterialHandler) RecordUsage(c *gin.Context) {
	var form models.UsageForm
	if err := c.ShouldBindJSON(&form); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	usage, mat, err := h.usage.RecordUsage(c.Request.Context(), form)
	if err != nil {
		rejectOperation(c, h.logger, h.recorder, opRecordUsage, "Material", err)
		return
	}
	succeeded(c, h.recorder, opRecordUsage, http.StatusCreated, gin.H{
		"usage":    usage,
		"material": reporting.MaterialView{Material: mat, Status: mat.StockStatus()},
	})
}
