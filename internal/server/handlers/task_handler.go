package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/buildtrack/internal/domain/models"
)

// TaskStore is the supervisor board part of the ledger.
type TaskStore interface {
	SaveTask(task models.Task) (models.Task, error)
	UpdateTaskProgress(id, progress int) (models.Task, error)
	AssignTask(id, employeeID int) (models.Task, error)
	RecordLaborUpdate(form models.LaborUpdateForm) models.LaborUpdate
	LaborUpdates() []models.LaborUpdate
}

// ProgressRequest is the payload for a progress change.
type ProgressRequest struct {
	Progress int `json:"progress"`
}

// AssignRequest is the payload for reassigning a task.
type AssignRequest struct {
	EmployeeID int `json:"employeeId"`
}

// TaskHandler serves the task board and labor log.
type TaskHandler struct {
	store    TaskStore
	recorder OperationRecorder
	logger   *zap.Logger
}

// NewTaskHandler constructs the task endpoints.
func NewTaskHandler(store TaskStore, recorder OperationRecorder, logger *zap.Logger) *TaskHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TaskHandler{store: store, recorder: recorderOrNop(recorder), logger: logger}
}

// Save creates or updates a task.
func (h *TaskHandler) Save(c *gin.Context) {
	var task models.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	saved, err := h.store.SaveTask(task)
	if err != nil {
		rejectOperation(c, h.logger, h.recorder, opSaveTask, "Task", err)
		return
	}
	succeeded(c, h.recorder, opSaveTask, http.StatusOK, saved)
}

// UpdateProgress sets a task's progress.
func (h *TaskHandler) UpdateProgress(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req ProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	task, err := h.store.UpdateTaskProgress(id, req.Progress)
	if err != nil {
		rejectOperation(c, h.logger, h.recorder, opTaskProgress, "Task", err)
		return
	}
	succeeded(c, h.recorder, opTaskProgress, http.StatusOK, task)
}

// Assign points a task at an employee.
func (h *TaskHandler) Assign(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	task, err := h.store.AssignTask(id, req.EmployeeID)
	if err != nil {
		rejectOperation(c, h.logger, h.recorder, opAssignTask, "Task", err)
		return
	}
	succeeded(c, h.recorder, opAssignTask, http.StatusOK, task)
}

// LaborLog returns the labor log.
func (h *TaskHandler) LaborLog(c *gin.Context) {
	respond(c, http.StatusOK, nil, h.store.LaborUpdates())
}

// RecordLabor appends a labor update.
func (h *TaskHandler) RecordLabor(c *gin.Context) {
	var form models.LaborUpdateForm
	if err := c.ShouldBindJSON(&form); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	update := h.store.RecordLaborUpdate(form)
	succeeded(c, h.recorder, opLaborUpdate, http.StatusCreated, update)
}
