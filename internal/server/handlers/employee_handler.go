package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/buildtrack/internal/domain/models"
)

// EmployeeStore is the roster part of the ledger.
type EmployeeStore interface {
	Employees() []models.Employee
	AddEmployee(form models.EmployeeForm) (models.Employee, error)
	EditEmployee(id int, form models.EmployeeForm) (models.Employee, error)
	DeleteEmployee(id int)
	ToggleAttendance(id int) (models.Employee, error)
}

// EmployeeHandler serves the employee directory.
type EmployeeHandler struct {
	store    EmployeeStore
	recorder OperationRecorder
	logger   *zap.Logger
}

// NewEmployeeHandler constructs the employee endpoints.
func NewEmployeeHandler(store EmployeeStore, recorder OperationRecorder, logger *zap.Logger) *EmployeeHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmployeeHandler{store: store, recorder: recorderOrNop(recorder), logger: logger}
}

// List returns the roster.
func (h *EmployeeHandler) List(c *gin.Context) {
	respond(c, http.StatusOK, nil, h.store.Employees())
}

// Add creates an employee from the form.
func (h *EmployeeHandler) Add(c *gin.Context) {
	var form models.EmployeeForm
	if err := c.ShouldBindJSON(&form); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	emp, err := h.store.AddEmployee(form)
	if err != nil {
		rejectOperation(c, h.logger, h.recorder, opAddEmployee, "Employee", err)
		return
	}
	succeeded(c, h.recorder, opAddEmployee, http.StatusCreated, emp)
}

// Edit replaces an employee's fields.
func (h *EmployeeHandler) Edit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var form models.EmployeeForm
	if err := c.ShouldBindJSON(&form); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	emp, err := h.store.EditEmployee(id, form)
	if err != nil {
		rejectOperation(c, h.logger, h.recorder, opEditEmployee, "Employee", err)
		return
	}
	succeeded(c, h.recorder, opEditEmployee, http.StatusOK, emp)
}

// Delete removes an employee. Deleting an unknown id succeeds.
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	h.store.DeleteEmployee(id)
	succeeded(c, h.recorder, opDeleteEmployee, http.StatusOK, nil)
}

// ToggleAttendance flips today's attendance for an employee.
func (h *EmployeeHandler) ToggleAttendance(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	emp, err := h.store.ToggleAttendance(id)
	if err != nil {
		rejectOperation(c, h.logger, h.recorder, opToggle, "Employee", err)
		return
	}
	succeeded(c, h.recorder, opToggle, http.StatusOK, emp)
}
