package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mamadbah2/buildtrack/internal/domain/models"
	"github.com/mamadbah2/buildtrack/internal/metrics"
)

var (
	successLogin  = models.Notice{Title: "Login successful", Description: "Welcome to BuildTrack!", Variant: models.NoticeDefault}
	successLogout = models.Notice{Title: "Logged out", Description: "You have been logged out successfully", Variant: models.NoticeDefault}
)

// Operation names, used as metric labels and to look up success notices.
const (
	opAddEmployee    = "add_employee"
	opEditEmployee   = "edit_employee"
	opDeleteEmployee = "delete_employee"
	opToggle         = "toggle_attendance"
	opAddMaterial    = "add_material"
	opEditMaterial   = "edit_material"
	opDeleteMaterial = "delete_material"
	opRecordUsage    = "record_usage"
	opSaveTask       = "save_task"
	opTaskProgress   = "update_task_progress"
	opAssignTask     = "assign_task"
	opLaborUpdate    = "record_labor_update"
)

var successMessages = map[string]string{
	opAddEmployee:    "Employee added successfully",
	opEditEmployee:   "Employee updated successfully",
	opDeleteEmployee: "Employee deleted successfully",
	opToggle:         "Attendance updated",
	opAddMaterial:    "Material added successfully",
	opEditMaterial:   "Material updated successfully",
	opDeleteMaterial: "Material deleted successfully",
	opRecordUsage:    "Material usage recorded successfully",
	opSaveTask:       "Task saved successfully",
	opTaskProgress:   "Task progress updated",
	opAssignTask:     "Task assignment updated",
	opLaborUpdate:    "Labor update recorded",
}

func succeeded(c *gin.Context, rec OperationRecorder, op string, status int, data any) {
	rec.RecordOperation(op, metrics.OutcomeSuccess)
	respond(c, status, success(successMessages[op]), data)
}
