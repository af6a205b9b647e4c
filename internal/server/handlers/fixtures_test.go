package handlers

import "github.com/mamadbah2/buildtrack/internal/domain/models"

func employeeForm(name string) models.EmployeeForm {
	return models.EmployeeForm{Name: name, Role: "Mason", DailyRate: "150"}
}

func materialForm(name, current string) models.MaterialForm {
	return models.MaterialForm{Name: name, Unit: "bags", Current: models.FormNumber(current), Minimum: "5", Cost: "12.50"}
}

func taskWithTitle(title string) models.Task {
	return models.Task{Title: title, Project: "Block A"}
}
