package employees

import (
	"time"

	"github.com/Houeta/staff-api/internal/models"
)

// ToDTO copies an employee entity into its transfer representation field by field.
func ToDTO(employee models.Employee) models.EmployeeDTO {
	dto := models.EmployeeDTO{
		Username: employee.Username,
		Email:    employee.Email,
		Gender:   employee.Gender,
		Salary:   employee.Salary,
	}

	if employee.ID != nil {
		id := *employee.ID
		dto.ID = &id
	}

	if employee.Birthday != nil {
		birthday := models.NewDate(*employee.Birthday)
		dto.Birthday = &birthday
	}

	return dto
}

// ToEntity copies a transfer object into an employee entity field by field.
func ToEntity(dto models.EmployeeDTO) models.Employee {
	employee := models.Employee{
		Username: dto.Username,
		Email:    dto.Email,
		Gender:   dto.Gender,
		Salary:   dto.Salary,
	}

	if dto.ID != nil {
		id := *dto.ID
		employee.ID = &id
	}

	if dto.Birthday != nil {
		birthday := time.Date(dto.Birthday.Year(), dto.Birthday.Month(), dto.Birthday.Day(), 0, 0, 0, 0, time.UTC)
		employee.Birthday = &birthday
	}

	return employee
}
