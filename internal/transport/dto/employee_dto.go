package dto

import (
	"time"

	"hr-backend/internal/models"

	"github.com/google/uuid"
)

// CreateEmployeeRequest defines the structure for creating an employee record.
type CreateEmployeeRequest struct {
	UserID         uuid.UUID  `json:"user_id" validate:"required"`
	EmployeeCode   string     `json:"employee_code" validate:"omitempty,max=32"` // generated when empty
	Department     string     `json:"department" validate:"required,max=100"`
	Position       string     `json:"position" validate:"required,max=200"`
	DateJoined     *time.Time `json:"date_joined"`
	SalaryAmount   float64    `json:"salary_amount" validate:"omitempty,gte=0"`
	SalaryCurrency string     `json:"salary_currency" validate:"omitempty,len=3"`
	Address        string     `json:"address" validate:"omitempty,max=500"`
	EmergencyName  string     `json:"emergency_name" validate:"omitempty,max=200"`
	EmergencyPhone string     `json:"emergency_phone" validate:"omitempty,max=32"`
	EmergencyRel   string     `json:"emergency_relation" validate:"omitempty,max=100"`
	DateOfBirth    *time.Time `json:"date_of_birth"`
	CreatedBy      *uuid.UUID `json:"-"` // Set from user context
}

// GetEmployeeByIDRequest fetches one employee record.
type GetEmployeeByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// ListEmployeesRequest defines listing filters.
type ListEmployeesRequest struct {
	Department string `form:"department" validate:"omitempty,max=100"`
	Status     string `form:"status" validate:"omitempty,oneof=active probation terminated resigned on-leave"`
	Limit      int    `form:"limit,default=20" validate:"omitempty,gte=0"`
	Offset     int    `form:"offset,default=0" validate:"omitempty,gte=0"`
}

// UpdateEmployeeRequest updates an employee record.
type UpdateEmployeeRequest struct {
	ID             uuid.UUID  `json:"-" validate:"required"`
	Department     *string    `json:"department" validate:"omitempty,max=100"`
	Position       *string    `json:"position" validate:"omitempty,max=200"`
	Status         *string    `json:"status" validate:"omitempty,oneof=active probation terminated resigned on-leave"`
	SalaryAmount   *float64   `json:"salary_amount" validate:"omitempty,gte=0"`
	SalaryCurrency *string    `json:"salary_currency" validate:"omitempty,len=3"`
	Address        *string    `json:"address" validate:"omitempty,max=500"`
	EmergencyName  *string    `json:"emergency_name" validate:"omitempty,max=200"`
	EmergencyPhone *string    `json:"emergency_phone" validate:"omitempty,max=32"`
	EmergencyRel   *string    `json:"emergency_relation" validate:"omitempty,max=100"`
	DateOfBirth    *time.Time `json:"date_of_birth"`
}

// DeleteEmployeeRequest deletes an employee record.
type DeleteEmployeeRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// EmployeeResponse is the public representation of an employee record.
type EmployeeResponse struct {
	ID             uuid.UUID             `json:"id"`
	UserID         uuid.UUID             `json:"user_id"`
	User           *UserResponse         `json:"user,omitempty"`
	EmployeeCode   string                `json:"employee_code"`
	Department     string                `json:"department"`
	Position       string                `json:"position"`
	DateJoined     time.Time             `json:"date_joined"`
	Status         models.EmployeeStatus `json:"status"`
	SalaryAmount   float64               `json:"salary_amount"`
	SalaryCurrency string                `json:"salary_currency"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}
