package handlers

import (
	"net/http"

	"hr-backend/internal/api/middleware"
	"hr-backend/internal/services"
	"hr-backend/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// EmployeeHandler holds dependencies for employee record operations.
type EmployeeHandler struct {
	service   services.EmployeeService
	validator *validator.Validate
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(service services.EmployeeService, validate *validator.Validate) *EmployeeHandler {
	return &EmployeeHandler{service: service, validator: validate}
}

// GetEmployees godoc
//	@Summary		List employees
//	@Description	Lists employee records with optional filters. Admin and HR only.
//	@Tags			employees
//	@Produce		json
//	@Param			department	query		string					false	"Filter by department"
//	@Param			status		query		string					false	"Filter by status"	Enums(active, probation, terminated, resigned, on-leave)
//	@Param			limit		query		int						false	"Page size"		default(20)
//	@Param			offset		query		int						false	"Page offset"	default(0)
//	@Success		200			{array}		dto.EmployeeResponse	"Employees"
//	@Router			/employees [get]
//	@Security		BearerAuth
func (h *EmployeeHandler) GetEmployees(c *gin.Context) {
	var req dto.ListEmployeesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	employees, err := h.service.List(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := make([]dto.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		resp = append(resp, MapEmployeeModelToResponse(e))
	}
	c.JSON(http.StatusOK, resp)
}

// GetEmployeeByID godoc
//	@Summary		Get an employee record
//	@Description	Retrieves one employee record by ID. Admin and HR only.
//	@Tags			employees
//	@Produce		json
//	@Param			id	path		string					true	"Employee ID"	Format(uuid)
//	@Success		200	{object}	dto.EmployeeResponse	"Employee"
//	@Failure		404	{object}	map[string]string		"Employee Not Found"
//	@Router			/employees/{id} [get]
//	@Security		BearerAuth
func (h *EmployeeHandler) GetEmployeeByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID format"})
		return
	}

	req := dto.GetEmployeeByIDRequest{ID: id}
	employee, err := h.service.GetByID(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapEmployeeModelToResponse(employee))
}

// CreateEmployee godoc
//	@Summary		Create an employee record
//	@Description	Creates an employee record for an existing user account. The employee code is generated when omitted. Admin and HR only.
//	@Tags			employees
//	@Accept			json
//	@Produce		json
//	@Param			employee	body		dto.CreateEmployeeRequest	true	"Employee record to create"
//	@Success		201			{object}	dto.EmployeeResponse		"Employee created"
//	@Failure		404			{object}	map[string]string			"User Not Found"
//	@Failure		409			{object}	map[string]string			"Employee record already exists"
//	@Router			/employees [post]
//	@Security		BearerAuth
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if userID, err := middleware.GetUserIDFromContext(c); err == nil {
		req.CreatedBy = &userID
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	employee, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MapEmployeeModelToResponse(employee))
}

// UpdateEmployee godoc
//	@Summary		Update an employee record
//	@Description	Updates fields of an employee record. Admin and HR only.
//	@Tags			employees
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string						true	"Employee ID"	Format(uuid)
//	@Param			employee	body		dto.UpdateEmployeeRequest	true	"Fields to update"
//	@Success		200			{object}	dto.EmployeeResponse		"Updated employee"
//	@Failure		404			{object}	map[string]string			"Employee Not Found"
//	@Router			/employees/{id} [put]
//	@Security		BearerAuth
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID format"})
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = id
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	employee, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapEmployeeModelToResponse(employee))
}

// DeleteEmployee godoc
//	@Summary		Delete an employee record
//	@Description	Removes an employee record. Admin only.
//	@Tags			employees
//	@Produce		json
//	@Param			id	path		string				true	"Employee ID"	Format(uuid)
//	@Success		204	"Employee deleted"
//	@Failure		404	{object}	map[string]string	"Employee Not Found"
//	@Router			/employees/{id} [delete]
//	@Security		BearerAuth
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID format"})
		return
	}

	req := dto.DeleteEmployeeRequest{ID: id}
	if err := h.service.Delete(c.Request.Context(), &req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
