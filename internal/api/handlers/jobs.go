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

// JobHandler holds dependencies for job posting operations.
type JobHandler struct {
	service   services.JobService
	validator *validator.Validate
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service services.JobService, validate *validator.Validate) *JobHandler {
	return &JobHandler{service: service, validator: validate}
}

// GetJobs godoc
//	@Summary		List job postings
//	@Description	Public listing of job postings with optional filters.
//	@Tags			jobs
//	@Produce		json
//	@Param			status		query		string				false	"Filter by status"	Enums(active, closed)
//	@Param			department	query		string				false	"Filter by department"
//	@Param			active_only	query		bool				false	"Only active postings"
//	@Param			limit		query		int					false	"Page size"		default(20)
//	@Param			offset		query		int					false	"Page offset"	default(0)
//	@Success		200			{array}		dto.JobResponse		"Jobs"
//	@Failure		500			{object}	map[string]string	"Internal Server Error"
//	@Router			/jobs [get]
func (h *JobHandler) GetJobs(c *gin.Context) {
	var req dto.ListJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	jobs, err := h.service.List(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := make([]dto.JobResponse, 0, len(jobs))
	for _, j := range jobs {
		resp = append(resp, MapJobModelToJobResponse(j))
	}
	c.JSON(http.StatusOK, resp)
}

// GetJobByID godoc
//	@Summary		Get a job posting
//	@Description	Retrieves one job posting by ID.
//	@Tags			jobs
//	@Produce		json
//	@Param			id	path		string				true	"Job ID"	Format(uuid)
//	@Success		200	{object}	dto.JobResponse		"Job"
//	@Failure		404	{object}	map[string]string	"Job Not Found"
//	@Router			/jobs/{id} [get]
func (h *JobHandler) GetJobByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	req := dto.GetJobByIDRequest{ID: id}
	job, err := h.service.GetByID(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapJobModelToJobResponse(job))
}

// CreateJob godoc
//	@Summary		Create a job posting
//	@Description	Creates a new job posting. Admin and HR only.
//	@Tags			jobs
//	@Accept			json
//	@Produce		json
//	@Param			job	body		dto.CreateJobRequest	true	"Job to create"
//	@Success		201	{object}	dto.JobResponse			"Job created"
//	@Failure		400	{object}	map[string]string		"Bad Request"
//	@Router			/jobs [post]
//	@Security		BearerAuth
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if userID, err := middleware.GetUserIDFromContext(c); err == nil {
		req.PostedBy = &userID
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	job, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MapJobModelToJobResponse(job))
}

// UpdateJob godoc
//	@Summary		Update a job posting
//	@Description	Updates fields of an existing job posting. Admin and HR only.
//	@Tags			jobs
//	@Accept			json
//	@Produce		json
//	@Param			id	path		string					true	"Job ID"	Format(uuid)
//	@Param			job	body		dto.UpdateJobRequest	true	"Fields to update"
//	@Success		200	{object}	dto.JobResponse			"Updated job"
//	@Failure		404	{object}	map[string]string		"Job Not Found"
//	@Router			/jobs/{id} [put]
//	@Security		BearerAuth
func (h *JobHandler) UpdateJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = id
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	job, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapJobModelToJobResponse(job))
}

// ToggleJobStatus godoc
//	@Summary		Toggle job visibility
//	@Description	Flips a job posting between active and inactive. Admin and HR only.
//	@Tags			jobs
//	@Produce		json
//	@Param			id	path		string				true	"Job ID"	Format(uuid)
//	@Success		200	{object}	dto.JobResponse		"Updated job"
//	@Failure		404	{object}	map[string]string	"Job Not Found"
//	@Router			/jobs/{id}/toggle [patch]
//	@Security		BearerAuth
func (h *JobHandler) ToggleJobStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	req := dto.ToggleJobStatusRequest{ID: id}
	job, err := h.service.ToggleActive(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapJobModelToJobResponse(job))
}

// DeleteJob godoc
//	@Summary		Delete a job posting
//	@Description	Removes a job posting. Admin only.
//	@Tags			jobs
//	@Produce		json
//	@Param			id	path		string				true	"Job ID"	Format(uuid)
//	@Success		204	"Job deleted"
//	@Failure		404	{object}	map[string]string	"Job Not Found"
//	@Router			/jobs/{id} [delete]
//	@Security		BearerAuth
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	req := dto.DeleteJobRequest{ID: id}
	if err := h.service.Delete(c.Request.Context(), &req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
