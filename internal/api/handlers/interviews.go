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

// InterviewHandler holds dependencies for interview scheduling operations.
type InterviewHandler struct {
	service   services.InterviewService
	validator *validator.Validate
}

// NewInterviewHandler creates a new InterviewHandler.
func NewInterviewHandler(service services.InterviewService, validate *validator.Validate) *InterviewHandler {
	return &InterviewHandler{service: service, validator: validate}
}

// GetInterviews godoc
//	@Summary		List interviews
//	@Description	Lists interviews with optional filters. Admin and HR only.
//	@Tags			interviews
//	@Produce		json
//	@Param			job_id			query		string					false	"Filter by job"			Format(uuid)
//	@Param			candidate_id	query		string					false	"Filter by candidate"	Format(uuid)
//	@Param			status			query		string					false	"Filter by status"		Enums(scheduled, completed, cancelled, rescheduled)
//	@Param			limit			query		int						false	"Page size"		default(20)
//	@Param			offset			query		int						false	"Page offset"	default(0)
//	@Success		200				{array}		dto.InterviewResponse	"Interviews"
//	@Router			/interviews [get]
//	@Security		BearerAuth
func (h *InterviewHandler) GetInterviews(c *gin.Context) {
	var req dto.ListInterviewsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	interviews, err := h.service.List(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := make([]dto.InterviewResponse, 0, len(interviews))
	for _, iv := range interviews {
		resp = append(resp, MapInterviewModelToResponse(iv))
	}
	c.JSON(http.StatusOK, resp)
}

// GetMyInterviews godoc
//	@Summary		List my interviews
//	@Description	Lists the authenticated candidate's interviews.
//	@Tags			interviews
//	@Produce		json
//	@Success		200	{array}		dto.InterviewResponse	"Interviews"
//	@Failure		401	{object}	map[string]string		"Unauthorized"
//	@Router			/interviews/my [get]
//	@Security		BearerAuth
func (h *InterviewHandler) GetMyInterviews(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	interviews, err := h.service.ListMine(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := make([]dto.InterviewResponse, 0, len(interviews))
	for _, iv := range interviews {
		resp = append(resp, MapInterviewModelToResponse(iv))
	}
	c.JSON(http.StatusOK, resp)
}

// GetInterviewByID godoc
//	@Summary		Get an interview
//	@Description	Retrieves one interview by ID.
//	@Tags			interviews
//	@Produce		json
//	@Param			id	path		string					true	"Interview ID"	Format(uuid)
//	@Success		200	{object}	dto.InterviewResponse	"Interview"
//	@Failure		404	{object}	map[string]string		"Interview Not Found"
//	@Router			/interviews/{id} [get]
//	@Security		BearerAuth
func (h *InterviewHandler) GetInterviewByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid interview ID format"})
		return
	}

	req := dto.GetInterviewByIDRequest{ID: id}
	interview, err := h.service.GetByID(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapInterviewModelToResponse(interview))
}

// ScheduleInterview godoc
//	@Summary		Schedule an interview
//	@Description	Schedules an interview for an application. Admin and HR only.
//	@Tags			interviews
//	@Accept			json
//	@Produce		json
//	@Param			interview	body		dto.ScheduleInterviewRequest	true	"Interview to schedule"
//	@Success		201			{object}	dto.InterviewResponse			"Interview scheduled"
//	@Failure		404			{object}	map[string]string				"Application Not Found"
//	@Router			/interviews [post]
//	@Security		BearerAuth
func (h *InterviewHandler) ScheduleInterview(c *gin.Context) {
	schedulerID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ScheduleInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ScheduledBy = schedulerID
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	interview, err := h.service.Schedule(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MapInterviewModelToResponse(interview))
}

// UpdateInterview godoc
//	@Summary		Update an interview
//	@Description	Reschedules an interview or records its outcome. Admin and HR only.
//	@Tags			interviews
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string						true	"Interview ID"	Format(uuid)
//	@Param			interview	body		dto.UpdateInterviewRequest	true	"Fields to update"
//	@Success		200			{object}	dto.InterviewResponse		"Updated interview"
//	@Failure		404			{object}	map[string]string			"Interview Not Found"
//	@Router			/interviews/{id} [put]
//	@Security		BearerAuth
func (h *InterviewHandler) UpdateInterview(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid interview ID format"})
		return
	}

	var req dto.UpdateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = id
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	interview, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapInterviewModelToResponse(interview))
}

// DeleteInterview godoc
//	@Summary		Delete an interview
//	@Description	Removes an interview. Admin only.
//	@Tags			interviews
//	@Produce		json
//	@Param			id	path		string				true	"Interview ID"	Format(uuid)
//	@Success		204	"Interview deleted"
//	@Failure		404	{object}	map[string]string	"Interview Not Found"
//	@Router			/interviews/{id} [delete]
//	@Security		BearerAuth
func (h *InterviewHandler) DeleteInterview(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid interview ID format"})
		return
	}

	req := dto.DeleteInterviewRequest{ID: id}
	if err := h.service.Delete(c.Request.Context(), &req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
