package handlers

import (
	"log"
	"net/http"

	"hr-backend/internal/api/middleware"
	"hr-backend/internal/services"
	"hr-backend/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ApplicationHandler holds dependencies for application intake and review.
type ApplicationHandler struct {
	service   services.ApplicationService
	validator *validator.Validate
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(service services.ApplicationService, validate *validator.Validate) *ApplicationHandler {
	return &ApplicationHandler{service: service, validator: validate}
}

// Apply godoc
//	@Summary		Submit a job application
//	@Description	Submits an application for a job, optionally with a resume file. Works for both anonymous visitors and logged-in candidates; when a valid token is presented the application is linked to the account.
//	@Tags			applications
//	@Accept			mpfd
//	@Produce		json
//	@Param			job_id			formData	string					true	"Job ID"	Format(uuid)
//	@Param			candidate_name	formData	string					true	"Candidate full name"
//	@Param			candidate_email	formData	string					true	"Candidate email"
//	@Param			candidate_phone	formData	string					false	"Candidate phone"
//	@Param			cover_letter	formData	string					false	"Cover letter"
//	@Param			resume			formData	file					false	"Resume file (pdf, doc, docx, txt or image)"
//	@Success		201				{object}	dto.ApplicationResponse	"Application created"
//	@Failure		400				{object}	map[string]string		"Bad Request - invalid fields or unsupported resume"
//	@Failure		404				{object}	map[string]string		"Job Not Found"
//	@Failure		409				{object}	map[string]string		"Already applied for this job"
//	@Failure		502				{object}	map[string]string		"Resume upload failed"
//	@Router			/applications [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID, err := uuid.Parse(c.PostForm("job_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	req := dto.ApplyRequest{
		JobID:          jobID,
		CandidateName:  c.PostForm("candidate_name"),
		CandidateEmail: c.PostForm("candidate_email"),
		CandidatePhone: c.PostForm("candidate_phone"),
		CoverLetter:    c.PostForm("cover_letter"),
	}

	// Link to the account when the request carried a valid token.
	if userID, err := middleware.GetUserIDFromContext(c); err == nil {
		req.CandidateID = &userID
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	fileHeader, err := c.FormFile("resume")
	if err == nil && fileHeader != nil {
		file, openErr := fileHeader.Open()
		if openErr != nil {
			log.Printf("Apply: error opening resume part: %v", openErr)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read resume file"})
			return
		}
		defer file.Close()

		req.Resume = &dto.ResumeUpload{
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Size:        fileHeader.Size,
			Content:     file,
		}
	}

	application, err := h.service.Apply(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MapApplicationModelToResponse(application))
}

// GetApplications godoc
//	@Summary		List applications
//	@Description	Lists applications with optional filters. Admin and HR only.
//	@Tags			applications
//	@Produce		json
//	@Param			job_id			query		string						false	"Filter by job"	Format(uuid)
//	@Param			candidate_id	query		string						false	"Filter by candidate"	Format(uuid)
//	@Param			status			query		string						false	"Filter by status"	Enums(applied, under-review, shortlisted, interview, offer, rejected)
//	@Param			limit			query		int							false	"Page size"		default(20)
//	@Param			offset			query		int							false	"Page offset"	default(0)
//	@Success		200				{array}		dto.ApplicationResponse		"Applications"
//	@Failure		500				{object}	map[string]string			"Internal Server Error"
//	@Router			/applications [get]
//	@Security		BearerAuth
func (h *ApplicationHandler) GetApplications(c *gin.Context) {
	var req dto.ListApplicationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	applications, err := h.service.List(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := make([]dto.ApplicationResponse, 0, len(applications))
	for _, a := range applications {
		resp = append(resp, MapApplicationModelToResponse(a))
	}
	c.JSON(http.StatusOK, resp)
}

// GetApplicationsByJob godoc
//	@Summary		List applications for a job
//	@Description	Lists all applications submitted for one job. Admin and HR only.
//	@Tags			applications
//	@Produce		json
//	@Param			jobId	path		string					true	"Job ID"	Format(uuid)
//	@Param			limit	query		int						false	"Page size"		default(20)
//	@Param			offset	query		int						false	"Page offset"	default(0)
//	@Success		200		{array}		dto.ApplicationResponse	"Applications"
//	@Failure		404		{object}	map[string]string		"Job Not Found"
//	@Router			/applications/job/{jobId} [get]
//	@Security		BearerAuth
func (h *ApplicationHandler) GetApplicationsByJob(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("jobId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	var req dto.ListApplicationsByJobRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	req.JobID = jobID

	applications, err := h.service.ListByJob(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := make([]dto.ApplicationResponse, 0, len(applications))
	for _, a := range applications {
		resp = append(resp, MapApplicationModelToResponse(a))
	}
	c.JSON(http.StatusOK, resp)
}

// GetMyApplications godoc
//	@Summary		List my applications
//	@Description	Lists the authenticated candidate's applications. Applications submitted anonymously with the same email are linked to the account first, so they appear in the same response.
//	@Tags			applications
//	@Produce		json
//	@Success		200	{array}		dto.ApplicationResponse	"Applications"
//	@Failure		401	{object}	map[string]string		"Unauthorized"
//	@Router			/applications/my [get]
//	@Security		BearerAuth
func (h *ApplicationHandler) GetMyApplications(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	email, err := middleware.GetUserEmailFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	applications, err := h.service.ListMine(c.Request.Context(), userID, email)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := make([]dto.ApplicationResponse, 0, len(applications))
	for _, a := range applications {
		resp = append(resp, MapApplicationModelToResponse(a))
	}
	c.JSON(http.StatusOK, resp)
}

// GetApplicationByID godoc
//	@Summary		Get an application
//	@Description	Retrieves one application by ID. Admin and HR only.
//	@Tags			applications
//	@Produce		json
//	@Param			id	path		string					true	"Application ID"	Format(uuid)
//	@Success		200	{object}	dto.ApplicationResponse	"Application"
//	@Failure		404	{object}	map[string]string		"Application Not Found"
//	@Router			/applications/{id} [get]
//	@Security		BearerAuth
func (h *ApplicationHandler) GetApplicationByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID format"})
		return
	}

	req := dto.GetApplicationByIDRequest{ID: id}
	application, err := h.service.GetByID(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapApplicationModelToResponse(application))
}

// ReviewApplication godoc
//	@Summary		Review an application
//	@Description	Updates status, notes or rating of an application. Admin and HR only.
//	@Tags			applications
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Application ID"	Format(uuid)
//	@Param			review	body		dto.ReviewApplicationRequest	true	"Review fields"
//	@Success		200		{object}	dto.ApplicationResponse			"Updated application"
//	@Failure		404		{object}	map[string]string				"Application Not Found"
//	@Router			/applications/{id} [put]
//	@Security		BearerAuth
func (h *ApplicationHandler) ReviewApplication(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID format"})
		return
	}

	reviewerID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ReviewApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = id
	req.ReviewedBy = reviewerID
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	application, err := h.service.Review(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapApplicationModelToResponse(application))
}

// DeleteApplication godoc
//	@Summary		Delete an application
//	@Description	Removes an application. Admin only.
//	@Tags			applications
//	@Produce		json
//	@Param			id	path		string				true	"Application ID"	Format(uuid)
//	@Success		204	"Application deleted"
//	@Failure		404	{object}	map[string]string	"Application Not Found"
//	@Router			/applications/{id} [delete]
//	@Security		BearerAuth
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID format"})
		return
	}

	req := dto.DeleteApplicationRequest{ID: id}
	if err := h.service.Delete(c.Request.Context(), &req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
