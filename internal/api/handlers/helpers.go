package handlers

import (
	"fmt"

	"hr-backend/internal/models"
	"hr-backend/internal/transport/dto"

	"github.com/go-playground/validator/v10"
)

func FormatValidationErrors(err error) map[string]string {
	errorsMap := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errorsMap["error"] = "Invalid validation error type"
		return errorsMap
	}
	for _, fieldError := range validationErrors {
		fieldName := fieldError.Field()
		errorsMap[fieldName] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, fieldError.Tag())
		switch fieldError.Tag() {
		case "required":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' is required", fieldName)
		case "email":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid email address", fieldName)
		case "min":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at least %s characters long", fieldName, fieldError.Param())
		case "max":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at most %s characters long", fieldName, fieldError.Param())
		case "oneof":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be one of: %s", fieldName, fieldError.Param())
		case "eqfield":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must match '%s'", fieldName, fieldError.Param())
		}
	}
	return errorsMap
}

// MapUserModelToUserResponse converts a models.User to a dto.UserResponse
func MapUserModelToUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		FullName:  user.FullName,
		Email:     user.Email,
		Role:      user.Role,
		Phone:     user.Phone,
		Avatar:    user.Avatar,
		LastLogin: user.LastLogin,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// MapJobModelToJobResponse converts a models.Job to a dto.JobResponse
func MapJobModelToJobResponse(job *models.Job) dto.JobResponse {
	return dto.JobResponse{
		ID:                job.ID,
		Title:             job.Title,
		Department:        job.Department,
		Location:          job.Location,
		Type:              job.Type,
		Salary:            job.Salary,
		Description:       job.Description,
		Skills:            job.Skills,
		Requirements:      job.Requirements,
		Responsibilities:  job.Responsibilities,
		Benefits:          job.Benefits,
		Status:            job.Status,
		IsActive:          job.IsActive,
		PostedBy:          job.PostedByID,
		ApplicationsCount: job.ApplicationsCount,
		CreatedAt:         job.CreatedAt,
		UpdatedAt:         job.UpdatedAt,
	}
}

// MapApplicationModelToResponse converts a models.Application to a dto.ApplicationResponse
func MapApplicationModelToResponse(app *models.Application) dto.ApplicationResponse {
	resp := dto.ApplicationResponse{
		ID:             app.ID,
		JobID:          app.JobID,
		CandidateID:    app.CandidateID,
		CandidateName:  app.CandidateName,
		CandidateEmail: app.CandidateEmail,
		CandidatePhone: app.CandidatePhone,
		ResumeURL:      app.ResumeURL,
		CoverLetter:    app.CoverLetter,
		Status:         app.Status,
		AppliedAt:      app.AppliedAt,
		ReviewedAt:     app.ReviewedAt,
		ReviewedBy:     app.ReviewedByID,
		Notes:          app.Notes,
		Rating:         app.Rating,
		CreatedAt:      app.CreatedAt,
		UpdatedAt:      app.UpdatedAt,
	}
	if app.Job != nil {
		job := MapJobModelToJobResponse(app.Job)
		resp.Job = &job
	}
	return resp
}

// MapInterviewModelToResponse converts a models.Interview to a dto.InterviewResponse
func MapInterviewModelToResponse(iv *models.Interview) dto.InterviewResponse {
	resp := dto.InterviewResponse{
		ID:            iv.ID,
		ApplicationID: iv.ApplicationID,
		JobID:         iv.JobID,
		CandidateID:   iv.CandidateID,
		ScheduledBy:   iv.ScheduledByID,
		Type:          iv.Type,
		ScheduledDate: iv.ScheduledDate,
		Duration:      iv.Duration,
		Interviewers:  iv.Interviewers,
		MeetingLink:   iv.MeetingLink,
		Location:      iv.Location,
		Status:        iv.Status,
		Feedback:      iv.Feedback,
		Rating:        iv.Rating,
		Notes:         iv.Notes,
		CompletedAt:   iv.CompletedAt,
		CreatedAt:     iv.CreatedAt,
		UpdatedAt:     iv.UpdatedAt,
	}
	if iv.Job != nil {
		job := MapJobModelToJobResponse(iv.Job)
		resp.Job = &job
	}
	return resp
}

// MapOfferModelToResponse converts a models.Offer to a dto.OfferResponse
func MapOfferModelToResponse(offer *models.Offer) dto.OfferResponse {
	resp := dto.OfferResponse{
		ID:              offer.ID,
		ApplicationID:   offer.ApplicationID,
		JobID:           offer.JobID,
		CandidateID:     offer.CandidateID,
		CandidateName:   offer.CandidateName,
		CandidateEmail:  offer.CandidateEmail,
		Position:        offer.Position,
		Department:      offer.Department,
		Salary:          offer.Salary,
		Currency:        offer.Currency,
		StartDate:       offer.StartDate,
		OfferValidTill:  offer.OfferValidTill,
		JobDescription:  offer.JobDescription,
		Benefits:        offer.Benefits,
		Documents:       offer.Documents,
		Status:          offer.Status,
		RespondedAt:     offer.RespondedAt,
		RejectionReason: offer.RejectionReason,
		CreatedAt:       offer.CreatedAt,
		UpdatedAt:       offer.UpdatedAt,
	}
	if offer.Job != nil {
		job := MapJobModelToJobResponse(offer.Job)
		resp.Job = &job
	}
	return resp
}

// MapEmployeeModelToResponse converts a models.Employee to a dto.EmployeeResponse
func MapEmployeeModelToResponse(emp *models.Employee) dto.EmployeeResponse {
	resp := dto.EmployeeResponse{
		ID:             emp.ID,
		UserID:         emp.UserID,
		EmployeeCode:   emp.EmployeeCode,
		Department:     emp.Department,
		Position:       emp.Position,
		DateJoined:     emp.DateJoined,
		Status:         emp.Status,
		SalaryAmount:   emp.SalaryAmount,
		SalaryCurrency: emp.SalaryCurrency,
		CreatedAt:      emp.CreatedAt,
		UpdatedAt:      emp.UpdatedAt,
	}
	if emp.User != nil {
		user := MapUserModelToUserResponse(emp.User)
		resp.User = &user
	}
	return resp
}
