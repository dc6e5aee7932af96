package dto

import (
	"io"
	"time"

	"hr-backend/internal/models"

	"github.com/google/uuid"
)

// ResumeUpload carries an optional resume file attached to an application.
// Content is streamed to the object store; it is never buffered into the
// application record itself.
type ResumeUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// ApplyRequest defines the structure for submitting a job application.
// CandidateID is set from the (optional) authenticated session; anonymous
// submissions leave it nil and are linked later by reconciliation.
type ApplyRequest struct {
	JobID          uuid.UUID     `json:"job_id" validate:"required"`
	CandidateName  string        `json:"candidate_name" validate:"required,max=200"`
	CandidateEmail string        `json:"candidate_email" validate:"required,email"`
	CandidatePhone string        `json:"candidate_phone" validate:"omitempty,max=32"`
	CoverLetter    string        `json:"cover_letter" validate:"omitempty,max=10000"`
	CandidateID    *uuid.UUID    `json:"-"`
	Resume         *ResumeUpload `json:"-"`
}

// CreateApplicationRequest is used internally by the Apply service method once
// validation and the resume upload have completed.
type CreateApplicationRequest struct {
	JobID          uuid.UUID
	CandidateID    *uuid.UUID
	CandidateName  string
	CandidateEmail string // already lower-cased
	CandidatePhone string
	ResumeURL      string
	CoverLetter    string
}

// GetApplicationByIDRequest defines the structure for fetching one application.
type GetApplicationByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// ListApplicationsRequest defines admin/HR listing filters.
type ListApplicationsRequest struct {
	JobID       *uuid.UUID `form:"job_id"`
	CandidateID *uuid.UUID `form:"candidate_id"`
	Status      string     `form:"status" validate:"omitempty,oneof=applied under-review shortlisted interview offer rejected"`
	Limit       int        `form:"limit,default=20" validate:"omitempty,gte=0"`
	Offset      int        `form:"offset,default=0" validate:"omitempty,gte=0"`
}

// ListApplicationsByJobRequest lists applications for one job.
type ListApplicationsByJobRequest struct {
	JobID  uuid.UUID `json:"-" validate:"required"`
	Limit  int       `form:"limit,default=20" validate:"omitempty,gte=0"`
	Offset int       `form:"offset,default=0" validate:"omitempty,gte=0"`
}

// ReviewApplicationRequest defines the admin/HR review update.
type ReviewApplicationRequest struct {
	ID         uuid.UUID `json:"-" validate:"required"`
	Status     *string   `json:"status" validate:"omitempty,oneof=applied under-review shortlisted interview offer rejected"`
	Notes      *string   `json:"notes" validate:"omitempty,max=10000"`
	Rating     *int      `json:"rating" validate:"omitempty,gte=0,lte=5"`
	ReviewedBy uuid.UUID `json:"-"` // Set from user context
}

// DeleteApplicationRequest defines the structure for deleting an application.
type DeleteApplicationRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// ApplicationResponse is the public representation of an application.
type ApplicationResponse struct {
	ID             uuid.UUID                `json:"id"`
	JobID          uuid.UUID                `json:"job_id"`
	Job            *JobResponse             `json:"job,omitempty"`
	CandidateID    *uuid.UUID               `json:"candidate_id,omitempty"`
	CandidateName  string                   `json:"candidate_name"`
	CandidateEmail string                   `json:"candidate_email"`
	CandidatePhone string                   `json:"candidate_phone,omitempty"`
	ResumeURL      string                   `json:"resume_url,omitempty"`
	CoverLetter    string                   `json:"cover_letter,omitempty"`
	Status         models.ApplicationStatus `json:"status"`
	AppliedAt      time.Time                `json:"applied_at"`
	ReviewedAt     *time.Time               `json:"reviewed_at,omitempty"`
	ReviewedBy     *uuid.UUID               `json:"reviewed_by,omitempty"`
	Notes          string                   `json:"notes,omitempty"`
	Rating         *int                     `json:"rating,omitempty"`
	CreatedAt      time.Time                `json:"created_at"`
	UpdatedAt      time.Time                `json:"updated_at"`
}
