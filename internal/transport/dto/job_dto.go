package dto

import (
	"time"

	"hr-backend/internal/models"

	"github.com/google/uuid"
)

// CreateJobRequest defines the structure for creating a job posting.
type CreateJobRequest struct {
	Title            string     `json:"title" validate:"required,max=200"`
	Department       string     `json:"department" validate:"required,max=100"`
	Location         string     `json:"location" validate:"required,max=200"`
	Type             string     `json:"type" validate:"required,oneof=full-time part-time contract internship"`
	Salary           string     `json:"salary" validate:"omitempty,max=100"`
	Description      string     `json:"description" validate:"required"`
	Skills           []string   `json:"skills"`
	Requirements     []string   `json:"requirements"`
	Responsibilities []string   `json:"responsibilities"`
	Benefits         []string   `json:"benefits"`
	PostedBy         *uuid.UUID `json:"-"` // Set from user context
}

// GetJobByIDRequest defines the structure for fetching a single job.
type GetJobByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// ListJobsRequest defines query parameters for the public job listing.
type ListJobsRequest struct {
	Status     string `form:"status" validate:"omitempty,oneof=active closed"`
	Department string `form:"department" validate:"omitempty,max=100"`
	ActiveOnly bool   `form:"active_only"`
	Limit      int    `form:"limit,default=20" validate:"omitempty,gte=0"`
	Offset     int    `form:"offset,default=0" validate:"omitempty,gte=0"`
}

// UpdateJobRequest defines the structure for updating a job posting.
type UpdateJobRequest struct {
	ID               uuid.UUID `json:"-" validate:"required"`
	Title            *string   `json:"title" validate:"omitempty,max=200"`
	Department       *string   `json:"department" validate:"omitempty,max=100"`
	Location         *string   `json:"location" validate:"omitempty,max=200"`
	Type             *string   `json:"type" validate:"omitempty,oneof=full-time part-time contract internship"`
	Salary           *string   `json:"salary" validate:"omitempty,max=100"`
	Description      *string   `json:"description"`
	Skills           []string  `json:"skills"`
	Requirements     []string  `json:"requirements"`
	Responsibilities []string  `json:"responsibilities"`
	Benefits         []string  `json:"benefits"`
	Status           *string   `json:"status" validate:"omitempty,oneof=active closed"`
}

// ToggleJobStatusRequest flips a job between active and inactive.
type ToggleJobStatusRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// DeleteJobRequest defines the structure for deleting a job.
type DeleteJobRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// JobResponse is the public representation of a job posting.
type JobResponse struct {
	ID                uuid.UUID        `json:"id"`
	Title             string           `json:"title"`
	Department        string           `json:"department"`
	Location          string           `json:"location"`
	Type              models.JobType   `json:"type"`
	Salary            string           `json:"salary,omitempty"`
	Description       string           `json:"description"`
	Skills            []string         `json:"skills"`
	Requirements      []string         `json:"requirements"`
	Responsibilities  []string         `json:"responsibilities"`
	Benefits          []string         `json:"benefits"`
	Status            models.JobStatus `json:"status"`
	IsActive          bool             `json:"is_active"`
	PostedBy          *uuid.UUID       `json:"posted_by,omitempty"`
	ApplicationsCount int              `json:"applications_count"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}
