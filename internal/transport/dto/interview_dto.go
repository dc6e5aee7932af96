package dto

import (
	"time"

	"hr-backend/internal/models"

	"github.com/google/uuid"
)

// ScheduleInterviewRequest defines the structure for scheduling an interview.
type ScheduleInterviewRequest struct {
	ApplicationID uuid.UUID `json:"application_id" validate:"required"`
	JobID         uuid.UUID `json:"job_id" validate:"required"`
	CandidateID   uuid.UUID `json:"candidate_id" validate:"required"`
	Type          string    `json:"interview_type" validate:"omitempty,oneof=phone video in-person group"`
	ScheduledDate time.Time `json:"scheduled_date" validate:"required"`
	Duration      int       `json:"duration" validate:"omitempty,gte=5,lte=480"`
	Interviewers  []string  `json:"interviewers"`
	MeetingLink   string    `json:"meeting_link" validate:"omitempty,url"`
	Location      string    `json:"location" validate:"omitempty,max=200"`
	Notes         string    `json:"notes" validate:"omitempty,max=10000"`
	ScheduledBy   uuid.UUID `json:"-"` // Set from user context
}

// GetInterviewByIDRequest fetches one interview.
type GetInterviewByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// ListInterviewsRequest defines admin/HR listing filters.
type ListInterviewsRequest struct {
	JobID       *uuid.UUID `form:"job_id"`
	CandidateID *uuid.UUID `form:"candidate_id"`
	Status      string     `form:"status" validate:"omitempty,oneof=scheduled completed cancelled rescheduled"`
	Limit       int        `form:"limit,default=20" validate:"omitempty,gte=0"`
	Offset      int        `form:"offset,default=0" validate:"omitempty,gte=0"`
}

// UpdateInterviewRequest updates an interview's schedule or outcome.
type UpdateInterviewRequest struct {
	ID            uuid.UUID  `json:"-" validate:"required"`
	Type          *string    `json:"interview_type" validate:"omitempty,oneof=phone video in-person group"`
	ScheduledDate *time.Time `json:"scheduled_date"`
	Duration      *int       `json:"duration" validate:"omitempty,gte=5,lte=480"`
	Interviewers  []string   `json:"interviewers"`
	MeetingLink   *string    `json:"meeting_link" validate:"omitempty,url"`
	Location      *string    `json:"location" validate:"omitempty,max=200"`
	Status        *string    `json:"status" validate:"omitempty,oneof=scheduled completed cancelled rescheduled"`
	Feedback      *string    `json:"feedback" validate:"omitempty,max=10000"`
	Rating        *int       `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Notes         *string    `json:"notes" validate:"omitempty,max=10000"`
}

// DeleteInterviewRequest deletes an interview.
type DeleteInterviewRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// InterviewResponse is the public representation of an interview.
type InterviewResponse struct {
	ID            uuid.UUID              `json:"id"`
	ApplicationID uuid.UUID              `json:"application_id"`
	JobID         uuid.UUID              `json:"job_id"`
	Job           *JobResponse           `json:"job,omitempty"`
	CandidateID   uuid.UUID              `json:"candidate_id"`
	ScheduledBy   uuid.UUID              `json:"scheduled_by"`
	Type          models.InterviewType   `json:"interview_type"`
	ScheduledDate time.Time              `json:"scheduled_date"`
	Duration      int                    `json:"duration"`
	Interviewers  []string               `json:"interviewers"`
	MeetingLink   string                 `json:"meeting_link,omitempty"`
	Location      string                 `json:"location,omitempty"`
	Status        models.InterviewStatus `json:"status"`
	Feedback      string                 `json:"feedback,omitempty"`
	Rating        *int                   `json:"rating,omitempty"`
	Notes         string                 `json:"notes,omitempty"`
	CompletedAt   *time.Time             `json:"completed_at,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}
