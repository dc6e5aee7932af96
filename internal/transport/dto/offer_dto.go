package dto

import (
	"time"

	"hr-backend/internal/models"

	"github.com/google/uuid"
)

// CreateOfferRequest defines the structure for extending an offer.
type CreateOfferRequest struct {
	ApplicationID  uuid.UUID `json:"application_id" validate:"required"`
	JobID          uuid.UUID `json:"job_id" validate:"required"`
	CandidateID    uuid.UUID `json:"candidate_id" validate:"required"`
	CandidateName  string    `json:"candidate_name" validate:"required,max=200"`
	CandidateEmail string    `json:"candidate_email" validate:"required,email"`
	Position       string    `json:"position" validate:"required,max=200"`
	Department     string    `json:"department" validate:"required,max=100"`
	Salary         float64   `json:"salary" validate:"required,gt=0"`
	Currency       string    `json:"currency" validate:"omitempty,len=3"`
	StartDate      time.Time `json:"start_date" validate:"required"`
	OfferValidTill time.Time `json:"offer_valid_till" validate:"required"`
	JobDescription string    `json:"job_description" validate:"omitempty,max=10000"`
	Benefits       []string  `json:"benefits"`
	Documents      []string  `json:"documents"`
}

// GetOfferByIDRequest fetches one offer.
type GetOfferByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// ListOffersRequest defines admin/HR listing filters.
type ListOffersRequest struct {
	JobID       *uuid.UUID `form:"job_id"`
	CandidateID *uuid.UUID `form:"candidate_id"`
	Status      string     `form:"status" validate:"omitempty,oneof=pending accepted rejected expired"`
	Limit       int        `form:"limit,default=20" validate:"omitempty,gte=0"`
	Offset      int        `form:"offset,default=0" validate:"omitempty,gte=0"`
}

// UpdateOfferRequest records the candidate's (or HR's) response to an offer.
type UpdateOfferRequest struct {
	ID              uuid.UUID `json:"-" validate:"required"`
	Status          *string   `json:"status" validate:"omitempty,oneof=pending accepted rejected expired"`
	RejectionReason *string   `json:"rejection_reason" validate:"omitempty,max=2000"`
}

// DeleteOfferRequest deletes an offer.
type DeleteOfferRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// OfferResponse is the public representation of an offer.
type OfferResponse struct {
	ID              uuid.UUID          `json:"id"`
	ApplicationID   uuid.UUID          `json:"application_id"`
	JobID           uuid.UUID          `json:"job_id"`
	Job             *JobResponse       `json:"job,omitempty"`
	CandidateID     uuid.UUID          `json:"candidate_id"`
	CandidateName   string             `json:"candidate_name"`
	CandidateEmail  string             `json:"candidate_email"`
	Position        string             `json:"position"`
	Department      string             `json:"department"`
	Salary          float64            `json:"salary"`
	Currency        string             `json:"currency"`
	StartDate       time.Time          `json:"start_date"`
	OfferValidTill  time.Time          `json:"offer_valid_till"`
	JobDescription  string             `json:"job_description,omitempty"`
	Benefits        []string           `json:"benefits"`
	Documents       []string           `json:"documents"`
	Status          models.OfferStatus `json:"status"`
	RespondedAt     *time.Time         `json:"responded_at,omitempty"`
	RejectionReason string             `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}
