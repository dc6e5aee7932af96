package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// --- Role Enum ---
// Roles are a closed set; authorization decisions go through the predicate
// methods below rather than ad-hoc string comparisons at call sites.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleHR        Role = "hr"
	RoleCandidate Role = "candidate"
)

// Scan implements the sql.Scanner interface for Role
func (r *Role) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan Role: value is not string or []byte")
		}
	}
	v := Role(strVal)
	switch v {
	case RoleAdmin, RoleHR, RoleCandidate:
		*r = v
		return nil
	default:
		return fmt.Errorf("invalid Role value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for Role
func (r Role) Value() (driver.Value, error) {
	return string(r), nil
}

// CanManageRecruiting reports whether the role may review applications,
// schedule interviews, create offers and manage jobs/users.
func (r Role) CanManageRecruiting() bool {
	return r == RoleAdmin || r == RoleHR
}

// CanDeleteRecords reports whether the role may hard-delete records.
func (r Role) CanDeleteRecords() bool {
	return r == RoleAdmin
}

// --- Application Status Enum ---
type ApplicationStatus string

const (
	ApplicationStatusApplied     ApplicationStatus = "applied"
	ApplicationStatusUnderReview ApplicationStatus = "under-review"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusInterview   ApplicationStatus = "interview"
	ApplicationStatusOffer       ApplicationStatus = "offer"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

// Scan implements the sql.Scanner interface for ApplicationStatus
func (s *ApplicationStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan ApplicationStatus: value is not string or []byte")
		}
	}
	v := ApplicationStatus(strVal)
	switch v {
	case ApplicationStatusApplied, ApplicationStatusUnderReview, ApplicationStatusShortlisted,
		ApplicationStatusInterview, ApplicationStatusOffer, ApplicationStatusRejected:
		*s = v
		return nil
	default:
		return fmt.Errorf("invalid ApplicationStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for ApplicationStatus
func (s ApplicationStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// --- Job Status / Type Enums ---
type JobStatus string

const (
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"
)

func (s *JobStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan JobStatus: value is not string or []byte")
		}
	}
	v := JobStatus(strVal)
	switch v {
	case JobStatusActive, JobStatusClosed:
		*s = v
		return nil
	default:
		return fmt.Errorf("invalid JobStatus value: %s", strVal)
	}
}

func (s JobStatus) Value() (driver.Value, error) {
	return string(s), nil
}

type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
)

func (t *JobType) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan JobType: value is not string or []byte")
		}
	}
	v := JobType(strVal)
	switch v {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship:
		*t = v
		return nil
	default:
		return fmt.Errorf("invalid JobType value: %s", strVal)
	}
}

func (t JobType) Value() (driver.Value, error) {
	return string(t), nil
}

// --- Interview Enums ---
type InterviewType string

const (
	InterviewTypePhone    InterviewType = "phone"
	InterviewTypeVideo    InterviewType = "video"
	InterviewTypeInPerson InterviewType = "in-person"
	InterviewTypeGroup    InterviewType = "group"
)

type InterviewStatus string

const (
	InterviewStatusScheduled   InterviewStatus = "scheduled"
	InterviewStatusCompleted   InterviewStatus = "completed"
	InterviewStatusCancelled   InterviewStatus = "cancelled"
	InterviewStatusRescheduled InterviewStatus = "rescheduled"
)

// --- Offer Status Enum ---
type OfferStatus string

const (
	OfferStatusPending  OfferStatus = "pending"
	OfferStatusAccepted OfferStatus = "accepted"
	OfferStatusRejected OfferStatus = "rejected"
	OfferStatusExpired  OfferStatus = "expired"
)

// --- Employee Status Enum ---
type EmployeeStatus string

const (
	EmployeeStatusActive     EmployeeStatus = "active"
	EmployeeStatusProbation  EmployeeStatus = "probation"
	EmployeeStatusTerminated EmployeeStatus = "terminated"
	EmployeeStatusResigned   EmployeeStatus = "resigned"
	EmployeeStatusOnLeave    EmployeeStatus = "on-leave"
)

// User represents an account in the system (admin, HR staff or candidate).
type User struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	FullName     string     `json:"full_name" gorm:"not null"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null"` // stored lower-cased
	PasswordHash string     `json:"-" gorm:"not null"`
	Role         Role       `json:"role" gorm:"type:varchar(16);not null;default:'candidate'"`
	Phone        string     `json:"phone,omitempty"`
	Avatar       string     `json:"avatar,omitempty"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Job represents a job posting.
type Job struct {
	ID                uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Title             string         `json:"title" gorm:"not null"`
	Department        string         `json:"department" gorm:"not null"`
	Location          string         `json:"location" gorm:"not null"`
	Type              JobType        `json:"type" gorm:"type:varchar(16);not null"`
	Salary            string         `json:"salary,omitempty"`
	Description       string         `json:"description" gorm:"type:text;not null"`
	Skills            pq.StringArray `json:"skills" gorm:"type:text[]"`
	Requirements      pq.StringArray `json:"requirements" gorm:"type:text[]"`
	Responsibilities  pq.StringArray `json:"responsibilities" gorm:"type:text[]"`
	Benefits          pq.StringArray `json:"benefits" gorm:"type:text[]"`
	Status            JobStatus      `json:"status" gorm:"type:varchar(16);not null;default:'active'"`
	IsActive          bool           `json:"is_active" gorm:"default:true"`
	PostedByID        *uuid.UUID     `json:"posted_by,omitempty" gorm:"type:uuid"`
	PostedBy          *User          `json:"posted_by_user,omitempty" gorm:"foreignKey:PostedByID"`
	ApplicationsCount int            `json:"applications_count" gorm:"default:0"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// Application represents one candidate's submission for one job.
//
// The (job_id, candidate_email) pair is unique. CandidateID is null for
// anonymous submissions and is filled in later by reconciliation when the
// candidate authenticates with the same email.
type Application struct {
	ID             uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey"`
	JobID          uuid.UUID         `json:"job_id" gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_email"`
	Job            *Job              `json:"job,omitempty" gorm:"foreignKey:JobID"`
	CandidateID    *uuid.UUID        `json:"candidate_id,omitempty" gorm:"type:uuid"`
	Candidate      *User             `json:"candidate,omitempty" gorm:"foreignKey:CandidateID"`
	CandidateName  string            `json:"candidate_name" gorm:"not null"`
	CandidateEmail string            `json:"candidate_email" gorm:"not null;uniqueIndex:idx_applications_job_email"` // lower-cased
	CandidatePhone string            `json:"candidate_phone,omitempty"`
	ResumeURL      string            `json:"resume_url,omitempty"`
	CoverLetter    string            `json:"cover_letter,omitempty" gorm:"type:text"`
	Status         ApplicationStatus `json:"status" gorm:"type:varchar(16);not null;default:'applied'"`
	AppliedAt      time.Time         `json:"applied_at"`
	ReviewedAt     *time.Time        `json:"reviewed_at,omitempty"`
	ReviewedByID   *uuid.UUID        `json:"reviewed_by,omitempty" gorm:"type:uuid"`
	ReviewedBy     *User             `json:"reviewed_by_user,omitempty" gorm:"foreignKey:ReviewedByID"`
	Notes          string            `json:"notes,omitempty" gorm:"type:text"`
	Rating         *int              `json:"rating,omitempty"` // 0-5
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// Interview represents a scheduled interview for an application.
type Interview struct {
	ID            uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	ApplicationID uuid.UUID       `json:"application_id" gorm:"type:uuid;not null"`
	Application   *Application    `json:"application,omitempty" gorm:"foreignKey:ApplicationID"`
	JobID         uuid.UUID       `json:"job_id" gorm:"type:uuid;not null"`
	Job           *Job            `json:"job,omitempty" gorm:"foreignKey:JobID"`
	CandidateID   uuid.UUID       `json:"candidate_id" gorm:"type:uuid;not null"`
	Candidate     *User           `json:"candidate,omitempty" gorm:"foreignKey:CandidateID"`
	ScheduledByID uuid.UUID       `json:"scheduled_by" gorm:"type:uuid;not null"`
	ScheduledBy   *User           `json:"scheduled_by_user,omitempty" gorm:"foreignKey:ScheduledByID"`
	Type          InterviewType   `json:"interview_type" gorm:"type:varchar(16);not null;default:'video'"`
	ScheduledDate time.Time       `json:"scheduled_date" gorm:"not null"`
	Duration      int             `json:"duration" gorm:"default:60"` // minutes
	Interviewers  pq.StringArray  `json:"interviewers" gorm:"type:text[]"`
	MeetingLink   string          `json:"meeting_link,omitempty"`
	Location      string          `json:"location,omitempty"`
	Status        InterviewStatus `json:"status" gorm:"type:varchar(16);not null;default:'scheduled'"`
	Feedback      string          `json:"feedback,omitempty" gorm:"type:text"`
	Rating        *int            `json:"rating,omitempty"` // 0-5
	Notes         string          `json:"notes,omitempty" gorm:"type:text"`
	CompletedAt   *time.Time      `json:"completed_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Offer represents a job offer extended to a candidate.
type Offer struct {
	ID              uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	ApplicationID   uuid.UUID      `json:"application_id" gorm:"type:uuid;not null"`
	Application     *Application   `json:"application,omitempty" gorm:"foreignKey:ApplicationID"`
	JobID           uuid.UUID      `json:"job_id" gorm:"type:uuid;not null"`
	Job             *Job           `json:"job,omitempty" gorm:"foreignKey:JobID"`
	CandidateID     uuid.UUID      `json:"candidate_id" gorm:"type:uuid;not null"`
	Candidate       *User          `json:"candidate,omitempty" gorm:"foreignKey:CandidateID"`
	CandidateName   string         `json:"candidate_name" gorm:"not null"`
	CandidateEmail  string         `json:"candidate_email" gorm:"not null"`
	Position        string         `json:"position" gorm:"not null"`
	Department      string         `json:"department" gorm:"not null"`
	Salary          float64        `json:"salary" gorm:"not null"`
	Currency        string         `json:"currency" gorm:"default:'USD'"`
	StartDate       time.Time      `json:"start_date" gorm:"not null"`
	OfferValidTill  time.Time      `json:"offer_valid_till" gorm:"not null"`
	JobDescription  string         `json:"job_description,omitempty" gorm:"type:text"`
	Benefits        pq.StringArray `json:"benefits" gorm:"type:text[]"`
	Documents       pq.StringArray `json:"documents" gorm:"type:text[]"`
	Status          OfferStatus    `json:"status" gorm:"type:varchar(16);not null;default:'pending'"`
	RespondedAt     *time.Time     `json:"responded_at,omitempty"`
	RejectionReason string         `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// Employee represents a hired employee record linked to a user account.
type Employee struct {
	ID              uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID      `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	User            *User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
	EmployeeCode    string         `json:"employee_code" gorm:"uniqueIndex;not null"`
	Department      string         `json:"department" gorm:"not null"`
	Position        string         `json:"position" gorm:"not null"`
	DateJoined      time.Time      `json:"date_joined"`
	Status          EmployeeStatus `json:"status" gorm:"type:varchar(16);not null;default:'probation'"`
	SalaryAmount    float64        `json:"salary_amount" gorm:"default:0"`
	SalaryCurrency  string         `json:"salary_currency" gorm:"default:'USD'"`
	Address         string         `json:"address,omitempty"`
	EmergencyName   string         `json:"emergency_name,omitempty"`
	EmergencyPhone  string         `json:"emergency_phone,omitempty"`
	EmergencyRel    string         `json:"emergency_relation,omitempty"`
	DateOfBirth     *time.Time     `json:"date_of_birth,omitempty"`
	CreatedByID     *uuid.UUID     `json:"created_by,omitempty" gorm:"type:uuid"`
	CreatedBy       *User          `json:"created_by_user,omitempty" gorm:"foreignKey:CreatedByID"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}
