package storage

import (
	"context"

	"hr-backend/internal/models"
	"hr-backend/internal/transport/dto"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	GetAll(ctx context.Context, limit, offset int) ([]*models.User, error)
	GetByID(ctx context.Context, req *dto.GetUserByIdRequest) (*models.User, error)
	GetByEmail(ctx context.Context, req *dto.GetUserByEmailRequest) (*models.User, error)
	Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
	Update(ctx context.Context, req *dto.UpdateUserRequest) (*models.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	TouchLastLogin(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, req *dto.DeleteUserRequest) error
}

// JobRepository defines the interface for job posting data operations.
type JobRepository interface {
	List(ctx context.Context, req *dto.ListJobsRequest) ([]*models.Job, error)
	GetByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error)
	Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error)
	ToggleActive(ctx context.Context, req *dto.ToggleJobStatusRequest) (*models.Job, error)
	Delete(ctx context.Context, req *dto.DeleteJobRequest) error
}

// ApplicationRepository defines the interface for application data operations.
//
// Create must surface a unique-constraint violation on (job_id,
// candidate_email) as ErrConflict; that constraint, not GetByJobAndEmail, is
// the authoritative duplicate guard.
type ApplicationRepository interface {
	List(ctx context.Context, req *dto.ListApplicationsRequest) ([]*models.Application, error)
	ListByJob(ctx context.Context, req *dto.ListApplicationsByJobRequest) ([]*models.Application, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*models.Application, error)
	GetByID(ctx context.Context, req *dto.GetApplicationByIDRequest) (*models.Application, error)
	GetByJobAndEmail(ctx context.Context, jobID uuid.UUID, email string) (*models.Application, error)
	Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error)
	Review(ctx context.Context, req *dto.ReviewApplicationRequest) (*models.Application, error)
	SetStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) error
	// LinkCandidateByEmail assigns candidateID to every application whose
	// candidate_email matches email (already lower-cased) and whose
	// candidate_id is null. Returns the number of rows linked.
	LinkCandidateByEmail(ctx context.Context, email string, candidateID uuid.UUID) (int64, error)
	Delete(ctx context.Context, req *dto.DeleteApplicationRequest) error
}

// InterviewRepository defines the interface for interview data operations.
type InterviewRepository interface {
	List(ctx context.Context, req *dto.ListInterviewsRequest) ([]*models.Interview, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*models.Interview, error)
	GetByID(ctx context.Context, req *dto.GetInterviewByIDRequest) (*models.Interview, error)
	Create(ctx context.Context, req *dto.ScheduleInterviewRequest) (*models.Interview, error)
	Update(ctx context.Context, req *dto.UpdateInterviewRequest) (*models.Interview, error)
	Delete(ctx context.Context, req *dto.DeleteInterviewRequest) error
}

// OfferRepository defines the interface for offer data operations.
type OfferRepository interface {
	List(ctx context.Context, req *dto.ListOffersRequest) ([]*models.Offer, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*models.Offer, error)
	GetByID(ctx context.Context, req *dto.GetOfferByIDRequest) (*models.Offer, error)
	Create(ctx context.Context, req *dto.CreateOfferRequest) (*models.Offer, error)
	Update(ctx context.Context, req *dto.UpdateOfferRequest) (*models.Offer, error)
	Delete(ctx context.Context, req *dto.DeleteOfferRequest) error
}

// EmployeeRepository defines the interface for employee data operations.
type EmployeeRepository interface {
	List(ctx context.Context, req *dto.ListEmployeesRequest) ([]*models.Employee, error)
	GetByID(ctx context.Context, req *dto.GetEmployeeByIDRequest) (*models.Employee, error)
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*models.Employee, error)
	Update(ctx context.Context, req *dto.UpdateEmployeeRequest) (*models.Employee, error)
	Delete(ctx context.Context, req *dto.DeleteEmployeeRequest) error
}
