package services

import (
	"context"

	"hr-backend/internal/models"
	"hr-backend/internal/transport/dto"

	"github.com/google/uuid"
)

// UserService defines the interface for user and authentication logic.
type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, string, string, error) // Returns user, access and refresh tokens
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, string, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (string, string, error)
	Logout(ctx context.Context, req *dto.LogoutRequest) error
	UpdatePassword(ctx context.Context, req *dto.UpdatePasswordRequest) error
	GetAll(ctx context.Context, limit, offset int) ([]*models.User, error)
	GetByID(ctx context.Context, req *dto.GetUserByIdRequest) (*models.User, error)
	Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
	Update(ctx context.Context, req *dto.UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, req *dto.DeleteUserRequest) error
}

// JobService defines the interface for job posting business logic.
type JobService interface {
	List(ctx context.Context, req *dto.ListJobsRequest) ([]*models.Job, error)
	GetByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error)
	Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error)
	ToggleActive(ctx context.Context, req *dto.ToggleJobStatusRequest) (*models.Job, error)
	Delete(ctx context.Context, req *dto.DeleteJobRequest) error
}

// ApplicationService defines the interface for the application intake and
// review workflow.
type ApplicationService interface {
	// Apply runs the intake workflow: validate, upload the optional resume,
	// re-check for duplicates and persist.
	Apply(ctx context.Context, req *dto.ApplyRequest) (*models.Application, error)
	// ListMine links any anonymous applications matching the user's email to
	// the user, then returns the user's applications. Link-then-list, so the
	// response already contains freshly linked records.
	ListMine(ctx context.Context, userID uuid.UUID, email string) ([]*models.Application, error)
	List(ctx context.Context, req *dto.ListApplicationsRequest) ([]*models.Application, error)
	ListByJob(ctx context.Context, req *dto.ListApplicationsByJobRequest) ([]*models.Application, error)
	GetByID(ctx context.Context, req *dto.GetApplicationByIDRequest) (*models.Application, error)
	Review(ctx context.Context, req *dto.ReviewApplicationRequest) (*models.Application, error)
	Delete(ctx context.Context, req *dto.DeleteApplicationRequest) error
}

// InterviewService defines the interface for interview scheduling logic.
type InterviewService interface {
	List(ctx context.Context, req *dto.ListInterviewsRequest) ([]*models.Interview, error)
	ListMine(ctx context.Context, candidateID uuid.UUID) ([]*models.Interview, error)
	GetByID(ctx context.Context, req *dto.GetInterviewByIDRequest) (*models.Interview, error)
	// Schedule creates the interview without changing the application's
	// status; only offer creation advances an application automatically.
	Schedule(ctx context.Context, req *dto.ScheduleInterviewRequest) (*models.Interview, error)
	Update(ctx context.Context, req *dto.UpdateInterviewRequest) (*models.Interview, error)
	Delete(ctx context.Context, req *dto.DeleteInterviewRequest) error
}

// OfferService defines the interface for offer business logic.
type OfferService interface {
	List(ctx context.Context, req *dto.ListOffersRequest) ([]*models.Offer, error)
	ListMine(ctx context.Context, candidateID uuid.UUID) ([]*models.Offer, error)
	GetByID(ctx context.Context, req *dto.GetOfferByIDRequest) (*models.Offer, error)
	// Create persists the offer and forces the referenced application's
	// status to "offer" (the one automatic status transition).
	Create(ctx context.Context, req *dto.CreateOfferRequest) (*models.Offer, error)
	Update(ctx context.Context, req *dto.UpdateOfferRequest) (*models.Offer, error)
	Delete(ctx context.Context, req *dto.DeleteOfferRequest) error
}

// EmployeeService defines the interface for employee record logic.
type EmployeeService interface {
	List(ctx context.Context, req *dto.ListEmployeesRequest) ([]*models.Employee, error)
	GetByID(ctx context.Context, req *dto.GetEmployeeByIDRequest) (*models.Employee, error)
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*models.Employee, error)
	Update(ctx context.Context, req *dto.UpdateEmployeeRequest) (*models.Employee, error)
	Delete(ctx context.Context, req *dto.DeleteEmployeeRequest) error
}
