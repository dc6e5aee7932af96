// Package mocks provides hand-written testify mocks for the storage
// interfaces and the uploader.
package mocks

import (
	"context"

	"hr-backend/internal/models"
	"hr-backend/internal/storage"
	"hr-backend/internal/transport/dto"
	"hr-backend/internal/uploads"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a testify mock for storage.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetAll(ctx context.Context, limit, offset int) ([]*models.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, req *dto.GetUserByIdRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, req *dto.GetUserByEmailRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, req *dto.UpdateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, req *dto.DeleteUserRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

// MockJobRepository is a testify mock for storage.JobRepository.
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) List(ctx context.Context, req *dto.ListJobsRequest) ([]*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Job), args.Error(1)
}

func (m *MockJobRepository) GetByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) ToggleActive(ctx context.Context, req *dto.ToggleJobStatusRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) Delete(ctx context.Context, req *dto.DeleteJobRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

// MockApplicationRepository is a testify mock for storage.ApplicationRepository.
type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) List(ctx context.Context, req *dto.ListApplicationsRequest) ([]*models.Application, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Application), args.Error(1)
}

func (m *MockApplicationRepository) ListByJob(ctx context.Context, req *dto.ListApplicationsByJobRequest) ([]*models.Application, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Application), args.Error(1)
}

func (m *MockApplicationRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*models.Application, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Application), args.Error(1)
}

func (m *MockApplicationRepository) GetByID(ctx context.Context, req *dto.GetApplicationByIDRequest) (*models.Application, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationRepository) GetByJobAndEmail(ctx context.Context, jobID uuid.UUID, email string) (*models.Application, error) {
	args := m.Called(ctx, jobID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationRepository) Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationRepository) Review(ctx context.Context, req *dto.ReviewApplicationRequest) (*models.Application, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationRepository) SetStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockApplicationRepository) LinkCandidateByEmail(ctx context.Context, email string, candidateID uuid.UUID) (int64, error) {
	args := m.Called(ctx, email, candidateID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockApplicationRepository) Delete(ctx context.Context, req *dto.DeleteApplicationRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

// MockInterviewRepository is a testify mock for storage.InterviewRepository.
type MockInterviewRepository struct {
	mock.Mock
}

func (m *MockInterviewRepository) List(ctx context.Context, req *dto.ListInterviewsRequest) ([]*models.Interview, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Interview), args.Error(1)
}

func (m *MockInterviewRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*models.Interview, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Interview), args.Error(1)
}

func (m *MockInterviewRepository) GetByID(ctx context.Context, req *dto.GetInterviewByIDRequest) (*models.Interview, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Interview), args.Error(1)
}

func (m *MockInterviewRepository) Create(ctx context.Context, req *dto.ScheduleInterviewRequest) (*models.Interview, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Interview), args.Error(1)
}

func (m *MockInterviewRepository) Update(ctx context.Context, req *dto.UpdateInterviewRequest) (*models.Interview, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Interview), args.Error(1)
}

func (m *MockInterviewRepository) Delete(ctx context.Context, req *dto.DeleteInterviewRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

// MockOfferRepository is a testify mock for storage.OfferRepository.
type MockOfferRepository struct {
	mock.Mock
}

func (m *MockOfferRepository) List(ctx context.Context, req *dto.ListOffersRequest) ([]*models.Offer, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Offer), args.Error(1)
}

func (m *MockOfferRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*models.Offer, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Offer), args.Error(1)
}

func (m *MockOfferRepository) GetByID(ctx context.Context, req *dto.GetOfferByIDRequest) (*models.Offer, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Offer), args.Error(1)
}

func (m *MockOfferRepository) Create(ctx context.Context, req *dto.CreateOfferRequest) (*models.Offer, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Offer), args.Error(1)
}

func (m *MockOfferRepository) Update(ctx context.Context, req *dto.UpdateOfferRequest) (*models.Offer, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Offer), args.Error(1)
}

func (m *MockOfferRepository) Delete(ctx context.Context, req *dto.DeleteOfferRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

// MockEmployeeRepository is a testify mock for storage.EmployeeRepository.
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) List(ctx context.Context, req *dto.ListEmployeesRequest) ([]*models.Employee, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) GetByID(ctx context.Context, req *dto.GetEmployeeByIDRequest) (*models.Employee, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*models.Employee, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Update(ctx context.Context, req *dto.UpdateEmployeeRequest) (*models.Employee, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Delete(ctx context.Context, req *dto.DeleteEmployeeRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

// MockUploader is a testify mock for uploads.Uploader.
type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, file *uploads.File) (string, error) {
	args := m.Called(ctx, file)
	return args.String(0), args.Error(1)
}

// Compile-time conformance checks
var (
	_ storage.UserRepository        = (*MockUserRepository)(nil)
	_ storage.JobRepository         = (*MockJobRepository)(nil)
	_ storage.ApplicationRepository = (*MockApplicationRepository)(nil)
	_ storage.InterviewRepository   = (*MockInterviewRepository)(nil)
	_ storage.OfferRepository       = (*MockOfferRepository)(nil)
	_ storage.EmployeeRepository    = (*MockEmployeeRepository)(nil)
	_ uploads.Uploader              = (*MockUploader)(nil)
)
