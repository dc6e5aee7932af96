package services_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"hr-backend/internal/mocks"
	"hr-backend/internal/models"
	"hr-backend/internal/services"
	"hr-backend/internal/storage"
	"hr-backend/internal/transport/dto"
	"hr-backend/internal/uploads"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testMaxFileSize = 10 << 20

func newApplicationService(appRepo *mocks.MockApplicationRepository, jobRepo *mocks.MockJobRepository, uploader *mocks.MockUploader) services.ApplicationService {
	return services.NewApplicationService(appRepo, jobRepo, uploader, testMaxFileSize)
}

func resumeFixture() *dto.ResumeUpload {
	return &dto.ResumeUpload{
		Filename:    "resume.pdf",
		ContentType: "application/pdf",
		Size:        2048,
		Content:     strings.NewReader("%PDF-1.4 fake"),
	}
}

func TestApplicationService_Apply(t *testing.T) {
	jobID := uuid.New()
	job := &models.Job{ID: jobID, Title: "Backend Engineer"}

	tests := []struct {
		name          string
		req           *dto.ApplyRequest
		mockSetup     func(appRepo *mocks.MockApplicationRepository, jobRepo *mocks.MockJobRepository, uploader *mocks.MockUploader)
		expectedError error
		check         func(t *testing.T, app *models.Application)
	}{
		{
			name: "Success without resume",
			req: &dto.ApplyRequest{
				JobID:          jobID,
				CandidateName:  "Jordan Reyes",
				CandidateEmail: "jordan@example.com",
			},
			mockSetup: func(appRepo *mocks.MockApplicationRepository, jobRepo *mocks.MockJobRepository, uploader *mocks.MockUploader) {
				jobRepo.On("GetByID", mock.Anything, &dto.GetJobByIDRequest{ID: jobID}).Return(job, nil).Once()
				appRepo.On("GetByJobAndEmail", mock.Anything, jobID, "jordan@example.com").Return(nil, storage.ErrNotFound).Once()
				appRepo.On("Create", mock.Anything, mock.MatchedBy(func(req *dto.CreateApplicationRequest) bool {
					return req.JobID == jobID && req.CandidateEmail == "jordan@example.com" && req.ResumeURL == ""
				})).Return(&models.Application{
					ID:             uuid.New(),
					JobID:          jobID,
					CandidateEmail: "jordan@example.com",
					Status:         models.ApplicationStatusApplied,
				}, nil).Once()
			},
			check: func(t *testing.T, app *models.Application) {
				assert.Equal(t, models.ApplicationStatusApplied, app.Status)
				assert.Empty(t, app.ResumeURL)
			},
		},
		{
			name: "Success with resume upload",
			req: &dto.ApplyRequest{
				JobID:          jobID,
				CandidateName:  "Jordan Reyes",
				CandidateEmail: "jordan@example.com",
				Resume:         resumeFixture(),
			},
			mockSetup: func(appRepo *mocks.MockApplicationRepository, jobRepo *mocks.MockJobRepository, uploader *mocks.MockUploader) {
				jobRepo.On("GetByID", mock.Anything, &dto.GetJobByIDRequest{ID: jobID}).Return(job, nil).Once()
				uploader.On("Upload", mock.Anything, mock.MatchedBy(func(f *uploads.File) bool {
					return f.Name == "resume.pdf"
				})).Return("https://cdn.example.com/resumes/resume-1.pdf", nil).Once()
				appRepo.On("GetByJobAndEmail", mock.Anything, jobID, "jordan@example.com").Return(nil, storage.ErrNotFound).Once()
				appRepo.On("Create", mock.Anything, mock.MatchedBy(func(req *dto.CreateApplicationRequest) bool {
					return req.ResumeURL == "https://cdn.example.com/resumes/resume-1.pdf"
				})).Return(&models.Application{
					ID:        uuid.New(),
					JobID:     jobID,
					ResumeURL: "https://cdn.example.com/resumes/resume-1.pdf",
					Status:    models.ApplicationStatusApplied,
				}, nil).Once()
			},
			check: func(t *testing.T, app *models.Application) {
				assert.Equal(t, "https://cdn.example.com/resumes/resume-1.pdf", app.ResumeURL)
			},
		},
		{
			name: "Email is normalized to lower case",
			req: &dto.ApplyRequest{
				JobID:          jobID,
				CandidateName:  "Jordan Reyes",
				CandidateEmail: "Jordan@Example.COM",
			},
			mockSetup: func(appRepo *mocks.MockApplicationRepository, jobRepo *mocks.MockJobRepository, uploader *mocks.MockUploader) {
				jobRepo.On("GetByID", mock.Anything, &dto.GetJobByIDRequest{ID: jobID}).Return(job, nil).Once()
				appRepo.On("GetByJobAndEmail", mock.Anything, jobID, "jordan@example.com").Return(nil, storage.ErrNotFound).Once()
				appRepo.On("Create", mock.Anything, mock.MatchedBy(func(req *dto.CreateApplicationRequest) bool {
					return req.CandidateEmail == "jordan@example.com"
				})).Return(&models.Application{ID: uuid.New(), CandidateEmail: "jordan@example.com"}, nil).Once()
			},
			check: func(t *testing.T, app *models.Application) {
				assert.Equal(t, "jordan@example.com", app.CandidateEmail)
			},
		},
		{
			name: "Missing required fields",
			req: &dto.ApplyRequest{
				JobID:         jobID,
				CandidateName: "Jordan Reyes",
			},
			mockSetup:     func(appRepo *mocks.MockApplicationRepository, jobRepo *mocks.MockJobRepository, uploader *mocks.MockUploader) {},
			expectedError: services.ErrValidation,
		},
		{
			name: "Job does not exist",
			req: &dto.ApplyRequest{
				JobID:          jobID,
				CandidateName:  "Jordan Reyes",
				CandidateEmail: "jordan@example.com",
				Resume:         resumeFixture(),
			},
			mockSetup: func(appRepo *mocks.MockApplicationRepository, jobRepo *mocks.MockJobRepository, uploader *mocks.MockUploader) {
				jobRepo.On("GetByID", mock.Anything, &dto.GetJobByIDRequest{ID: jobID}).Return(nil, storage.ErrNotFound).Once()
			},
			expectedError: services.ErrNotFound,
		},
		{
			name: "Unsupported resume type rejected before upload",
			req: &dto.ApplyRequest{
				JobID:          jobID,
				CandidateName:  "Jordan Reyes",
				CandidateEmail: "jordan@example.com",
				Resume: &dto.ResumeUpload{
					Filename:    "resume.exe",
					ContentType: "application/octet-stream",
					Size:        1024,
					Content:     strings.NewReader("MZ"),
				},
			},
			mockSetup: func(appRepo *mocks.MockApplicationRepository, jobRepo *mocks.MockJobRepository, uploader *mocks.MockUploader) {
				jobRepo.On("GetByID", mock.Anything, &dto.GetJobByIDRequest{ID: jobID}).Return(job, nil).Once()
			},
			expectedError: services.ErrValidation,
		},
		{
			name: "Oversized resume rejected before upload",
			req: &dto.ApplyRequest{
				JobID:          jobID,
				CandidateName:  "Jordan Reyes",
				CandidateEmail: "jordan@example.com",
				Resume: &dto.ResumeUpload{
					Filename:    "resume.pdf",
					ContentType: "application/pdf",
					Size:        testMaxFileSize + 1,
					Content:     strings.NewReader("big"),
				},
			},
			mockSetup: func(appRepo *mocks.MockApplicationRepository, jobRepo *mocks.MockJobRepository, uploader *mocks.MockUploader) {
				jobRepo.On("GetByID", mock.Anything, &dto.GetJobByIDRequest{ID: jobID}).Return(job, nil).Once()
			},
			expectedError: services.ErrValidation,
		},
		{
			name: "Upload failure aborts the request with no record",
			req: &dto.ApplyRequest{
				JobID:          jobID,
				CandidateName:  "Jordan Reyes",
				CandidateEmail: "jordan@example.com",
				Resume:         resumeFixture(),
			},
			mockSetup: func(appRepo *mocks.MockApplicationRepository, jobRepo *mocks.MockJobRepository, uploader *mocks.MockUploader) {
				jobRepo.On("GetByID", mock.Anything, &dto.GetJobByIDRequest{ID: jobID}).Return(job, nil).Once()
				uploader.On("Upload", mock.Anything, mock.Anything).Return("", context.DeadlineExceeded).Once()
			},
			expectedError: services.ErrUpload,
		},
		{
			name: "Duplicate caught by pre-check",
			req: &dto.ApplyRequest{
				JobID:          jobID,
				CandidateName:  "Jordan Reyes",
				CandidateEmail: "jordan@example.com",
			},
			mockSetup: func(appRepo *mocks.MockApplicationRepository, jobRepo *mocks.MockJobRepository, uploader *mocks.MockUploader) {
				jobRepo.On("GetByID", mock.Anything, &dto.GetJobByIDRequest{ID: jobID}).Return(job, nil).Once()
				appRepo.On("GetByJobAndEmail", mock.Anything, jobID, "jordan@example.com").Return(&models.Application{ID: uuid.New()}, nil).Once()
			},
			expectedError: services.ErrConflict,
		},
		{
			name: "Duplicate caught by unique constraint at insert",
			req: &dto.ApplyRequest{
				JobID:          jobID,
				CandidateName:  "Jordan Reyes",
				CandidateEmail: "jordan@example.com",
			},
			mockSetup: func(appRepo *mocks.MockApplicationRepository, jobRepo *mocks.MockJobRepository, uploader *mocks.MockUploader) {
				jobRepo.On("GetByID", mock.Anything, &dto.GetJobByIDRequest{ID: jobID}).Return(job, nil).Once()
				appRepo.On("GetByJobAndEmail", mock.Anything, jobID, "jordan@example.com").Return(nil, storage.ErrNotFound).Once()
				appRepo.On("Create", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("%w: duplicated key", storage.ErrConflict)).Once()
			},
			expectedError: services.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appRepo := new(mocks.MockApplicationRepository)
			jobRepo := new(mocks.MockJobRepository)
			uploader := new(mocks.MockUploader)
			tt.mockSetup(appRepo, jobRepo, uploader)

			svc := newApplicationService(appRepo, jobRepo, uploader)
			application, err := svc.Apply(context.Background(), tt.req)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedError), "expected error %v, got %v", tt.expectedError, err)
				assert.Nil(t, application)
			} else {
				require.NoError(t, err)
				require.NotNil(t, application)
				if tt.check != nil {
					tt.check(t, application)
				}
			}

			appRepo.AssertExpectations(t)
			jobRepo.AssertExpectations(t)
			uploader.AssertExpectations(t)
		})
	}
}

func TestApplicationService_Apply_UploadFailureCreatesNothing(t *testing.T) {
	jobID := uuid.New()
	appRepo := new(mocks.MockApplicationRepository)
	jobRepo := new(mocks.MockJobRepository)
	uploader := new(mocks.MockUploader)

	jobRepo.On("GetByID", mock.Anything, mock.Anything).Return(&models.Job{ID: jobID}, nil).Once()
	uploader.On("Upload", mock.Anything, mock.Anything).Return("", errors.New("storage unavailable")).Once()

	svc := newApplicationService(appRepo, jobRepo, uploader)
	_, err := svc.Apply(context.Background(), &dto.ApplyRequest{
		JobID:          jobID,
		CandidateName:  "Jordan Reyes",
		CandidateEmail: "jordan@example.com",
		Resume:         resumeFixture(),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrUpload))
	// The repository must never have been touched after the failed upload.
	appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	appRepo.AssertNotCalled(t, "GetByJobAndEmail", mock.Anything, mock.Anything, mock.Anything)
}

func TestApplicationService_ListMine(t *testing.T) {
	userID := uuid.New()
	linked := []*models.Application{
		{ID: uuid.New(), CandidateID: &userID, CandidateEmail: "jordan@example.com"},
		{ID: uuid.New(), CandidateID: &userID, CandidateEmail: "jordan@example.com"},
	}

	t.Run("Links anonymous applications before listing", func(t *testing.T) {
		appRepo := new(mocks.MockApplicationRepository)
		jobRepo := new(mocks.MockJobRepository)
		uploader := new(mocks.MockUploader)

		appRepo.On("LinkCandidateByEmail", mock.Anything, "jordan@example.com", userID).Return(int64(1), nil).Once()
		appRepo.On("ListByCandidate", mock.Anything, userID).Return(linked, nil).Once()

		svc := newApplicationService(appRepo, jobRepo, uploader)
		applications, err := svc.ListMine(context.Background(), userID, "Jordan@Example.com")

		require.NoError(t, err)
		assert.Len(t, applications, 2)
		appRepo.AssertExpectations(t)
	})

	t.Run("Idempotent when nothing is left to link", func(t *testing.T) {
		appRepo := new(mocks.MockApplicationRepository)
		jobRepo := new(mocks.MockJobRepository)
		uploader := new(mocks.MockUploader)

		appRepo.On("LinkCandidateByEmail", mock.Anything, "jordan@example.com", userID).Return(int64(0), nil).Once()
		appRepo.On("ListByCandidate", mock.Anything, userID).Return(linked, nil).Once()

		svc := newApplicationService(appRepo, jobRepo, uploader)
		applications, err := svc.ListMine(context.Background(), userID, "jordan@example.com")

		require.NoError(t, err)
		assert.Len(t, applications, 2)
		appRepo.AssertExpectations(t)
	})

	t.Run("Link failure surfaces an error", func(t *testing.T) {
		appRepo := new(mocks.MockApplicationRepository)
		jobRepo := new(mocks.MockJobRepository)
		uploader := new(mocks.MockUploader)

		appRepo.On("LinkCandidateByEmail", mock.Anything, "jordan@example.com", userID).Return(int64(0), errors.New("db down")).Once()

		svc := newApplicationService(appRepo, jobRepo, uploader)
		_, err := svc.ListMine(context.Background(), userID, "jordan@example.com")

		require.Error(t, err)
		appRepo.AssertNotCalled(t, "ListByCandidate", mock.Anything, mock.Anything)
	})
}

func TestApplicationService_ListByJob_UnknownJob(t *testing.T) {
	jobID := uuid.New()
	appRepo := new(mocks.MockApplicationRepository)
	jobRepo := new(mocks.MockJobRepository)
	uploader := new(mocks.MockUploader)

	jobRepo.On("GetByID", mock.Anything, &dto.GetJobByIDRequest{ID: jobID}).Return(nil, storage.ErrNotFound).Once()

	svc := newApplicationService(appRepo, jobRepo, uploader)
	_, err := svc.ListByJob(context.Background(), &dto.ListApplicationsByJobRequest{JobID: jobID})

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrNotFound))
	appRepo.AssertNotCalled(t, "ListByJob", mock.Anything, mock.Anything)
}
