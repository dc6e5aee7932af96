package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hr-backend/internal/mocks"
	"hr-backend/internal/models"
	"hr-backend/internal/services"
	"hr-backend/internal/storage"
	"hr-backend/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func offerRequestFixture(applicationID, jobID, candidateID uuid.UUID) *dto.CreateOfferRequest {
	return &dto.CreateOfferRequest{
		ApplicationID:  applicationID,
		JobID:          jobID,
		CandidateID:    candidateID,
		CandidateName:  "Jordan Reyes",
		CandidateEmail: "jordan@example.com",
		Position:       "Backend Engineer",
		Department:     "Engineering",
		Salary:         90000,
		StartDate:      time.Now().AddDate(0, 1, 0),
		OfferValidTill: time.Now().AddDate(0, 0, 14),
	}
}

func TestOfferService_Create(t *testing.T) {
	applicationID := uuid.New()
	jobID := uuid.New()
	candidateID := uuid.New()
	application := &models.Application{ID: applicationID, JobID: jobID, Status: models.ApplicationStatusShortlisted}

	t.Run("Creates offer and forces application status", func(t *testing.T) {
		offerRepo := new(mocks.MockOfferRepository)
		appRepo := new(mocks.MockApplicationRepository)

		req := offerRequestFixture(applicationID, jobID, candidateID)
		appRepo.On("GetByID", mock.Anything, &dto.GetApplicationByIDRequest{ID: applicationID}).Return(application, nil).Once()
		offerRepo.On("Create", mock.Anything, req).Return(&models.Offer{
			ID:            uuid.New(),
			ApplicationID: applicationID,
			Status:        models.OfferStatusPending,
		}, nil).Once()
		appRepo.On("SetStatus", mock.Anything, applicationID, models.ApplicationStatusOffer).Return(nil).Once()

		svc := services.NewOfferService(offerRepo, appRepo)
		offer, err := svc.Create(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, models.OfferStatusPending, offer.Status)
		offerRepo.AssertExpectations(t)
		appRepo.AssertExpectations(t)
	})

	t.Run("Unknown application", func(t *testing.T) {
		offerRepo := new(mocks.MockOfferRepository)
		appRepo := new(mocks.MockApplicationRepository)

		req := offerRequestFixture(applicationID, jobID, candidateID)
		appRepo.On("GetByID", mock.Anything, mock.Anything).Return(nil, storage.ErrNotFound).Once()

		svc := services.NewOfferService(offerRepo, appRepo)
		_, err := svc.Create(context.Background(), req)

		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrNotFound))
		offerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Application belongs to a different job", func(t *testing.T) {
		offerRepo := new(mocks.MockOfferRepository)
		appRepo := new(mocks.MockApplicationRepository)

		req := offerRequestFixture(applicationID, uuid.New(), candidateID)
		appRepo.On("GetByID", mock.Anything, mock.Anything).Return(application, nil).Once()

		svc := services.NewOfferService(offerRepo, appRepo)
		_, err := svc.Create(context.Background(), req)

		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrValidation))
		offerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestInterviewService_Schedule(t *testing.T) {
	applicationID := uuid.New()
	jobID := uuid.New()
	candidateID := uuid.New()

	scheduleReq := &dto.ScheduleInterviewRequest{
		ApplicationID: applicationID,
		JobID:         jobID,
		CandidateID:   candidateID,
		ScheduledDate: time.Now().AddDate(0, 0, 3),
		ScheduledBy:   uuid.New(),
	}

	t.Run("Creates interview and leaves application status untouched", func(t *testing.T) {
		interviewRepo := new(mocks.MockInterviewRepository)
		appRepo := new(mocks.MockApplicationRepository)

		appRepo.On("GetByID", mock.Anything, &dto.GetApplicationByIDRequest{ID: applicationID}).
			Return(&models.Application{ID: applicationID, JobID: jobID, Status: models.ApplicationStatusApplied}, nil).Once()
		interviewRepo.On("Create", mock.Anything, scheduleReq).Return(&models.Interview{
			ID:     uuid.New(),
			Status: models.InterviewStatusScheduled,
		}, nil).Once()

		svc := services.NewInterviewService(interviewRepo, appRepo)
		interview, err := svc.Schedule(context.Background(), scheduleReq)

		require.NoError(t, err)
		assert.Equal(t, models.InterviewStatusScheduled, interview.Status)
		appRepo.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
		interviewRepo.AssertExpectations(t)
	})

	t.Run("Unknown application", func(t *testing.T) {
		interviewRepo := new(mocks.MockInterviewRepository)
		appRepo := new(mocks.MockApplicationRepository)

		appRepo.On("GetByID", mock.Anything, mock.Anything).Return(nil, storage.ErrNotFound).Once()

		svc := services.NewInterviewService(interviewRepo, appRepo)
		_, err := svc.Schedule(context.Background(), scheduleReq)

		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrNotFound))
		interviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Application belongs to a different job", func(t *testing.T) {
		interviewRepo := new(mocks.MockInterviewRepository)
		appRepo := new(mocks.MockApplicationRepository)

		appRepo.On("GetByID", mock.Anything, mock.Anything).
			Return(&models.Application{ID: applicationID, JobID: uuid.New(), Status: models.ApplicationStatusApplied}, nil).Once()

		svc := services.NewInterviewService(interviewRepo, appRepo)
		_, err := svc.Schedule(context.Background(), scheduleReq)

		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrValidation))
		interviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
