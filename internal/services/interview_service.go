package services

import (
	"context"
	"fmt"

	"hr-backend/internal/models"
	"hr-backend/internal/storage"
	"hr-backend/internal/transport/dto"

	"github.com/google/uuid"
)

type interviewService struct {
	repo    storage.InterviewRepository
	appRepo storage.ApplicationRepository
}

// NewInterviewService creates a new instance of InterviewService.
func NewInterviewService(repo storage.InterviewRepository, appRepo storage.ApplicationRepository) InterviewService {
	return &interviewService{repo: repo, appRepo: appRepo}
}

func (s *interviewService) List(ctx context.Context, req *dto.ListInterviewsRequest) ([]*models.Interview, error) {
	interviews, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "listing interviews")
	}
	return interviews, nil
}

func (s *interviewService) ListMine(ctx context.Context, candidateID uuid.UUID) ([]*models.Interview, error) {
	interviews, err := s.repo.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("listing interviews for candidate %s", candidateID))
	}
	return interviews, nil
}

func (s *interviewService) GetByID(ctx context.Context, req *dto.GetInterviewByIDRequest) (*models.Interview, error) {
	interview, err := s.repo.GetByID(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching interview %s", req.ID))
	}
	return interview, nil
}

// Schedule creates the interview. The application's status is left untouched;
// reviewers move it explicitly, and only offer creation advances it
// automatically.
func (s *interviewService) Schedule(ctx context.Context, req *dto.ScheduleInterviewRequest) (*models.Interview, error) {
	appReq := dto.GetApplicationByIDRequest{ID: req.ApplicationID}
	application, err := s.appRepo.GetByID(ctx, &appReq)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching application %s for interview", req.ApplicationID))
	}
	if application.JobID != req.JobID {
		return nil, fmt.Errorf("%w: application does not belong to the given job", ErrValidation)
	}

	interview, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "scheduling interview")
	}

	return interview, nil
}

func (s *interviewService) Update(ctx context.Context, req *dto.UpdateInterviewRequest) (*models.Interview, error) {
	interview, err := s.repo.Update(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("updating interview %s", req.ID))
	}
	return interview, nil
}

func (s *interviewService) Delete(ctx context.Context, req *dto.DeleteInterviewRequest) error {
	if err := s.repo.Delete(ctx, req); err != nil {
		return mapRepoError(err, fmt.Sprintf("deleting interview %s", req.ID))
	}
	return nil
}
