package services

import (
	"context"
	"fmt"

	"hr-backend/internal/models"
	"hr-backend/internal/storage"
	"hr-backend/internal/transport/dto"
)

type jobService struct {
	repo storage.JobRepository
}

// NewJobService creates a new instance of JobService.
func NewJobService(repo storage.JobRepository) JobService {
	return &jobService{repo: repo}
}

func (s *jobService) List(ctx context.Context, req *dto.ListJobsRequest) ([]*models.Job, error) {
	jobs, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "listing jobs")
	}
	return jobs, nil
}

func (s *jobService) GetByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error) {
	job, err := s.repo.GetByID(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s", req.ID))
	}
	return job, nil
}

func (s *jobService) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	job, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "creating job")
	}
	return job, nil
}

func (s *jobService) Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.repo.Update(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("updating job %s", req.ID))
	}
	return job, nil
}

func (s *jobService) ToggleActive(ctx context.Context, req *dto.ToggleJobStatusRequest) (*models.Job, error) {
	job, err := s.repo.ToggleActive(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("toggling job %s", req.ID))
	}
	return job, nil
}

func (s *jobService) Delete(ctx context.Context, req *dto.DeleteJobRequest) error {
	if err := s.repo.Delete(ctx, req); err != nil {
		return mapRepoError(err, fmt.Sprintf("deleting job %s", req.ID))
	}
	return nil
}
