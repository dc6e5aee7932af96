package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"hr-backend/internal/storage"
	"hr-backend/internal/transport/dto"
	"hr-backend/internal/uploads"

	"hr-backend/internal/models"

	"github.com/google/uuid"
)

type applicationService struct {
	appRepo     storage.ApplicationRepository
	jobRepo     storage.JobRepository
	uploader    uploads.Uploader
	maxFileSize int64
}

// NewApplicationService creates a new instance of ApplicationService.
func NewApplicationService(appRepo storage.ApplicationRepository, jobRepo storage.JobRepository, uploader uploads.Uploader, maxFileSize int64) ApplicationService {
	return &applicationService{
		appRepo:     appRepo,
		jobRepo:     jobRepo,
		uploader:    uploader,
		maxFileSize: maxFileSize,
	}
}

// Apply runs the intake workflow in cost order: cheap field checks and job
// lookup first, then the resume upload, then a fresh duplicate check
// immediately before the insert (time has passed during the upload, a
// concurrent submission may have landed). The unique constraint on
// (job_id, candidate_email) remains the authoritative guard: a race that
// slips past the pre-check surfaces as ErrConflict from the insert.
//
// On a failure after a successful upload the stored blob is left behind;
// there is no compensating delete. The request itself stays atomic from the
// caller's perspective: no Application row exists.
func (s *applicationService) Apply(ctx context.Context, req *dto.ApplyRequest) (*models.Application, error) {
	if req.JobID == uuid.Nil || strings.TrimSpace(req.CandidateName) == "" || strings.TrimSpace(req.CandidateEmail) == "" {
		return nil, fmt.Errorf("%w: jobId, candidateName and candidateEmail are required", ErrValidation)
	}
	email := strings.ToLower(strings.TrimSpace(req.CandidateEmail))

	// 1. The referenced job must exist.
	jobReq := dto.GetJobByIDRequest{ID: req.JobID}
	if _, err := s.jobRepo.GetByID(ctx, &jobReq); err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s for application", req.JobID))
	}

	// 2. Optional resume: validate cheaply, then pay for the upload.
	var resumeURL string
	if req.Resume != nil {
		file := &uploads.File{
			Name:        req.Resume.Filename,
			ContentType: req.Resume.ContentType,
			Size:        req.Resume.Size,
			Content:     req.Resume.Content,
		}
		if err := uploads.ValidateResume(file, s.maxFileSize); err != nil {
			log.Printf("Apply: resume rejected for job %s: %v", req.JobID, err)
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		url, err := s.uploader.Upload(ctx, file)
		if err != nil {
			log.Printf("Apply: resume upload failed for job %s: %v", req.JobID, err)
			return nil, fmt.Errorf("%w: %v", ErrUpload, err)
		}
		resumeURL = url
	}

	// 3. Duplicate pre-check, re-run after the upload so the window is as
	// small as it can be without a transaction spanning the blob store.
	_, err := s.appRepo.GetByJobAndEmail(ctx, req.JobID, email)
	if err == nil {
		log.Printf("Apply: duplicate application for job %s", req.JobID)
		return nil, fmt.Errorf("%w: already applied for this job", ErrConflict)
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, mapRepoError(err, "checking for existing application")
	}

	// 4. Persist with initial status "applied".
	createReq := dto.CreateApplicationRequest{
		JobID:          req.JobID,
		CandidateID:    req.CandidateID,
		CandidateName:  strings.TrimSpace(req.CandidateName),
		CandidateEmail: email,
		CandidatePhone: req.CandidatePhone,
		ResumeURL:      resumeURL,
		CoverLetter:    req.CoverLetter,
	}
	application, err := s.appRepo.Create(ctx, &createReq)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			// Lost the race; same answer as the pre-check.
			log.Printf("Apply: concurrent duplicate for job %s caught at insert", req.JobID)
			return nil, fmt.Errorf("%w: already applied for this job", ErrConflict)
		}
		return nil, mapRepoError(err, "creating application")
	}

	return application, nil
}

// ListMine reconciles then lists. The bulk link runs before the read so the
// same request already returns records that were submitted anonymously with
// the user's email. Re-running with nothing to link is a no-op.
func (s *applicationService) ListMine(ctx context.Context, userID uuid.UUID, email string) ([]*models.Application, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	linked, err := s.appRepo.LinkCandidateByEmail(ctx, normalized, userID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("linking applications for user %s", userID))
	}
	if linked > 0 {
		log.Printf("ListMine: linked %d anonymous applications to user %s", linked, userID)
	}

	applications, err := s.appRepo.ListByCandidate(ctx, userID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("listing applications for user %s", userID))
	}
	return applications, nil
}

func (s *applicationService) List(ctx context.Context, req *dto.ListApplicationsRequest) ([]*models.Application, error) {
	applications, err := s.appRepo.List(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "listing applications")
	}
	return applications, nil
}

func (s *applicationService) ListByJob(ctx context.Context, req *dto.ListApplicationsByJobRequest) ([]*models.Application, error) {
	// Verify the job exists so an unknown job id is a 404, not an empty list.
	jobReq := dto.GetJobByIDRequest{ID: req.JobID}
	if _, err := s.jobRepo.GetByID(ctx, &jobReq); err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s for listing applications", req.JobID))
	}

	applications, err := s.appRepo.ListByJob(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("listing applications for job %s", req.JobID))
	}
	return applications, nil
}

func (s *applicationService) GetByID(ctx context.Context, req *dto.GetApplicationByIDRequest) (*models.Application, error) {
	application, err := s.appRepo.GetByID(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching application %s", req.ID))
	}
	return application, nil
}

func (s *applicationService) Review(ctx context.Context, req *dto.ReviewApplicationRequest) (*models.Application, error) {
	application, err := s.appRepo.Review(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("reviewing application %s", req.ID))
	}
	log.Printf("Application %s reviewed by %s", req.ID, req.ReviewedBy)
	return application, nil
}

func (s *applicationService) Delete(ctx context.Context, req *dto.DeleteApplicationRequest) error {
	if err := s.appRepo.Delete(ctx, req); err != nil {
		return mapRepoError(err, fmt.Sprintf("deleting application %s", req.ID))
	}
	return nil
}
