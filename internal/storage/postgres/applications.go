package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"hr-backend/internal/models"
	"hr-backend/internal/storage"
	"hr-backend/internal/transport/dto"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApplicationRepo implements the storage.ApplicationRepository interface using gorm.
type ApplicationRepo struct {
	db *gorm.DB
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(db *gorm.DB) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

func (r *ApplicationRepo) List(ctx context.Context, req *dto.ListApplicationsRequest) ([]*models.Application, error) {
	q := r.db.WithContext(ctx).Model(&models.Application{})
	if req.JobID != nil {
		q = q.Where("job_id = ?", *req.JobID)
	}
	if req.CandidateID != nil {
		q = q.Where("candidate_id = ?", *req.CandidateID)
	}
	if req.Status != "" {
		q = q.Where("status = ?", req.Status)
	}

	var apps []*models.Application
	err := q.Preload("Job").Preload("Candidate").Preload("ReviewedBy").
		Order("applied_at desc").
		Limit(req.Limit).
		Offset(req.Offset).
		Find(&apps).Error
	if err != nil {
		log.Printf("Error listing applications: %v\n", err)
		return nil, err
	}
	return apps, nil
}

func (r *ApplicationRepo) ListByJob(ctx context.Context, req *dto.ListApplicationsByJobRequest) ([]*models.Application, error) {
	var apps []*models.Application
	err := r.db.WithContext(ctx).
		Preload("Candidate").
		Where("job_id = ?", req.JobID).
		Order("applied_at desc").
		Limit(req.Limit).
		Offset(req.Offset).
		Find(&apps).Error
	if err != nil {
		log.Printf("Error listing applications for job %s: %v\n", req.JobID, err)
		return nil, err
	}
	return apps, nil
}

func (r *ApplicationRepo) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*models.Application, error) {
	var apps []*models.Application
	err := r.db.WithContext(ctx).
		Preload("Job").
		Where("candidate_id = ?", candidateID).
		Order("applied_at desc").
		Find(&apps).Error
	if err != nil {
		log.Printf("Error listing applications for candidate %s: %v\n", candidateID, err)
		return nil, err
	}
	return apps, nil
}

func (r *ApplicationRepo) GetByID(ctx context.Context, req *dto.GetApplicationByIDRequest) (*models.Application, error) {
	var app models.Application
	err := r.db.WithContext(ctx).
		Preload("Job").Preload("Candidate").Preload("ReviewedBy").
		First(&app, "id = ?", req.ID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Application not found with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting application by ID %s: %v\n", req.ID, err)
		return nil, err
	}
	return &app, nil
}

// GetByJobAndEmail finds an application by job and lower-cased candidate
// email. Used as the fast-path duplicate check before insert.
func (r *ApplicationRepo) GetByJobAndEmail(ctx context.Context, jobID uuid.UUID, email string) (*models.Application, error) {
	var app models.Application
	err := r.db.WithContext(ctx).
		First(&app, "job_id = ? AND candidate_email = ?", jobID, email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error querying application by job %s and email: %v\n", jobID, err)
		return nil, err
	}
	return &app, nil
}

// Create inserts the application. A concurrent duplicate that slipped past the
// pre-check lands here as a unique-constraint violation and maps to
// storage.ErrConflict.
func (r *ApplicationRepo) Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error) {
	app := models.Application{
		ID:             uuid.New(),
		JobID:          req.JobID,
		CandidateID:    req.CandidateID,
		CandidateName:  req.CandidateName,
		CandidateEmail: req.CandidateEmail,
		CandidatePhone: req.CandidatePhone,
		ResumeURL:      req.ResumeURL,
		CoverLetter:    req.CoverLetter,
		Status:         models.ApplicationStatusApplied,
		AppliedAt:      time.Now(),
	}

	if err := r.db.WithContext(ctx).Create(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Printf("Error creating application (constraint violation): %v\n", err)
			return nil, fmt.Errorf("failed to create application: unique constraint violation: %w", storage.ErrConflict)
		}
		log.Printf("Error creating application: %v\n", err)
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	log.Printf("Application created successfully with ID: %s", app.ID)
	return &app, nil
}

func (r *ApplicationRepo) Review(ctx context.Context, req *dto.ReviewApplicationRequest) (*models.Application, error) {
	updates := map[string]interface{}{}
	if req.Status != nil {
		updates["status"] = *req.Status
		updates["reviewed_at"] = time.Now()
		updates["reviewed_by_id"] = req.ReviewedBy
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}

	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&models.Application{}).Where("id = ?", req.ID).Updates(updates)
		if res.Error != nil {
			log.Printf("Error reviewing application %s: %v\n", req.ID, res.Error)
			return nil, translateError(res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, storage.ErrNotFound
		}
	}

	return r.GetByID(ctx, &dto.GetApplicationByIDRequest{ID: req.ID})
}

func (r *ApplicationRepo) SetStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) error {
	res := r.db.WithContext(ctx).Model(&models.Application{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		log.Printf("Error setting application %s status to %s: %v\n", id, status, res.Error)
		return res.Error
	}
	if res.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (r *ApplicationRepo) LinkCandidateByEmail(ctx context.Context, email string, candidateID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Application{}).
		Where("candidate_email = ? AND candidate_id IS NULL", email).
		Update("candidate_id", candidateID)
	if res.Error != nil {
		log.Printf("Error linking applications for email to candidate %s: %v\n", candidateID, res.Error)
		return 0, res.Error
	}
	if res.RowsAffected > 0 {
		log.Printf("Linked %d anonymous applications to candidate %s", res.RowsAffected, candidateID)
	}
	return res.RowsAffected, nil
}

func (r *ApplicationRepo) Delete(ctx context.Context, req *dto.DeleteApplicationRequest) error {
	res := r.db.WithContext(ctx).Delete(&models.Application{}, "id = ?", req.ID)
	if res.Error != nil {
		log.Printf("Error deleting application with ID %s: %v\n", req.ID, res.Error)
		return res.Error
	}
	if res.RowsAffected == 0 {
		log.Printf("Application not found for deletion with ID: %s\n", req.ID)
		return storage.ErrNotFound
	}
	log.Printf("Application deleted successfully with ID: %s", req.ID)
	return nil
}
