package postgres

import (
	"context"
	"errors"
	"log"

	"hr-backend/internal/models"
	"hr-backend/internal/storage"
	"hr-backend/internal/transport/dto"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JobRepo implements the storage.JobRepository interface using gorm.
type JobRepo struct {
	db *gorm.DB
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db *gorm.DB) *JobRepo {
	return &JobRepo{db: db}
}

var _ storage.JobRepository = (*JobRepo)(nil)

func (r *JobRepo) List(ctx context.Context, req *dto.ListJobsRequest) ([]*models.Job, error) {
	q := r.db.WithContext(ctx).Model(&models.Job{})
	if req.Status != "" {
		q = q.Where("status = ?", req.Status)
	}
	if req.Department != "" {
		q = q.Where("department = ?", req.Department)
	}
	if req.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}

	var jobs []*models.Job
	err := q.Order("created_at desc").
		Limit(req.Limit).
		Offset(req.Offset).
		Find(&jobs).Error
	if err != nil {
		log.Printf("Error listing jobs: %v\n", err)
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepo) GetByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).First(&job, "id = ?", req.ID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Job not found with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting job by ID %s: %v\n", req.ID, err)
		return nil, err
	}
	return &job, nil
}

func (r *JobRepo) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	job := models.Job{
		ID:               uuid.New(),
		Title:            req.Title,
		Department:       req.Department,
		Location:         req.Location,
		Type:             models.JobType(req.Type),
		Salary:           req.Salary,
		Description:      req.Description,
		Skills:           req.Skills,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
		Benefits:         req.Benefits,
		Status:           models.JobStatusActive,
		IsActive:         true,
		PostedByID:       req.PostedBy,
	}

	if err := r.db.WithContext(ctx).Create(&job).Error; err != nil {
		log.Printf("Error creating job %q: %v\n", req.Title, err)
		return nil, translateError(err)
	}

	log.Printf("Job created successfully with ID: %s", job.ID)
	return &job, nil
}

func (r *JobRepo) Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Department != nil {
		updates["department"] = *req.Department
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Salary != nil {
		updates["salary"] = *req.Salary
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Skills != nil {
		updates["skills"] = pqArray(req.Skills)
	}
	if req.Requirements != nil {
		updates["requirements"] = pqArray(req.Requirements)
	}
	if req.Responsibilities != nil {
		updates["responsibilities"] = pqArray(req.Responsibilities)
	}
	if req.Benefits != nil {
		updates["benefits"] = pqArray(req.Benefits)
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&models.Job{}).Where("id = ?", req.ID).Updates(updates)
		if res.Error != nil {
			log.Printf("Error updating job %s: %v\n", req.ID, res.Error)
			return nil, translateError(res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, storage.ErrNotFound
		}
	}

	return r.GetByID(ctx, &dto.GetJobByIDRequest{ID: req.ID})
}

func (r *JobRepo) ToggleActive(ctx context.Context, req *dto.ToggleJobStatusRequest) (*models.Job, error) {
	res := r.db.WithContext(ctx).Model(&models.Job{}).
		Where("id = ?", req.ID).
		Update("is_active", gorm.Expr("NOT is_active"))
	if res.Error != nil {
		log.Printf("Error toggling job %s: %v\n", req.ID, res.Error)
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, storage.ErrNotFound
	}
	return r.GetByID(ctx, &dto.GetJobByIDRequest{ID: req.ID})
}

func (r *JobRepo) Delete(ctx context.Context, req *dto.DeleteJobRequest) error {
	res := r.db.WithContext(ctx).Delete(&models.Job{}, "id = ?", req.ID)
	if res.Error != nil {
		log.Printf("Error deleting job with ID %s: %v\n", req.ID, res.Error)
		return res.Error
	}
	if res.RowsAffected == 0 {
		log.Printf("Job not found for deletion with ID: %s\n", req.ID)
		return storage.ErrNotFound
	}
	log.Printf("Job deleted successfully with ID: %s", req.ID)
	return nil
}
