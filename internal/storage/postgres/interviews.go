package postgres

import (
	"context"
	"errors"
	"log"
	"time"

	"hr-backend/internal/models"
	"hr-backend/internal/storage"
	"hr-backend/internal/transport/dto"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InterviewRepo implements the storage.InterviewRepository interface using gorm.
type InterviewRepo struct {
	db *gorm.DB
}

// NewInterviewRepo creates a new InterviewRepo.
func NewInterviewRepo(db *gorm.DB) *InterviewRepo {
	return &InterviewRepo{db: db}
}

var _ storage.InterviewRepository = (*InterviewRepo)(nil)

func (r *InterviewRepo) List(ctx context.Context, req *dto.ListInterviewsRequest) ([]*models.Interview, error) {
	q := r.db.WithContext(ctx).Model(&models.Interview{})
	if req.JobID != nil {
		q = q.Where("job_id = ?", *req.JobID)
	}
	if req.CandidateID != nil {
		q = q.Where("candidate_id = ?", *req.CandidateID)
	}
	if req.Status != "" {
		q = q.Where("status = ?", req.Status)
	}

	var interviews []*models.Interview
	err := q.Preload("Job").Preload("Candidate").
		Order("scheduled_date asc").
		Limit(req.Limit).
		Offset(req.Offset).
		Find(&interviews).Error
	if err != nil {
		log.Printf("Error listing interviews: %v\n", err)
		return nil, err
	}
	return interviews, nil
}

func (r *InterviewRepo) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*models.Interview, error) {
	var interviews []*models.Interview
	err := r.db.WithContext(ctx).
		Preload("Job").
		Where("candidate_id = ?", candidateID).
		Order("scheduled_date asc").
		Find(&interviews).Error
	if err != nil {
		log.Printf("Error listing interviews for candidate %s: %v\n", candidateID, err)
		return nil, err
	}
	return interviews, nil
}

func (r *InterviewRepo) GetByID(ctx context.Context, req *dto.GetInterviewByIDRequest) (*models.Interview, error) {
	var interview models.Interview
	err := r.db.WithContext(ctx).
		Preload("Job").Preload("Candidate").Preload("Application").
		First(&interview, "id = ?", req.ID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Interview not found with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting interview by ID %s: %v\n", req.ID, err)
		return nil, err
	}
	return &interview, nil
}

func (r *InterviewRepo) Create(ctx context.Context, req *dto.ScheduleInterviewRequest) (*models.Interview, error) {
	interviewType := models.InterviewTypeVideo
	if req.Type != "" {
		interviewType = models.InterviewType(req.Type)
	}
	duration := req.Duration
	if duration == 0 {
		duration = 60
	}

	interview := models.Interview{
		ID:            uuid.New(),
		ApplicationID: req.ApplicationID,
		JobID:         req.JobID,
		CandidateID:   req.CandidateID,
		ScheduledByID: req.ScheduledBy,
		Type:          interviewType,
		ScheduledDate: req.ScheduledDate,
		Duration:      duration,
		Interviewers:  req.Interviewers,
		MeetingLink:   req.MeetingLink,
		Location:      req.Location,
		Status:        models.InterviewStatusScheduled,
		Notes:         req.Notes,
	}

	if err := r.db.WithContext(ctx).Create(&interview).Error; err != nil {
		log.Printf("Error creating interview for application %s: %v\n", req.ApplicationID, err)
		return nil, translateError(err)
	}

	log.Printf("Interview created successfully with ID: %s", interview.ID)
	return &interview, nil
}

func (r *InterviewRepo) Update(ctx context.Context, req *dto.UpdateInterviewRequest) (*models.Interview, error) {
	updates := map[string]interface{}{}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.ScheduledDate != nil {
		updates["scheduled_date"] = *req.ScheduledDate
	}
	if req.Duration != nil {
		updates["duration"] = *req.Duration
	}
	if req.Interviewers != nil {
		updates["interviewers"] = pqArray(req.Interviewers)
	}
	if req.MeetingLink != nil {
		updates["meeting_link"] = *req.MeetingLink
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Status != nil {
		updates["status"] = *req.Status
		if models.InterviewStatus(*req.Status) == models.InterviewStatusCompleted {
			updates["completed_at"] = time.Now()
		}
	}
	if req.Feedback != nil {
		updates["feedback"] = *req.Feedback
	}
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&models.Interview{}).Where("id = ?", req.ID).Updates(updates)
		if res.Error != nil {
			log.Printf("Error updating interview %s: %v\n", req.ID, res.Error)
			return nil, translateError(res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, storage.ErrNotFound
		}
	}

	return r.GetByID(ctx, &dto.GetInterviewByIDRequest{ID: req.ID})
}

func (r *InterviewRepo) Delete(ctx context.Context, req *dto.DeleteInterviewRequest) error {
	res := r.db.WithContext(ctx).Delete(&models.Interview{}, "id = ?", req.ID)
	if res.Error != nil {
		log.Printf("Error deleting interview with ID %s: %v\n", req.ID, res.Error)
		return res.Error
	}
	if res.RowsAffected == 0 {
		log.Printf("Interview not found for deletion with ID: %s\n", req.ID)
		return storage.ErrNotFound
	}
	log.Printf("Interview deleted successfully with ID: %s", req.ID)
	return nil
}
