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

// OfferRepo implements the storage.OfferRepository interface using gorm.
type OfferRepo struct {
	db *gorm.DB
}

// NewOfferRepo creates a new OfferRepo.
func NewOfferRepo(db *gorm.DB) *OfferRepo {
	return &OfferRepo{db: db}
}

var _ storage.OfferRepository = (*OfferRepo)(nil)

func (r *OfferRepo) List(ctx context.Context, req *dto.ListOffersRequest) ([]*models.Offer, error) {
	q := r.db.WithContext(ctx).Model(&models.Offer{})
	if req.JobID != nil {
		q = q.Where("job_id = ?", *req.JobID)
	}
	if req.CandidateID != nil {
		q = q.Where("candidate_id = ?", *req.CandidateID)
	}
	if req.Status != "" {
		q = q.Where("status = ?", req.Status)
	}

	var offers []*models.Offer
	err := q.Preload("Job").Preload("Candidate").
		Order("created_at desc").
		Limit(req.Limit).
		Offset(req.Offset).
		Find(&offers).Error
	if err != nil {
		log.Printf("Error listing offers: %v\n", err)
		return nil, err
	}
	return offers, nil
}

func (r *OfferRepo) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*models.Offer, error) {
	var offers []*models.Offer
	err := r.db.WithContext(ctx).
		Preload("Job").
		Where("candidate_id = ?", candidateID).
		Order("created_at desc").
		Find(&offers).Error
	if err != nil {
		log.Printf("Error listing offers for candidate %s: %v\n", candidateID, err)
		return nil, err
	}
	return offers, nil
}

func (r *OfferRepo) GetByID(ctx context.Context, req *dto.GetOfferByIDRequest) (*models.Offer, error) {
	var offer models.Offer
	err := r.db.WithContext(ctx).
		Preload("Job").Preload("Candidate").Preload("Application").
		First(&offer, "id = ?", req.ID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Offer not found with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting offer by ID %s: %v\n", req.ID, err)
		return nil, err
	}
	return &offer, nil
}

func (r *OfferRepo) Create(ctx context.Context, req *dto.CreateOfferRequest) (*models.Offer, error) {
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	offer := models.Offer{
		ID:             uuid.New(),
		ApplicationID:  req.ApplicationID,
		JobID:          req.JobID,
		CandidateID:    req.CandidateID,
		CandidateName:  req.CandidateName,
		CandidateEmail: req.CandidateEmail,
		Position:       req.Position,
		Department:     req.Department,
		Salary:         req.Salary,
		Currency:       currency,
		StartDate:      req.StartDate,
		OfferValidTill: req.OfferValidTill,
		JobDescription: req.JobDescription,
		Benefits:       req.Benefits,
		Documents:      req.Documents,
		Status:         models.OfferStatusPending,
	}

	if err := r.db.WithContext(ctx).Create(&offer).Error; err != nil {
		log.Printf("Error creating offer for application %s: %v\n", req.ApplicationID, err)
		return nil, translateError(err)
	}

	log.Printf("Offer created successfully with ID: %s", offer.ID)
	return &offer, nil
}

func (r *OfferRepo) Update(ctx context.Context, req *dto.UpdateOfferRequest) (*models.Offer, error) {
	updates := map[string]interface{}{}
	if req.Status != nil {
		updates["status"] = *req.Status
		updates["responded_at"] = time.Now()
	}
	if req.RejectionReason != nil {
		updates["rejection_reason"] = *req.RejectionReason
	}

	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&models.Offer{}).Where("id = ?", req.ID).Updates(updates)
		if res.Error != nil {
			log.Printf("Error updating offer %s: %v\n", req.ID, res.Error)
			return nil, translateError(res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, storage.ErrNotFound
		}
	}

	return r.GetByID(ctx, &dto.GetOfferByIDRequest{ID: req.ID})
}

func (r *OfferRepo) Delete(ctx context.Context, req *dto.DeleteOfferRequest) error {
	res := r.db.WithContext(ctx).Delete(&models.Offer{}, "id = ?", req.ID)
	if res.Error != nil {
		log.Printf("Error deleting offer with ID %s: %v\n", req.ID, res.Error)
		return res.Error
	}
	if res.RowsAffected == 0 {
		log.Printf("Offer not found for deletion with ID: %s\n", req.ID)
		return storage.ErrNotFound
	}
	log.Printf("Offer deleted successfully with ID: %s", req.ID)
	return nil
}
