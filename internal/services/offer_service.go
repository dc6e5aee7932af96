package services

import (
	"context"
	"fmt"

	"hr-backend/internal/models"
	"hr-backend/internal/storage"
	"hr-backend/internal/transport/dto"

	"github.com/google/uuid"
)

type offerService struct {
	repo    storage.OfferRepository
	appRepo storage.ApplicationRepository
}

// NewOfferService creates a new instance of OfferService.
func NewOfferService(repo storage.OfferRepository, appRepo storage.ApplicationRepository) OfferService {
	return &offerService{repo: repo, appRepo: appRepo}
}

func (s *offerService) List(ctx context.Context, req *dto.ListOffersRequest) ([]*models.Offer, error) {
	offers, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "listing offers")
	}
	return offers, nil
}

func (s *offerService) ListMine(ctx context.Context, candidateID uuid.UUID) ([]*models.Offer, error) {
	offers, err := s.repo.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("listing offers for candidate %s", candidateID))
	}
	return offers, nil
}

func (s *offerService) GetByID(ctx context.Context, req *dto.GetOfferByIDRequest) (*models.Offer, error) {
	offer, err := s.repo.GetByID(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching offer %s", req.ID))
	}
	return offer, nil
}

// Create extends an offer and moves the application's status to "offer". The
// status change is the one automatic transition in the pipeline; everything
// else is an explicit review.
func (s *offerService) Create(ctx context.Context, req *dto.CreateOfferRequest) (*models.Offer, error) {
	appReq := dto.GetApplicationByIDRequest{ID: req.ApplicationID}
	application, err := s.appRepo.GetByID(ctx, &appReq)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching application %s for offer", req.ApplicationID))
	}
	if application.JobID != req.JobID {
		return nil, fmt.Errorf("%w: application does not belong to the given job", ErrValidation)
	}

	offer, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "creating offer")
	}

	if err := s.appRepo.SetStatus(ctx, req.ApplicationID, models.ApplicationStatusOffer); err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("updating application %s status", req.ApplicationID))
	}

	return offer, nil
}

func (s *offerService) Update(ctx context.Context, req *dto.UpdateOfferRequest) (*models.Offer, error) {
	offer, err := s.repo.Update(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("updating offer %s", req.ID))
	}
	return offer, nil
}

func (s *offerService) Delete(ctx context.Context, req *dto.DeleteOfferRequest) error {
	if err := s.repo.Delete(ctx, req); err != nil {
		return mapRepoError(err, fmt.Sprintf("deleting offer %s", req.ID))
	}
	return nil
}
