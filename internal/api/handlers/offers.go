package handlers

import (
	"net/http"

	"hr-backend/internal/api/middleware"
	"hr-backend/internal/services"
	"hr-backend/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// OfferHandler holds dependencies for offer operations.
type OfferHandler struct {
	service   services.OfferService
	validator *validator.Validate
}

// NewOfferHandler creates a new OfferHandler.
func NewOfferHandler(service services.OfferService, validate *validator.Validate) *OfferHandler {
	return &OfferHandler{service: service, validator: validate}
}

// GetOffers godoc
//	@Summary		List offers
//	@Description	Lists offers with optional filters. Admin and HR only.
//	@Tags			offers
//	@Produce		json
//	@Param			job_id			query		string				false	"Filter by job"			Format(uuid)
//	@Param			candidate_id	query		string				false	"Filter by candidate"	Format(uuid)
//	@Param			status			query		string				false	"Filter by status"		Enums(pending, accepted, rejected, expired)
//	@Param			limit			query		int					false	"Page size"		default(20)
//	@Param			offset			query		int					false	"Page offset"	default(0)
//	@Success		200				{array}		dto.OfferResponse	"Offers"
//	@Router			/offers [get]
//	@Security		BearerAuth
func (h *OfferHandler) GetOffers(c *gin.Context) {
	var req dto.ListOffersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	offers, err := h.service.List(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := make([]dto.OfferResponse, 0, len(offers))
	for _, o := range offers {
		resp = append(resp, MapOfferModelToResponse(o))
	}
	c.JSON(http.StatusOK, resp)
}

// GetMyOffers godoc
//	@Summary		List my offers
//	@Description	Lists the authenticated candidate's offers.
//	@Tags			offers
//	@Produce		json
//	@Success		200	{array}		dto.OfferResponse	"Offers"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Router			/offers/my [get]
//	@Security		BearerAuth
func (h *OfferHandler) GetMyOffers(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	offers, err := h.service.ListMine(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := make([]dto.OfferResponse, 0, len(offers))
	for _, o := range offers {
		resp = append(resp, MapOfferModelToResponse(o))
	}
	c.JSON(http.StatusOK, resp)
}

// GetOfferByID godoc
//	@Summary		Get an offer
//	@Description	Retrieves one offer by ID.
//	@Tags			offers
//	@Produce		json
//	@Param			id	path		string				true	"Offer ID"	Format(uuid)
//	@Success		200	{object}	dto.OfferResponse	"Offer"
//	@Failure		404	{object}	map[string]string	"Offer Not Found"
//	@Router			/offers/{id} [get]
//	@Security		BearerAuth
func (h *OfferHandler) GetOfferByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offer ID format"})
		return
	}

	req := dto.GetOfferByIDRequest{ID: id}
	offer, err := h.service.GetByID(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapOfferModelToResponse(offer))
}

// CreateOffer godoc
//	@Summary		Extend an offer
//	@Description	Creates an offer for an application and moves the application's status to "offer". Admin and HR only.
//	@Tags			offers
//	@Accept			json
//	@Produce		json
//	@Param			offer	body		dto.CreateOfferRequest	true	"Offer to extend"
//	@Success		201		{object}	dto.OfferResponse		"Offer created"
//	@Failure		404		{object}	map[string]string		"Application Not Found"
//	@Router			/offers [post]
//	@Security		BearerAuth
func (h *OfferHandler) CreateOffer(c *gin.Context) {
	var req dto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	offer, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MapOfferModelToResponse(offer))
}

// UpdateOffer godoc
//	@Summary		Update an offer
//	@Description	Records an offer response (accepted, rejected, expired). Admin and HR only.
//	@Tags			offers
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Offer ID"	Format(uuid)
//	@Param			offer	body		dto.UpdateOfferRequest	true	"Response"
//	@Success		200		{object}	dto.OfferResponse		"Updated offer"
//	@Failure		404		{object}	map[string]string		"Offer Not Found"
//	@Router			/offers/{id} [put]
//	@Security		BearerAuth
func (h *OfferHandler) UpdateOffer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offer ID format"})
		return
	}

	var req dto.UpdateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = id
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	offer, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapOfferModelToResponse(offer))
}

// DeleteOffer godoc
//	@Summary		Delete an offer
//	@Description	Removes an offer. Admin only.
//	@Tags			offers
//	@Produce		json
//	@Param			id	path		string				true	"Offer ID"	Format(uuid)
//	@Success		204	"Offer deleted"
//	@Failure		404	{object}	map[string]string	"Offer Not Found"
//	@Router			/offers/{id} [delete]
//	@Security		BearerAuth
func (h *OfferHandler) DeleteOffer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offer ID format"})
		return
	}

	req := dto.DeleteOfferRequest{ID: id}
	if err := h.service.Delete(c.Request.Context(), &req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
