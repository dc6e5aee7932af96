package routes_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hr-backend/internal/api/handlers"
	"hr-backend/internal/api/middleware"
	"hr-backend/internal/api/routes"
	"hr-backend/internal/auth"
	"hr-backend/internal/models"
	"hr-backend/internal/services"
	"hr-backend/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const routesTestSecret = "routes-test-secret"

func routesTokenFor(t *testing.T, role models.Role) string {
	t.Helper()
	user := &models.User{ID: uuid.New(), Email: "someone@example.com", Role: role}
	token, err := auth.NewAccessToken(routesTestSecret, user, 15*time.Minute)
	require.NoError(t, err)
	return token
}

func doRequest(router *gin.Engine, method, path, token string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// MockOfferService is a mock implementation of services.OfferService
type MockOfferService struct {
	mock.Mock
}

var _ services.OfferService = (*MockOfferService)(nil)

func (m *MockOfferService) List(ctx context.Context, req *dto.ListOffersRequest) ([]*models.Offer, error) {
	args := m.Called(ctx, req)
	if offers, ok := args.Get(0).([]*models.Offer); ok {
		return offers, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOfferService) ListMine(ctx context.Context, candidateID uuid.UUID) ([]*models.Offer, error) {
	args := m.Called(ctx, candidateID)
	if offers, ok := args.Get(0).([]*models.Offer); ok {
		return offers, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOfferService) GetByID(ctx context.Context, req *dto.GetOfferByIDRequest) (*models.Offer, error) {
	args := m.Called(ctx, req)
	if offer, ok := args.Get(0).(*models.Offer); ok {
		return offer, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOfferService) Create(ctx context.Context, req *dto.CreateOfferRequest) (*models.Offer, error) {
	args := m.Called(ctx, req)
	if offer, ok := args.Get(0).(*models.Offer); ok {
		return offer, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOfferService) Update(ctx context.Context, req *dto.UpdateOfferRequest) (*models.Offer, error) {
	args := m.Called(ctx, req)
	if offer, ok := args.Get(0).(*models.Offer); ok {
		return offer, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOfferService) Delete(ctx context.Context, req *dto.DeleteOfferRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func newOfferRouter(svc services.OfferService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	routes.RegisterOfferRoutes(api, handlers.NewOfferHandler(svc, validator.New()), middleware.JWTAuthMiddleware(routesTestSecret))
	return router
}

func TestOfferRoutes_UpdateRequiresRecruitingAccess(t *testing.T) {
	offerID := uuid.New()
	body := []byte(`{"status":"accepted"}`)

	t.Run("Candidate is forbidden", func(t *testing.T) {
		svc := new(MockOfferService)
		router := newOfferRouter(svc)

		w := doRequest(router, http.MethodPut, "/api/v1/offers/"+offerID.String(), routesTokenFor(t, models.RoleCandidate), body)

		assert.Equal(t, http.StatusForbidden, w.Code)
		svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("HR can update", func(t *testing.T) {
		svc := new(MockOfferService)
		svc.On("Update", mock.Anything, mock.MatchedBy(func(req *dto.UpdateOfferRequest) bool {
			return req.ID == offerID
		})).Return(&models.Offer{ID: offerID, Status: models.OfferStatusAccepted}, nil).Once()
		router := newOfferRouter(svc)

		w := doRequest(router, http.MethodPut, "/api/v1/offers/"+offerID.String(), routesTokenFor(t, models.RoleHR), body)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("Admin can update", func(t *testing.T) {
		svc := new(MockOfferService)
		svc.On("Update", mock.Anything, mock.Anything).Return(&models.Offer{ID: offerID}, nil).Once()
		router := newOfferRouter(svc)

		w := doRequest(router, http.MethodPut, "/api/v1/offers/"+offerID.String(), routesTokenFor(t, models.RoleAdmin), body)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})
}

func TestOfferRoutes_CandidateSurface(t *testing.T) {
	t.Run("Candidate can read one offer", func(t *testing.T) {
		offerID := uuid.New()
		svc := new(MockOfferService)
		svc.On("GetByID", mock.Anything, &dto.GetOfferByIDRequest{ID: offerID}).
			Return(&models.Offer{ID: offerID, Status: models.OfferStatusPending}, nil).Once()
		router := newOfferRouter(svc)

		w := doRequest(router, http.MethodGet, "/api/v1/offers/"+offerID.String(), routesTokenFor(t, models.RoleCandidate), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("Candidate cannot list all offers", func(t *testing.T) {
		svc := new(MockOfferService)
		router := newOfferRouter(svc)

		w := doRequest(router, http.MethodGet, "/api/v1/offers/", routesTokenFor(t, models.RoleCandidate), nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
		svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})
}
