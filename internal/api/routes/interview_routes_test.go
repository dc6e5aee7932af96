package routes_test

import (
	"context"
	"net/http"
	"testing"

	"hr-backend/internal/api/handlers"
	"hr-backend/internal/api/middleware"
	"hr-backend/internal/api/routes"
	"hr-backend/internal/models"
	"hr-backend/internal/services"
	"hr-backend/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockInterviewService is a mock implementation of services.InterviewService
type MockInterviewService struct {
	mock.Mock
}

var _ services.InterviewService = (*MockInterviewService)(nil)

func (m *MockInterviewService) List(ctx context.Context, req *dto.ListInterviewsRequest) ([]*models.Interview, error) {
	args := m.Called(ctx, req)
	if interviews, ok := args.Get(0).([]*models.Interview); ok {
		return interviews, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInterviewService) ListMine(ctx context.Context, candidateID uuid.UUID) ([]*models.Interview, error) {
	args := m.Called(ctx, candidateID)
	if interviews, ok := args.Get(0).([]*models.Interview); ok {
		return interviews, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInterviewService) GetByID(ctx context.Context, req *dto.GetInterviewByIDRequest) (*models.Interview, error) {
	args := m.Called(ctx, req)
	if interview, ok := args.Get(0).(*models.Interview); ok {
		return interview, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInterviewService) Schedule(ctx context.Context, req *dto.ScheduleInterviewRequest) (*models.Interview, error) {
	args := m.Called(ctx, req)
	if interview, ok := args.Get(0).(*models.Interview); ok {
		return interview, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInterviewService) Update(ctx context.Context, req *dto.UpdateInterviewRequest) (*models.Interview, error) {
	args := m.Called(ctx, req)
	if interview, ok := args.Get(0).(*models.Interview); ok {
		return interview, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInterviewService) Delete(ctx context.Context, req *dto.DeleteInterviewRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func newInterviewRouter(svc services.InterviewService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	routes.RegisterInterviewRoutes(api, handlers.NewInterviewHandler(svc, validator.New()), middleware.JWTAuthMiddleware(routesTestSecret))
	return router
}

func TestInterviewRoutes_CandidateSurface(t *testing.T) {
	t.Run("Candidate can read one interview", func(t *testing.T) {
		interviewID := uuid.New()
		svc := new(MockInterviewService)
		svc.On("GetByID", mock.Anything, &dto.GetInterviewByIDRequest{ID: interviewID}).
			Return(&models.Interview{ID: interviewID, Status: models.InterviewStatusScheduled}, nil).Once()
		router := newInterviewRouter(svc)

		w := doRequest(router, http.MethodGet, "/api/v1/interviews/"+interviewID.String(), routesTokenFor(t, models.RoleCandidate), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("Candidate can list own interviews", func(t *testing.T) {
		svc := new(MockInterviewService)
		svc.On("ListMine", mock.Anything, mock.Anything).Return([]*models.Interview{}, nil).Once()
		router := newInterviewRouter(svc)

		w := doRequest(router, http.MethodGet, "/api/v1/interviews/my", routesTokenFor(t, models.RoleCandidate), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("Candidate cannot list all interviews", func(t *testing.T) {
		svc := new(MockInterviewService)
		router := newInterviewRouter(svc)

		w := doRequest(router, http.MethodGet, "/api/v1/interviews/", routesTokenFor(t, models.RoleCandidate), nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
		svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("Candidate cannot schedule", func(t *testing.T) {
		svc := new(MockInterviewService)
		router := newInterviewRouter(svc)

		w := doRequest(router, http.MethodPost, "/api/v1/interviews/", routesTokenFor(t, models.RoleCandidate), []byte(`{}`))

		assert.Equal(t, http.StatusForbidden, w.Code)
		svc.AssertNotCalled(t, "Schedule", mock.Anything, mock.Anything)
	})
}
