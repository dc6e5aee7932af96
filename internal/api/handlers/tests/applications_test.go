package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hr-backend/internal/api/handlers"
	"hr-backend/internal/api/middleware"
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

const testJWTSecret = "handler-test-secret"

// MockApplicationService is a testify mock for services.ApplicationService.
type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) Apply(ctx context.Context, req *dto.ApplyRequest) (*models.Application, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationService) ListMine(ctx context.Context, userID uuid.UUID, email string) ([]*models.Application, error) {
	args := m.Called(ctx, userID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Application), args.Error(1)
}

func (m *MockApplicationService) List(ctx context.Context, req *dto.ListApplicationsRequest) ([]*models.Application, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Application), args.Error(1)
}

func (m *MockApplicationService) ListByJob(ctx context.Context, req *dto.ListApplicationsByJobRequest) ([]*models.Application, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Application), args.Error(1)
}

func (m *MockApplicationService) GetByID(ctx context.Context, req *dto.GetApplicationByIDRequest) (*models.Application, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationService) Review(ctx context.Context, req *dto.ReviewApplicationRequest) (*models.Application, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationService) Delete(ctx context.Context, req *dto.DeleteApplicationRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

var _ services.ApplicationService = (*MockApplicationService)(nil)

func newApplyRouter(svc services.ApplicationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := handlers.NewApplicationHandler(svc, validator.New())
	router.POST("/api/v1/applications", middleware.OptionalJWTAuthMiddleware(testJWTSecret), handler.Apply)
	return router
}

func multipartApplyBody(t *testing.T, fields map[string]string, withResume bool) (*bytes.Buffer, string) {
	t.Helper()
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if withResume {
		part, err := writer.CreateFormFile("resume", "resume.pdf")
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1.4 fake resume"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestApplicationHandler_Apply_Anonymous(t *testing.T) {
	jobID := uuid.New()
	svc := new(MockApplicationService)
	svc.On("Apply", mock.Anything, mock.MatchedBy(func(req *dto.ApplyRequest) bool {
		return req.JobID == jobID && req.CandidateID == nil && req.Resume != nil
	})).Return(&models.Application{
		ID:             uuid.New(),
		JobID:          jobID,
		CandidateEmail: "jordan@example.com",
		Status:         models.ApplicationStatusApplied,
	}, nil).Once()

	router := newApplyRouter(svc)
	body, contentType := multipartApplyBody(t, map[string]string{
		"job_id":          jobID.String(),
		"candidate_name":  "Jordan Reyes",
		"candidate_email": "jordan@example.com",
	}, true)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/applications", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ApplicationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, jobID, resp.JobID)
	assert.Equal(t, models.ApplicationStatusApplied, resp.Status)
	svc.AssertExpectations(t)
}

func TestApplicationHandler_Apply_Authenticated(t *testing.T) {
	jobID := uuid.New()
	user := &models.User{ID: uuid.New(), Email: "jordan@example.com", Role: models.RoleCandidate}
	token, err := auth.NewAccessToken(testJWTSecret, user, 15*time.Minute)
	require.NoError(t, err)

	svc := new(MockApplicationService)
	svc.On("Apply", mock.Anything, mock.MatchedBy(func(req *dto.ApplyRequest) bool {
		return req.CandidateID != nil && *req.CandidateID == user.ID
	})).Return(&models.Application{
		ID:          uuid.New(),
		JobID:       jobID,
		CandidateID: &user.ID,
		Status:      models.ApplicationStatusApplied,
	}, nil).Once()

	router := newApplyRouter(svc)
	body, contentType := multipartApplyBody(t, map[string]string{
		"job_id":          jobID.String(),
		"candidate_name":  "Jordan Reyes",
		"candidate_email": "jordan@example.com",
	}, false)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/applications", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestApplicationHandler_Apply_InvalidTokenRejected(t *testing.T) {
	svc := new(MockApplicationService)
	router := newApplyRouter(svc)

	body, contentType := multipartApplyBody(t, map[string]string{
		"job_id":          uuid.NewString(),
		"candidate_name":  "Jordan Reyes",
		"candidate_email": "jordan@example.com",
	}, false)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/applications", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	svc.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything)
}

func TestApplicationHandler_Apply_ErrorMapping(t *testing.T) {
	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{name: "duplicate application", serviceErr: fmt.Errorf("%w: already applied for this job", services.ErrConflict), expectedStatus: http.StatusConflict},
		{name: "unknown job", serviceErr: fmt.Errorf("%w: fetching job", services.ErrNotFound), expectedStatus: http.StatusNotFound},
		{name: "bad resume", serviceErr: fmt.Errorf("%w: file type is not allowed", services.ErrValidation), expectedStatus: http.StatusBadRequest},
		{name: "upload failure", serviceErr: fmt.Errorf("%w: timeout", services.ErrUpload), expectedStatus: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockApplicationService)
			svc.On("Apply", mock.Anything, mock.Anything).Return(nil, tt.serviceErr).Once()

			router := newApplyRouter(svc)
			body, contentType := multipartApplyBody(t, map[string]string{
				"job_id":          uuid.NewString(),
				"candidate_name":  "Jordan Reyes",
				"candidate_email": "jordan@example.com",
			}, false)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/applications", body)
			req.Header.Set("Content-Type", contentType)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestApplicationHandler_Apply_InvalidJobID(t *testing.T) {
	svc := new(MockApplicationService)
	router := newApplyRouter(svc)

	body, contentType := multipartApplyBody(t, map[string]string{
		"job_id":          "not-a-uuid",
		"candidate_name":  "Jordan Reyes",
		"candidate_email": "jordan@example.com",
	}, false)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/applications", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything)
}
