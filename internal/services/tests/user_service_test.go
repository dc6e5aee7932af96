package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hr-backend/internal/mocks"
	"hr-backend/internal/models"
	"hr-backend/internal/services"
	"hr-backend/internal/storage"
	"hr-backend/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	jwtSecret          = "test-secret-key"
	jwtDuration        = 15 * time.Minute
	refreshDuration    = 7 * 24 * time.Hour
	testLoginPassword  = "password123"
	testWrongPassword  = "not-the-password"
	testCandidateEmail = "candidate@example.com"
)

func newUserService(repo *mocks.MockUserRepository) services.UserService {
	// Token issuance paths need a live redis; the paths under test here all
	// fail before reaching it.
	return services.NewUserService(repo, nil, jwtSecret, jwtDuration, refreshDuration)
}

func TestUserService_Login_InvalidCredentials(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte(testLoginPassword), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &models.User{
		ID:           uuid.New(),
		Email:        testCandidateEmail,
		PasswordHash: string(hash),
		Role:         models.RoleCandidate,
	}

	tests := []struct {
		name      string
		req       *dto.LoginRequest
		mockSetup func(repo *mocks.MockUserRepository)
	}{
		{
			name: "Unknown email",
			req:  &dto.LoginRequest{Email: "nobody@example.com", Password: testLoginPassword},
			mockSetup: func(repo *mocks.MockUserRepository) {
				repo.On("GetByEmail", mock.Anything, &dto.GetUserByEmailRequest{Email: "nobody@example.com"}).
					Return(nil, storage.ErrNotFound).Once()
			},
		},
		{
			name: "Wrong password",
			req:  &dto.LoginRequest{Email: testCandidateEmail, Password: testWrongPassword},
			mockSetup: func(repo *mocks.MockUserRepository) {
				repo.On("GetByEmail", mock.Anything, &dto.GetUserByEmailRequest{Email: testCandidateEmail}).
					Return(user, nil).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockUserRepository)
			tt.mockSetup(repo)

			svc := newUserService(repo)
			u, access, refresh, err := svc.Login(context.Background(), tt.req)

			require.Error(t, err)
			assert.True(t, errors.Is(err, services.ErrInvalidCredentials))
			assert.Nil(t, u)
			assert.Empty(t, access)
			assert.Empty(t, refresh)
			repo.AssertExpectations(t)
		})
	}
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	repo := new(mocks.MockUserRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(req *dto.CreateUserRequest) bool {
		// Self-registration pins the role to candidate regardless of input.
		return req.Role == string(models.RoleCandidate)
	})).Return(nil, storage.ErrDuplicateEmail).Once()

	svc := newUserService(repo)
	_, _, _, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FullName:        "Jordan Reyes",
		Email:           testCandidateEmail,
		Password:        testLoginPassword,
		PasswordConfirm: testLoginPassword,
		Role:            "admin", // must be ignored
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrConflict))
	repo.AssertExpectations(t)
}

func TestUserService_UpdatePassword(t *testing.T) {
	userID := uuid.New()
	hash, err := bcrypt.GenerateFromPassword([]byte(testLoginPassword), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &models.User{ID: userID, Email: testCandidateEmail, PasswordHash: string(hash)}

	t.Run("Success", func(t *testing.T) {
		repo := new(mocks.MockUserRepository)
		repo.On("GetByID", mock.Anything, &dto.GetUserByIdRequest{ID: userID}).Return(user, nil).Once()
		repo.On("UpdatePassword", mock.Anything, userID, mock.MatchedBy(func(newHash string) bool {
			return bcrypt.CompareHashAndPassword([]byte(newHash), []byte("new-password-456")) == nil
		})).Return(nil).Once()

		svc := newUserService(repo)
		err := svc.UpdatePassword(context.Background(), &dto.UpdatePasswordRequest{
			UserID:          userID,
			CurrentPassword: testLoginPassword,
			NewPassword:     "new-password-456",
			ConfirmPassword: "new-password-456",
		})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Wrong current password", func(t *testing.T) {
		repo := new(mocks.MockUserRepository)
		repo.On("GetByID", mock.Anything, &dto.GetUserByIdRequest{ID: userID}).Return(user, nil).Once()

		svc := newUserService(repo)
		err := svc.UpdatePassword(context.Background(), &dto.UpdatePasswordRequest{
			UserID:          userID,
			CurrentPassword: testWrongPassword,
			NewPassword:     "new-password-456",
			ConfirmPassword: "new-password-456",
		})

		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrInvalidCredentials))
		repo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	userID := uuid.New()
	repo := new(mocks.MockUserRepository)
	repo.On("GetByID", mock.Anything, &dto.GetUserByIdRequest{ID: userID}).Return(nil, storage.ErrNotFound).Once()

	svc := newUserService(repo)
	_, err := svc.GetByID(context.Background(), &dto.GetUserByIdRequest{ID: userID})

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrNotFound))
}
