package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"hr-backend/internal/auth"
	"hr-backend/internal/models"
	"hr-backend/internal/storage"
	"hr-backend/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

const refreshKeyPrefix = "refresh:"

type userService struct {
	repo              storage.UserRepository
	redisClient       *redis.Client
	jwtSecret         string
	jwtExpiration     time.Duration
	refreshExpiration time.Duration
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo storage.UserRepository, redisClient *redis.Client, jwtSecret string, jwtExpiration, refreshExpiration time.Duration) UserService {
	return &userService{
		repo:              repo,
		redisClient:       redisClient,
		jwtSecret:         jwtSecret,
		jwtExpiration:     jwtExpiration,
		refreshExpiration: refreshExpiration,
	}
}

// issueTokens signs an access token and stores a fresh refresh token in redis
// keyed by its opaque value, expiring with the refresh window.
func (s *userService) issueTokens(ctx context.Context, user *models.User) (string, string, error) {
	accessToken, err := auth.NewAccessToken(s.jwtSecret, user, s.jwtExpiration)
	if err != nil {
		log.Printf("Error generating access token for user %s: %v", user.Email, err)
		return "", "", fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := auth.NewRefreshToken()
	if err != nil {
		return "", "", fmt.Errorf("failed to generate refresh token: %w", err)
	}

	key := refreshKeyPrefix + refreshToken
	if err := s.redisClient.Set(ctx, key, user.ID.String(), s.refreshExpiration).Err(); err != nil {
		log.Printf("Error storing refresh token for user %s: %v", user.Email, err)
		return "", "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return accessToken, refreshToken, nil
}

func (s *userService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, string, string, error) {
	// Self-registration only ever creates candidates. Elevated roles are
	// assigned by an admin afterwards.
	createReq := dto.CreateUserRequest{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Role:     string(models.RoleCandidate),
	}

	user, err := s.repo.Create(ctx, &createReq)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) || errors.Is(err, storage.ErrConflict) {
			return nil, "", "", fmt.Errorf("%w: email already registered", ErrConflict)
		}
		log.Printf("UserService: Error creating user: %v", err)
		return nil, "", "", fmt.Errorf("internal error creating user: %w", err)
	}

	accessToken, refreshToken, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, "", "", err
	}

	return user, accessToken, refreshToken, nil
}

func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, string, error) {
	emailReq := dto.GetUserByEmailRequest{Email: req.Email}
	user, err := s.repo.GetByEmail(ctx, &emailReq)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("Login attempt failed for email %s: user not found", req.Email)
			return nil, "", "", ErrInvalidCredentials
		}
		log.Printf("Error fetching user by email %s during login: %v", req.Email, err)
		return nil, "", "", fmt.Errorf("internal error during login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Printf("Login attempt failed for email %s: invalid password", req.Email)
		return nil, "", "", ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, "", "", err
	}

	if err := s.repo.TouchLastLogin(ctx, user.ID); err != nil {
		// Not worth failing the login over.
		log.Printf("Error updating last login for user %s: %v", user.ID, err)
	}

	return user, accessToken, refreshToken, nil
}

// Refresh rotates the token pair: the presented refresh token is consumed and
// a new one issued, so a replayed token is rejected.
func (s *userService) Refresh(ctx context.Context, req *dto.RefreshRequest) (string, string, error) {
	key := refreshKeyPrefix + req.RefreshToken
	userIDStr, err := s.redisClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", "", ErrInvalidCredentials
		}
		log.Printf("Error looking up refresh token: %v", err)
		return "", "", fmt.Errorf("internal error during token refresh: %w", err)
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		log.Printf("Malformed user id %q behind refresh token", userIDStr)
		return "", "", ErrInvalidCredentials
	}

	idReq := dto.GetUserByIdRequest{ID: userID}
	user, err := s.repo.GetByID(ctx, &idReq)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", "", ErrInvalidCredentials
		}
		return "", "", fmt.Errorf("internal error during token refresh: %w", err)
	}

	if err := s.redisClient.Del(ctx, key).Err(); err != nil {
		log.Printf("Error deleting consumed refresh token: %v", err)
	}

	return s.issueTokens(ctx, user)
}

func (s *userService) Logout(ctx context.Context, req *dto.LogoutRequest) error {
	key := refreshKeyPrefix + req.RefreshToken
	if err := s.redisClient.Del(ctx, key).Err(); err != nil {
		log.Printf("Error revoking refresh token: %v", err)
		return fmt.Errorf("internal error during logout: %w", err)
	}
	return nil
}

func (s *userService) UpdatePassword(ctx context.Context, req *dto.UpdatePasswordRequest) error {
	idReq := dto.GetUserByIdRequest{ID: req.UserID}
	user, err := s.repo.GetByID(ctx, &idReq)
	if err != nil {
		return mapRepoError(err, fmt.Sprintf("fetching user %s for password change", req.UserID))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.repo.UpdatePassword(ctx, req.UserID, string(hash)); err != nil {
		return mapRepoError(err, fmt.Sprintf("updating password for user %s", req.UserID))
	}
	return nil
}

func (s *userService) GetAll(ctx context.Context, limit, offset int) ([]*models.User, error) {
	users, err := s.repo.GetAll(ctx, limit, offset)
	if err != nil {
		return nil, mapRepoError(err, "listing users")
	}
	return users, nil
}

func (s *userService) GetByID(ctx context.Context, req *dto.GetUserByIdRequest) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching user %s", req.ID))
	}
	return user, nil
}

func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	user, err := s.repo.Create(ctx, req)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) || errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: email already registered", ErrConflict)
		}
		return nil, mapRepoError(err, "creating user")
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.repo.Update(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("updating user %s", req.ID))
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, req *dto.DeleteUserRequest) error {
	if err := s.repo.Delete(ctx, req); err != nil {
		return mapRepoError(err, fmt.Sprintf("deleting user %s", req.ID))
	}
	return nil
}
