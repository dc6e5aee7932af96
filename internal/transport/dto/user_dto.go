package dto

import (
	"time"

	"hr-backend/internal/models"

	"github.com/google/uuid"
)

// RegisterRequest defines the structure for user self-registration.
type RegisterRequest struct {
	FullName        string `json:"full_name" validate:"required,max=200"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
	Phone           string `json:"phone" validate:"omitempty,max=32"`
	Role            string `json:"role" validate:"omitempty,oneof=admin hr candidate"`
}

// LoginRequest defines the structure for user login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest exchanges a refresh token for a new token pair.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutRequest revokes a refresh token.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// UpdatePasswordRequest changes the authenticated user's password.
type UpdatePasswordRequest struct {
	UserID          uuid.UUID `json:"-"` // Set from user context
	CurrentPassword string    `json:"current_password" validate:"required"`
	NewPassword     string    `json:"new_password" validate:"required,min=6"`
	ConfirmPassword string    `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}

// GetUserByIdRequest defines the structure for getting a user by id.
type GetUserByIdRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// GetUserByEmailRequest defines the structure for getting a user by email.
type GetUserByEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// CreateUserRequest defines the structure for creating a user (admin/HR path).
type CreateUserRequest struct {
	FullName string `json:"full_name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"omitempty,max=32"`
	Role     string `json:"role" validate:"omitempty,oneof=admin hr candidate"`
}

// UpdateUserRequest defines the structure for updating an existing user.
type UpdateUserRequest struct {
	ID       uuid.UUID `json:"-" validate:"required"`
	FullName *string   `json:"full_name" validate:"omitempty,max=200"`
	Phone    *string   `json:"phone" validate:"omitempty,max=32"`
	Avatar   *string   `json:"avatar" validate:"omitempty,url"`
	Role     *string   `json:"role" validate:"omitempty,oneof=admin hr candidate"`
}

// DeleteUserRequest defines the structure for deleting a user.
type DeleteUserRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// UserResponse is the public representation of a user.
type UserResponse struct {
	ID        uuid.UUID   `json:"id"`
	FullName  string      `json:"full_name"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	Phone     string      `json:"phone,omitempty"`
	Avatar    string      `json:"avatar,omitempty"`
	LastLogin *time.Time  `json:"last_login,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// TokenPairResponse carries a freshly issued access/refresh token pair.
type TokenPairResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}
