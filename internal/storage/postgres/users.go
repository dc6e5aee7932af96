package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"hr-backend/internal/models"
	"hr-backend/internal/storage"
	"hr-backend/internal/transport/dto"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserRepo implements the storage.UserRepository interface using gorm.
type UserRepo struct {
	db *gorm.DB
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

var _ storage.UserRepository = (*UserRepo)(nil)

func (r *UserRepo) GetAll(ctx context.Context, limit, offset int) ([]*models.User, error) {
	var users []*models.User
	err := r.db.WithContext(ctx).
		Order("full_name asc").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	if err != nil {
		log.Printf("Error querying all users: %v\n", err)
		return nil, err
	}
	return users, nil
}

func (r *UserRepo) GetByID(ctx context.Context, req *dto.GetUserByIdRequest) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", req.ID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("User not found with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting user by ID %s: %v\n", req.ID, err)
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, req *dto.GetUserByEmailRequest) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", strings.ToLower(req.Email)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("User not found with email: %s\n", req.Email)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting user by email %s: %v\n", req.Email, err)
		return nil, err
	}
	return &user, nil
}

// Create hashes the password and inserts the user. Duplicate emails map to
// storage.ErrDuplicateEmail.
func (r *UserRepo) Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password for email %s: %v\n", req.Email, err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := models.RoleCandidate
	if req.Role != "" {
		role = models.Role(req.Role)
	}

	user := models.User{
		ID:           uuid.New(),
		FullName:     req.FullName,
		Email:        strings.ToLower(req.Email),
		PasswordHash: string(hashedPassword),
		Role:         role,
		Phone:        req.Phone,
	}

	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Printf("Attempted to create user with duplicate email %s: %v\n", req.Email, err)
			return nil, storage.ErrDuplicateEmail
		}
		log.Printf("Error creating user with email %s: %v\n", req.Email, err)
		return nil, err
	}

	log.Printf("User created successfully with ID: %s", user.ID)
	return &user, nil
}

func (r *UserRepo) Update(ctx context.Context, req *dto.UpdateUserRequest) (*models.User, error) {
	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}

	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", req.ID).Updates(updates)
		if res.Error != nil {
			log.Printf("Error updating user %s: %v\n", req.ID, res.Error)
			return nil, translateError(res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, storage.ErrNotFound
		}
	}

	return r.GetByID(ctx, &dto.GetUserByIdRequest{ID: req.ID})
}

func (r *UserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("password_hash", passwordHash)
	if res.Error != nil {
		log.Printf("Error updating password for user %s: %v\n", id, res.Error)
		return res.Error
	}
	if res.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (r *UserRepo) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("last_login", gorm.Expr("now()"))
	if res.Error != nil {
		log.Printf("Error updating last login for user %s: %v\n", id, res.Error)
		return res.Error
	}
	return nil
}

func (r *UserRepo) Delete(ctx context.Context, req *dto.DeleteUserRequest) error {
	res := r.db.WithContext(ctx).Delete(&models.User{}, "id = ?", req.ID)
	if res.Error != nil {
		log.Printf("Error deleting user with ID %s: %v\n", req.ID, res.Error)
		return res.Error
	}
	if res.RowsAffected == 0 {
		log.Printf("User not found for deletion with ID: %s\n", req.ID)
		return storage.ErrNotFound
	}
	log.Printf("User deleted successfully with ID: %s", req.ID)
	return nil
}
