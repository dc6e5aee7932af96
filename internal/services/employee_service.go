package services

import (
	"context"
	"errors"
	"fmt"

	"hr-backend/internal/models"
	"hr-backend/internal/storage"
	"hr-backend/internal/transport/dto"
)

type employeeService struct {
	repo     storage.EmployeeRepository
	userRepo storage.UserRepository
}

// NewEmployeeService creates a new instance of EmployeeService.
func NewEmployeeService(repo storage.EmployeeRepository, userRepo storage.UserRepository) EmployeeService {
	return &employeeService{repo: repo, userRepo: userRepo}
}

func (s *employeeService) List(ctx context.Context, req *dto.ListEmployeesRequest) ([]*models.Employee, error) {
	employees, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "listing employees")
	}
	return employees, nil
}

func (s *employeeService) GetByID(ctx context.Context, req *dto.GetEmployeeByIDRequest) (*models.Employee, error) {
	employee, err := s.repo.GetByID(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching employee %s", req.ID))
	}
	return employee, nil
}

func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*models.Employee, error) {
	// The employee record hangs off an existing user account.
	userReq := dto.GetUserByIdRequest{ID: req.UserID}
	if _, err := s.userRepo.GetByID(ctx, &userReq); err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching user %s for employee record", req.UserID))
	}

	employee, err := s.repo.Create(ctx, req)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: employee record already exists for this user", ErrConflict)
		}
		return nil, mapRepoError(err, "creating employee record")
	}
	return employee, nil
}

func (s *employeeService) Update(ctx context.Context, req *dto.UpdateEmployeeRequest) (*models.Employee, error) {
	employee, err := s.repo.Update(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("updating employee %s", req.ID))
	}
	return employee, nil
}

func (s *employeeService) Delete(ctx context.Context, req *dto.DeleteEmployeeRequest) error {
	if err := s.repo.Delete(ctx, req); err != nil {
		return mapRepoError(err, fmt.Sprintf("deleting employee %s", req.ID))
	}
	return nil
}
