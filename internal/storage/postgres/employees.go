package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"hr-backend/internal/models"
	"hr-backend/internal/storage"
	"hr-backend/internal/transport/dto"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeRepo implements the storage.EmployeeRepository interface using gorm.
type EmployeeRepo struct {
	db *gorm.DB
}

// NewEmployeeRepo creates a new EmployeeRepo.
func NewEmployeeRepo(db *gorm.DB) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

var _ storage.EmployeeRepository = (*EmployeeRepo)(nil)

func (r *EmployeeRepo) List(ctx context.Context, req *dto.ListEmployeesRequest) ([]*models.Employee, error) {
	q := r.db.WithContext(ctx).Model(&models.Employee{})
	if req.Department != "" {
		q = q.Where("department = ?", req.Department)
	}
	if req.Status != "" {
		q = q.Where("status = ?", req.Status)
	}

	var employees []*models.Employee
	err := q.Preload("User").
		Order("created_at desc").
		Limit(req.Limit).
		Offset(req.Offset).
		Find(&employees).Error
	if err != nil {
		log.Printf("Error listing employees: %v\n", err)
		return nil, err
	}
	return employees, nil
}

func (r *EmployeeRepo) GetByID(ctx context.Context, req *dto.GetEmployeeByIDRequest) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.WithContext(ctx).Preload("User").First(&employee, "id = ?", req.ID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Employee not found with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting employee by ID %s: %v\n", req.ID, err)
		return nil, err
	}
	return &employee, nil
}

// Create inserts a new employee record. A duplicate user reference or
// employee code maps to storage.ErrConflict.
func (r *EmployeeRepo) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*models.Employee, error) {
	code := req.EmployeeCode
	if code == "" {
		code = fmt.Sprintf("EMP-%04d", 1000+rand.IntN(9000))
	}
	dateJoined := time.Now()
	if req.DateJoined != nil {
		dateJoined = *req.DateJoined
	}
	currency := req.SalaryCurrency
	if currency == "" {
		currency = "USD"
	}

	employee := models.Employee{
		ID:             uuid.New(),
		UserID:         req.UserID,
		EmployeeCode:   code,
		Department:     req.Department,
		Position:       req.Position,
		DateJoined:     dateJoined,
		Status:         models.EmployeeStatusProbation,
		SalaryAmount:   req.SalaryAmount,
		SalaryCurrency: currency,
		Address:        req.Address,
		EmergencyName:  req.EmergencyName,
		EmergencyPhone: req.EmergencyPhone,
		EmergencyRel:   req.EmergencyRel,
		DateOfBirth:    req.DateOfBirth,
		CreatedByID:    req.CreatedBy,
	}

	if err := r.db.WithContext(ctx).Create(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Printf("Error creating employee (constraint violation): %v\n", err)
			return nil, storage.ErrConflict
		}
		log.Printf("Error creating employee for user %s: %v\n", req.UserID, err)
		return nil, err
	}

	log.Printf("Employee created successfully with ID: %s", employee.ID)
	return &employee, nil
}

func (r *EmployeeRepo) Update(ctx context.Context, req *dto.UpdateEmployeeRequest) (*models.Employee, error) {
	updates := map[string]interface{}{}
	if req.Department != nil {
		updates["department"] = *req.Department
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.SalaryAmount != nil {
		updates["salary_amount"] = *req.SalaryAmount
	}
	if req.SalaryCurrency != nil {
		updates["salary_currency"] = *req.SalaryCurrency
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.EmergencyName != nil {
		updates["emergency_name"] = *req.EmergencyName
	}
	if req.EmergencyPhone != nil {
		updates["emergency_phone"] = *req.EmergencyPhone
	}
	if req.EmergencyRel != nil {
		updates["emergency_rel"] = *req.EmergencyRel
	}
	if req.DateOfBirth != nil {
		updates["date_of_birth"] = *req.DateOfBirth
	}

	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&models.Employee{}).Where("id = ?", req.ID).Updates(updates)
		if res.Error != nil {
			log.Printf("Error updating employee %s: %v\n", req.ID, res.Error)
			return nil, translateError(res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, storage.ErrNotFound
		}
	}

	return r.GetByID(ctx, &dto.GetEmployeeByIDRequest{ID: req.ID})
}

func (r *EmployeeRepo) Delete(ctx context.Context, req *dto.DeleteEmployeeRequest) error {
	res := r.db.WithContext(ctx).Delete(&models.Employee{}, "id = ?", req.ID)
	if res.Error != nil {
		log.Printf("Error deleting employee with ID %s: %v\n", req.ID, res.Error)
		return res.Error
	}
	if res.RowsAffected == 0 {
		log.Printf("Employee not found for deletion with ID: %s\n", req.ID)
		return storage.ErrNotFound
	}
	log.Printf("Employee deleted successfully with ID: %s", req.ID)
	return nil
}
