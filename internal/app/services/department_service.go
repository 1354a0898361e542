package services

import (
	"context"
	"strings"

	"github.com/tanvir/materialhub/internal/app/models"
	"github.com/tanvir/materialhub/internal/app/models/dto"
	"github.com/tanvir/materialhub/internal/app/repositories"
	"github.com/tanvir/materialhub/internal/pkg/apperrors"
	"github.com/tanvir/materialhub/internal/pkg/dberrors"
	"github.com/tanvir/materialhub/internal/pkg/logger"
)

// DepartmentService handles department management operations
type DepartmentService struct {
	departmentRepo repositories.IDepartmentRepository
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentRepo repositories.IDepartmentRepository) *DepartmentService {
	return &DepartmentService{departmentRepo: departmentRepo}
}

func normalizeDepartmentCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// defaultDepartmentCode derives a code from the department name when none is
// given: the uppercased first three characters.
func defaultDepartmentCode(name string) string {
	runes := []rune(name)
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return strings.ToUpper(string(runes))
}

// GetAll lists all departments
func (s *DepartmentService) GetAll(ctx context.Context) ([]*models.Department, error) {
	return s.departmentRepo.GetAll(ctx)
}

// Create adds a new department. The code is optional and defaults to the
// first three letters of the name.
func (s *DepartmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("Department name is required")
	}

	code := normalizeDepartmentCode(req.Code)
	if code == "" {
		code = defaultDepartmentCode(name)
	}

	department := &models.Department{
		Name:     name,
		Code:     code,
		IsActive: true,
	}

	if err := s.departmentRepo.Create(ctx, department); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewCustomError(apperrors.ErrDepartmentAlreadyExists, "A department with this name or code already exists")
		}
		return nil, err
	}

	logger.Info().Int64("departmentID", department.ID).Str("code", department.Code).Msg("Department created")
	return department, nil
}

// Update changes a department's name and code
func (s *DepartmentService) Update(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*models.Department, error) {
	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	code := normalizeDepartmentCode(req.Code)
	if name == "" || code == "" {
		return nil, apperrors.NewValidationError("Department name and code are required")
	}

	department.Name = name
	department.Code = code

	if err := s.departmentRepo.Update(ctx, department); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewCustomError(apperrors.ErrDepartmentAlreadyExists, "A department with this name or code already exists")
		}
		return nil, err
	}

	return department, nil
}

// Delete removes a department
func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("departmentID", id).Msg("Department deleted")
	return nil
}
