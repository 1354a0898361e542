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

// CourseService handles course management operations
type CourseService struct {
	courseRepo     repositories.ICourseRepository
	departmentRepo repositories.IDepartmentRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo repositories.ICourseRepository, departmentRepo repositories.IDepartmentRepository) *CourseService {
	return &CourseService{
		courseRepo:     courseRepo,
		departmentRepo: departmentRepo,
	}
}

// GetAll lists courses, optionally filtered by department
func (s *CourseService) GetAll(ctx context.Context, departmentID *int64) ([]*models.Course, error) {
	return s.courseRepo.GetAll(ctx, departmentID)
}

// GetByID retrieves a single course
func (s *CourseService) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// Create adds a new course under an existing department
func (s *CourseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	name := strings.TrimSpace(req.Name)
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if name == "" || code == "" {
		return nil, apperrors.NewValidationError("Course name and code are required")
	}

	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return nil, err
	}

	course := &models.Course{
		Name:         name,
		Code:         code,
		DepartmentID: req.DepartmentID,
		IsActive:     true,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewCustomError(apperrors.ErrCourseCodeExists, "A course with this code already exists")
		}
		return nil, err
	}

	logger.Info().Int64("courseID", course.ID).Str("code", course.Code).Msg("Course created")
	return s.courseRepo.GetByID(ctx, course.ID)
}

// Update changes a course's name, code and department
func (s *CourseService) Update(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if name == "" || code == "" {
		return nil, apperrors.NewValidationError("Course name and code are required")
	}

	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return nil, err
	}

	course.Name = name
	course.Code = code
	course.DepartmentID = req.DepartmentID

	if err := s.courseRepo.Update(ctx, course); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewCustomError(apperrors.ErrCourseCodeExists, "A course with this code already exists")
		}
		return nil, err
	}

	return s.courseRepo.GetByID(ctx, id)
}

// Delete removes a course
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("courseID", id).Msg("Course deleted")
	return nil
}
