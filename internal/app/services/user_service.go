package services

import (
	"context"
	"strings"

	"github.com/tanvir/materialhub/internal/app/models"
	"github.com/tanvir/materialhub/internal/app/models/dto"
	"github.com/tanvir/materialhub/internal/app/repositories"
	"github.com/tanvir/materialhub/internal/pkg/apperrors"
	"github.com/tanvir/materialhub/internal/pkg/logger"
)

// UserService handles user management operations
type UserService struct {
	userRepo       repositories.IUserRepository
	departmentRepo repositories.IDepartmentRepository
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repositories.IUserRepository, departmentRepo repositories.IDepartmentRepository) *UserService {
	return &UserService{
		userRepo:       userRepo,
		departmentRepo: departmentRepo,
	}
}

// GetAll lists all users with pagination
func (s *UserService) GetAll(ctx context.Context, page, pageSize int) ([]*models.User, int64, error) {
	return s.userRepo.GetAll(ctx, page, pageSize)
}

// GetByID retrieves a single user
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateRole changes a user's role. Any valid role can be assigned,
// including demotions back to student.
func (s *UserService) UpdateRole(ctx context.Context, userID int64, role string) (*models.User, error) {
	roleType := models.RoleType(strings.ToLower(strings.TrimSpace(role)))
	if !models.ValidRole(roleType) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidRole, "Invalid role")
	}

	if err := s.userRepo.UpdateRole(ctx, userID, roleType); err != nil {
		return nil, err
	}

	logger.Info().Int64("userID", userID).Str("role", string(roleType)).Msg("User role updated")
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile applies the whitelisted profile fields to the caller's own
// record. Email, role, student id and password never change through here.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("Name cannot be empty")
		}
		user.Name = name
	}
	if req.ProfilePicURL != nil {
		user.ProfilePicURL = *req.ProfilePicURL
	}
	if req.Department != nil {
		department, err := s.departmentRepo.GetByName(ctx, *req.Department)
		if err != nil {
			return nil, apperrors.NewValidationError("Unknown department")
		}
		user.Department = department.Name
	}
	if req.Section != nil {
		user.Section = *req.Section
	}
	if req.Intake != nil {
		if *req.Intake == "" {
			user.Intake = nil
		} else {
			user.Intake = req.Intake
		}
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
