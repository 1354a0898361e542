package services

import (
	"context"
	"strings"
	"time"

	"github.com/tanvir/materialhub/internal/app/models"
	"github.com/tanvir/materialhub/internal/app/models/dto"
	"github.com/tanvir/materialhub/internal/app/repositories"
	"github.com/tanvir/materialhub/internal/pkg/apperrors"
	"github.com/tanvir/materialhub/internal/pkg/auth"
	"github.com/tanvir/materialhub/internal/pkg/email"
	"github.com/tanvir/materialhub/internal/pkg/logger"
	"github.com/tanvir/materialhub/internal/pkg/validation"
)

// ResetTokenTTL is how long a password reset token stays valid
const ResetTokenTTL = time.Hour

// AuthService handles registration, login and password reset
type AuthService struct {
	userRepo       repositories.IUserRepository
	departmentRepo repositories.IDepartmentRepository
	jwtService     *auth.JWTService
	emailService   email.EmailService
}

// NewAuthService creates a new auth service instance
func NewAuthService(
	userRepo repositories.IUserRepository,
	departmentRepo repositories.IDepartmentRepository,
	jwtService *auth.JWTService,
	emailService email.EmailService,
) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		departmentRepo: departmentRepo,
		jwtService:     jwtService,
		emailService:   emailService,
	}
}

// Register creates a student account after validating the institutional
// email, the student id, and the cross-checks between them.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, string, error) {
	emailAddr := strings.ToLower(strings.TrimSpace(req.Email))

	if !validation.IsInstitutionalEmail(emailAddr) {
		return nil, "", apperrors.NewValidationError("Invalid institutional email format")
	}
	if !validation.IsStudentID(req.StudentID) {
		return nil, "", apperrors.NewValidationError("Student ID must be exactly 11 digits")
	}
	if !validation.IsValidPassword(req.Password) {
		return nil, "", apperrors.NewValidationError("Password must be at least 6 characters")
	}

	// The id embedded in the email must match the submitted student id
	if validation.EmailStudentID(emailAddr) != req.StudentID {
		return nil, "", apperrors.NewValidationError("Email does not match the provided student ID")
	}

	department, err := s.departmentRepo.GetByName(ctx, req.Department)
	if err != nil {
		return nil, "", apperrors.NewValidationError("Unknown department")
	}

	// The email's department segment must match the department's code
	if !strings.EqualFold(validation.EmailDepartmentCode(emailAddr), department.Code) {
		return nil, "", apperrors.NewValidationError("Email does not match the selected department")
	}

	if exists, err := s.userRepo.EmailExists(ctx, emailAddr); err != nil {
		return nil, "", err
	} else if exists {
		return nil, "", apperrors.NewCustomError(apperrors.ErrDuplicateAccount, "An account with this email already exists")
	}

	if exists, err := s.userRepo.StudentIDExists(ctx, req.StudentID); err != nil {
		return nil, "", err
	} else if exists {
		return nil, "", apperrors.NewCustomError(apperrors.ErrDuplicateAccount, "An account with this student ID already exists")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Name:       strings.TrimSpace(req.Name),
		Email:      emailAddr,
		Password:   hashedPassword,
		Role:       models.RoleStudent,
		Department: department.Name,
		StudentID:  req.StudentID,
		Section:    req.Section,
		IsActive:   true,
	}
	if req.Gender != "" {
		user.Gender = &req.Gender
	}
	if req.Intake != "" {
		user.Intake = &req.Intake
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, _, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}

	logger.Info().Int64("userID", user.ID).Str("email", user.Email).Msg("User registered")
	return user, token, nil
}

// Login authenticates a user by email and password. Unknown email and wrong
// password return the same error so accounts cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, emailAddr, password string) (*models.User, string, error) {
	emailAddr = strings.ToLower(strings.TrimSpace(emailAddr))

	user, err := s.userRepo.GetByEmail(ctx, emailAddr)
	if err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, "", apperrors.ErrAccountDisabled
	}

	token, _, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}

	logger.Info().Int64("userID", user.ID).Msg("User logged in")
	return user, token, nil
}

// ForgotPassword starts the reset flow. Unknown emails return success so
// accounts cannot be enumerated.
func (s *AuthService) ForgotPassword(ctx context.Context, emailAddr string) error {
	emailAddr = strings.ToLower(strings.TrimSpace(emailAddr))

	user, err := s.userRepo.GetByEmail(ctx, emailAddr)
	if err != nil {
		logger.Debug().Str("email", emailAddr).Msg("Password reset requested for unknown email")
		return nil
	}

	token, err := email.GenerateResetToken()
	if err != nil {
		return err
	}

	expires := time.Now().Add(ResetTokenTTL)
	if err := s.userRepo.SetResetToken(ctx, user.ID, token, expires); err != nil {
		return err
	}

	if err := s.emailService.SendPasswordResetEmail(user.Email, user.Name, token); err != nil {
		logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to send reset email")
		return err
	}

	return nil
}

// VerifyResetToken checks that a reset token exists and has not expired
func (s *AuthService) VerifyResetToken(ctx context.Context, token string) error {
	if token == "" {
		return apperrors.ErrInvalidResetToken
	}
	_, err := s.userRepo.GetByResetToken(ctx, token)
	return err
}

// ResetPassword consumes a reset token and sets a new password
func (s *AuthService) ResetPassword(ctx context.Context, token, password string) error {
	if token == "" {
		return apperrors.ErrInvalidResetToken
	}
	if !validation.IsValidPassword(password) {
		return apperrors.NewValidationError("Password must be at least 6 characters")
	}

	user, err := s.userRepo.GetByResetToken(ctx, token)
	if err != nil {
		return err
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		return err
	}

	if err := s.userRepo.ClearResetToken(ctx, user.ID); err != nil {
		return err
	}

	logger.Info().Int64("userID", user.ID).Msg("Password reset completed")
	return nil
}
