package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/tanvir/materialhub/internal/app/models"
	appRepos "github.com/tanvir/materialhub/internal/app/repositories"
	"github.com/tanvir/materialhub/internal/pkg/auth"
	"github.com/tanvir/materialhub/internal/pkg/dberrors"
)

// defaultDepartments are created on first startup so registration works
// against a fresh database.
var defaultDepartments = []appModels.Department{
	{Name: "Computer Science and Engineering", Code: "CSE"},
	{Name: "Electrical and Electronic Engineering", Code: "EEE"},
	{Name: "Business Administration", Code: "BBA"},
	{Name: "Textile Engineering", Code: "TXT"},
}

// CreateDefaultData creates default departments and the bootstrap admin
// account if they don't exist.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	departmentRepo := appRepos.NewDepartmentRepository(dbPool)
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	for _, dept := range defaultDepartments {
		d := dept
		d.IsActive = true
		if err := departmentRepo.Create(ctx, &d); err != nil {
			if dberrors.IsUniqueViolation(err) {
				continue
			}
			lgr.Error().Err(err).Str("code", d.Code).Msg("Error creating default department")
			finalErr = errors.Join(finalErr, err)
		}
	}

	// Bootstrap admin. The address is deliberately outside the student email
	// pattern so it can never clash with a registration.
	const adminEmail = "admin@bubt.edu"

	exists, err := userRepo.EmailExists(ctx, adminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		return errors.Join(finalErr, err)
	}
	if exists {
		return finalErr
	}

	lgr.Info().Msg("Creating default admin user...")

	hashedPassword, err := auth.HashPassword("Admin@123")
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return errors.Join(finalErr, err)
	}

	admin := &appModels.User{
		Name:       "Administrator",
		Email:      adminEmail,
		Password:   hashedPassword,
		Role:       appModels.RoleAdmin,
		Department: defaultDepartments[0].Name,
		StudentID:  "ADMIN001",
		IsActive:   true,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin user")
		return errors.Join(finalErr, err)
	}

	lgr.Info().Int64("userID", admin.ID).Msg("Default admin user created")
	return finalErr
}
