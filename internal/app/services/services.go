package services

import (
	"github.com/tanvir/materialhub/internal/app/repositories"
	"github.com/tanvir/materialhub/internal/pkg/auth"
	"github.com/tanvir/materialhub/internal/pkg/email"
	"github.com/tanvir/materialhub/internal/pkg/filestorage"
)

// Services holds all the service instances
type Services struct {
	AuthService       *AuthService
	UserService       *UserService
	DepartmentService *DepartmentService
	CourseService     *CourseService
	MaterialService   *MaterialService
}

// NewServices initializes all services
func NewServices(
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	emailService email.EmailService,
	storage filestorage.FileStorage,
) *Services {
	return &Services{
		AuthService:       NewAuthService(repos.UserRepository, repos.DepartmentRepository, jwtService, emailService),
		UserService:       NewUserService(repos.UserRepository, repos.DepartmentRepository),
		DepartmentService: NewDepartmentService(repos.DepartmentRepository),
		CourseService:     NewCourseService(repos.CourseRepository, repos.DepartmentRepository),
		MaterialService:   NewMaterialService(repos.MaterialRepository, repos.CourseRepository, repos.FileRepository, storage),
	}
}
