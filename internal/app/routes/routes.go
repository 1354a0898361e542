package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tanvir/materialhub/internal/app/controllers"
	"github.com/tanvir/materialhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	departmentController *controllers.DepartmentController,
	courseController *controllers.CourseController,
	materialController *controllers.MaterialController,
	authMiddleware *middleware.AuthMiddleware,
	storagePath string,
) {
	// Liveness probe at the root
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	// Stored blobs are served statically for direct links
	router.Static("/uploads", storagePath)

	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/forgot-password", authController.ForgotPassword)
		auth.POST("/verify-reset-token", authController.VerifyResetToken)
		auth.POST("/reset-password", authController.ResetPassword)
	}

	// --- Public catalog routes ---
	api.GET("/departments", departmentController.GetAllDepartments)
	api.GET("/courses", courseController.GetAllCourses)

	// Public material listing. The optional auth lets scope=visible include
	// the caller's own pending uploads.
	api.GET("/materials", authMiddleware.OptionalJWTAuth(), materialController.GetAllMaterials)

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Own profile
		authenticated.GET("/users/profile", userController.GetProfile)
		authenticated.PUT("/users/profile", userController.UpdateProfile)

		// Self or admin, enforced in the controller
		authenticated.GET("/users/:id", userController.GetUserByID)
		authenticated.PATCH("/users/:id/profile", userController.UpdateUserProfile)

		// User administration
		usersAdmin := authenticated.Group("/users")
		usersAdmin.Use(authMiddleware.AdminOnly())
		{
			usersAdmin.GET("", userController.GetAllUsers)
			usersAdmin.PATCH("/:id/role", userController.UpdateUserRole)
		}

		// Catalog administration
		departmentsAdmin := authenticated.Group("/departments")
		departmentsAdmin.Use(authMiddleware.AdminOnly())
		{
			departmentsAdmin.POST("", departmentController.CreateDepartment)
			departmentsAdmin.PUT("/:id", departmentController.UpdateDepartment)
			departmentsAdmin.DELETE("/:id", departmentController.DeleteDepartment)
		}

		coursesManage := authenticated.Group("/courses")
		coursesManage.Use(authMiddleware.ModeratorOrAdmin())
		{
			coursesManage.POST("", courseController.CreateCourse)
			coursesManage.PUT("/:id", courseController.UpdateCourse)
			coursesManage.DELETE("/:id", courseController.DeleteCourse)
		}

		// Materials
		materials := authenticated.Group("/materials")
		{
			materials.POST("/upload", materialController.UploadMaterial)
			materials.GET("/:id/download", materialController.DownloadMaterial)
			materials.GET("/file/:fileId", materialController.GetMaterialFile)
			materials.DELETE("/:id", materialController.DeleteMaterial)

			materialsModerated := materials.Group("")
			materialsModerated.Use(authMiddleware.ModeratorOrAdmin())
			{
				materialsModerated.PATCH("/:id/status", materialController.UpdateMaterialStatus)
			}
		}
	}
}
