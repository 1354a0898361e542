package dto

import "github.com/tanvir/materialhub/internal/app/models"

// CourseResponse represents basic course information
type CourseResponse struct {
	ID           int64               `json:"id"`
	Name         string              `json:"name"`
	Code         string              `json:"code"`
	DepartmentID int64               `json:"departmentId"`
	Department   *DepartmentResponse `json:"department,omitempty"`
	IsActive     bool                `json:"isActive"`
}

// NewCourseResponse maps a course model to its response representation
func NewCourseResponse(course *models.Course) CourseResponse {
	resp := CourseResponse{
		ID:           course.ID,
		Name:         course.Name,
		Code:         course.Code,
		DepartmentID: course.DepartmentID,
		IsActive:     course.IsActive,
	}
	if course.Department != nil {
		dept := NewDepartmentResponse(course.Department)
		resp.Department = &dept
	}
	return resp
}

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Name         string `json:"name" binding:"required"`
	Code         string `json:"code" binding:"required"`
	DepartmentID int64  `json:"departmentId" binding:"required,gt=0"`
}

// UpdateCourseRequest represents course update data
type UpdateCourseRequest struct {
	Name         string `json:"name" binding:"required"`
	Code         string `json:"code" binding:"required"`
	DepartmentID int64  `json:"departmentId" binding:"required,gt=0"`
}

// CourseListResponse represents a list of courses
type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
}
