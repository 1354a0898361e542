package dto

import "github.com/tanvir/materialhub/internal/app/models"

// DepartmentResponse represents basic department information
type DepartmentResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	IsActive bool   `json:"isActive"`
}

// NewDepartmentResponse maps a department model to its response representation
func NewDepartmentResponse(department *models.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:       department.ID,
		Name:     department.Name,
		Code:     department.Code,
		IsActive: department.IsActive,
	}
}

// CreateDepartmentRequest represents department creation data. The code is
// optional; when absent it is derived from the name.
type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code"`
}

// UpdateDepartmentRequest represents department update data
type UpdateDepartmentRequest struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code" binding:"required"`
}

// DepartmentListResponse represents a list of departments
type DepartmentListResponse struct {
	Departments []DepartmentResponse `json:"departments"`
}
