package dto

import (
	"time"

	"github.com/tanvir/materialhub/internal/app/models"
)

// UserResponse represents user information without credentials
type UserResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	Department    string    `json:"department"`
	StudentID     string    `json:"studentId"`
	Gender        string    `json:"gender,omitempty"`
	Section       int       `json:"section"`
	Intake        string    `json:"intake,omitempty"`
	ProfilePicURL string    `json:"profilePicUrl,omitempty"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewUserResponse maps a user model to its response representation
func NewUserResponse(user *models.User) UserResponse {
	resp := UserResponse{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		Role:          string(user.Role),
		Department:    user.Department,
		StudentID:     user.StudentID,
		Section:       user.Section,
		ProfilePicURL: user.ProfilePicURL,
		IsActive:      user.IsActive,
		CreatedAt:     user.CreatedAt,
	}
	if user.Gender != nil {
		resp.Gender = *user.Gender
	}
	if user.Intake != nil {
		resp.Intake = *user.Intake
	}
	return resp
}

// UpdateRoleRequest represents a role change request
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// UpdateProfileRequest represents profile update data. Only the listed
// fields may change through this endpoint.
type UpdateProfileRequest struct {
	Name          *string `json:"name"`
	ProfilePicURL *string `json:"profilePicUrl"`
	Department    *string `json:"department"`
	Section       *int    `json:"section"`
	Intake        *string `json:"intake"`
}

// UserListResponse represents a list of users
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	PaginationInfo
}
