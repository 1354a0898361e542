package dto

import (
	"time"

	"github.com/tanvir/materialhub/internal/app/models"
)

// MaterialCourseSummary is the course slice embedded in material responses
type MaterialCourseSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// MaterialUploaderSummary is the uploader slice embedded in material responses
type MaterialUploaderSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// MaterialResponse represents a material with its relations resolved
type MaterialResponse struct {
	ID            int64                    `json:"id"`
	Title         string                   `json:"title"`
	Status        string                   `json:"status"`
	Course        *MaterialCourseSummary   `json:"course,omitempty"`
	Uploader      *MaterialUploaderSummary `json:"uploader,omitempty"`
	OriginalName  string                   `json:"originalName"`
	FileSize      int64                    `json:"fileSize"`
	MimeType      string                   `json:"mimeType"`
	DownloadCount int                      `json:"downloadCount"`
	CreatedAt     time.Time                `json:"createdAt"`
}

// NewMaterialResponse maps a material model to its response representation
func NewMaterialResponse(material *models.Material) MaterialResponse {
	resp := MaterialResponse{
		ID:            material.ID,
		Title:         material.Title,
		Status:        string(material.Status),
		OriginalName:  material.OriginalName,
		FileSize:      material.FileSize,
		MimeType:      material.MimeType,
		DownloadCount: material.DownloadCount,
		CreatedAt:     material.CreatedAt,
	}
	if material.Course != nil {
		resp.Course = &MaterialCourseSummary{
			ID:   material.Course.ID,
			Name: material.Course.Name,
			Code: material.Course.Code,
		}
	}
	if material.Uploader != nil {
		resp.Uploader = &MaterialUploaderSummary{
			ID:    material.Uploader.ID,
			Name:  material.Uploader.Name,
			Email: material.Uploader.Email,
		}
	}
	return resp
}

// UpdateMaterialStatusRequest represents a moderation decision
type UpdateMaterialStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// MaterialListResponse represents a list of materials
type MaterialListResponse struct {
	Materials []MaterialResponse `json:"materials"`
	PaginationInfo
}

// MaterialFilterRequest represents material list query parameters
type MaterialFilterRequest struct {
	CourseID   int64  `form:"courseId"`
	Status     string `form:"status"`
	UploaderID int64  `form:"uploaderId"`
	Scope      string `form:"scope"`
	Page       int    `form:"page"`
	Size       int    `form:"size"`
}
