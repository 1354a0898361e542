package models

import "time"

// Material represents an uploaded course material (a PDF tied to a course).
// A material enters the system as "pending" and is approved or denied by a
// moderator or admin.
type Material struct {
	ID            int64          `json:"id" db:"id"`
	Title         string         `json:"title" db:"title"`
	CourseID      int64          `json:"courseId" db:"course_id"`
	UploaderID    int64          `json:"uploaderId" db:"uploader_id"`
	Status        MaterialStatus `json:"status" db:"status"`
	FileID        int64          `json:"fileId" db:"file_id"`
	OriginalName  string         `json:"originalName" db:"original_name"`
	FileSize      int64          `json:"fileSize" db:"file_size"`
	MimeType      string         `json:"mimeType" db:"mime_type"`
	DownloadCount int            `json:"downloadCount" db:"download_count"`
	CreatedAt     time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time      `json:"updatedAt" db:"updated_at"`

	// Relations (populated on list/detail queries)
	Course   *Course `json:"course,omitempty"`
	Uploader *User   `json:"uploader,omitempty"`
}
