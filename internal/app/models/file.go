package models

import "time"

// File represents a stored blob's metadata. The bytes themselves live on
// disk under the configured storage path; the row records where.
type File struct {
	ID         int64     `json:"id" db:"id"`
	FileName   string    `json:"fileName" db:"file_name"` // original filename
	FilePath   string    `json:"filePath" db:"file_path"` // stored path relative to the uploads dir
	FileSize   int64     `json:"fileSize" db:"file_size"`
	MimeType   string    `json:"mimeType" db:"mime_type"`
	UploadedBy int64     `json:"uploadedBy" db:"uploaded_by"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
