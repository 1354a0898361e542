package services

import (
	"context"
	"mime/multipart"
	"strings"

	"github.com/tanvir/materialhub/internal/app/models"
	"github.com/tanvir/materialhub/internal/app/models/dto"
	"github.com/tanvir/materialhub/internal/app/repositories"
	"github.com/tanvir/materialhub/internal/pkg/apperrors"
	"github.com/tanvir/materialhub/internal/pkg/filestorage"
	"github.com/tanvir/materialhub/internal/pkg/logger"
)

// Upload constraints
const (
	MaxUploadSize  = 20971520 // 20 MB
	AllowedPDFMime = "application/pdf"
)

// MaterialService handles material upload, moderation and download
type MaterialService struct {
	materialRepo repositories.IMaterialRepository
	courseRepo   repositories.ICourseRepository
	fileRepo     repositories.IFileRepository
	storage      filestorage.FileStorage
}

// NewMaterialService creates a new material service instance
func NewMaterialService(
	materialRepo repositories.IMaterialRepository,
	courseRepo repositories.ICourseRepository,
	fileRepo repositories.IFileRepository,
	storage filestorage.FileStorage,
) *MaterialService {
	return &MaterialService{
		materialRepo: materialRepo,
		courseRepo:   courseRepo,
		fileRepo:     fileRepo,
		storage:      storage,
	}
}

// GetAll lists materials with the caller's filters applied verbatim. With
// scope=visible, non-moderators only see approved materials and their own
// uploads; moderators and admins see everything.
func (s *MaterialService) GetAll(ctx context.Context, req *dto.MaterialFilterRequest, callerID int64, callerRole models.RoleType) ([]*models.Material, int64, error) {
	filter := repositories.MaterialFilter{}

	if req.CourseID > 0 {
		filter.CourseID = &req.CourseID
	}
	if req.UploaderID > 0 {
		filter.UploaderID = &req.UploaderID
	}
	if req.Status != "" {
		status := models.MaterialStatus(strings.ToLower(req.Status))
		if !models.ValidMaterialStatus(status) {
			return nil, 0, apperrors.NewCustomError(apperrors.ErrInvalidStatus, "Invalid status filter")
		}
		filter.Status = &status
	}
	if req.Scope == "visible" && !callerRole.CanModerate() {
		filter.VisibleToUserID = &callerID
	}

	return s.materialRepo.GetAll(ctx, filter, req.Page, req.Size)
}

// GetByID retrieves a single material
func (s *MaterialService) GetByID(ctx context.Context, id int64) (*models.Material, error) {
	return s.materialRepo.GetByID(ctx, id)
}

// Upload validates and stores a new material. The blob is written first and
// the records after it; a record failure leaves an orphan blob rather than a
// record pointing at nothing.
func (s *MaterialService) Upload(ctx context.Context, uploaderID int64, title string, courseID int64, fileHeader *multipart.FileHeader) (*models.Material, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperrors.NewValidationError("Title is required")
	}
	if fileHeader == nil {
		return nil, apperrors.NewValidationError("A PDF file is required")
	}
	if fileHeader.Size > MaxUploadSize {
		return nil, apperrors.NewCustomError(apperrors.ErrFileTooLarge, "File exceeds the 20 MB limit")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType != AllowedPDFMime {
		return nil, apperrors.NewCustomError(apperrors.ErrNotPDF, "Only PDF files are accepted")
	}

	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	storedPath, err := s.storage.SaveFile(fileHeader)
	if err != nil {
		return nil, err
	}

	file := &models.File{
		FileName:   fileHeader.Filename,
		FilePath:   storedPath,
		FileSize:   fileHeader.Size,
		MimeType:   contentType,
		UploadedBy: uploaderID,
	}
	if err := s.fileRepo.Create(ctx, file); err != nil {
		return nil, err
	}

	material := &models.Material{
		Title:        title,
		CourseID:     courseID,
		UploaderID:   uploaderID,
		Status:       models.MaterialStatusPending,
		FileID:       file.ID,
		OriginalName: fileHeader.Filename,
		FileSize:     fileHeader.Size,
		MimeType:     contentType,
	}
	if err := s.materialRepo.Create(ctx, material); err != nil {
		return nil, err
	}

	logger.Info().Int64("materialID", material.ID).Int64("uploaderID", uploaderID).Msg("Material uploaded")
	return s.materialRepo.GetByID(ctx, material.ID)
}

// SetStatus records a moderation decision. Any valid status can be assigned
// regardless of the current one, so decisions are reversible.
func (s *MaterialService) SetStatus(ctx context.Context, id int64, status string) (*models.Material, error) {
	statusValue := models.MaterialStatus(strings.ToLower(strings.TrimSpace(status)))
	if !models.ValidMaterialStatus(statusValue) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidStatus, "Status must be pending, approved or denied")
	}

	if err := s.materialRepo.UpdateStatus(ctx, id, statusValue); err != nil {
		return nil, err
	}

	logger.Info().Int64("materialID", id).Str("status", string(statusValue)).Msg("Material status updated")
	return s.materialRepo.GetByID(ctx, id)
}

// canAccessFile reports whether the caller may read a material's file.
// Approved materials are open to everyone authenticated; pending and denied
// ones only to their uploader and to moderators.
func canAccessFile(material *models.Material, callerID int64, callerRole models.RoleType) bool {
	if material.Status == models.MaterialStatusApproved {
		return true
	}
	return material.UploaderID == callerID || callerRole.CanModerate()
}

// Download resolves a material's file for download and bumps its counter
func (s *MaterialService) Download(ctx context.Context, id int64, callerID int64, callerRole models.RoleType) (*models.Material, string, error) {
	material, fullPath, err := s.resolveFile(ctx, id, callerID, callerRole)
	if err != nil {
		return nil, "", err
	}

	if err := s.materialRepo.IncrementDownloadCount(ctx, id); err != nil {
		logger.Warn().Err(err).Int64("materialID", id).Msg("Failed to increment download count")
	}

	return material, fullPath, nil
}

// GetFile resolves a stored file by its file id for inline viewing without
// counting a download. Access follows the owning material's visibility.
func (s *MaterialService) GetFile(ctx context.Context, fileID int64, callerID int64, callerRole models.RoleType) (*models.Material, string, error) {
	material, err := s.materialRepo.GetByFileID(ctx, fileID)
	if err != nil {
		return nil, "", err
	}

	if !canAccessFile(material, callerID, callerRole) {
		return nil, "", apperrors.ErrPermissionDenied
	}

	file, err := s.fileRepo.GetByID(ctx, material.FileID)
	if err != nil {
		return nil, "", err
	}

	fullPath := s.storage.GetFullPath(file.FilePath)
	if fullPath == "" {
		return nil, "", apperrors.ErrFileNotFound
	}

	return material, fullPath, nil
}

func (s *MaterialService) resolveFile(ctx context.Context, id int64, callerID int64, callerRole models.RoleType) (*models.Material, string, error) {
	material, err := s.materialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	if !canAccessFile(material, callerID, callerRole) {
		return nil, "", apperrors.ErrPermissionDenied
	}

	file, err := s.fileRepo.GetByID(ctx, material.FileID)
	if err != nil {
		return nil, "", err
	}

	fullPath := s.storage.GetFullPath(file.FilePath)
	if fullPath == "" {
		return nil, "", apperrors.ErrFileNotFound
	}

	return material, fullPath, nil
}

// Delete removes a material. Only the uploader, moderators and admins may
// delete. The blob is removed best-effort before the records; a blob failure
// does not keep the records alive.
func (s *MaterialService) Delete(ctx context.Context, id int64, callerID int64, callerRole models.RoleType) error {
	material, err := s.materialRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if material.UploaderID != callerID && !callerRole.CanModerate() {
		return apperrors.ErrPermissionDenied
	}

	file, err := s.fileRepo.GetByID(ctx, material.FileID)
	if err == nil {
		if delErr := s.storage.DeleteFile(file.FilePath); delErr != nil {
			logger.Warn().Err(delErr).Int64("materialID", id).Msg("Failed to delete material blob")
		}
	}

	if err := s.materialRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.fileRepo.Delete(ctx, material.FileID); err != nil {
		logger.Warn().Err(err).Int64("fileID", material.FileID).Msg("Failed to delete file record")
	}

	logger.Info().Int64("materialID", id).Int64("deletedBy", callerID).Msg("Material deleted")
	return nil
}
