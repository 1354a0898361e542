package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tanvir/materialhub/internal/app/models"
	"github.com/tanvir/materialhub/internal/pkg/apperrors"
)

// MaterialFilter holds optional filters for material listings
type MaterialFilter struct {
	CourseID   *int64
	Status     *models.MaterialStatus
	UploaderID *int64

	// VisibleToUserID restricts results to approved materials plus the
	// given user's own uploads. Nil means no visibility restriction.
	VisibleToUserID *int64
}

// IMaterialRepository defines the interface for material database operations
type IMaterialRepository interface {
	Create(ctx context.Context, material *models.Material) error
	GetByID(ctx context.Context, id int64) (*models.Material, error)
	GetByFileID(ctx context.Context, fileID int64) (*models.Material, error)
	GetAll(ctx context.Context, filter MaterialFilter, page, pageSize int) ([]*models.Material, int64, error)
	UpdateStatus(ctx context.Context, id int64, status models.MaterialStatus) error
	IncrementDownloadCount(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// MaterialRepository handles database operations for materials
type MaterialRepository struct {
	db *pgxpool.Pool
}

// NewMaterialRepository creates a new MaterialRepository
func NewMaterialRepository(db *pgxpool.Pool) *MaterialRepository {
	return &MaterialRepository{db: db}
}

var materialColumns = []string{
	"m.id", "m.title", "m.course_id", "m.uploader_id", "m.status", "m.file_id",
	"m.original_name", "m.file_size", "m.mime_type", "m.download_count",
	"m.created_at", "m.updated_at",
	"c.id", "c.name", "c.code",
	"u.id", "u.name", "u.email",
}

func materialBaseQuery() squirrel.SelectBuilder {
	return squirrel.Select(materialColumns...).
		From("materials m").
		Join("courses c ON c.id = m.course_id").
		Join("users u ON u.id = m.uploader_id").
		PlaceholderFormat(squirrel.Dollar)
}

func scanMaterial(row pgx.Row, extra ...interface{}) (*models.Material, error) {
	var material models.Material
	var course models.Course
	var uploader models.User

	dest := []interface{}{
		&material.ID,
		&material.Title,
		&material.CourseID,
		&material.UploaderID,
		&material.Status,
		&material.FileID,
		&material.OriginalName,
		&material.FileSize,
		&material.MimeType,
		&material.DownloadCount,
		&material.CreatedAt,
		&material.UpdatedAt,
		&course.ID,
		&course.Name,
		&course.Code,
		&uploader.ID,
		&uploader.Name,
		&uploader.Email,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	material.Course = &course
	material.Uploader = &uploader
	return &material, nil
}

// Create inserts a new material and sets its generated ID
func (r *MaterialRepository) Create(ctx context.Context, material *models.Material) error {
	query := `
		INSERT INTO materials (title, course_id, uploader_id, status, file_id, original_name, file_size, mime_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, download_count, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		material.Title,
		material.CourseID,
		material.UploaderID,
		material.Status,
		material.FileID,
		material.OriginalName,
		material.FileSize,
		material.MimeType,
	).Scan(&material.ID, &material.DownloadCount, &material.CreatedAt, &material.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create material: %w", err)
	}

	return nil
}

// GetByID retrieves a material by ID with its course and uploader
func (r *MaterialRepository) GetByID(ctx context.Context, id int64) (*models.Material, error) {
	query := materialBaseQuery().Where("m.id = ?", id)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	material, err := scanMaterial(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMaterialNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return material, nil
}

// GetByFileID retrieves the material that references the given file
func (r *MaterialRepository) GetByFileID(ctx context.Context, fileID int64) (*models.Material, error) {
	query := materialBaseQuery().Where("m.file_id = ?", fileID)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	material, err := scanMaterial(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMaterialNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return material, nil
}

// GetAll retrieves materials with filtering and pagination, newest first
func (r *MaterialRepository) GetAll(ctx context.Context, filter MaterialFilter, page, pageSize int) ([]*models.Material, int64, error) {
	query := materialBaseQuery()

	if filter.CourseID != nil {
		query = query.Where("m.course_id = ?", *filter.CourseID)
	}
	if filter.Status != nil {
		query = query.Where("m.status = ?", string(*filter.Status))
	}
	if filter.UploaderID != nil {
		query = query.Where("m.uploader_id = ?", *filter.UploaderID)
	}
	if filter.VisibleToUserID != nil {
		query = query.Where(squirrel.Or{
			squirrel.Eq{"m.status": string(models.MaterialStatusApproved)},
			squirrel.Eq{"m.uploader_id": *filter.VisibleToUserID},
		})
	}

	offset := (page - 1) * pageSize
	query = query.Column("COUNT(*) OVER()").
		OrderBy("m.created_at DESC").
		Limit(uint64(pageSize)).
		Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var materials []*models.Material
	var total int64

	for rows.Next() {
		material, err := scanMaterial(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		materials = append(materials, material)
	}

	return materials, total, nil
}

// UpdateStatus updates a material's moderation status
func (r *MaterialRepository) UpdateStatus(ctx context.Context, id int64, status models.MaterialStatus) error {
	result, err := r.db.Exec(ctx,
		`UPDATE materials SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update material status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrMaterialNotFound
	}

	return nil
}

// IncrementDownloadCount bumps a material's download counter
func (r *MaterialRepository) IncrementDownloadCount(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE materials SET download_count = download_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to increment download count: %w", err)
	}
	return nil
}

// Delete removes a material
func (r *MaterialRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM materials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete material: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrMaterialNotFound
	}

	return nil
}
