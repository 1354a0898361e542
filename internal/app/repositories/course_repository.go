package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tanvir/materialhub/internal/app/models"
	"github.com/tanvir/materialhub/internal/pkg/apperrors"
)

// ICourseRepository defines the interface for course database operations
type ICourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetByCode(ctx context.Context, code string) (*models.Course, error)
	GetAll(ctx context.Context, departmentID *int64) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

const courseSelect = `
	SELECT c.id, c.name, c.code, c.department_id, c.is_active, c.created_at, c.updated_at,
		d.id, d.name, d.code, d.is_active, d.created_at, d.updated_at
	FROM courses c
	JOIN departments d ON d.id = c.department_id`

func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	var dept models.Department
	err := row.Scan(
		&course.ID,
		&course.Name,
		&course.Code,
		&course.DepartmentID,
		&course.IsActive,
		&course.CreatedAt,
		&course.UpdatedAt,
		&dept.ID,
		&dept.Name,
		&dept.Code,
		&dept.IsActive,
		&dept.CreatedAt,
		&dept.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	course.Department = &dept
	return &course, nil
}

// Create inserts a new course and sets its generated ID
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (name, code, department_id, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		course.Name,
		course.Code,
		course.DepartmentID,
		course.IsActive,
	).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID with its department
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := courseSelect + ` WHERE c.id = $1`

	course, err := scanCourse(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to get course by id: %w", err)
	}

	return course, nil
}

// GetByCode retrieves a course by its code
func (r *CourseRepository) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	query := courseSelect + ` WHERE LOWER(c.code) = LOWER($1)`

	course, err := scanCourse(r.db.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to get course by code: %w", err)
	}

	return course, nil
}

// GetAll retrieves all courses, optionally filtered by department
func (r *CourseRepository) GetAll(ctx context.Context, departmentID *int64) ([]*models.Course, error) {
	query := courseSelect + ` WHERE c.is_active = TRUE`
	var args []interface{}
	if departmentID != nil {
		query += ` AND c.department_id = $1`
		args = append(args, *departmentID)
	}
	query += ` ORDER BY c.name ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course row: %w", err)
		}
		courses = append(courses, course)
	}

	return courses, nil
}

// Update updates a course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET name = $1, code = $2, department_id = $3, is_active = $4, updated_at = NOW()
		WHERE id = $5`

	result, err := r.db.Exec(ctx, query,
		course.Name,
		course.Code,
		course.DepartmentID,
		course.IsActive,
		course.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete removes a course
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}
