package controllers

import (
	"context"
	"mime/multipart"
	"strconv"
	"time"

	"github.com/tanvir/materialhub/internal/app/models"
	"github.com/tanvir/materialhub/internal/app/repositories"
	"github.com/tanvir/materialhub/internal/pkg/apperrors"
)

// Minimal in-memory repositories for wiring real services under httptest.

type memUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[int64]*models.User{}, nextID: 1}
}

func (r *memUserRepo) Create(_ context.Context, user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *memUserRepo) GetByResetToken(_ context.Context, token string) (*models.User, error) {
	for _, user := range r.users {
		if user.ResetPasswordToken != nil && *user.ResetPasswordToken == token &&
			user.ResetPasswordExpires != nil && user.ResetPasswordExpires.After(time.Now()) {
			clone := *user
			return &clone, nil
		}
	}
	return nil, apperrors.ErrInvalidResetToken
}

func (r *memUserRepo) GetAll(_ context.Context, _, _ int) ([]*models.User, int64, error) {
	out := make([]*models.User, 0, len(r.users))
	for _, user := range r.users {
		clone := *user
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

func (r *memUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) UpdateRole(_ context.Context, userID int64, role models.RoleType) error {
	user, ok := r.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.Role = role
	return nil
}

func (r *memUserRepo) UpdatePassword(_ context.Context, userID int64, hashedPassword string) error {
	user, ok := r.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.Password = hashedPassword
	return nil
}

func (r *memUserRepo) SetResetToken(_ context.Context, userID int64, token string, expires time.Time) error {
	user, ok := r.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.ResetPasswordToken = &token
	user.ResetPasswordExpires = &expires
	return nil
}

func (r *memUserRepo) ClearResetToken(_ context.Context, userID int64) error {
	user, ok := r.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.ResetPasswordToken = nil
	user.ResetPasswordExpires = nil
	return nil
}

func (r *memUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *memUserRepo) StudentIDExists(_ context.Context, studentID string) (bool, error) {
	for _, user := range r.users {
		if user.StudentID == studentID {
			return true, nil
		}
	}
	return false, nil
}

type memDepartmentRepo struct {
	departments map[int64]*models.Department
	nextID      int64
}

func newMemDepartmentRepo() *memDepartmentRepo {
	return &memDepartmentRepo{departments: map[int64]*models.Department{}, nextID: 1}
}

func (r *memDepartmentRepo) Create(_ context.Context, department *models.Department) error {
	department.ID = r.nextID
	r.nextID++
	clone := *department
	r.departments[department.ID] = &clone
	return nil
}

func (r *memDepartmentRepo) GetByID(_ context.Context, id int64) (*models.Department, error) {
	dept, ok := r.departments[id]
	if !ok {
		return nil, apperrors.ErrDepartmentNotFound
	}
	clone := *dept
	return &clone, nil
}

func (r *memDepartmentRepo) GetByCode(_ context.Context, code string) (*models.Department, error) {
	for _, dept := range r.departments {
		if dept.Code == code {
			clone := *dept
			return &clone, nil
		}
	}
	return nil, apperrors.ErrDepartmentNotFound
}

func (r *memDepartmentRepo) GetByName(_ context.Context, name string) (*models.Department, error) {
	for _, dept := range r.departments {
		if dept.Name == name {
			clone := *dept
			return &clone, nil
		}
	}
	return nil, apperrors.ErrDepartmentNotFound
}

func (r *memDepartmentRepo) GetAll(_ context.Context) ([]*models.Department, error) {
	out := make([]*models.Department, 0, len(r.departments))
	for _, dept := range r.departments {
		clone := *dept
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memDepartmentRepo) Update(_ context.Context, department *models.Department) error {
	if _, ok := r.departments[department.ID]; !ok {
		return apperrors.ErrDepartmentNotFound
	}
	clone := *department
	r.departments[department.ID] = &clone
	return nil
}

func (r *memDepartmentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.departments[id]; !ok {
		return apperrors.ErrDepartmentNotFound
	}
	delete(r.departments, id)
	return nil
}

type memCourseRepo struct {
	courses map[int64]*models.Course
	nextID  int64
}

func newMemCourseRepo() *memCourseRepo {
	return &memCourseRepo{courses: map[int64]*models.Course{}, nextID: 1}
}

func (r *memCourseRepo) Create(_ context.Context, course *models.Course) error {
	course.ID = r.nextID
	r.nextID++
	clone := *course
	r.courses[course.ID] = &clone
	return nil
}

func (r *memCourseRepo) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := r.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	clone := *course
	return &clone, nil
}

func (r *memCourseRepo) GetByCode(_ context.Context, code string) (*models.Course, error) {
	for _, course := range r.courses {
		if course.Code == code {
			clone := *course
			return &clone, nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

func (r *memCourseRepo) GetAll(_ context.Context, departmentID *int64) ([]*models.Course, error) {
	var out []*models.Course
	for _, course := range r.courses {
		if departmentID != nil && course.DepartmentID != *departmentID {
			continue
		}
		clone := *course
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memCourseRepo) Update(_ context.Context, course *models.Course) error {
	if _, ok := r.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	clone := *course
	r.courses[course.ID] = &clone
	return nil
}

func (r *memCourseRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(r.courses, id)
	return nil
}

type memFileRepo struct {
	files  map[int64]*models.File
	nextID int64
}

func newMemFileRepo() *memFileRepo {
	return &memFileRepo{files: map[int64]*models.File{}, nextID: 1}
}

func (r *memFileRepo) Create(_ context.Context, file *models.File) error {
	file.ID = r.nextID
	r.nextID++
	clone := *file
	r.files[file.ID] = &clone
	return nil
}

func (r *memFileRepo) GetByID(_ context.Context, id int64) (*models.File, error) {
	file, ok := r.files[id]
	if !ok {
		return nil, apperrors.ErrFileNotFound
	}
	clone := *file
	return &clone, nil
}

func (r *memFileRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.files[id]; !ok {
		return apperrors.ErrFileNotFound
	}
	delete(r.files, id)
	return nil
}

type memMaterialRepo struct {
	materials map[int64]*models.Material
	nextID    int64
}

func newMemMaterialRepo() *memMaterialRepo {
	return &memMaterialRepo{materials: map[int64]*models.Material{}, nextID: 1}
}

func (r *memMaterialRepo) Create(_ context.Context, material *models.Material) error {
	material.ID = r.nextID
	r.nextID++
	material.CreatedAt = time.Now()
	clone := *material
	r.materials[material.ID] = &clone
	return nil
}

func (r *memMaterialRepo) GetByID(_ context.Context, id int64) (*models.Material, error) {
	material, ok := r.materials[id]
	if !ok {
		return nil, apperrors.ErrMaterialNotFound
	}
	clone := *material
	return &clone, nil
}

func (r *memMaterialRepo) GetByFileID(_ context.Context, fileID int64) (*models.Material, error) {
	for _, material := range r.materials {
		if material.FileID == fileID {
			clone := *material
			return &clone, nil
		}
	}
	return nil, apperrors.ErrMaterialNotFound
}

func (r *memMaterialRepo) GetAll(_ context.Context, filter repositories.MaterialFilter, _, _ int) ([]*models.Material, int64, error) {
	var out []*models.Material
	for _, material := range r.materials {
		if filter.CourseID != nil && material.CourseID != *filter.CourseID {
			continue
		}
		if filter.Status != nil && material.Status != *filter.Status {
			continue
		}
		if filter.UploaderID != nil && material.UploaderID != *filter.UploaderID {
			continue
		}
		if filter.VisibleToUserID != nil &&
			material.Status != models.MaterialStatusApproved &&
			material.UploaderID != *filter.VisibleToUserID {
			continue
		}
		clone := *material
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

func (r *memMaterialRepo) UpdateStatus(_ context.Context, id int64, status models.MaterialStatus) error {
	material, ok := r.materials[id]
	if !ok {
		return apperrors.ErrMaterialNotFound
	}
	material.Status = status
	return nil
}

func (r *memMaterialRepo) IncrementDownloadCount(_ context.Context, id int64) error {
	material, ok := r.materials[id]
	if !ok {
		return apperrors.ErrMaterialNotFound
	}
	material.DownloadCount++
	return nil
}

func (r *memMaterialRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.materials[id]; !ok {
		return apperrors.ErrMaterialNotFound
	}
	delete(r.materials, id)
	return nil
}

type memStorage struct {
	nextID int
}

func (s *memStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	return s.SaveFileWithPath(fileHeader, "")
}

func (s *memStorage) SaveFileWithPath(_ *multipart.FileHeader, _ string) (string, error) {
	s.nextID++
	return "stored-" + strconv.Itoa(s.nextID) + ".pdf", nil
}

func (s *memStorage) DeleteFile(string) error { return nil }

func (s *memStorage) GetFullPath(filePath string) string {
	if filePath == "" {
		return ""
	}
	return "/storage/" + filePath
}

type memEmailService struct {
	lastTokens map[string]string
}

func newMemEmailService() *memEmailService {
	return &memEmailService{lastTokens: map[string]string{}}
}

func (s *memEmailService) SendPasswordResetEmail(toEmail, _ string, token string) error {
	s.lastTokens[toEmail] = token
	return nil
}
