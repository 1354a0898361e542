package services

import (
	"context"
	"mime/multipart"
	"sort"
	"strings"
	"time"

	"github.com/tanvir/materialhub/internal/app/models"
	"github.com/tanvir/materialhub/internal/app/repositories"
	"github.com/tanvir/materialhub/internal/pkg/apperrors"
)

// In-memory fakes keep service tests free of a database.

type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*models.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) GetByResetToken(_ context.Context, token string) (*models.User, error) {
	for _, user := range r.users {
		if user.ResetPasswordToken != nil && *user.ResetPasswordToken == token &&
			user.ResetPasswordExpires != nil && user.ResetPasswordExpires.After(time.Now()) {
			clone := *user
			return &clone, nil
		}
	}
	return nil, apperrors.ErrInvalidResetToken
}

func (r *fakeUserRepo) GetAll(_ context.Context, page, pageSize int) ([]*models.User, int64, error) {
	ids := make([]int64, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })

	var out []*models.User
	start := (page - 1) * pageSize
	for i := start; i < len(ids) && i < start+pageSize; i++ {
		clone := *r.users[ids[i]]
		out = append(out, &clone)
	}
	return out, int64(len(r.users)), nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	stored, ok := r.users[user.ID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	stored.Name = user.Name
	stored.Department = user.Department
	stored.Section = user.Section
	stored.Intake = user.Intake
	stored.ProfilePicURL = user.ProfilePicURL
	return nil
}

func (r *fakeUserRepo) UpdateRole(_ context.Context, userID int64, role models.RoleType) error {
	user, ok := r.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.Role = role
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, userID int64, hashedPassword string) error {
	user, ok := r.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.Password = hashedPassword
	return nil
}

func (r *fakeUserRepo) SetResetToken(_ context.Context, userID int64, token string, expires time.Time) error {
	user, ok := r.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.ResetPasswordToken = &token
	user.ResetPasswordExpires = &expires
	return nil
}

func (r *fakeUserRepo) ClearResetToken(_ context.Context, userID int64) error {
	user, ok := r.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.ResetPasswordToken = nil
	user.ResetPasswordExpires = nil
	return nil
}

func (r *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) StudentIDExists(_ context.Context, studentID string) (bool, error) {
	for _, user := range r.users {
		if user.StudentID == studentID {
			return true, nil
		}
	}
	return false, nil
}

type fakeDepartmentRepo struct {
	departments map[int64]*models.Department
	nextID      int64
}

func newFakeDepartmentRepo() *fakeDepartmentRepo {
	return &fakeDepartmentRepo{departments: map[int64]*models.Department{}, nextID: 1}
}

func (r *fakeDepartmentRepo) Create(_ context.Context, department *models.Department) error {
	department.ID = r.nextID
	r.nextID++
	clone := *department
	r.departments[department.ID] = &clone
	return nil
}

func (r *fakeDepartmentRepo) GetByID(_ context.Context, id int64) (*models.Department, error) {
	dept, ok := r.departments[id]
	if !ok {
		return nil, apperrors.ErrDepartmentNotFound
	}
	clone := *dept
	return &clone, nil
}

func (r *fakeDepartmentRepo) GetByCode(_ context.Context, code string) (*models.Department, error) {
	for _, dept := range r.departments {
		if strings.EqualFold(dept.Code, code) {
			clone := *dept
			return &clone, nil
		}
	}
	return nil, apperrors.ErrDepartmentNotFound
}

func (r *fakeDepartmentRepo) GetByName(_ context.Context, name string) (*models.Department, error) {
	for _, dept := range r.departments {
		if dept.Name == name {
			clone := *dept
			return &clone, nil
		}
	}
	return nil, apperrors.ErrDepartmentNotFound
}

func (r *fakeDepartmentRepo) GetAll(_ context.Context) ([]*models.Department, error) {
	out := make([]*models.Department, 0, len(r.departments))
	for _, dept := range r.departments {
		clone := *dept
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeDepartmentRepo) Update(_ context.Context, department *models.Department) error {
	if _, ok := r.departments[department.ID]; !ok {
		return apperrors.ErrDepartmentNotFound
	}
	clone := *department
	r.departments[department.ID] = &clone
	return nil
}

func (r *fakeDepartmentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.departments[id]; !ok {
		return apperrors.ErrDepartmentNotFound
	}
	delete(r.departments, id)
	return nil
}

type fakeCourseRepo struct {
	courses map[int64]*models.Course
	nextID  int64
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: map[int64]*models.Course{}, nextID: 1}
}

func (r *fakeCourseRepo) Create(_ context.Context, course *models.Course) error {
	course.ID = r.nextID
	r.nextID++
	clone := *course
	r.courses[course.ID] = &clone
	return nil
}

func (r *fakeCourseRepo) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := r.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	clone := *course
	return &clone, nil
}

func (r *fakeCourseRepo) GetByCode(_ context.Context, code string) (*models.Course, error) {
	for _, course := range r.courses {
		if strings.EqualFold(course.Code, code) {
			clone := *course
			return &clone, nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

func (r *fakeCourseRepo) GetAll(_ context.Context, departmentID *int64) ([]*models.Course, error) {
	var out []*models.Course
	for _, course := range r.courses {
		if departmentID != nil && course.DepartmentID != *departmentID {
			continue
		}
		clone := *course
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r *fakeCourseRepo) Update(_ context.Context, course *models.Course) error {
	if _, ok := r.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	clone := *course
	r.courses[course.ID] = &clone
	return nil
}

func (r *fakeCourseRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(r.courses, id)
	return nil
}

type fakeMaterialRepo struct {
	materials map[int64]*models.Material
	nextID    int64
}

func newFakeMaterialRepo() *fakeMaterialRepo {
	return &fakeMaterialRepo{materials: map[int64]*models.Material{}, nextID: 1}
}

func (r *fakeMaterialRepo) Create(_ context.Context, material *models.Material) error {
	material.ID = r.nextID
	r.nextID++
	material.CreatedAt = time.Now()
	material.UpdatedAt = material.CreatedAt
	clone := *material
	r.materials[material.ID] = &clone
	return nil
}

func (r *fakeMaterialRepo) GetByID(_ context.Context, id int64) (*models.Material, error) {
	material, ok := r.materials[id]
	if !ok {
		return nil, apperrors.ErrMaterialNotFound
	}
	clone := *material
	return &clone, nil
}

func (r *fakeMaterialRepo) GetByFileID(_ context.Context, fileID int64) (*models.Material, error) {
	for _, material := range r.materials {
		if material.FileID == fileID {
			clone := *material
			return &clone, nil
		}
	}
	return nil, apperrors.ErrMaterialNotFound
}

func (r *fakeMaterialRepo) GetAll(_ context.Context, filter repositories.MaterialFilter, page, pageSize int) ([]*models.Material, int64, error) {
	var matched []*models.Material
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
		matched = append(matched, &clone)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	total := int64(len(matched))
	start := (page - 1) * pageSize
	if start > len(matched) {
		start = len(matched)
	}
	end := start + pageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *fakeMaterialRepo) UpdateStatus(_ context.Context, id int64, status models.MaterialStatus) error {
	material, ok := r.materials[id]
	if !ok {
		return apperrors.ErrMaterialNotFound
	}
	material.Status = status
	return nil
}

func (r *fakeMaterialRepo) IncrementDownloadCount(_ context.Context, id int64) error {
	material, ok := r.materials[id]
	if !ok {
		return apperrors.ErrMaterialNotFound
	}
	material.DownloadCount++
	return nil
}

func (r *fakeMaterialRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.materials[id]; !ok {
		return apperrors.ErrMaterialNotFound
	}
	delete(r.materials, id)
	return nil
}

type fakeFileRepo struct {
	files  map[int64]*models.File
	nextID int64
}

func newFakeFileRepo() *fakeFileRepo {
	return &fakeFileRepo{files: map[int64]*models.File{}, nextID: 1}
}

func (r *fakeFileRepo) Create(_ context.Context, file *models.File) error {
	file.ID = r.nextID
	r.nextID++
	file.CreatedAt = time.Now()
	clone := *file
	r.files[file.ID] = &clone
	return nil
}

func (r *fakeFileRepo) GetByID(_ context.Context, id int64) (*models.File, error) {
	file, ok := r.files[id]
	if !ok {
		return nil, apperrors.ErrFileNotFound
	}
	clone := *file
	return &clone, nil
}

func (r *fakeFileRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.files[id]; !ok {
		return apperrors.ErrFileNotFound
	}
	delete(r.files, id)
	return nil
}

type fakeStorage struct {
	saved   []string
	deleted []string
	nextID  int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{}
}

func (s *fakeStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	return s.SaveFileWithPath(fileHeader, "")
}

func (s *fakeStorage) SaveFileWithPath(_ *multipart.FileHeader, _ string) (string, error) {
	s.nextID++
	name := "stored-" + time.Now().Format("150405") + "-" + string(rune('a'+s.nextID)) + ".pdf"
	s.saved = append(s.saved, name)
	return name, nil
}

func (s *fakeStorage) DeleteFile(filePath string) error {
	s.deleted = append(s.deleted, filePath)
	return nil
}

func (s *fakeStorage) GetFullPath(filePath string) string {
	if filePath == "" {
		return ""
	}
	return "/storage/" + filePath
}

type fakeEmailService struct {
	sentTo     []string
	lastTokens map[string]string
}

func newFakeEmailService() *fakeEmailService {
	return &fakeEmailService{lastTokens: map[string]string{}}
}

func (s *fakeEmailService) SendPasswordResetEmail(toEmail, _ string, token string) error {
	s.sentTo = append(s.sentTo, toEmail)
	s.lastTokens[toEmail] = token
	return nil
}
