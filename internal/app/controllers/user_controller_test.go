package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanvir/materialhub/internal/app/models"
	"github.com/tanvir/materialhub/internal/app/models/dto"
	"github.com/tanvir/materialhub/internal/app/services"
)

func newUserTestRouter(callerID int64, callerRole models.RoleType) (*gin.Engine, *memUserRepo) {
	gin.SetMode(gin.TestMode)

	userRepo := newMemUserRepo()
	departmentRepo := newMemDepartmentRepo()
	_ = departmentRepo.Create(context.Background(), &models.Department{
		Name: "Computer Science and Engineering", Code: "CSE", IsActive: true,
	})

	userService := services.NewUserService(userRepo, departmentRepo)
	controller := NewUserController(userService)

	router := gin.New()
	group := router.Group("/api/users", setCaller(callerID, callerRole))
	group.GET("/:id", controller.GetUserByID)
	group.PATCH("/:id/role", controller.UpdateUserRole)
	group.PATCH("/:id/profile", controller.UpdateUserProfile)
	return router, userRepo
}

func seedUser(t *testing.T, userRepo *memUserRepo, name string) *models.User {
	t.Helper()
	user := &models.User{
		Name:       name,
		Email:      "19202103001@cse.bubt.edu.bd",
		Role:       models.RoleStudent,
		Department: "Computer Science and Engineering",
		StudentID:  "19202103001",
		IsActive:   true,
	}
	require.NoError(t, userRepo.Create(context.Background(), user))
	return user
}

func TestGetUserEndpoint_Self(t *testing.T) {
	router, userRepo := newUserTestRouter(1, models.RoleStudent)
	seedUser(t, userRepo, "Tanvir")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Tanvir", resp.Name)
}

func TestGetUserEndpoint_StrangerForbidden(t *testing.T) {
	router, userRepo := newUserTestRouter(42, models.RoleStudent)
	seedUser(t, userRepo, "Tanvir")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/1", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetUserEndpoint_AdminSeesAnyone(t *testing.T) {
	router, userRepo := newUserTestRouter(42, models.RoleAdmin)
	seedUser(t, userRepo, "Tanvir")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateRoleEndpoint(t *testing.T) {
	router, userRepo := newUserTestRouter(42, models.RoleAdmin)
	seedUser(t, userRepo, "Tanvir")

	body := bytes.NewBufferString(`{"role":"moderator"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/users/1/role", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "moderator", resp.Role)
}

func TestUpdateRoleEndpoint_InvalidRole(t *testing.T) {
	router, userRepo := newUserTestRouter(42, models.RoleAdmin)
	seedUser(t, userRepo, "Tanvir")

	body := bytes.NewBufferString(`{"role":"superuser"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/users/1/role", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProfileEndpoint_Self(t *testing.T) {
	router, userRepo := newUserTestRouter(1, models.RoleStudent)
	seedUser(t, userRepo, "Tanvir")

	body := bytes.NewBufferString(`{"name":"Tanvir Hasan","section":5}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/users/1/profile", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Tanvir Hasan", resp.Name)

	stored, err := userRepo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.Section)
}

func TestUpdateProfileEndpoint_StrangerForbidden(t *testing.T) {
	router, userRepo := newUserTestRouter(42, models.RoleStudent)
	seedUser(t, userRepo, "Tanvir")

	body := bytes.NewBufferString(`{"name":"Hijacked"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/users/1/profile", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
