package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanvir/materialhub/internal/app/models"
	"github.com/tanvir/materialhub/internal/app/models/dto"
	"github.com/tanvir/materialhub/internal/app/services"
	"github.com/tanvir/materialhub/internal/pkg/auth"
)

func newAuthTestRouter() (*gin.Engine, *memUserRepo) {
	gin.SetMode(gin.TestMode)

	userRepo := newMemUserRepo()
	departmentRepo := newMemDepartmentRepo()
	_ = departmentRepo.Create(context.Background(), &models.Department{
		Name: "Computer Science and Engineering",
		Code: "CSE",
	})

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})
	authService := services.NewAuthService(userRepo, departmentRepo, jwtService, newMemEmailService())
	controller := NewAuthController(authService)

	router := gin.New()
	router.POST("/api/auth/register", controller.Register)
	router.POST("/api/auth/login", controller.Login)
	router.POST("/api/auth/forgot-password", controller.ForgotPassword)
	return router, userRepo
}

func postJSON(router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerPayload() map[string]any {
	return map[string]any{
		"name":       "Rahim Uddin",
		"email":      "19202103001@cse.bubt.edu.bd",
		"password":   "secret123",
		"department": "Computer Science and Engineering",
		"studentId":  "19202103001",
		"section":    3,
	}
}

func TestRegisterEndpoint(t *testing.T) {
	router, _ := newAuthTestRouter()

	w := postJSON(router, "/api/auth/register", registerPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "student", resp.User.Role)
	assert.Equal(t, "19202103001@cse.bubt.edu.bd", resp.User.Email)
}

func TestRegisterEndpoint_MissingFields(t *testing.T) {
	router, _ := newAuthTestRouter()

	payload := registerPayload()
	delete(payload, "password")

	w := postJSON(router, "/api/auth/register", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterEndpoint_Duplicate(t *testing.T) {
	router, _ := newAuthTestRouter()

	w := postJSON(router, "/api/auth/register", registerPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(router, "/api/auth/register", registerPayload())
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "An account with this email already exists", resp.Message)
}

func TestLoginEndpoint(t *testing.T) {
	router, _ := newAuthTestRouter()

	w := postJSON(router, "/api/auth/register", registerPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(router, "/api/auth/login", map[string]any{
		"email":    "19202103001@cse.bubt.edu.bd",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
}

func TestLoginEndpoint_WrongPassword(t *testing.T) {
	router, _ := newAuthTestRouter()

	w := postJSON(router, "/api/auth/register", registerPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(router, "/api/auth/login", map[string]any{
		"email":    "19202103001@cse.bubt.edu.bd",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestForgotPasswordEndpoint_AlwaysSucceeds(t *testing.T) {
	router, _ := newAuthTestRouter()

	w := postJSON(router, "/api/auth/forgot-password", map[string]any{
		"email": "nobody@cse.bubt.edu.bd",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "If an account with that email exists, a reset link has been sent", resp.Message)
}
