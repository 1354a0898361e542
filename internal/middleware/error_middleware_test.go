package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/tanvir/materialhub/internal/pkg/apperrors"
)

func runErrorHandler(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	HandleAPIError(c, err)
	return w
}

func TestStatusForError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{apperrors.ErrMaterialNotFound, http.StatusNotFound},
		{apperrors.ErrUserNotFound, http.StatusNotFound},
		{apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{apperrors.ErrPermissionDenied, http.StatusForbidden},
		{apperrors.ErrAccountDisabled, http.StatusForbidden},
		{apperrors.ErrDuplicateAccount, http.StatusBadRequest},
		{apperrors.ErrFileTooLarge, http.StatusBadRequest},
		{apperrors.ErrNotPDF, http.StatusBadRequest},
		{apperrors.ErrInvalidResetToken, http.StatusBadRequest},
		{apperrors.NewValidationError("bad input"), http.StatusBadRequest},
		{errors.New("database exploded"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statusForError(tt.err), "error: %v", tt.err)
	}
}

func TestHandleAPIError_CustomMessageWins(t *testing.T) {
	err := apperrors.NewCustomError(apperrors.ErrDuplicateAccount, "An account with this email already exists")
	w := runErrorHandler(err)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"An account with this email already exists"}`, w.Body.String())
}

func TestHandleAPIError_SentinelMessage(t *testing.T) {
	w := runErrorHandler(apperrors.ErrMaterialNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"material not found"}`, w.Body.String())
}

func TestHandleAPIError_InternalErrorsAreMasked(t *testing.T) {
	w := runErrorHandler(errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Internal server error"}`, w.Body.String())
}
