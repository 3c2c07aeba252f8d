package errors

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		err        *AppError
		wantType   ErrorType
		wantStatus int
	}{
		{NewValidationError("bad input"), ErrorTypeValidation, http.StatusBadRequest},
		{NewUnauthorizedError(""), ErrorTypeUnauthorized, http.StatusUnauthorized},
		{NewNotFoundError("problem"), ErrorTypeNotFound, http.StatusNotFound},
		{NewUpstreamError("gemini", errors.New("boom")), ErrorTypeUpstream, http.StatusInternalServerError},
		{NewInternalError("oops"), ErrorTypeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.wantType, tt.err.Type)
		assert.Equal(t, tt.wantStatus, tt.err.HTTPStatus)
		assert.NotEmpty(t, tt.err.Error())
	}
}

func TestNotFoundError_Message(t *testing.T) {
	err := NewNotFoundError("problem")
	assert.Equal(t, "problem not found", err.Message)
}

func TestAppError_UnwrapChain(t *testing.T) {
	cause := errors.New("root cause")
	err := NewUpstreamError("dynamodb", cause)

	assert.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("while saving: %w", err)
	assert.True(t, IsUpstream(wrapped))
	require.NotNil(t, GetAppError(wrapped))
	assert.Equal(t, ErrorTypeUpstream, GetAppError(wrapped).Type)
}

func TestTypePredicates(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("x")))
	assert.False(t, IsNotFound(NewValidationError("x")))
	assert.True(t, IsValidation(NewValidationError("x")))
	assert.False(t, IsValidation(errors.New("plain")))
	assert.False(t, IsAppError(errors.New("plain")))
}

func TestErrorHandler_MapsAppErrors(t *testing.T) {
	handler := NewErrorHandler(zap.NewNop(), false)

	tests := []struct {
		err        error
		wantStatus int
		wantDetail string
	}{
		{NewValidationError("file too large"), http.StatusBadRequest, "file too large"},
		{NewNotFoundError("problem"), http.StatusNotFound, "problem not found"},
		{NewUpstreamError("gemini", errors.New("boom")), http.StatusInternalServerError, "upstream service 'gemini' failed"},
		{errors.New("surprise"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		rec := httptest.NewRecorder()

		handler.Handle(rec, req, tt.err)

		assert.Equal(t, tt.wantStatus, rec.Code)
		assert.JSONEq(t, fmt.Sprintf(`{"detail": %q}`, tt.wantDetail), rec.Body.String())
	}
}

func TestErrorHandler_DebugExposesUnknownErrors(t *testing.T) {
	handler := NewErrorHandler(zap.NewNop(), true)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req, errors.New("surprise"))

	assert.Contains(t, rec.Body.String(), "surprise")
}
