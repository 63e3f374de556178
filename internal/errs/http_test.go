package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *HTTPError
		status int
		code   string
	}{
		{"unauthorized", NewUnauthorizedError("no", false), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", NewForbiddenError("no", false), http.StatusForbidden, "FORBIDDEN"},
		{"bad request", NewBadRequestError("bad", false, nil, nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{"not found", NewNotFoundError("gone", false, nil), http.StatusNotFound, "NOT_FOUND"},
		{"too many", NewTooManyRequestsError("slow down"), http.StatusTooManyRequests, "TOO_MANY_REQUESTS"},
		{"internal", NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

func TestCustomCode(t *testing.T) {
	code := "ANIME_NOT_FOUND"
	err := NewNotFoundError("Anime not found", false, &code)

	assert.Equal(t, "ANIME_NOT_FOUND", err.Code)
	assert.Equal(t, "Anime not found", err.Error())
}

func TestHTTPError_Is(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", NewNotFoundError("Anime not found", false, nil))

	assert.True(t, errors.Is(wrapped, &HTTPError{}))
	assert.False(t, errors.Is(errors.New("plain"), &HTTPError{}))

	var httpErr *HTTPError
	assert.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestWithMessage(t *testing.T) {
	base := NewBadRequestError("bad", true, nil, []FieldError{{Field: "name", Error: "is required"}}, nil)
	copied := base.WithMessage("worse")

	assert.Equal(t, "bad", base.Message)
	assert.Equal(t, "worse", copied.Message)
	assert.Equal(t, base.Errors, copied.Errors)
	assert.True(t, copied.Override)
}

func TestValidationError(t *testing.T) {
	err := ValidationError(errors.New("name is blank"))
	assert.Equal(t, "Validation failed: name is blank", err.Message)
	assert.Equal(t, http.StatusBadRequest, err.Status)
}
