package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NewNotFound("post", "abc"), http.StatusNotFound},
		{"validation", NewValidation([]FieldError{{Field: "email", Message: "Email is required"}}), http.StatusBadRequest},
		{"conflict", NewConflict("like", "post already liked"), http.StatusBadRequest},
		{"unauthenticated", NewUnauthenticated("no token", nil), http.StatusUnauthorized},
		{"permission", NewPermissionDenied("post belongs to another user"), http.StatusForbidden},
		{"internal", NewInternal("db down", errors.New("conn refused")), http.StatusInternalServerError},
		{"unknown", errors.New("something else"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ToHTTPStatus(tc.err))
		})
	}
}

func TestNewValidation_KeepsAllFields(t *testing.T) {
	fields := []FieldError{
		{Field: "name", Message: "Name is required"},
		{Field: "email", Message: "Please include a valid email"},
		{Field: "password", Message: "Please enter a password with 6 or more characters"},
	}

	e := NewValidation(fields)
	require.Len(t, e.Fields, 3)

	body := e.ToJSON()
	got, ok := body["errors"].([]FieldError)
	require.True(t, ok)
	assert.Equal(t, fields, got)
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("row not found")
	e := NewAppError(ErrNotFound, "profile not found", "user 123", cause)

	assert.ErrorIs(t, e, ErrNotFound)
	assert.Contains(t, e.Error(), "profile not found")
	assert.Contains(t, e.Error(), "row not found")
}
