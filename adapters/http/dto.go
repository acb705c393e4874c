package http

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/quangdng/devlink/pkg/apperror"
)

// Auth DTOs

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Profile DTOs

type UpsertProfileRequest struct {
	Status         string   `json:"status" binding:"required"`
	Skills         []string `json:"skills" binding:"required,min=1"`
	Company        *string  `json:"company"`
	Website        *string  `json:"website"`
	Location       *string  `json:"location"`
	Bio            *string  `json:"bio"`
	GithubUsername *string  `json:"githubusername"`
	Youtube        *string  `json:"youtube"`
	Twitter        *string  `json:"twitter"`
	Facebook       *string  `json:"facebook"`
	LinkedIn       *string  `json:"linkedin"`
	Instagram      *string  `json:"instagram"`
}

type AddExperienceRequest struct {
	Title       string  `json:"title" binding:"required"`
	Company     string  `json:"company" binding:"required"`
	Location    string  `json:"location"`
	From        string  `json:"from" binding:"required"`
	To          *string `json:"to"`
	Current     bool    `json:"current"`
	Description string  `json:"description"`
}

type AddEducationRequest struct {
	School       string  `json:"school" binding:"required"`
	Degree       string  `json:"degree" binding:"required"`
	FieldOfStudy string  `json:"fieldofstudy" binding:"required"`
	From         string  `json:"from" binding:"required"`
	To           *string `json:"to"`
	Current      bool    `json:"current"`
	Description  string  `json:"description"`
}

// Post DTOs

type CreatePostRequest struct {
	Text string `json:"text" binding:"required"`
}

type AddCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// bindJSON collects every failed field instead of stopping at the first, so
// a caller can fix all validation problems in one round trip.
func bindJSON(c *gin.Context, req any) error {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]apperror.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, apperror.FieldError{
				Field:   strings.ToLower(fe.Field()),
				Message: fieldMessage(fe),
			})
		}
		return apperror.NewValidation(fields)
	}
	return apperror.NewInvalidInput("malformed request body", err)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must have at least %s items", fe.Param())
	}
	return fmt.Sprintf("failed on '%s'", fe.Tag())
}

// parseDate accepts both plain dates and full RFC 3339 timestamps.
func parseDate(field, value string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperror.NewValidation([]apperror.FieldError{
		{Field: field, Message: "must be a date in YYYY-MM-DD or RFC 3339 format"},
	})
}

func parseOptionalDate(field string, value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := parseDate(field, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
