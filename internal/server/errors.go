package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound indicates user was not found
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrResumeNotFound indicates the resume does not exist for this user
type ErrResumeNotFound struct {
	ResumeID uuid.UUID
}

func (e *ErrResumeNotFound) Error() string {
	return fmt.Sprintf("resume not found: %s", e.ResumeID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrUnprocessable indicates a well-formed request whose content cannot be
// processed (e.g. a resume payload failing schema validation)
type ErrUnprocessable struct {
	Message string
}

func (e *ErrUnprocessable) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrEmailAlreadyExists:
		return http.StatusConflict
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *ErrUserNotFound, *ErrResumeNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrUnprocessable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// userMessages maps response statuses to the user-facing message shown by
// clients. Statuses outside the table get the generic fallback.
var userMessages = map[int]string{
	http.StatusBadRequest:          "Invalid request. Please check your input.",
	http.StatusUnauthorized:        "Please sign in to continue.",
	http.StatusForbidden:           "You do not have permission to do that.",
	http.StatusNotFound:            "The requested resource was not found.",
	http.StatusConflict:            "This conflicts with something that already exists.",
	http.StatusUnprocessableEntity: "The submitted data could not be processed.",
	http.StatusInternalServerError: "Something went wrong on our end. Please try again.",
}

// UserMessage returns the user-facing message for a response status.
func UserMessage(status int) string {
	if msg, ok := userMessages[status]; ok {
		return msg
	}
	return "An unexpected error occurred. Please try again."
}
