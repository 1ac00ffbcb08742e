// Package apierror maps domain errors to HTTP responses.
package apierror

import (
	"errors"
	"net/http"

	"taskboard/internal/api"
	"taskboard/internal/auth"
	"taskboard/internal/repository"
	"taskboard/internal/service"
)

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

func New(statusCode int, message, code string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message, Code: code}
}

// Validation is a 400 with a caller supplied message.
func Validation(message string) *HTTPError {
	return New(http.StatusBadRequest, message, "VALIDATION_ERROR")
}

func (e *HTTPError) Response() api.ErrorResponse {
	return api.ErrorResponse{Message: e.Message, Code: e.Code}
}

type mapping struct {
	target  error
	status  int
	message string
	code    string
}

var mappings = []mapping{
	{repository.ErrBoardNotFound, http.StatusNotFound, "Board not found", "BOARD_NOT_FOUND"},
	{repository.ErrListNotFound, http.StatusNotFound, "List not found", "LIST_NOT_FOUND"},
	{repository.ErrCardNotFound, http.StatusNotFound, "Card not found", "CARD_NOT_FOUND"},
	{repository.ErrCommentNotFound, http.StatusNotFound, "Comment not found", "COMMENT_NOT_FOUND"},
	{repository.ErrOrderMismatch, http.StatusBadRequest, "Reorder request does not match the current items", "ORDER_MISMATCH"},
	{service.ErrUserNotFound, http.StatusNotFound, "User not found", "USER_NOT_FOUND"},
	{service.ErrForbidden, http.StatusForbidden, "You do not have access to this resource", "FORBIDDEN"},
	{service.ErrEmailTaken, http.StatusConflict, "User already exists", "EMAIL_TAKEN"},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password", "INVALID_CREDENTIALS"},
	{service.ErrWrongPassword, http.StatusBadRequest, "Current password is incorrect", "WRONG_PASSWORD"},
	{service.ErrStorageUnavailable, http.StatusServiceUnavailable, "Profile picture storage is not configured", "STORAGE_UNAVAILABLE"},
	{auth.ErrResetTokenInvalid, http.StatusBadRequest, "Invalid or expired reset token", "RESET_TOKEN_INVALID"},
}

// FromError maps domain errors to HTTP errors. Unknown errors become a 500
// that does not leak the cause.
func FromError(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var invalid *service.ValidationError
	if errors.As(err, &invalid) {
		return Validation(invalid.Message)
	}

	for _, m := range mappings {
		if errors.Is(err, m.target) {
			return New(m.status, m.message, m.code)
		}
	}
	return New(http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR")
}
