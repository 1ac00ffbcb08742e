package apierror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"taskboard/internal/apierror"
	"taskboard/internal/auth"
	"taskboard/internal/repository"
	"taskboard/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"board not found", repository.ErrBoardNotFound, http.StatusNotFound, "BOARD_NOT_FOUND"},
		{"wrapped card not found", fmt.Errorf("load card: %w", repository.ErrCardNotFound), http.StatusNotFound, "CARD_NOT_FOUND"},
		{"forbidden", service.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"duplicate email", service.ErrEmailTaken, http.StatusConflict, "EMAIL_TAKEN"},
		{"bad credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"order mismatch", repository.ErrOrderMismatch, http.StatusBadRequest, "ORDER_MISMATCH"},
		{"reset token", auth.ErrResetTokenInvalid, http.StatusBadRequest, "RESET_TOKEN_INVALID"},
		{"validation", service.Invalid("Title is required"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := apierror.FromError(tt.err)
			assert.Equal(t, tt.status, got.StatusCode)
			assert.Equal(t, tt.code, got.Code)
		})
	}
}

func TestFromError_ValidationKeepsMessage(t *testing.T) {
	got := apierror.FromError(service.Invalid("Comment cannot be empty"))
	assert.Equal(t, "Comment cannot be empty", got.Response().Message)
}

func TestFromError_UnknownDoesNotLeak(t *testing.T) {
	got := apierror.FromError(errors.New("pq: password authentication failed"))
	assert.Equal(t, "Internal server error", got.Message)
}
