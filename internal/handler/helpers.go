package handler

import (
	"errors"
	"net/http"

	"taskboard/internal/api"
	"taskboard/internal/apierror"
	"taskboard/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func currentUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Not authenticated", Code: "UNAUTHORIZED"})
		return uuid.Nil, false
	}
	return userID, true
}

func paramUUID(c *gin.Context, name, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.Validation("Invalid "+entity+" ID format").Response())
		return uuid.Nil, false
	}
	return id, true
}

func parseUUIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, len(raw))
	for i, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

// bindJSON answers 400 when the body does not decode or fails its binding tags.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.Validation(bindingMessage(err)).Response())
		return false
	}
	return true
}

func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return fe.Field() + " is required"
		case "email":
			return "Invalid email address"
		case "min":
			return fe.Field() + " must be at least " + fe.Param() + " characters"
		case "uuid":
			return fe.Field() + " must be a valid ID"
		}
	}
	return "Invalid request"
}

func respondError(c *gin.Context, logger *zap.Logger, err error) {
	httpErr := apierror.FromError(err)
	if httpErr.StatusCode >= http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	_ = c.Error(err)
	c.JSON(httpErr.StatusCode, httpErr.Response())
}
