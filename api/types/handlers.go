package types

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcastr/internal/services/episodes"
	apperrors "github.com/killallgit/podcastr/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Handler utility functions to reduce duplication across handlers

// SlugParam extracts the :slug URL parameter
// Returns false and sends error response if it is blank
func SlugParam(c *gin.Context) (string, bool) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		SendError(c, apperrors.ValidationError("slug", "cannot be empty"))
		return "", false
	}
	return slug, true
}

// ToAppError maps an episode service error onto the HTTP error model.
// Anything the episodes API is responsible for becomes a gateway error.
func ToAppError(err error, slug string) *apperrors.AppError {
	if appErr, ok := apperrors.As(err); ok {
		return appErr
	}

	var validation episodes.ValidationError
	switch {
	case episodes.IsNotFound(err):
		return apperrors.NotFound("episode", slug).WithCause(err)
	case errors.As(err, &validation) && validation.Field == "slug":
		return apperrors.ValidationError(validation.Field, validation.Message).WithCause(err)
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.TimeoutError("episode "+slug, "deadline").WithCause(err)
	default:
		return apperrors.ExternalServiceError("episodes", err).WithDetail("slug", slug)
	}
}

// SendError sends a standardized JSON error response for err
func SendError(c *gin.Context, err *apperrors.AppError) {
	status := err.GetHTTPCode()
	entry := logrus.WithFields(logrus.Fields{
		"path":   c.Request.URL.Path,
		"status": status,
		"code":   err.Code,
	})
	if status >= http.StatusInternalServerError {
		entry.WithError(err).Error("request failed")
	} else {
		entry.Debug(err.Message)
	}

	c.JSON(status, ErrorResponse{
		Status:  StatusError,
		Message: err.Message,
		Error:   string(err.Code),
		Details: err.Details,
	})
}

// SendSuccess sends a standardized success response with data
func SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// WantsJSON reports whether the client prefers a JSON response over HTML
func WantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}
