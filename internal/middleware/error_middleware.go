package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parkpilot/parkpilot/internal/app/models/dto"
	"github.com/parkpilot/parkpilot/internal/pkg/apperrors"
	"github.com/parkpilot/parkpilot/internal/pkg/logger"
)

// HandleAPIError translates a service error into the wire error shape.
// Sentinel errors map to their status codes; anything unrecognized is a 500
// whose cause is logged server-side and never echoed to the client.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respondError(c, http.StatusNotFound, err)
	case errors.Is(err, apperrors.ErrDuplicate),
		errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		respondError(c, http.StatusBadRequest, err)
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrUnauthorized),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid):
		respondError(c, http.StatusUnauthorized, err)
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respondError(c, http.StatusForbidden, err)
	case errors.Is(err, apperrors.ErrUnavailable),
		errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusServiceUnavailable,
			dto.NewErrorResponse("Service temporarily unavailable", http.StatusServiceUnavailable))
	default:
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError,
			dto.NewErrorResponse("Internal server error", http.StatusInternalServerError))
	}
}

func respondError(c *gin.Context, status int, err error) {
	c.JSON(status, dto.NewErrorResponse(err.Error(), status))
}
