package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/parkpilot/parkpilot/internal/middleware"
	"github.com/parkpilot/parkpilot/internal/pkg/apperrors"
)

func handleError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/vehicles/id/1", nil)

	middleware.HandleAPIError(ctx, err)
	return w
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", apperrors.NewNotFoundError("No vehicle with ID: 1"), http.StatusNotFound},
		{"duplicate", apperrors.NewDuplicateError("Region name: West is already in use"), http.StatusBadRequest},
		{"bad request", apperrors.NewBadRequestError("no fields to update"), http.StatusBadRequest},
		{"unauthorized", apperrors.NewUnauthorizedError("Invalid username or password"), http.StatusUnauthorized},
		{"forbidden", apperrors.NewForbiddenError("Insufficient role"), http.StatusForbidden},
		{"deadline exceeded", context.DeadlineExceeded, http.StatusServiceUnavailable},
		{"unavailable", apperrors.ErrUnavailable, http.StatusServiceUnavailable},
		{"unknown", errors.New("pq: connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := handleError(t, tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)

			var resp struct {
				Error struct {
					Message string `json:"message"`
					Status  int    `json:"status"`
				} `json:"error"`
			}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantStatus, resp.Error.Status)
			assert.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestHandleAPIErrorKeepsDetailForMappedErrors(t *testing.T) {
	w := handleError(t, apperrors.NewNotFoundError("No vehicle with ID: 999"))

	var resp struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "No vehicle with ID: 999", resp.Error.Message)
}

func TestHandleAPIErrorHidesInternalDetail(t *testing.T) {
	w := handleError(t, errors.New("pq: password authentication failed for user"))

	var resp struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Internal server error", resp.Error.Message)
	assert.NotContains(t, resp.Error.Message, "password")
}
