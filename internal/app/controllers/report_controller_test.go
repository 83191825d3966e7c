package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/parkpilot/parkpilot/internal/app/controllers"
	"github.com/parkpilot/parkpilot/internal/app/models"
	"github.com/parkpilot/parkpilot/internal/middleware"
	"github.com/parkpilot/parkpilot/internal/mocks"
	"github.com/parkpilot/parkpilot/internal/pkg/apperrors"
)

func TestReportPodiumActivity(t *testing.T) {
	ctx, w := newTestContext(t, http.MethodGet, "/api/v1/reports/podiums/3", "")
	ctx.Params = gin.Params{{Key: "podiumId", Value: "3"}}

	svc := new(mocks.ReportManager)
	svc.On("PodiumActivity", mock.Anything, int64(3)).Return([]*models.PodiumActivity{
		{TransactionID: 10, TransactionPodiumID: 3, VehicleMobile: "555-0100"},
	}, nil)

	controllers.NewReportController(svc).PodiumActivity(ctx)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Activity []models.PodiumActivity `json:"activity"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Activity, 1)
	assert.Equal(t, int64(10), resp.Activity[0].TransactionID)
}

func TestReportPodiumActivityEmpty(t *testing.T) {
	ctx, w := newTestContext(t, http.MethodGet, "/api/v1/reports/podiums/8", "")
	ctx.Params = gin.Params{{Key: "podiumId", Value: "8"}}

	svc := new(mocks.ReportManager)
	svc.On("PodiumActivity", mock.Anything, int64(8)).
		Return(nil, apperrors.NewNotFoundError("No activity for podium ID: 8"))

	controllers.NewReportController(svc).PodiumActivity(ctx)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No activity for podium ID: 8", errorMessage(t, w))
}

func TestReportDashboard(t *testing.T) {
	ctx, w := newTestContext(t, http.MethodGet, "/api/v1/reports/dashboard?tz=America/Denver", "")
	ctx.Set(middleware.ContextUserID, int64(4))

	svc := new(mocks.ReportManager)
	svc.On("Dashboard", mock.Anything, int64(4), "America/Denver").
		Return(&models.DashboardStats{TotalCount: 12, ParkedCount: 5}, nil)

	controllers.NewReportController(svc).Dashboard(ctx)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Dashboard models.DashboardStats `json:"dashboard"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(12), resp.Dashboard.TotalCount)
	assert.Equal(t, int64(5), resp.Dashboard.ParkedCount)
}

func TestReportDashboardAnonymous(t *testing.T) {
	ctx, w := newTestContext(t, http.MethodGet, "/api/v1/reports/dashboard", "")

	svc := new(mocks.ReportManager)
	controllers.NewReportController(svc).Dashboard(ctx)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	svc.AssertNotCalled(t, "Dashboard", mock.Anything, mock.Anything, mock.Anything)
}

func TestReportDashboardBadTimezone(t *testing.T) {
	ctx, w := newTestContext(t, http.MethodGet, "/api/v1/reports/dashboard?tz=Mars/Olympus", "")
	ctx.Set(middleware.ContextUserID, int64(4))

	svc := new(mocks.ReportManager)
	svc.On("Dashboard", mock.Anything, int64(4), "Mars/Olympus").
		Return(nil, apperrors.NewBadRequestError("Invalid timezone: Mars/Olympus"))

	controllers.NewReportController(svc).Dashboard(ctx)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid timezone: Mars/Olympus", errorMessage(t, w))
}
