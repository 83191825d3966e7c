package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parkpilot/parkpilot/internal/app/models"
	"github.com/parkpilot/parkpilot/internal/app/models/dto"
	"github.com/parkpilot/parkpilot/internal/middleware"
)

// ReportManager is the report service surface the controller needs
type ReportManager interface {
	PodiumActivity(ctx context.Context, podiumID int64) ([]*models.PodiumActivity, error)
	TransactionDetail(ctx context.Context, transactionID int64) (*models.TransactionDetail, error)
	Dashboard(ctx context.Context, userID int64, timezone string) (*models.DashboardStats, error)
}

// ReportController handles the joined reporting routes
type ReportController struct {
	reportService ReportManager
}

// NewReportController creates a new ReportController
func NewReportController(reportService ReportManager) *ReportController {
	return &ReportController{reportService: reportService}
}

// PodiumActivity handles GET /reports/podiums/:podiumId
func (c *ReportController) PodiumActivity(ctx *gin.Context) {
	podiumID, ok := parseIDParam(ctx, "podiumId")
	if !ok {
		return
	}

	activity, err := c.reportService.PodiumActivity(ctx.Request.Context(), podiumID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"activity": activity})
}

// TransactionDetail handles GET /reports/transactions/:id
func (c *ReportController) TransactionDetail(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	detail, err := c.reportService.TransactionDetail(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"transaction": detail})
}

// Dashboard handles GET /reports/dashboard. Counts cover today's
// transactions across the caller's assigned podiums; the optional tz query
// parameter sets the day boundary.
func (c *ReportController) Dashboard(ctx *gin.Context) {
	userID, exists := ctx.Get(middleware.ContextUserID)
	if !exists {
		ctx.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse("Authentication required", http.StatusUnauthorized))
		return
	}

	stats, err := c.reportService.Dashboard(ctx.Request.Context(), userID.(int64), ctx.Query("tz"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"dashboard": stats})
}
