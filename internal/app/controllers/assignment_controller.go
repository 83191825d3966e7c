package controllers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parkpilot/parkpilot/internal/app/models"
	"github.com/parkpilot/parkpilot/internal/app/models/dto"
	"github.com/parkpilot/parkpilot/internal/middleware"
)

// AssignmentManager is the assignment service surface the controller needs
type AssignmentManager interface {
	AssignPodium(ctx context.Context, userID, podiumID int64) (*models.UserPodium, error)
	PodiumsByUser(ctx context.Context, userID int64) ([]*models.AssignedPodium, error)
	UnassignPodium(ctx context.Context, userID, podiumID int64) error
	AssignLocation(ctx context.Context, userID, locationID int64) (*models.UserLocation, error)
	LocationsByUser(ctx context.Context, userID int64) ([]*models.Location, error)
	UnassignLocation(ctx context.Context, userID, locationID int64) error
	AssignRegion(ctx context.Context, userID, regionID int64) (*models.UserRegion, error)
	RegionsByUser(ctx context.Context, userID int64) ([]*models.Region, error)
	UnassignRegion(ctx context.Context, userID, regionID int64) error
}

// AssignmentController handles the user-podium, user-location and
// user-region link routes
type AssignmentController struct {
	assignmentService AssignmentManager
}

// NewAssignmentController creates a new AssignmentController
func NewAssignmentController(assignmentService AssignmentManager) *AssignmentController {
	return &AssignmentController{assignmentService: assignmentService}
}

// AssignPodium handles POST /user-podiums
func (c *AssignmentController) AssignPodium(ctx *gin.Context) {
	var req dto.AssignPodiumRequest
	if !bindCreate(ctx, &req) {
		return
	}

	assigned, err := c.assignmentService.AssignPodium(ctx.Request.Context(), req.UserID, req.PodiumID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"userPodium": assigned})
}

// PodiumsByUser handles GET /users/id/:id/podiums
func (c *AssignmentController) PodiumsByUser(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	podiums, err := c.assignmentService.PodiumsByUser(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"podiums": podiums})
}

// UnassignPodium handles DELETE /user-podiums
func (c *AssignmentController) UnassignPodium(ctx *gin.Context) {
	var req dto.AssignPodiumRequest
	if !bindCreate(ctx, &req) {
		return
	}

	if err := c.assignmentService.UnassignPodium(ctx.Request.Context(), req.UserID, req.PodiumID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"deleted": fmt.Sprintf("%d:%d", req.UserID, req.PodiumID)})
}

// AssignLocation handles POST /user-locations
func (c *AssignmentController) AssignLocation(ctx *gin.Context) {
	var req dto.AssignLocationRequest
	if !bindCreate(ctx, &req) {
		return
	}

	assigned, err := c.assignmentService.AssignLocation(ctx.Request.Context(), req.UserID, req.LocationID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"userLocation": assigned})
}

// LocationsByUser handles GET /users/id/:id/locations
func (c *AssignmentController) LocationsByUser(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	locations, err := c.assignmentService.LocationsByUser(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"locations": locations})
}

// UnassignLocation handles DELETE /user-locations
func (c *AssignmentController) UnassignLocation(ctx *gin.Context) {
	var req dto.AssignLocationRequest
	if !bindCreate(ctx, &req) {
		return
	}

	if err := c.assignmentService.UnassignLocation(ctx.Request.Context(), req.UserID, req.LocationID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"deleted": fmt.Sprintf("%d:%d", req.UserID, req.LocationID)})
}

// AssignRegion handles POST /user-regions
func (c *AssignmentController) AssignRegion(ctx *gin.Context) {
	var req dto.AssignRegionRequest
	if !bindCreate(ctx, &req) {
		return
	}

	assigned, err := c.assignmentService.AssignRegion(ctx.Request.Context(), req.UserID, req.RegionID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"userRegion": assigned})
}

// RegionsByUser handles GET /users/id/:id/regions
func (c *AssignmentController) RegionsByUser(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	regions, err := c.assignmentService.RegionsByUser(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"regions": regions})
}

// UnassignRegion handles DELETE /user-regions
func (c *AssignmentController) UnassignRegion(ctx *gin.Context) {
	var req dto.AssignRegionRequest
	if !bindCreate(ctx, &req) {
		return
	}

	if err := c.assignmentService.UnassignRegion(ctx.Request.Context(), req.UserID, req.RegionID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"deleted": fmt.Sprintf("%d:%d", req.UserID, req.RegionID)})
}
