package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parkpilot/parkpilot/internal/app/models"
	"github.com/parkpilot/parkpilot/internal/app/models/dto"
	"github.com/parkpilot/parkpilot/internal/middleware"
)

// LocationManager is the location service surface the controller needs
type LocationManager interface {
	Create(ctx context.Context, req *dto.CreateLocationRequest) (*models.Location, error)
	GetByID(ctx context.Context, id int64) (*models.Location, error)
	SearchByName(ctx context.Context, name string) ([]*models.Location, error)
	List(ctx context.Context) ([]*models.Location, error)
	Update(ctx context.Context, id int64, req *dto.UpdateLocationRequest) (*models.Location, error)
	Remove(ctx context.Context, id int64) error
}

// LocationController handles valet site routes
type LocationController struct {
	locationService LocationManager
}

// NewLocationController creates a new LocationController
func NewLocationController(locationService LocationManager) *LocationController {
	return &LocationController{locationService: locationService}
}

// Create handles POST /locations
func (c *LocationController) Create(ctx *gin.Context) {
	var req dto.CreateLocationRequest
	if !bindCreate(ctx, &req) {
		return
	}

	location, err := c.locationService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"location": location})
}

// GetByID handles GET /locations/id/:id
func (c *LocationController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	location, err := c.locationService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"location": location})
}

// SearchByName handles GET /locations/name/:name
func (c *LocationController) SearchByName(ctx *gin.Context) {
	locations, err := c.locationService.SearchByName(ctx.Request.Context(), ctx.Param("name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"locations": locations})
}

// List handles GET /locations
func (c *LocationController) List(ctx *gin.Context) {
	locations, err := c.locationService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"locations": locations})
}

// Update handles PATCH /locations/id/:id
func (c *LocationController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateLocationRequest
	if !bindUpdate(ctx, &req) {
		return
	}

	location, err := c.locationService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"location": location})
}

// Remove handles DELETE /locations/id/:id
func (c *LocationController) Remove(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.locationService.Remove(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"deleted": ctx.Param("id")})
}
