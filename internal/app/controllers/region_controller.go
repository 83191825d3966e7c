package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parkpilot/parkpilot/internal/app/models"
	"github.com/parkpilot/parkpilot/internal/app/models/dto"
	"github.com/parkpilot/parkpilot/internal/middleware"
)

// RegionManager is the region service surface the controller needs
type RegionManager interface {
	Create(ctx context.Context, req *dto.CreateRegionRequest) (*models.Region, error)
	GetByID(ctx context.Context, id int64) (*models.Region, error)
	SearchByName(ctx context.Context, name string) ([]*models.Region, error)
	List(ctx context.Context) ([]*models.Region, error)
	Update(ctx context.Context, id int64, req *dto.UpdateRegionRequest) (*models.Region, error)
	Remove(ctx context.Context, id int64) error
}

// RegionController handles region routes
type RegionController struct {
	regionService RegionManager
}

// NewRegionController creates a new RegionController
func NewRegionController(regionService RegionManager) *RegionController {
	return &RegionController{regionService: regionService}
}

// Create handles POST /regions
func (c *RegionController) Create(ctx *gin.Context) {
	var req dto.CreateRegionRequest
	if !bindCreate(ctx, &req) {
		return
	}

	region, err := c.regionService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"region": region})
}

// GetByID handles GET /regions/id/:id
func (c *RegionController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	region, err := c.regionService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"region": region})
}

// SearchByName handles GET /regions/name/:name
func (c *RegionController) SearchByName(ctx *gin.Context) {
	regions, err := c.regionService.SearchByName(ctx.Request.Context(), ctx.Param("name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"regions": regions})
}

// List handles GET /regions
func (c *RegionController) List(ctx *gin.Context) {
	regions, err := c.regionService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"regions": regions})
}

// Update handles PATCH /regions/id/:id
func (c *RegionController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateRegionRequest
	if !bindUpdate(ctx, &req) {
		return
	}

	region, err := c.regionService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"region": region})
}

// Remove handles DELETE /regions/id/:id
func (c *RegionController) Remove(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.regionService.Remove(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"deleted": ctx.Param("id")})
}
