package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parkpilot/parkpilot/internal/app/models"
	"github.com/parkpilot/parkpilot/internal/app/models/dto"
	"github.com/parkpilot/parkpilot/internal/middleware"
)

// PodiumManager is the podium service surface the controller needs
type PodiumManager interface {
	Create(ctx context.Context, req *dto.CreatePodiumRequest) (*models.Podium, error)
	GetByID(ctx context.Context, id int64) (*models.Podium, error)
	SearchByName(ctx context.Context, name string) ([]*models.Podium, error)
	List(ctx context.Context) ([]*models.Podium, error)
	Update(ctx context.Context, id int64, req *dto.UpdatePodiumRequest) (*models.Podium, error)
	Remove(ctx context.Context, id int64) error
}

// PodiumController handles valet stand routes
type PodiumController struct {
	podiumService PodiumManager
}

// NewPodiumController creates a new PodiumController
func NewPodiumController(podiumService PodiumManager) *PodiumController {
	return &PodiumController{podiumService: podiumService}
}

// Create handles POST /podiums
func (c *PodiumController) Create(ctx *gin.Context) {
	var req dto.CreatePodiumRequest
	if !bindCreate(ctx, &req) {
		return
	}

	podium, err := c.podiumService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"podium": podium})
}

// GetByID handles GET /podiums/id/:id
func (c *PodiumController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	podium, err := c.podiumService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"podium": podium})
}

// SearchByName handles GET /podiums/name/:name
func (c *PodiumController) SearchByName(ctx *gin.Context) {
	podiums, err := c.podiumService.SearchByName(ctx.Request.Context(), ctx.Param("name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"podiums": podiums})
}

// List handles GET /podiums
func (c *PodiumController) List(ctx *gin.Context) {
	podiums, err := c.podiumService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"podiums": podiums})
}

// Update handles PATCH /podiums/id/:id
func (c *PodiumController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdatePodiumRequest
	if !bindUpdate(ctx, &req) {
		return
	}

	podium, err := c.podiumService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"podium": podium})
}

// Remove handles DELETE /podiums/id/:id
func (c *PodiumController) Remove(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.podiumService.Remove(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"deleted": ctx.Param("id")})
}
