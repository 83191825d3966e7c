package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parkpilot/parkpilot/internal/app/models"
	"github.com/parkpilot/parkpilot/internal/app/models/dto"
	"github.com/parkpilot/parkpilot/internal/middleware"
)

// VehicleManager is the vehicle service surface the controller needs
type VehicleManager interface {
	Create(ctx context.Context, req *dto.CreateVehicleRequest) (*models.Vehicle, error)
	GetByID(ctx context.Context, id int64) (*models.Vehicle, error)
	List(ctx context.Context) ([]*models.Vehicle, error)
	ListByStatus(ctx context.Context, statusID int64) ([]*models.Vehicle, error)
	SearchByMobile(ctx context.Context, mobile string) ([]*models.Vehicle, error)
	Update(ctx context.Context, id int64, req *dto.UpdateVehicleRequest) (*models.Vehicle, error)
	Remove(ctx context.Context, id int64) error
}

// VehicleController handles vehicle routes
type VehicleController struct {
	vehicleService VehicleManager
}

// NewVehicleController creates a new VehicleController
func NewVehicleController(vehicleService VehicleManager) *VehicleController {
	return &VehicleController{vehicleService: vehicleService}
}

// Create handles POST /vehicles
func (c *VehicleController) Create(ctx *gin.Context) {
	var req dto.CreateVehicleRequest
	if !bindCreate(ctx, &req) {
		return
	}

	vehicle, err := c.vehicleService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"vehicle": vehicle})
}

// GetByID handles GET /vehicles/id/:id
func (c *VehicleController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	vehicle, err := c.vehicleService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"vehicle": vehicle})
}

// List handles GET /vehicles
func (c *VehicleController) List(ctx *gin.Context) {
	vehicles, err := c.vehicleService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}

// ListByStatus handles GET /vehicles/status/:statusId
func (c *VehicleController) ListByStatus(ctx *gin.Context) {
	statusID, ok := parseIDParam(ctx, "statusId")
	if !ok {
		return
	}

	vehicles, err := c.vehicleService.ListByStatus(ctx.Request.Context(), statusID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}

// SearchByMobile handles GET /vehicles/mobile/:mobile
func (c *VehicleController) SearchByMobile(ctx *gin.Context) {
	vehicles, err := c.vehicleService.SearchByMobile(ctx.Request.Context(), ctx.Param("mobile"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}

// Update handles PATCH /vehicles/id/:id
func (c *VehicleController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateVehicleRequest
	if !bindUpdate(ctx, &req) {
		return
	}

	vehicle, err := c.vehicleService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"vehicle": vehicle})
}

// Remove handles DELETE /vehicles/id/:id
func (c *VehicleController) Remove(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.vehicleService.Remove(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"deleted": ctx.Param("id")})
}
